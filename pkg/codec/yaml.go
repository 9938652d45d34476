package codec

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/tendril/pkg/term"
)

// RefPrefix marks a YAML scalar string as a symbolic reference, e.g.
// "@WIDTH". The explicit !ref tag works too and is required for names that
// legitimately begin with "@".
const RefPrefix = "@"

const (
	refTag = "!ref"
	rmvTag = "!rmv"
)

// DecodeYAML parses template data into a term tree. Mapping order is
// preserved. Scalars tagged !rmv decode as the removal sentinel; scalars
// tagged !ref, or plain strings beginning with "@", decode as references.
func DecodeYAML(data []byte) (term.Term, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("codec: parse yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("codec: empty document")
	}
	return nodeToTerm(doc.Content[0])
}

// DecodeEnvYAML parses an environment file: a top-level mapping of binding
// names to terms.
func DecodeEnvYAML(data []byte) (*term.Env, error) {
	t, err := DecodeYAML(data)
	if err != nil {
		return nil, err
	}
	m, ok := t.(*term.Map)
	if !ok {
		return nil, fmt.Errorf("codec: environment must be a mapping, got %T", t)
	}
	bindings := make(map[string]term.Term, m.Len())
	m.Range(func(key string, v term.Term) bool {
		bindings[key] = v
		return true
	})
	return term.NewEnv(bindings), nil
}

// EncodeYAML serializes a term tree to YAML, preserving mapping order.
// References encode in "@name" form, the removal sentinel with the !rmv
// tag. Function values are not serializable.
func EncodeYAML(t term.Term) ([]byte, error) {
	node, err := termToNode(t)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

func nodeToTerm(n *yaml.Node) (term.Term, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return nodeToTerm(n.Alias)

	case yaml.MappingNode:
		m := term.NewMap()
		for i := 0; i+1 < len(n.Content); i += 2 {
			var key string
			if err := n.Content[i].Decode(&key); err != nil {
				return nil, fmt.Errorf("codec: line %d: mapping key: %w", n.Content[i].Line, err)
			}
			v, err := nodeToTerm(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(key, v)
		}
		return m, nil

	case yaml.SequenceNode:
		q := make(term.Seq, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := nodeToTerm(item)
			if err != nil {
				return nil, err
			}
			q = append(q, v)
		}
		return q, nil

	case yaml.ScalarNode:
		switch n.Tag {
		case rmvTag:
			return term.RMV, nil
		case refTag:
			return term.Ref(n.Value), nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("codec: line %d: scalar: %w", n.Line, err)
		}
		if s, ok := v.(string); ok && len(s) > len(RefPrefix) && strings.HasPrefix(s, RefPrefix) {
			return term.Ref(strings.TrimPrefix(s, RefPrefix)), nil
		}
		return term.Val(v), nil
	}
	return nil, fmt.Errorf("codec: line %d: unsupported node kind %d", n.Line, n.Kind)
}

func termToNode(t term.Term) (*yaml.Node, error) {
	switch t := t.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil

	case term.Scalar:
		node := &yaml.Node{}
		if err := node.Encode(t.Value); err != nil {
			return nil, fmt.Errorf("codec: encode scalar: %w", err)
		}
		return node, nil

	case term.Ref:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: t.String()}, nil

	case term.Seq:
		node := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range t {
			child, err := termToNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil

	case *term.Map:
		node := &yaml.Node{Kind: yaml.MappingNode}
		var encErr error
		t.Range(func(key string, v term.Term) bool {
			child, err := termToNode(v)
			if err != nil {
				encErr = err
				return false
			}
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				child)
			return true
		})
		if encErr != nil {
			return nil, encErr
		}
		return node, nil

	case *term.Func:
		return nil, term.ErrNotSerializable
	}

	if term.IsRMV(t) {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: rmvTag, Value: "RMV"}, nil
	}
	return nil, fmt.Errorf("codec: unsupported term type %T", t)
}
