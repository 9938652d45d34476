package introspect

import (
	"sort"

	"github.com/aretw0/tendril/pkg/term"
)

// Kind classifies a graph node by the shape of its binding.
type Kind string

const (
	// KindValue is a plain term binding (scalar, sequence, mapping).
	KindValue Kind = "value"
	// KindRef is a binding that aliases another name.
	KindRef Kind = "ref"
	// KindFunc is a dependency function binding.
	KindFunc Kind = "func"
	// KindUnbound marks a name that is depended on but has no binding in
	// the environment. It resolves to itself at runtime.
	KindUnbound Kind = "unbound"
)

// Node is one binding in the dependency graph.
type Node struct {
	Name string
	Kind Kind
	// Deps lists the names this binding needs: declared dependencies for
	// functions, the alias target for refs, and references embedded in
	// the value for plain bindings.
	Deps []string
	// Doc carries a function's documentation, when present.
	Doc string
}

// Graph is the static dependency graph of an environment, built from
// declared dependency lists and embedded references alone. Nothing is
// evaluated; dependency functions are inspected, never invoked.
type Graph struct {
	nodes      map[string]*Node
	downstream map[string][]string // name -> names that depend on it
}

// Inspect builds the dependency graph of every visible binding in env.
func Inspect(env *term.Env) *Graph {
	g := &Graph{
		nodes:      make(map[string]*Node),
		downstream: make(map[string][]string),
	}
	for name, bound := range env.Snapshot() {
		node := &Node{Name: name}
		switch bound := bound.(type) {
		case *term.Func:
			node.Kind = KindFunc
			node.Deps = append(node.Deps, bound.Deps...)
			node.Doc = bound.Doc
		case term.Ref:
			node.Kind = KindRef
			if string(bound) != name {
				node.Deps = []string{string(bound)}
			}
		default:
			node.Kind = KindValue
			node.Deps = refsIn(bound)
		}
		g.nodes[name] = node
	}
	// Names that are depended on but never bound still resolve (to
	// themselves); surface them so tooling can flag probable typos.
	for _, node := range g.nodes {
		for _, dep := range node.Deps {
			if _, ok := g.nodes[dep]; !ok {
				g.nodes[dep] = &Node{Name: dep, Kind: KindUnbound}
			}
			g.downstream[dep] = append(g.downstream[dep], node.Name)
		}
	}
	for dep := range g.downstream {
		sort.Strings(g.downstream[dep])
	}
	return g
}

// Names returns every node name, sorted.
func (g *Graph) Names() []string {
	names := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Node returns the named node.
func (g *Graph) Node(name string) (*Node, bool) {
	node, ok := g.nodes[name]
	return node, ok
}

// DependenciesOf returns the names the given binding needs directly.
func (g *Graph) DependenciesOf(name string) []string {
	node, ok := g.nodes[name]
	if !ok {
		return nil
	}
	out := make([]string, len(node.Deps))
	copy(out, node.Deps)
	return out
}

// DependentsOf returns the names that directly depend on the given one.
func (g *Graph) DependentsOf(name string) []string {
	deps, ok := g.downstream[name]
	if !ok {
		return nil
	}
	out := make([]string, len(deps))
	copy(out, deps)
	return out
}

// Cycles reports every dependency cycle in the graph. The resolver itself
// does not detect multi-hop cycles (they trip its depth guard at runtime),
// so this static check is the supported way to find them ahead of time.
func (g *Graph) Cycles() [][]string {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(g.nodes))
	var cycles [][]string
	var path []string

	var visit func(name string)
	visit = func(name string) {
		color[name] = gray
		path = append(path, name)
		node := g.nodes[name]
		for _, dep := range node.Deps {
			switch color[dep] {
			case white:
				visit(dep)
			case gray:
				// Found a back edge; slice the cycle out of the path.
				for i, n := range path {
					if n == dep {
						cycle := make([]string, len(path)-i)
						copy(cycle, path[i:])
						cycles = append(cycles, cycle)
						break
					}
				}
			}
		}
		path = path[:len(path)-1]
		color[name] = black
	}

	for _, name := range g.Names() {
		if color[name] == white {
			visit(name)
		}
	}
	return cycles
}

// refsIn collects references embedded anywhere in a term value, in
// first-appearance order without duplicates.
func refsIn(t term.Term) []string {
	var out []string
	seen := make(map[string]struct{})
	var walk func(t term.Term)
	walk = func(t term.Term) {
		switch t := t.(type) {
		case term.Ref:
			name := string(t)
			if _, dup := seen[name]; !dup {
				seen[name] = struct{}{}
				out = append(out, name)
			}
		case term.Seq:
			for _, item := range t {
				walk(item)
			}
		case *term.Map:
			t.Range(func(_ string, v term.Term) bool {
				walk(v)
				return true
			})
		case *term.Func:
			for _, dep := range t.Deps {
				if _, dup := seen[dep]; !dup {
					seen[dep] = struct{}{}
					out = append(out, dep)
				}
			}
		}
	}
	walk(t)
	return out
}
