package term

import "fmt"

// ToGo converts a resolved tree into plain Go values: maps become
// map[string]any (entry order is lost), sequences []any, scalars their
// wrapped value. Leftover references convert to their "@name" form so a
// lenient resolution stays visible in the output rather than vanishing.
// Function values and the removal sentinel have no plain representation.
func ToGo(t Term) (any, error) {
	switch t := t.(type) {
	case nil:
		return nil, nil
	case Scalar:
		return t.Value, nil
	case Ref:
		return t.String(), nil
	case removal:
		return nil, fmt.Errorf("term: removal sentinel has no Go representation")
	case Seq:
		out := make([]any, len(t))
		for i, item := range t {
			v, err := ToGo(item)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case *Map:
		out := make(map[string]any, t.Len())
		var convErr error
		t.Range(func(key string, v Term) bool {
			converted, err := ToGo(v)
			if err != nil {
				convErr = fmt.Errorf("key %q: %w", key, err)
				return false
			}
			out[key] = converted
			return true
		})
		if convErr != nil {
			return nil, convErr
		}
		return out, nil
	case *Func:
		return nil, ErrNotSerializable
	}
	return nil, fmt.Errorf("term: unknown term type %T", t)
}
