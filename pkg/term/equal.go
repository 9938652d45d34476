package term

import "reflect"

// Equal reports structural equality of two terms. Scalars compare by deep
// equality of their wrapped values, collections element-wise in order, and
// function values by identity.
func Equal(a, b Term) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case Scalar:
		sb, ok := b.(Scalar)
		return ok && reflect.DeepEqual(a.Value, sb.Value)
	case Ref:
		rb, ok := b.(Ref)
		return ok && a == rb
	case removal:
		return IsRMV(b)
	case Seq:
		qb, ok := b.(Seq)
		if !ok || len(a) != len(qb) {
			return false
		}
		for i := range a {
			if !Equal(a[i], qb[i]) {
				return false
			}
		}
		return true
	case *Map:
		mb, ok := b.(*Map)
		if !ok || a.Len() != mb.Len() {
			return false
		}
		equal := true
		i := 0
		keys := mb.Keys()
		a.Range(func(key string, v Term) bool {
			if keys[i] != key {
				equal = false
				return false
			}
			other, present := mb.Get(key)
			if !present || !Equal(v, other) {
				equal = false
				return false
			}
			i++
			return true
		})
		return equal
	case *Func:
		fb, ok := b.(*Func)
		return ok && a == fb
	}
	return false
}
