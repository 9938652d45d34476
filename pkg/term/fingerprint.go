package term

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Environment fingerprinting. The memo cache keys on (ref name, environment
// fingerprint), so the digest has to reflect binding content: the same name
// resolved under two different environments must never collide, while two
// independently built but identical environments should share entries.
//
// Every variable-length chunk is length-prefixed and every term kind and
// scalar type contributes a discriminator, so neither values that print
// alike (1 and "1") nor names containing delimiter characters can alias.
//
// Function values and opaque blobs cannot be digested structurally; they
// hash by value identity (pointer) instead, which errs on the side of
// distinct fingerprints.

func (e *Env) fingerprint() uint64 {
	d := xxhash.New()
	if e.parent != nil {
		writeUint64(d, e.parent.fp)
	}
	names := make([]string, 0, len(e.bindings))
	for name := range e.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		writeString(d, name)
		fingerprintTerm(d, e.bindings[name])
	}
	return d.Sum64()
}

func fingerprintTerm(d *xxhash.Digest, t Term) {
	switch t := t.(type) {
	case nil:
		d.WriteString("_")
	case Scalar:
		d.WriteString("s")
		fingerprintScalar(d, t.Value)
	case Ref:
		d.WriteString("r")
		writeString(d, string(t))
	case removal:
		d.WriteString("x")
	case Seq:
		d.WriteString("q")
		writeUint64(d, uint64(len(t)))
		for _, item := range t {
			fingerprintTerm(d, item)
		}
	case *Map:
		d.WriteString("m")
		writeUint64(d, uint64(t.Len()))
		t.Range(func(key string, v Term) bool {
			writeString(d, key)
			fingerprintTerm(d, v)
			return true
		})
	case *Func:
		d.WriteString("f")
		writeUint64(d, uint64(reflect.ValueOf(t).Pointer()))
	}
}

func fingerprintScalar(d *xxhash.Digest, v any) {
	switch v := v.(type) {
	case nil:
		d.WriteString("nil")
	case string:
		d.WriteString("str")
		writeString(d, v)
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, complex64, complex128:
		writeString(d, fmt.Sprintf("%T", v))
		writeString(d, fmt.Sprintf("%v", v))
	default:
		// Opaque blob. Pointer-shaped values hash by identity; small
		// comparable values fall back to their typed printed form.
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan,
			reflect.Func, reflect.UnsafePointer:
			d.WriteString("ptr")
			writeUint64(d, uint64(rv.Pointer()))
		default:
			writeString(d, fmt.Sprintf("%T", v))
			writeString(d, fmt.Sprintf("%v", v))
		}
	}
}

func writeString(d *xxhash.Digest, s string) {
	writeUint64(d, uint64(len(s)))
	d.WriteString(s)
}

func writeUint64(d *xxhash.Digest, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	d.Write(buf[:])
}
