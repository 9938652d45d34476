package term

import (
	"bytes"
	"encoding/json"
	"errors"
)

// JSON encoding for resolved trees. Backend chart specs (Plotly, Vega-Lite)
// are JSON objects where field order is meaningful to human readers, so Map
// marshals in insertion order instead of going through map[string]any.

// MarshalJSON implements json.Marshaler, preserving entry order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	var encErr error
	m.Range(func(key string, t Term) bool {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		keyData, err := json.Marshal(key)
		if err != nil {
			encErr = err
			return false
		}
		buf.Write(keyData)
		buf.WriteByte(':')
		valData, err := json.Marshal(t)
		if err != nil {
			encErr = err
			return false
		}
		buf.Write(valData)
		return true
	})
	if encErr != nil {
		return nil, encErr
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler.
func (s Scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Value)
}

// MarshalJSON encodes a leftover reference as its "@name" string form.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// MarshalJSON implements json.Marshaler.
func (q Seq) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, item := range q {
		if i > 0 {
			buf.WriteByte(',')
		}
		data, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// MarshalJSON rejects function values.
func (f *Func) MarshalJSON() ([]byte, error) {
	return nil, ErrNotSerializable
}

// MarshalJSON rejects the removal sentinel; resolution drops it before
// output is produced.
func (removal) MarshalJSON() ([]byte, error) {
	return nil, errors.New("term: removal sentinel is not serializable")
}
