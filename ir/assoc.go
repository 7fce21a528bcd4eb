package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Assoc is the associative view of an enum: a NameList for pure enums or
// a PairList for backed enums. It is sealed.
type Assoc interface {
	assoc() // Sealed

	// Len returns the number of entries.
	Len() int
}

// NameList is the associative view of a pure enum: member names in order.
type NameList []string

func (NameList) assoc() {}

// Len implements Assoc.
func (n NameList) Len() int { return len(n) }

// Pair is one name→value entry of a backed enum.
type Pair struct {
	Name  string
	Value Scalar
}

// PairList is the associative view of a backed enum.
// Unlike a Go map it keeps declaration order.
type PairList []Pair

func (PairList) assoc() {}

// Len implements Assoc.
func (p PairList) Len() int { return len(p) }

// Get returns the value stored under name.
func (p PairList) Get(name string) (Scalar, bool) {
	for _, pair := range p {
		if pair.Name == name {
			return pair.Value, true
		}
	}
	return nil, false
}

// MarshalJSON implements json.Marshaler for PairList, keeping entry order.
// NOTE: this uses encoding/json escaping. enum.View.ToJSON applies the
// configurable escaping rules instead.
func (p PairList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, pair := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyBytes, err := json.Marshal(pair.Name)
		if err != nil {
			return nil, fmt.Errorf("marshal key %q: %w", pair.Name, err)
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')

		valBytes, err := MarshalScalar(pair.Value)
		if err != nil {
			return nil, fmt.Errorf("marshal value for key %q: %w", pair.Name, err)
		}
		buf.Write(valBytes)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalScalar marshals a Scalar to JSON bytes.
func MarshalScalar(v Scalar) ([]byte, error) {
	switch val := v.(type) {
	case ScalarInt:
		return json.Marshal(int64(val))
	case ScalarString:
		return json.Marshal(string(val))
	case nil:
		return nil, fmt.Errorf("nil scalar")
	default:
		return nil, fmt.Errorf("unknown Scalar type: %T", v)
	}
}

// DecodeAssoc parses the JSON form of an associative view.
// An array decodes to a NameList, an object to a PairList in document order.
// Object values must be integers or strings; floats are rejected.
func DecodeAssoc(data []byte) (Assoc, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty JSON document")
	}

	switch trimmed[0] {
	case '[':
		var names []string
		if err := json.Unmarshal(trimmed, &names); err != nil {
			return nil, fmt.Errorf("decode name list: %w", err)
		}
		if names == nil {
			names = []string{}
		}
		return NameList(names), nil
	case '{':
		return decodePairList(trimmed)
	default:
		return nil, fmt.Errorf("expected JSON array or object, got %q", trimmed[0])
	}
}

func decodePairList(data []byte) (PairList, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if _, err := dec.Token(); err != nil { // opening brace
		return nil, err
	}

	pairs := PairList{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}

		tok, err = dec.Token()
		if err != nil {
			return nil, fmt.Errorf("value for key %q: %w", name, err)
		}
		var value Scalar
		switch v := tok.(type) {
		case string:
			value = ScalarString(v)
		case json.Number:
			n, err := v.Int64()
			if err != nil {
				return nil, fmt.Errorf("value for key %q: floats are not scalars: %s", name, v)
			}
			value = ScalarInt(n)
		default:
			return nil, fmt.Errorf("value for key %q: unsupported JSON value %v", name, tok)
		}
		pairs = append(pairs, Pair{Name: name, Value: value})
	}

	if _, err := dec.Token(); err != nil { // closing brace
		return nil, err
	}
	return pairs, nil
}
