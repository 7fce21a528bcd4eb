package enum

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/roach88/enumview/ir"
)

// DefaultJSONDepth is the nesting limit applied when JSONDepth is not given.
const DefaultJSONDepth = 512

// assocDepth is the nesting depth of the associative view: one array or object.
const assocDepth = 1

// JSONOption configures ToJSON.
type JSONOption func(*jsonOptions)

type jsonOptions struct {
	escapeUnicode bool
	escapeHTML    bool
	indent        string
	depth         int
}

// JSONUnescapedUnicode writes non-ASCII characters literally instead of as
// \uXXXX escapes.
func JSONUnescapedUnicode() JSONOption {
	return func(o *jsonOptions) { o.escapeUnicode = false }
}

// JSONEscapeHTML escapes <, > and & as \u003c, \u003e and \u0026.
func JSONEscapeHTML() JSONOption {
	return func(o *jsonOptions) { o.escapeHTML = true }
}

// JSONIndent pretty-prints the output using indent per nesting level.
func JSONIndent(indent string) JSONOption {
	return func(o *jsonOptions) { o.indent = indent }
}

// JSONDepth sets the maximum nesting depth. Encoding fails when the
// document would be deeper, so any depth below 1 always fails.
func JSONDepth(depth int) JSONOption {
	return func(o *jsonOptions) { o.depth = depth }
}

// ToJSON serializes the associative view: an object mapping name to value
// (in declaration order) for backed enums, an array of names for pure ones.
//
// Empty enums return an EMPTY_ENUM error. Invalid UTF-8 in a name or value,
// or a depth limit below the document depth, returns a SERIALIZATION error.
// No partial output is ever returned.
func (v *View[E]) ToJSON(opts ...JSONOption) ([]byte, error) {
	o := &jsonOptions{escapeUnicode: true, depth: DefaultJSONDepth}
	for _, opt := range opts {
		opt(o)
	}

	if v.IsEmpty() {
		return nil, NewEmptyEnumError(v.spec.Name, "ToJSON", "nothing to serialize")
	}
	if o.depth < assocDepth {
		return nil, NewSerializationError(v.spec.Name, "ToJSON",
			fmt.Errorf("maximum depth %d exceeded (document depth %d)", o.depth, assocDepth))
	}

	var buf bytes.Buffer
	if err := writeAssocJSON(&buf, v.AsArray(), o); err != nil {
		return nil, NewSerializationError(v.spec.Name, "ToJSON", err)
	}

	if o.indent == "" {
		return buf.Bytes(), nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", o.indent); err != nil {
		return nil, NewSerializationError(v.spec.Name, "ToJSON", err)
	}
	return out.Bytes(), nil
}

func writeAssocJSON(buf *bytes.Buffer, assoc ir.Assoc, o *jsonOptions) error {
	switch a := assoc.(type) {
	case ir.NameList:
		buf.WriteByte('[')
		for i, name := range a {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, name, o); err != nil {
				return fmt.Errorf("name[%d]: %w", i, err)
			}
		}
		buf.WriteByte(']')
	case ir.PairList:
		buf.WriteByte('{')
		for i, pair := range a {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, pair.Name, o); err != nil {
				return fmt.Errorf("key %d: %w", i, err)
			}
			buf.WriteByte(':')
			if err := writeJSONScalar(buf, pair.Value, o); err != nil {
				return fmt.Errorf("value for key %q: %w", pair.Name, err)
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("unknown Assoc type: %T", assoc)
	}
	return nil
}

func writeJSONScalar(buf *bytes.Buffer, value ir.Scalar, o *jsonOptions) error {
	switch val := value.(type) {
	case ir.ScalarInt:
		buf.WriteString(strconv.FormatInt(int64(val), 10))
		return nil
	case ir.ScalarString:
		return writeJSONString(buf, string(val), o)
	default:
		return fmt.Errorf("unsupported scalar %T", value)
	}
}

const hexDigits = "0123456789abcdef"

func writeEscapedUnit(buf *bytes.Buffer, u uint16) {
	buf.WriteString(`\u`)
	buf.WriteByte(hexDigits[u>>12&0xf])
	buf.WriteByte(hexDigits[u>>8&0xf])
	buf.WriteByte(hexDigits[u>>4&0xf])
	buf.WriteByte(hexDigits[u&0xf])
}

// writeJSONString writes s as a JSON string literal. Unlike encoding/json it
// refuses invalid UTF-8 instead of substituting U+FFFD.
func writeJSONString(buf *bytes.Buffer, s string, o *jsonOptions) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("malformed UTF-8 in %q", s)
	}

	buf.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"':
			buf.WriteString(`\"`)
		case r == '\\':
			buf.WriteString(`\\`)
		case r == '\n':
			buf.WriteString(`\n`)
		case r == '\r':
			buf.WriteString(`\r`)
		case r == '\t':
			buf.WriteString(`\t`)
		case r < 0x20:
			writeEscapedUnit(buf, uint16(r))
		case o.escapeHTML && (r == '<' || r == '>' || r == '&'):
			writeEscapedUnit(buf, uint16(r))
		case r == '\u2028' || r == '\u2029':
			writeEscapedUnit(buf, uint16(r))
		case r >= utf8.RuneSelf && o.escapeUnicode:
			if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
				writeEscapedUnit(buf, uint16(r1))
				writeEscapedUnit(buf, uint16(r2))
			} else {
				writeEscapedUnit(buf, uint16(r))
			}
		default:
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('"')
	return nil
}
