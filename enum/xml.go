package enum

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// XMLRoot is the root element of every enum XML document.
const XMLRoot = "enum"

// XMLOption configures ToXML.
type XMLOption func(*xmlOptions)

type xmlOptions struct {
	prefix string
	indent string
	header bool
}

// XMLIndent pretty-prints the document, as xml.Encoder.Indent does.
func XMLIndent(prefix, indent string) XMLOption {
	return func(o *xmlOptions) {
		o.prefix = prefix
		o.indent = indent
	}
}

// XMLWithoutHeader omits the <?xml ...?> declaration.
func XMLWithoutHeader() XMLOption {
	return func(o *xmlOptions) { o.header = false }
}

// ToXML serializes the enum under a single <enum> root. A backed enum gets
// one <NAME>value</NAME> element per member; a pure enum gets one
// <name>NAME</name> element per member. Text is escaped by encoding/xml.
//
// Empty enums return an EMPTY_ENUM error. A member name that is not a valid
// element name, or text that XML cannot carry, returns a SERIALIZATION
// error; the failure is never written into the document.
func (v *View[E]) ToXML(opts ...XMLOption) ([]byte, error) {
	o := &xmlOptions{header: true}
	for _, opt := range opts {
		opt(o)
	}

	if v.IsEmpty() {
		return nil, NewEmptyEnumError(v.spec.Name, "ToXML", "nothing to serialize")
	}

	var buf bytes.Buffer
	if o.header {
		buf.WriteString(xml.Header)
	}
	enc := xml.NewEncoder(&buf)
	enc.Indent(o.prefix, o.indent)

	if err := v.encodeXML(enc); err != nil {
		return nil, NewSerializationError(v.spec.Name, "ToXML", err)
	}
	return buf.Bytes(), nil
}

func (v *View[E]) encodeXML(enc *xml.Encoder) error {
	root := xml.StartElement{Name: xml.Name{Local: XMLRoot}}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}

	backed := v.IsBacked()
	for _, c := range v.cases {
		tag, text := "name", c.CaseName()
		if backed {
			tag, text = c.CaseName(), valueOf(c).String()
		}
		if !isXMLName(tag) {
			return fmt.Errorf("%q is not a valid XML element name", tag)
		}
		if err := checkXMLText(text); err != nil {
			return fmt.Errorf("element %s: %w", tag, err)
		}
		if err := enc.EncodeElement(text, xml.StartElement{Name: xml.Name{Local: tag}}); err != nil {
			return fmt.Errorf("element %s: %w", tag, err)
		}
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	return enc.Flush()
}

// isXMLName reports whether s can be used as an unprefixed element name.
// This is the common subset of the XML 1.0 Name production: a letter or
// underscore followed by letters, digits, '_', '-' or '.'. Names starting
// with "xml" in any case are reserved.
func isXMLName(s string) bool {
	if s == "" || (len(s) >= 3 && strings.EqualFold(s[:3], "xml")) {
		return false
	}
	for i, r := range s {
		switch {
		case unicode.IsLetter(r) || r == '_':
		case i > 0 && (unicode.IsDigit(r) || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}

// checkXMLText rejects text that encoding/xml would silently rewrite:
// malformed UTF-8 and characters outside the XML 1.0 Char range.
func checkXMLText(s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("malformed UTF-8 in %q", s)
	}
	for _, r := range s {
		if !isXMLChar(r) {
			return fmt.Errorf("character %U is not allowed in XML", r)
		}
	}
	return nil
}

func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		(r >= 0x20 && r <= 0xD7FF) ||
		(r >= 0xE000 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= 0x10FFFF)
}
