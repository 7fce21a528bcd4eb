package compiler

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/roach88/enumview/enum"
	"github.com/roach88/enumview/ir"
)

// yamlFile is the top-level layout of a YAML enum definition file.
type yamlFile struct {
	Enums []yamlEnum `yaml:"enums"`
}

type yamlEnum struct {
	Name         string    `yaml:"name"`
	Namespace    string    `yaml:"namespace,omitempty"`
	Parent       string    `yaml:"parent,omitempty"`
	Backing      string    `yaml:"backing,omitempty"`
	Capabilities []string  `yaml:"capabilities,omitempty"`
	Builtin      bool      `yaml:"builtin,omitempty"`
	Cases        yaml.Node `yaml:"cases,omitempty"`
}

// YAML tags that select the backing kind.
const (
	tagInt   = "!!int"
	tagStr   = "!!str"
	tagFloat = "!!float"
)

// ParseYAML parses a YAML definition file into enum specs.
//
// Layout:
//
//	enums:
//	  - name: Status
//	    namespace: acme/orders
//	    cases:
//	      - name: ACTIVE
//	        value: active
//
// cases accepts the same three shapes as CUE files. Whether a value is an
// int or a string is decided by its resolved YAML tag, so quoting "1" makes
// it a string. Unknown fields are rejected.
func ParseYAML(data []byte, filename string) ([]ir.EnumSpec, error) {
	var file yamlFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil // empty document
		}
		return nil, &CompileError{
			Field:    "yaml",
			Message:  err.Error(),
			Filename: filename,
		}
	}

	specs := make([]ir.EnumSpec, 0, len(file.Enums))
	for _, e := range file.Enums {
		spec, err := compileYAMLEnum(e, filename)
		if err != nil {
			return nil, err
		}
		specs = append(specs, *spec)
	}
	return specs, nil
}

func compileYAMLEnum(e yamlEnum, filename string) (*ir.EnumSpec, error) {
	spec := &ir.EnumSpec{
		Name:         e.Name,
		Namespace:    e.Namespace,
		Parent:       e.Parent,
		Capabilities: e.Capabilities,
		UserDefined:  !e.Builtin,
	}

	members, err := parseYAMLCases(&e.Cases, filename)
	if err != nil {
		return nil, err
	}
	spec.Members = members
	spec.Backing = resolveBacking(members, ir.BackingType(e.Backing))

	if err := enum.Validate(*spec); err != nil {
		return nil, &CompileError{
			Field:    "enum",
			Message:  err.Error(),
			Filename: filename,
			Line:     e.Cases.Line,
			Column:   e.Cases.Column,
		}
	}
	return spec, nil
}

func parseYAMLCases(node *yaml.Node, filename string) ([]ir.Member, error) {
	switch node.Kind {
	case 0:
		return nil, nil // cases omitted: empty enum
	case yaml.SequenceNode:
		members := make([]ir.Member, 0, len(node.Content))
		for _, item := range node.Content {
			m, err := parseYAMLCaseItem(item, filename)
			if err != nil {
				return nil, err
			}
			members = append(members, m)
		}
		return members, nil
	case yaml.MappingNode:
		members := make([]ir.Member, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			value, err := yamlScalar(node.Content[i+1], filename)
			if err != nil {
				return nil, err
			}
			members = append(members, ir.Member{Name: node.Content[i].Value, Value: value})
		}
		return members, nil
	default:
		return nil, yamlError(node, filename, "cases", "must be a list or mapping")
	}
}

// parseYAMLCaseItem handles a bare name or a {name, value} mapping.
func parseYAMLCaseItem(item *yaml.Node, filename string) (ir.Member, error) {
	switch item.Kind {
	case yaml.ScalarNode:
		return ir.Member{Name: item.Value}, nil
	case yaml.MappingNode:
		var m ir.Member
		hasName := false
		for i := 0; i+1 < len(item.Content); i += 2 {
			key, val := item.Content[i], item.Content[i+1]
			switch key.Value {
			case "name":
				if val.Kind != yaml.ScalarNode {
					return m, yamlError(val, filename, "cases.name", "must be a scalar")
				}
				m.Name = val.Value
				hasName = true
			case "value":
				value, err := yamlScalar(val, filename)
				if err != nil {
					return m, err
				}
				m.Value = value
			default:
				return m, yamlError(key, filename, "cases", fmt.Sprintf("unknown field %q", key.Value))
			}
		}
		if !hasName {
			return m, yamlError(item, filename, "cases.name", "name is required")
		}
		return m, nil
	default:
		return ir.Member{}, yamlError(item, filename, "cases", "list items must be names or {name, value} mappings")
	}
}

// yamlScalar converts a scalar node to a backing value using its tag.
func yamlScalar(node *yaml.Node, filename string) (ir.Scalar, error) {
	if node.Kind != yaml.ScalarNode {
		return nil, yamlError(node, filename, "value", "must be a scalar")
	}

	switch node.ShortTag() {
	case tagInt:
		var n int64
		if err := node.Decode(&n); err != nil {
			return nil, yamlError(node, filename, "value", err.Error())
		}
		return ir.NewInt(n), nil
	case tagStr:
		return ir.NewString(node.Value), nil
	case tagFloat:
		return nil, yamlError(node, filename, "value", "float values are forbidden - use int or string instead")
	default:
		return nil, yamlError(node, filename, "value", fmt.Sprintf("unsupported YAML tag %s", node.ShortTag()))
	}
}

func yamlError(node *yaml.Node, filename, field, message string) *CompileError {
	return &CompileError{
		Field:    field,
		Message:  message,
		Filename: filename,
		Line:     node.Line,
		Column:   node.Column,
	}
}
