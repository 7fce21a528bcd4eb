package compiler

import (
	"fmt"

	"cuelang.org/go/cue"

	"github.com/roach88/enumview/enum"
	"github.com/roach88/enumview/ir"
)

// CompileEnum parses a CUE value into an EnumSpec.
//
// The CUE value should be the enum struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`enum: Status: { cases: ["ACTIVE", "PAUSED"] }`)
//	spec, err := CompileEnum(v.LookupPath(cue.ParsePath("enum.Status")))
//
// Recognized fields: namespace, parent, backing, capabilities, builtin and
// cases. cases is a list of names, a list of {name, value} structs, or a
// struct mapping name to value. Omitting cases declares an empty enum.
func CompileEnum(v cue.Value) (*ir.EnumSpec, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	spec := &ir.EnumSpec{UserDefined: true}

	// Enum name comes from the struct label
	labels := v.Path().Selectors()
	if len(labels) > 0 {
		spec.Name = labelName(labels[len(labels)-1])
	}

	var err error
	if spec.Namespace, err = optionalString(v, "namespace"); err != nil {
		return nil, err
	}
	if spec.Parent, err = optionalString(v, "parent"); err != nil {
		return nil, err
	}
	backing, err := optionalString(v, "backing")
	if err != nil {
		return nil, err
	}

	spec.Capabilities, err = parseCapabilities(v)
	if err != nil {
		return nil, err
	}

	builtinVal := v.LookupPath(cue.ParsePath("builtin"))
	if builtinVal.Exists() {
		builtin, err := builtinVal.Bool()
		if err != nil {
			return nil, &CompileError{
				Field:   "builtin",
				Message: "must be a bool",
				Pos:     builtinVal.Pos(),
			}
		}
		spec.UserDefined = !builtin
	}

	spec.Members, err = parseCases(v)
	if err != nil {
		return nil, err
	}

	spec.Backing = resolveBacking(spec.Members, ir.BackingType(backing))

	if err := enum.Validate(*spec); err != nil {
		return nil, &CompileError{
			Field:   "enum",
			Message: err.Error(),
			Pos:     v.Pos(),
		}
	}

	return spec, nil
}

// labelName returns a selector's label without CUE quoting, so that
// enum: "my-enum" is looked up as my-enum.
func labelName(sel cue.Selector) string {
	if sel.LabelType() == cue.StringLabel {
		return sel.Unquoted()
	}
	return sel.String()
}

func optionalString(v cue.Value, field string) (string, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return "", nil
	}
	s, err := fv.String()
	if err != nil {
		return "", &CompileError{
			Field:   field,
			Message: "must be a string",
			Pos:     fv.Pos(),
		}
	}
	return s, nil
}

func parseCapabilities(v cue.Value) ([]string, error) {
	capsVal := v.LookupPath(cue.ParsePath("capabilities"))
	if !capsVal.Exists() {
		return nil, nil
	}

	iter, err := capsVal.List()
	if err != nil {
		return nil, &CompileError{
			Field:   "capabilities",
			Message: "must be a list of strings",
			Pos:     capsVal.Pos(),
		}
	}

	var caps []string
	for iter.Next() {
		c, err := iter.Value().String()
		if err != nil {
			return nil, &CompileError{
				Field:   "capabilities",
				Message: "must be a list of strings",
				Pos:     iter.Value().Pos(),
			}
		}
		caps = append(caps, c)
	}
	return caps, nil
}

// parseCases extracts members in declaration order.
func parseCases(v cue.Value) ([]ir.Member, error) {
	casesVal := v.LookupPath(cue.ParsePath("cases"))
	if !casesVal.Exists() {
		return nil, nil // empty enum
	}

	switch casesVal.IncompleteKind() {
	case cue.ListKind:
		return parseCaseList(casesVal)
	case cue.StructKind:
		return parseCaseStruct(casesVal)
	default:
		return nil, &CompileError{
			Field:   "cases",
			Message: fmt.Sprintf("must be a list or struct, got %v", casesVal.IncompleteKind()),
			Pos:     casesVal.Pos(),
		}
	}
}

// parseCaseList handles ["A", "B"] and [{name: "A", value: 1}, ...].
func parseCaseList(v cue.Value) ([]ir.Member, error) {
	iter, err := v.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var members []ir.Member
	for iter.Next() {
		item := iter.Value()

		switch item.IncompleteKind() {
		case cue.StringKind:
			name, err := item.String()
			if err != nil {
				return nil, formatCUEError(err)
			}
			members = append(members, ir.Member{Name: name})

		case cue.StructKind:
			nameVal := item.LookupPath(cue.ParsePath("name"))
			if !nameVal.Exists() {
				return nil, &CompileError{
					Field:   "cases.name",
					Message: "name is required",
					Pos:     item.Pos(),
				}
			}
			name, err := nameVal.String()
			if err != nil {
				return nil, &CompileError{
					Field:   "cases.name",
					Message: "must be a string",
					Pos:     nameVal.Pos(),
				}
			}
			m := ir.Member{Name: name}

			valueVal := item.LookupPath(cue.ParsePath("value"))
			if valueVal.Exists() {
				m.Value, err = extractScalar(valueVal)
				if err != nil {
					return nil, err
				}
			}
			members = append(members, m)

		default:
			return nil, &CompileError{
				Field:   "cases",
				Message: "list items must be names or {name, value} structs",
				Pos:     item.Pos(),
			}
		}
	}
	return members, nil
}

// parseCaseStruct handles {A: 1, B: 2}.
func parseCaseStruct(v cue.Value) ([]ir.Member, error) {
	iter, err := v.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var members []ir.Member
	for iter.Next() {
		value, err := extractScalar(iter.Value())
		if err != nil {
			return nil, err
		}
		members = append(members, ir.Member{Name: iter.Label(), Value: value})
	}
	return members, nil
}

// extractScalar converts a concrete CUE value into a backing value.
// Floats are forbidden.
func extractScalar(v cue.Value) (ir.Scalar, error) {
	switch v.IncompleteKind() {
	case cue.IntKind:
		n, err := v.Int64()
		if err != nil {
			return nil, formatCUEError(err)
		}
		return ir.NewInt(n), nil
	case cue.StringKind:
		s, err := v.String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		return ir.NewString(s), nil
	case cue.FloatKind, cue.NumberKind:
		return nil, &CompileError{
			Field:   "value",
			Message: "float values are forbidden - use int or string instead",
			Pos:     v.Pos(),
		}
	default:
		return nil, &CompileError{
			Field:   "value",
			Message: fmt.Sprintf("unsupported value kind: %v", v.IncompleteKind()),
			Pos:     v.Pos(),
		}
	}
}

// resolveBacking keeps a declared backing type and otherwise takes the kind
// of the first valued member.
func resolveBacking(members []ir.Member, declared ir.BackingType) ir.BackingType {
	if declared != ir.BackingNone {
		return declared
	}
	for _, m := range members {
		if m.Value != nil {
			return m.Value.Kind()
		}
	}
	return ir.BackingNone
}
