package enum

import "github.com/roach88/enumview/ir"

// RandomCase returns a uniformly chosen member.
// An empty enum yields the zero value and an EMPTY_ENUM error.
func (v *View[E]) RandomCase() (E, error) {
	if len(v.cases) == 0 {
		var zero E
		return zero, NewEmptyEnumError(v.spec.Name, "RandomCase", "enum has no cases")
	}
	return v.cases[v.picker.IntN(len(v.cases))], nil
}

// RandomValue returns a uniformly chosen backing value.
// Pure and empty enums yield nil and an EMPTY_ENUM error.
func (v *View[E]) RandomValue() (ir.Scalar, error) {
	values := v.Values()
	if len(values) == 0 {
		return nil, NewEmptyEnumError(v.spec.Name, "RandomValue", "enum has no backing values")
	}
	return values[v.picker.IntN(len(values))], nil
}

// RandomName returns a uniformly chosen member name.
// An empty enum yields "" and an EMPTY_ENUM error.
func (v *View[E]) RandomName() (string, error) {
	names := v.Names()
	if len(names) == 0 {
		return "", NewEmptyEnumError(v.spec.Name, "RandomName", "enum has no cases")
	}
	return names[v.picker.IntN(len(names))], nil
}
