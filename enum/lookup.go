package enum

import (
	"slices"

	"github.com/ecodeclub/ekit/slice"

	"github.com/roach88/enumview/ir"
)

// ValueExists reports whether value is one of the backing values.
// With strict set the kind must match exactly; otherwise ir.LooseEqual
// applies, so ir.NewString("1") finds ir.NewInt(1).
func (v *View[E]) ValueExists(value ir.Scalar, strict bool) bool {
	if value == nil {
		return false
	}
	if strict {
		return slice.Contains(v.Values(), value)
	}
	return slices.ContainsFunc(v.Values(), func(candidate ir.Scalar) bool {
		return ir.LooseEqual(candidate, value)
	})
}

// NameExists reports whether name is a member name. Loose comparison only
// differs for numeric names, which compare by numeric value.
func (v *View[E]) NameExists(name string, strict bool) bool {
	if strict {
		return slice.Contains(v.Names(), name)
	}
	return slices.ContainsFunc(v.Names(), func(candidate string) bool {
		return ir.LooseEqual(ir.ScalarString(candidate), ir.ScalarString(name))
	})
}

// NameFromValue returns the name of the first member backed by value.
// The boolean is false when no member has that value.
func (v *View[E]) NameFromValue(value ir.Scalar) (string, bool) {
	c, ok := v.CaseFromValue(value)
	if !ok {
		return "", false
	}
	return c.CaseName(), true
}

// CaseFromValue returns the first member backed by value.
func (v *View[E]) CaseFromValue(value ir.Scalar) (E, bool) {
	for _, c := range v.cases {
		if cv := valueOf(c); cv != nil && ir.Equal(cv, value) {
			return c, true
		}
	}
	var zero E
	return zero, false
}

// CaseFromName returns the member called name.
func (v *View[E]) CaseFromName(name string) (E, bool) {
	for _, c := range v.cases {
		if c.CaseName() == name {
			return c, true
		}
	}
	var zero E
	return zero, false
}
