package enum

import (
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"golang.org/x/text/cases"

	"github.com/roach88/enumview/ir"
)

// FilterValuesByPrefix returns the values whose text contains prefix,
// case-sensitively, in declaration order. Integers match on their base-10
// form. A nil prefix matches every value.
func (v *View[E]) FilterValuesByPrefix(prefix ir.Scalar) []ir.Scalar {
	needle := scalarText(prefix)
	return v.FilterValues(func(value ir.Scalar) bool {
		return strings.Contains(value.String(), needle)
	})
}

// FilterNamesByPrefix returns the names containing prefix, case-sensitively.
func (v *View[E]) FilterNamesByPrefix(prefix string) []string {
	return v.FilterNames(func(name string) bool {
		return strings.Contains(name, prefix)
	})
}

// FilterValuesBySuffix returns the values whose text ends with suffix,
// ignoring case (Unicode case folding).
func (v *View[E]) FilterValuesBySuffix(suffix ir.Scalar) []ir.Scalar {
	fold := cases.Fold()
	needle := fold.String(scalarText(suffix))
	return v.FilterValues(func(value ir.Scalar) bool {
		return strings.HasSuffix(fold.String(value.String()), needle)
	})
}

// FilterNamesBySuffix returns the names ending with suffix, ignoring case.
func (v *View[E]) FilterNamesBySuffix(suffix string) []string {
	fold := cases.Fold()
	needle := fold.String(suffix)
	return v.FilterNames(func(name string) bool {
		return strings.HasSuffix(fold.String(name), needle)
	})
}

// FilterValues returns the values accepted by keep, in declaration order.
// keep must not have side effects.
func (v *View[E]) FilterValues(keep func(ir.Scalar) bool) []ir.Scalar {
	return slice.FilterMap(v.Values(), func(_ int, value ir.Scalar) (ir.Scalar, bool) {
		return value, keep(value)
	})
}

// FilterNames returns the names accepted by keep, in declaration order.
func (v *View[E]) FilterNames(keep func(string) bool) []string {
	return slice.FilterMap(v.Names(), func(_ int, name string) (string, bool) {
		return name, keep(name)
	})
}

// ValueIn reports whether every given value is a backing value (strict
// comparison). An empty query reports false.
func (v *View[E]) ValueIn(values ...ir.Scalar) bool {
	if len(values) == 0 {
		return false
	}
	return slice.ContainsAll(v.Values(), values)
}

// NotValueIn is the negation of ValueIn.
func (v *View[E]) NotValueIn(values ...ir.Scalar) bool {
	return !v.ValueIn(values...)
}

// NameIn reports whether every given name is a member name.
// An empty query reports false.
func (v *View[E]) NameIn(names ...string) bool {
	if len(names) == 0 {
		return false
	}
	return slice.ContainsAll(v.Names(), names)
}

// NotNameIn is the negation of NameIn.
func (v *View[E]) NotNameIn(names ...string) bool {
	return !v.NameIn(names...)
}

func scalarText(s ir.Scalar) string {
	if s == nil {
		return ""
	}
	return s.String()
}
