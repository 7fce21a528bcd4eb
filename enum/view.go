package enum

import (
	"github.com/ecodeclub/ekit/slice"

	"github.com/roach88/enumview/ir"
)

// View exposes derived, read-only views over one enum type's members.
// It is created by Register and never mutated afterwards.
type View[E Case] struct {
	spec   ir.EnumSpec
	cases  []E
	picker Picker
}

// Register validates the member list of an enum type and returns its View.
// cases must list every member in declaration order.
//
// The descriptor is built once here: names and values come from CaseName and
// CaseValue, the backing type is inferred (or checked against WithBacking),
// and all invariant violations are reported together.
func Register[E Case](name string, cases []E, opts ...Option) (*View[E], error) {
	o := newOptions(opts)

	members := make([]ir.Member, len(cases))
	for i, c := range cases {
		members[i] = ir.Member{Name: c.CaseName(), Value: valueOf(c)}
	}

	spec := ir.EnumSpec{
		Name:         name,
		Namespace:    o.namespace,
		Parent:       o.parent,
		Backing:      inferBacking(members, o.backing),
		Capabilities: capabilityList(o.capabilities),
		Members:      members,
		UserDefined:  !o.builtin,
	}

	if err := validate(spec, o.aliases); err != nil {
		o.logger.Debug("enum registration rejected",
			"enum", spec.QualifiedName(),
			"error", err,
		)
		return nil, err
	}

	o.logger.Debug("enum registered",
		"enum", spec.QualifiedName(),
		"kind", spec.Kind(),
		"cases", len(cases),
	)

	v := &View[E]{
		spec:   spec,
		cases:  make([]E, len(cases)),
		picker: o.picker,
	}
	copy(v.cases, cases)
	return v, nil
}

// MustRegister is like Register but panics on error.
// Intended for package-level variable initialization.
func MustRegister[E Case](name string, cases []E, opts ...Option) *View[E] {
	v, err := Register(name, cases, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// FromSpec builds a View over a descriptor compiled elsewhere, such as an
// enum definition file. The descriptor's metadata is applied before opts.
func FromSpec(spec ir.EnumSpec, opts ...Option) (*View[ir.Member], error) {
	base := []Option{
		WithNamespace(spec.Namespace),
		WithParent(spec.Parent),
		WithBacking(spec.Backing),
		WithCapabilities(spec.Capabilities...),
	}
	if !spec.UserDefined {
		base = append(base, WithBuiltin())
	}
	return Register(spec.Name, spec.Members, append(base, opts...)...)
}

// Name returns the enum's type name.
func (v *View[E]) Name() string {
	return v.spec.Name
}

// Spec returns a copy of the enum's descriptor.
func (v *View[E]) Spec() ir.EnumSpec {
	return v.spec.Clone()
}

// Len returns the number of members.
func (v *View[E]) Len() int {
	return len(v.cases)
}

// Cases returns every member in declaration order.
func (v *View[E]) Cases() []E {
	out := make([]E, len(v.cases))
	copy(out, v.cases)
	return out
}

// IsEmpty reports whether the enum has no members.
func (v *View[E]) IsEmpty() bool {
	return len(v.cases) == 0
}

// IsBacked reports whether every member carries a backing value.
// An empty enum is not backed.
func (v *View[E]) IsBacked() bool {
	return v.spec.Backing != ir.BackingNone && len(v.cases) > 0
}

// IsPure reports whether the members carry no backing values.
// Always the negation of IsBacked.
func (v *View[E]) IsPure() bool {
	return !v.IsBacked()
}

// Names returns every member name in declaration order.
func (v *View[E]) Names() []string {
	return slice.Map(v.cases, func(_ int, c E) string {
		return c.CaseName()
	})
}

// Values returns every backing value in declaration order.
// Pure and empty enums return an empty slice.
func (v *View[E]) Values() []ir.Scalar {
	if v.IsPure() {
		return []ir.Scalar{}
	}
	return slice.Map(v.cases, func(_ int, c E) ir.Scalar {
		return valueOf(c)
	})
}

// AsArray returns the associative view: a PairList of name→value for a
// backed enum, a NameList for a pure or empty one.
func (v *View[E]) AsArray() ir.Assoc {
	if v.IsPure() {
		return ir.NameList(v.Names())
	}
	return ir.PairList(slice.Map(v.cases, func(_ int, c E) ir.Pair {
		return ir.Pair{Name: c.CaseName(), Value: valueOf(c)}
	}))
}

// Flip inverts the name→value mapping. Pure and empty enums yield an empty
// map. If two members share a value the inverse is not a bijection and
// Flip returns a DUPLICATE_VALUE error rather than keep either name.
func (v *View[E]) Flip() (map[ir.Scalar]string, error) {
	flipped := make(map[ir.Scalar]string, len(v.cases))
	if v.IsPure() {
		return flipped, nil
	}
	for _, c := range v.cases {
		value := valueOf(c)
		if prev, dup := flipped[value]; dup {
			return nil, NewDuplicateValueError(v.spec.Name, "Flip", value, prev, c.CaseName())
		}
		flipped[value] = c.CaseName()
	}
	return flipped, nil
}
