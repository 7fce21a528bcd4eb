package ir

import "slices"

// SpecVersion is the EnumSpec schema version. It is part of every fingerprint.
const SpecVersion = "1"

// Kind classifies an enum as pure or backed.
type Kind string

const (
	KindPure   Kind = "Pure"
	KindBacked Kind = "Backed"
)

// Member is one named element of an enum.
// Value is nil for members of a pure enum.
//
// Member satisfies the enum.Case constraint, so enums compiled from
// definition files are viewed with the same code as Go-declared enums.
type Member struct {
	Name  string `json:"name"`
	Value Scalar `json:"value,omitempty"`
}

// CaseName returns the member name.
func (m Member) CaseName() string { return m.Name }

// CaseValue returns the backing value, or nil for a pure member.
func (m Member) CaseValue() Scalar { return m.Value }

// EnumSpec is the explicit descriptor of an enum type.
// It is populated once at registration and never mutated afterwards;
// accessors hand out copies made with Clone.
type EnumSpec struct {
	Name         string      `json:"name"`
	Namespace    string      `json:"namespace"`
	Parent       string      `json:"parent"`       // declaring ancestry, e.g. the underlying Go type
	Backing      BackingType `json:"backing"`      // "" for pure enums
	Capabilities []string    `json:"capabilities"` // mixed-in capability names
	Members      []Member    `json:"members"`
	UserDefined  bool        `json:"user_defined"`
}

// Kind reports whether the descriptor describes a pure or a backed enum.
// A spec with no members is pure.
func (s EnumSpec) Kind() Kind {
	if s.Backing == BackingNone || len(s.Members) == 0 {
		return KindPure
	}
	return KindBacked
}

// QualifiedName joins namespace and name with a dot.
func (s EnumSpec) QualifiedName() string {
	if s.Namespace == "" {
		return s.Name
	}
	return s.Namespace + "." + s.Name
}

// Clone returns a deep copy of the descriptor.
func (s EnumSpec) Clone() EnumSpec {
	out := s
	out.Capabilities = slices.Clone(s.Capabilities)
	out.Members = slices.Clone(s.Members)
	return out
}
