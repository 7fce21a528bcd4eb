package enum

import (
	"github.com/roach88/enumview/ir"
)

// Info is a read-only snapshot of an enum's descriptor.
type Info struct {
	Name         string         `json:"name"`
	Kind         ir.Kind        `json:"kind"`
	BackingType  ir.BackingType `json:"backing_type"`
	CaseCount    int            `json:"case_count"`
	Capabilities []string       `json:"capabilities"`
	Parent       string         `json:"parent"`
	Namespace    string         `json:"namespace"`
	UserDefined  bool           `json:"user_defined"`
	Fingerprint  string         `json:"fingerprint"`
}

// Describe reports the enum's type metadata. Everything comes from the
// descriptor captured at registration; nothing is discovered by reflection.
func (v *View[E]) Describe() (Info, error) {
	spec := v.Spec()

	fp, err := ir.Fingerprint(spec)
	if err != nil {
		return Info{}, NewSerializationError(spec.Name, "Describe", err)
	}

	// An empty enum is pure even when a backing type was declared.
	kind, backing := ir.KindPure, ir.BackingNone
	if v.IsBacked() {
		kind, backing = ir.KindBacked, spec.Backing
	}

	return Info{
		Name:         spec.Name,
		Kind:         kind,
		BackingType:  backing,
		CaseCount:    len(v.cases),
		Capabilities: spec.Capabilities,
		Parent:       spec.Parent,
		Namespace:    spec.Namespace,
		UserDefined:  spec.UserDefined,
		Fingerprint:  fp,
	}, nil
}
