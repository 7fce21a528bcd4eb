package enum

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/roach88/enumview/ir"
)

// Validate checks a descriptor against the enum invariants and returns every
// violation combined into one error (see multierr.Errors). Checked:
//   - the enum and every member have a non-empty name
//   - member names are unique
//   - pure specs carry no values; backed specs give every member a value of
//     the declared backing type
//   - backing values are unique
func Validate(spec ir.EnumSpec) error {
	return validate(spec, false)
}

func validate(spec ir.EnumSpec, allowAliases bool) error {
	var errs []error
	name := spec.QualifiedName()

	if spec.Name == "" {
		errs = append(errs, newDefinitionError(name, "enum name is required"))
	}

	switch spec.Backing {
	case ir.BackingNone, ir.BackingInt, ir.BackingString:
	default:
		errs = append(errs, newDefinitionError(name, fmt.Sprintf("unsupported backing type %q", spec.Backing)))
	}

	seenNames := make(map[string]bool, len(spec.Members))
	seenValues := make(map[ir.Scalar]string, len(spec.Members))
	for i, m := range spec.Members {
		if m.Name == "" {
			errs = append(errs, newDefinitionError(name, fmt.Sprintf("member %d has an empty name", i)))
		} else if seenNames[m.Name] {
			errs = append(errs, newDefinitionError(name, fmt.Sprintf("duplicate member name %q", m.Name)))
		}
		seenNames[m.Name] = true

		if spec.Backing == ir.BackingNone {
			if m.Value != nil {
				errs = append(errs, newDefinitionError(name, fmt.Sprintf("member %q has a value but the enum is pure", m.Name)))
			}
			continue
		}

		if m.Value == nil {
			errs = append(errs, newDefinitionError(name, fmt.Sprintf("member %q has no value but the enum is %s-backed", m.Name, spec.Backing)))
			continue
		}
		if m.Value.Kind() != spec.Backing {
			errs = append(errs, newDefinitionError(name, fmt.Sprintf("member %q has a %s value but the enum is %s-backed", m.Name, m.Value.Kind(), spec.Backing)))
			continue
		}
		if first, dup := seenValues[m.Value]; dup && !allowAliases {
			errs = append(errs, NewDuplicateValueError(name, "Register", m.Value, first, m.Name))
			continue
		}
		if _, dup := seenValues[m.Value]; !dup {
			seenValues[m.Value] = m.Name
		}
	}

	return multierr.Combine(errs...)
}

// inferBacking picks the backing type from the first valued member when none
// is declared. A declared type always wins; validate reports any mismatch.
func inferBacking(members []ir.Member, declared ir.BackingType) ir.BackingType {
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
