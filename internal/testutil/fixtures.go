package testutil

import "github.com/roach88/enumview/ir"

// Fixture enums covering the four shapes every view must handle:
// int-backed, string-backed, pure and empty.

// BackedInt is an int-backed enum with four cases.
type BackedInt int

const (
	BackedIntOne BackedInt = iota + 1
	BackedIntTwo
	BackedIntThree
	BackedIntFour
)

// BackedIntCases lists every BackedInt in declaration order.
func BackedIntCases() []BackedInt {
	return []BackedInt{BackedIntOne, BackedIntTwo, BackedIntThree, BackedIntFour}
}

func (b BackedInt) CaseName() string {
	switch b {
	case BackedIntOne:
		return "BACKED_INT_ONE"
	case BackedIntTwo:
		return "BACKED_INT_TWO"
	case BackedIntThree:
		return "BACKED_INT_THREE"
	case BackedIntFour:
		return "BACKED_INT_FOUR"
	default:
		return ""
	}
}

func (b BackedInt) CaseValue() ir.Scalar { return ir.ScalarInt(b) }

// BackedString is a string-backed enum with four cases.
type BackedString string

const (
	BackedStringOne   BackedString = "string one"
	BackedStringTwo   BackedString = "string two"
	BackedStringThree BackedString = "string three"
	BackedStringFour  BackedString = "string four"
)

// BackedStringCases lists every BackedString in declaration order.
func BackedStringCases() []BackedString {
	return []BackedString{BackedStringOne, BackedStringTwo, BackedStringThree, BackedStringFour}
}

func (b BackedString) CaseName() string {
	switch b {
	case BackedStringOne:
		return "BACKED_STRING_ONE"
	case BackedStringTwo:
		return "BACKED_STRING_TWO"
	case BackedStringThree:
		return "BACKED_STRING_THREE"
	case BackedStringFour:
		return "BACKED_STRING_FOUR"
	default:
		return ""
	}
}

func (b BackedString) CaseValue() ir.Scalar { return ir.ScalarString(b) }

// Pure is an enum without backing values. The int underneath is only an
// identity; Pure deliberately does not implement CaseValue.
type Pure int

const (
	PureOne Pure = iota
	PureTwo
	PureThree
	PureFour
)

var pureNames = [...]string{"PURE_ENUM_ONE", "PURE_ENUM_TWO", "PURE_ENUM_THREE", "PURE_ENUM_FOUR"}

// PureCases lists every Pure in declaration order.
func PureCases() []Pure {
	return []Pure{PureOne, PureTwo, PureThree, PureFour}
}

func (p Pure) CaseName() string {
	if p < 0 || int(p) >= len(pureNames) {
		return ""
	}
	return pureNames[p]
}

// Empty is an enum type that declares no cases.
type Empty struct{}

// EmptyCases returns no cases.
func EmptyCases() []Empty {
	return nil
}

func (Empty) CaseName() string { return "" }

// Expected views of the fixtures.
var (
	BackedIntNames    = []string{"BACKED_INT_ONE", "BACKED_INT_TWO", "BACKED_INT_THREE", "BACKED_INT_FOUR"}
	BackedStringNames = []string{"BACKED_STRING_ONE", "BACKED_STRING_TWO", "BACKED_STRING_THREE", "BACKED_STRING_FOUR"}
	PureNames         = []string{"PURE_ENUM_ONE", "PURE_ENUM_TWO", "PURE_ENUM_THREE", "PURE_ENUM_FOUR"}

	BackedIntValues = []ir.Scalar{
		ir.ScalarInt(1), ir.ScalarInt(2), ir.ScalarInt(3), ir.ScalarInt(4),
	}
	BackedStringValues = []ir.Scalar{
		ir.ScalarString("string one"), ir.ScalarString("string two"),
		ir.ScalarString("string three"), ir.ScalarString("string four"),
	}
)
