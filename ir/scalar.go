package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// BackingType labels the scalar kind behind a backed enum.
// The empty BackingType means the enum is pure.
type BackingType string

const (
	BackingNone   BackingType = ""
	BackingInt    BackingType = "int"
	BackingString BackingType = "string"
)

// Scalar is a sealed interface for enum backing values.
// Only ScalarInt and ScalarString implement it. Floats are not scalars.
type Scalar interface {
	scalar() // Sealed

	// Kind reports which backing type the value belongs to.
	Kind() BackingType

	// String renders the value as text. Integers use base 10.
	String() string
}

// ScalarInt is an integer backing value. Always int64.
type ScalarInt int64

func (ScalarInt) scalar() {}

// Kind implements Scalar.
func (ScalarInt) Kind() BackingType { return BackingInt }

func (s ScalarInt) String() string { return strconv.FormatInt(int64(s), 10) }

// ScalarString is a string backing value.
type ScalarString string

func (ScalarString) scalar() {}

// Kind implements Scalar.
func (ScalarString) Kind() BackingType { return BackingString }

func (s ScalarString) String() string { return string(s) }

// NewInt creates a ScalarInt value.
func NewInt(n int64) ScalarInt {
	return ScalarInt(n)
}

// NewString creates a ScalarString value.
func NewString(s string) ScalarString {
	return ScalarString(s)
}

// Equal reports whether a and b have the same kind and the same value.
func Equal(a, b Scalar) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a == b
}

// LooseEqual compares a and b with numeric coercion: an integer equals a
// string holding the same base-10 integer, and two numeric strings are
// compared by value ("01" equals "1"). Non-numeric strings compare exactly.
func LooseEqual(a, b Scalar) bool {
	if Equal(a, b) {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	an, aok := numeric(a)
	bn, bok := numeric(b)
	return aok && bok && an == bn
}

func numeric(s Scalar) (int64, bool) {
	switch v := s.(type) {
	case ScalarInt:
		return int64(v), true
	case ScalarString:
		n, err := strconv.ParseInt(strings.TrimSpace(string(v)), 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// ParseScalar converts text into a Scalar of the given backing type.
// BackingNone and BackingString both yield a ScalarString.
func ParseScalar(raw string, kind BackingType) (Scalar, error) {
	switch kind {
	case BackingInt:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q as int: %w", raw, err)
		}
		return ScalarInt(n), nil
	case BackingNone, BackingString:
		return ScalarString(raw), nil
	default:
		return nil, fmt.Errorf("unknown backing type %q", kind)
	}
}
