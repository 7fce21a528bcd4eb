package enum

import (
	"fmt"
	"slices"

	"go.uber.org/multierr"

	"github.com/roach88/enumview/ir"
)

// Error is returned by View operations and by registration.
//
// Error categories:
//   - EMPTY_ENUM: the operation needs at least one member (or value)
//   - DUPLICATE_VALUE: two members share a backing value
//   - SERIALIZATION: JSON or XML encoding failed
//   - INVALID_DEFINITION: the member list violates a descriptor invariant
//
// Lookups that find nothing are not errors; they return (zero, false).
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Enum names the affected enum.
	Enum string

	// Op names the operation that failed, e.g. "RandomCase" or "ToXML".
	Op string

	// Message is a human-readable description.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// ErrorCode categorizes enum errors.
type ErrorCode string

const (
	// ErrCodeEmptyEnum indicates an operation that needs members ran on an empty enum.
	ErrCodeEmptyEnum ErrorCode = "EMPTY_ENUM"

	// ErrCodeDuplicateValue indicates two members share a backing value.
	ErrCodeDuplicateValue ErrorCode = "DUPLICATE_VALUE"

	// ErrCodeSerialization indicates JSON or XML encoding failed.
	ErrCodeSerialization ErrorCode = "SERIALIZATION"

	// ErrCodeInvalidDefinition indicates a member list that breaks a descriptor invariant.
	ErrCodeInvalidDefinition ErrorCode = "INVALID_DEFINITION"
)

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	switch {
	case e.Enum != "" && e.Op != "":
		msg = fmt.Sprintf("%s (enum=%s, op=%s)", msg, e.Enum, e.Op)
	case e.Enum != "":
		msg = fmt.Sprintf("%s (enum=%s)", msg, e.Enum)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// hasCode reports whether any error in err's tree carries code.
// Combined errors are searched in full; errors.As would stop at the first *Error.
func hasCode(err error, code ErrorCode) bool {
	switch e := err.(type) {
	case nil:
		return false
	case *Error:
		return e != nil && (e.Code == code || hasCode(e.Err, code))
	case interface{ Errors() []error }:
		return slices.ContainsFunc(multierr.Errors(err), func(inner error) bool {
			return hasCode(inner, code)
		})
	case interface{ Unwrap() []error }:
		return slices.ContainsFunc(e.Unwrap(), func(inner error) bool {
			return hasCode(inner, code)
		})
	case interface{ Unwrap() error }:
		return hasCode(e.Unwrap(), code)
	}
	return false
}

// IsEmptyEnum returns true if the error is an empty-enum error.
// Wrapped and combined errors are searched.
func IsEmptyEnum(err error) bool {
	return hasCode(err, ErrCodeEmptyEnum)
}

// IsDuplicateValue returns true if the error is a duplicate-value error.
func IsDuplicateValue(err error) bool {
	return hasCode(err, ErrCodeDuplicateValue)
}

// IsSerialization returns true if the error is a serialization error.
func IsSerialization(err error) bool {
	return hasCode(err, ErrCodeSerialization)
}

// IsInvalidDefinition returns true if the error is a definition error.
func IsInvalidDefinition(err error) bool {
	return hasCode(err, ErrCodeInvalidDefinition)
}

// NewEmptyEnumError creates an Error for an operation that needs members.
func NewEmptyEnumError(enum, op, message string) *Error {
	return &Error{
		Code:    ErrCodeEmptyEnum,
		Enum:    enum,
		Op:      op,
		Message: message,
	}
}

// NewDuplicateValueError creates an Error for a backing value shared by two members.
func NewDuplicateValueError(enum, op string, value ir.Scalar, first, second string) *Error {
	return &Error{
		Code:    ErrCodeDuplicateValue,
		Enum:    enum,
		Op:      op,
		Message: fmt.Sprintf("value %q is shared by %s and %s", value.String(), first, second),
	}
}

// NewSerializationError wraps an encoding failure.
func NewSerializationError(enum, op string, err error) *Error {
	return &Error{
		Code:    ErrCodeSerialization,
		Enum:    enum,
		Op:      op,
		Message: "encoding failed",
		Err:     err,
	}
}

func newDefinitionError(enum, message string) *Error {
	return &Error{
		Code:    ErrCodeInvalidDefinition,
		Enum:    enum,
		Op:      "Register",
		Message: message,
	}
}
