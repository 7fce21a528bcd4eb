package cli

import (
	"errors"
	"fmt"
	"os"

	"cuelang.org/go/cue/token"

	"github.com/roach88/enumview/enum"
	"github.com/roach88/enumview/internal/compiler"
	"github.com/roach88/enumview/ir"
)

// LoadError represents an error that occurred while loading definitions.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
	File    string    // YAML file if available
	Line    int
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s: %s", e.File, e.Line, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadEnums checks the directory and compiles every definition file in it.
// If mode is LoadModeFailFast, returns on first error.
// If mode is LoadModeCollectAll, collects all errors.
func LoadEnums(dir string, mode compiler.LoadMode) (*compiler.LoadResult, []error) {
	// Verify directory exists
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("definitions directory not found: %s", dir)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing definitions directory: %v", err)}}
	}
	if !info.IsDir() {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}}
	}

	result, errs := compiler.LoadDir(dir, mode)
	if result == nil {
		return nil, []error{&LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", errors.Join(errs...))}}
	}
	if result.FileCount == 0 {
		return nil, []error{&LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no definition files found in %s", dir)}}
	}

	loadErrs := make([]error, len(errs))
	for i, e := range errs {
		loadErrs[i] = convertCompileError(e)
	}
	return result, loadErrs
}

// convertCompileError converts a compiler error to a LoadError with position info.
func convertCompileError(err error) *LoadError {
	var compileErr *compiler.CompileError
	if errors.As(err, &compileErr) {
		return &LoadError{
			Code:    MapFieldToErrorCode(compileErr.Field),
			Message: compileErr.Message,
			Pos:     compileErr.Pos,
			File:    compileErr.Filename,
			Line:    compileErr.Line,
		}
	}
	return &LoadError{
		Code:    ErrCodeLoadFailed,
		Message: err.Error(),
	}
}

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric    = "E001" // Generic/unknown error
	ErrCodeScanError  = "E002" // Directory scan error
	ErrCodeNoFiles    = "E003" // No definition files found
	ErrCodeLoadFailed = "E004" // CUE or YAML parse failed
	ErrCodeNotFound   = "E005" // Path not found

	// Definition errors
	ErrCodeInvalidDefinition = "E101" // Enum breaks a descriptor invariant
	ErrCodeInvalidValue      = "E104" // Invalid backing value (e.g., float)

	// Query errors
	ErrCodeUnknownEnum    = "E201" // No enum with that name
	ErrCodeEmptyEnum      = "E202" // Operation needs members
	ErrCodeDuplicateValue = "E203" // Members share a backing value
	ErrCodeSerialization  = "E204" // JSON or XML encoding failed
	ErrCodeInvalidArgs    = "E205" // Missing or conflicting flags
	ErrCodeNotPresent     = "E206" // exists: value or name not present
)

// MapFieldToErrorCode maps a compiler error field to an error code.
func MapFieldToErrorCode(field string) string {
	switch field {
	case "value":
		return ErrCodeInvalidValue
	case "enum", "cases", "cases.name", "namespace", "parent", "capabilities", "builtin":
		return ErrCodeInvalidDefinition
	case "cue", "yaml":
		return ErrCodeLoadFailed
	default:
		return ErrCodeGeneric
	}
}

// mapEnumError maps an enum package error to a CLI error code.
func mapEnumError(err error) string {
	switch {
	case enum.IsEmptyEnum(err):
		return ErrCodeEmptyEnum
	case enum.IsDuplicateValue(err):
		return ErrCodeDuplicateValue
	case enum.IsSerialization(err):
		return ErrCodeSerialization
	case enum.IsInvalidDefinition(err):
		return ErrCodeInvalidDefinition
	default:
		return ErrCodeGeneric
	}
}

// failEnum outputs an enum operation error. These are query failures (exit 1).
func failEnum(f *OutputFormatter, err error) error {
	return f.Fail(ExitFailure, mapEnumError(err), err.Error(), nil)
}

// loadAll loads every enum under opts.Dir. Any load error is a command error.
func loadAll(opts *RootOptions, f *OutputFormatter) (*compiler.LoadResult, error) {
	result, errs := LoadEnums(opts.Dir, compiler.LoadModeCollectAll)
	if len(errs) > 0 {
		for _, err := range errs[1:] {
			f.VerboseLog("%v", err)
		}
		var loadErr *LoadError
		if errors.As(errs[0], &loadErr) {
			return nil, f.Fail(ExitCommandError, loadErr.Code, loadErr.Error(), nil)
		}
		return nil, f.Fail(ExitCommandError, ErrCodeGeneric, errs[0].Error(), nil)
	}

	f.VerboseLog("Loaded %d enum(s) from %d file(s) in %s", len(result.Enums), result.FileCount, opts.Dir)
	opts.Logger().Debug("definitions loaded",
		"dir", opts.Dir,
		"files", result.FileCount,
		"enums", len(result.Enums),
	)
	return result, nil
}

// openView loads the definitions and builds the view of the named enum.
func openView(opts *RootOptions, f *OutputFormatter, name string) (*enum.View[ir.Member], error) {
	result, err := loadAll(opts, f)
	if err != nil {
		return nil, err
	}

	spec, ok := result.Lookup(name)
	if !ok {
		return nil, f.Fail(ExitCommandError, ErrCodeUnknownEnum, fmt.Sprintf("unknown enum %q", name), nil)
	}

	viewOpts := []enum.Option{enum.WithLogger(opts.Logger())}
	if opts.Picker != nil {
		viewOpts = append(viewOpts, enum.WithPicker(opts.Picker))
	}
	v, err := enum.FromSpec(spec, viewOpts...)
	if err != nil {
		return nil, f.Fail(ExitCommandError, mapEnumError(err), err.Error(), nil)
	}
	return v, nil
}
