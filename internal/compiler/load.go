package compiler

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/enumview/ir"
)

// LoadMode controls how errors are handled during loading.
type LoadMode int

const (
	// LoadModeFailFast stops on the first error encountered.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll collects all errors before returning.
	LoadModeCollectAll
)

// LoadResult contains the enums compiled from a directory.
type LoadResult struct {
	Enums     []ir.EnumSpec
	Files     []string // definition files found, in walk order
	FileCount int
}

// Lookup returns the enum whose name or qualified name is name.
func (r *LoadResult) Lookup(name string) (ir.EnumSpec, bool) {
	for _, spec := range r.Enums {
		if spec.Name == name || spec.QualifiedName() == name {
			return spec, true
		}
	}
	return ir.EnumSpec{}, false
}

// Definition file extensions.
const (
	extCUE  = ".cue"
	extYAML = ".yaml"
	extYML  = ".yml"
)

// FindDefinitionFiles walks the directory and returns all .cue, .yaml and
// .yml file paths in lexical order.
func FindDefinitionFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case extCUE, extYAML, extYML:
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// LoadDir compiles every definition file under dir.
//
// Each CUE file is compiled on its own and contributes the fields of its
// top-level enum struct; each YAML file contributes its enums list. Two
// enums with the same qualified name are an error.
//
// In LoadModeFailFast the first error is returned immediately; in
// LoadModeCollectAll every file is processed and all errors are returned.
// The result holds whatever compiled successfully either way.
func LoadDir(dir string, mode LoadMode) (*LoadResult, []error) {
	files, err := FindDefinitionFiles(dir)
	if err != nil {
		return nil, []error{fmt.Errorf("scanning %s: %w", dir, err)}
	}

	result := &LoadResult{Files: files, FileCount: len(files)}
	ctx := cuecontext.New()
	seen := make(map[string]string)

	var errs []error
	fail := func(err error) bool {
		errs = append(errs, err)
		return mode == LoadModeFailFast
	}

	for _, path := range files {
		specs, fileErrs := loadFile(ctx, path, mode)
		for _, fe := range fileErrs {
			if fail(fe) {
				return result, errs
			}
		}

		for _, spec := range specs {
			qn := spec.QualifiedName()
			if prev, dup := seen[qn]; dup {
				err := &CompileError{
					Field:    "enum",
					Message:  fmt.Sprintf("enum %s is already defined in %s", qn, prev),
					Filename: path,
				}
				if fail(err) {
					return result, errs
				}
				continue
			}
			seen[qn] = path
			result.Enums = append(result.Enums, spec)
		}
	}

	return result, errs
}

func loadFile(ctx *cue.Context, path string, mode LoadMode) ([]ir.EnumSpec, []error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []error{fmt.Errorf("reading %s: %w", path, err)}
	}

	if filepath.Ext(path) != extCUE {
		specs, err := ParseYAML(data, path)
		if err != nil {
			return nil, []error{err}
		}
		return specs, nil
	}

	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, []error{formatCUEError(err)}
	}

	enumsVal := value.LookupPath(cue.ParsePath("enum"))
	if !enumsVal.Exists() {
		return nil, nil
	}

	iter, err := enumsVal.Fields()
	if err != nil {
		return nil, []error{formatCUEError(err)}
	}

	var specs []ir.EnumSpec
	var errs []error
	for iter.Next() {
		spec, err := CompileEnum(iter.Value())
		if err != nil {
			errs = append(errs, err)
			if mode == LoadModeFailFast {
				return specs, errs
			}
			continue
		}
		specs = append(specs, *spec)
	}
	return specs, errs
}
