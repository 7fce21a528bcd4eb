package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/enumview/enum"
	"github.com/roach88/enumview/ir"
)

// FilterOptions holds flags for the filter command.
type FilterOptions struct {
	Prefix string
	Suffix string
	Names  bool
}

// NewFilterCommand creates the filter command.
func NewFilterCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FilterOptions{}

	cmd := &cobra.Command{
		Use:   "filter <enum> (--prefix P | --suffix S)",
		Short: "Filter values or names",
		Long: `Filter backing values (or names with --names).

--prefix keeps entries containing P, case-sensitively.
--suffix keeps entries ending with S, ignoring case.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Prefix, "prefix", "", "keep entries containing this text")
	cmd.Flags().StringVar(&opts.Suffix, "suffix", "", "keep entries ending with this text (case-insensitive)")
	cmd.Flags().BoolVar(&opts.Names, "names", false, "filter names instead of values")
	cmd.MarkFlagsMutuallyExclusive("prefix", "suffix")

	return cmd
}

func runFilter(rootOpts *RootOptions, opts *FilterOptions, name string, cmd *cobra.Command) error {
	f := newFormatter(rootOpts, cmd)

	byPrefix := cmd.Flags().Changed("prefix")
	if !byPrefix && !cmd.Flags().Changed("suffix") {
		return f.Fail(ExitCommandError, ErrCodeInvalidArgs, "one of --prefix or --suffix is required", nil)
	}

	v, err := openView(rootOpts, f, name)
	if err != nil {
		return err
	}

	switch {
	case opts.Names && byPrefix:
		return outputNames(f, v.FilterNamesByPrefix(opts.Prefix))
	case opts.Names:
		return outputNames(f, v.FilterNamesBySuffix(opts.Suffix))
	case byPrefix:
		return outputValues(f, v.FilterValuesByPrefix(ir.NewString(opts.Prefix)))
	default:
		return outputValues(f, v.FilterValuesBySuffix(ir.NewString(opts.Suffix)))
	}
}

// ExistsOptions holds flags for the exists command.
type ExistsOptions struct {
	Value string
	Name  string
	Loose bool
}

// ExistsResult is the JSON payload of the exists command.
type ExistsResult struct {
	Exists bool   `json:"exists"`
	Name   string `json:"name,omitempty"` // member name for a found value
}

// NewExistsCommand creates the exists command.
func NewExistsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExistsOptions{}

	cmd := &cobra.Command{
		Use:   "exists <enum> (--value V | --name N)",
		Short: "Check whether a value or name belongs to an enum",
		Long: `Check whether a value or name belongs to an enum.

Prints true or false. Exits 1 when the value or name is not present, so
the command can be used in shell conditions. --loose compares numeric text
by value, so "01" matches the int 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExists(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Value, "value", "", "backing value to look for")
	cmd.Flags().StringVar(&opts.Name, "name", "", "member name to look for")
	cmd.Flags().BoolVar(&opts.Loose, "loose", false, "compare numeric text by value")
	cmd.MarkFlagsMutuallyExclusive("value", "name")

	return cmd
}

func runExists(rootOpts *RootOptions, opts *ExistsOptions, enumName string, cmd *cobra.Command) error {
	f := newFormatter(rootOpts, cmd)

	byValue := cmd.Flags().Changed("value")
	if !byValue && !cmd.Flags().Changed("name") {
		return f.Fail(ExitCommandError, ErrCodeInvalidArgs, "one of --value or --name is required", nil)
	}

	v, err := openView(rootOpts, f, enumName)
	if err != nil {
		return err
	}

	var result ExistsResult
	var query string
	if byValue {
		query = opts.Value
		value := parseQueryValue(opts.Value, v.Spec().Backing)
		result.Exists = v.ValueExists(value, !opts.Loose)
		if result.Exists {
			if c, ok := findByValue(v, value, opts.Loose); ok {
				result.Name = c.Name
			}
		}
	} else {
		query = opts.Name
		result.Exists = v.NameExists(opts.Name, !opts.Loose)
	}

	if f.Format == "json" {
		if err := f.Success(result); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(f.Writer, result.Exists)
	}

	if !result.Exists {
		return NewExitError(ExitFailure, fmt.Sprintf("%s: %q is not in %s", ErrCodeNotPresent, query, enumName))
	}
	return nil
}

// parseQueryValue reads command-line text as a backing value. On an
// int-backed enum, text that parses as an integer becomes an int.
func parseQueryValue(raw string, backing ir.BackingType) ir.Scalar {
	if backing == ir.BackingInt {
		if n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil {
			return ir.NewInt(n)
		}
	}
	return ir.NewString(raw)
}

func findByValue(v *enum.View[ir.Member], value ir.Scalar, loose bool) (ir.Member, bool) {
	if !loose {
		return v.CaseFromValue(value)
	}
	for _, c := range v.Cases() {
		if ir.LooseEqual(c.Value, value) {
			return c, true
		}
	}
	return ir.Member{}, false
}

// RandomOptions holds flags for the random command.
type RandomOptions struct {
	What string // "case" | "name" | "value"
}

// NewRandomCommand creates the random command.
func NewRandomCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RandomOptions{}

	cmd := &cobra.Command{
		Use:   "random <enum>",
		Short: "Pick a random member, name or value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRandom(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.What, "what", "case", "what to pick (case|name|value)")

	return cmd
}

func runRandom(rootOpts *RootOptions, opts *RandomOptions, name string, cmd *cobra.Command) error {
	f := newFormatter(rootOpts, cmd)

	switch opts.What {
	case "case", "name", "value":
	default:
		return f.Fail(ExitCommandError, ErrCodeInvalidArgs,
			fmt.Sprintf("invalid --what %q: must be case, name or value", opts.What), nil)
	}

	v, err := openView(rootOpts, f, name)
	if err != nil {
		return err
	}

	switch opts.What {
	case "name":
		picked, err := v.RandomName()
		if err != nil {
			return failEnum(f, err)
		}
		if f.Format == "json" {
			return f.Success(picked)
		}
		fmt.Fprintln(f.Writer, picked)
	case "value":
		picked, err := v.RandomValue()
		if err != nil {
			return failEnum(f, err)
		}
		if f.Format == "json" {
			return f.Success(picked)
		}
		fmt.Fprintln(f.Writer, picked)
	default:
		picked, err := v.RandomCase()
		if err != nil {
			return failEnum(f, err)
		}
		if f.Format == "json" {
			return f.Success(picked)
		}
		if picked.Value == nil {
			fmt.Fprintln(f.Writer, picked.Name)
		} else {
			fmt.Fprintf(f.Writer, "%s\t%s\n", picked.Name, picked.Value)
		}
	}
	return nil
}
