package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/enumview/ir"
)

// ListEntry is one enum in the list output.
type ListEntry struct {
	Name    string         `json:"name"`
	Kind    ir.Kind        `json:"kind"`
	Backing ir.BackingType `json:"backing_type"`
	Cases   int            `json:"case_count"`
}

// FlipEntry is one value→name pair of the flip output.
type FlipEntry struct {
	Value ir.Scalar `json:"value"`
	Name  string    `json:"name"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every enum with its kind and case count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	result, err := loadAll(opts, f)
	if err != nil {
		return err
	}

	entries := make([]ListEntry, len(result.Enums))
	for i, spec := range result.Enums {
		entries[i] = ListEntry{
			Name:    spec.QualifiedName(),
			Kind:    spec.Kind(),
			Backing: spec.Backing,
			Cases:   len(spec.Members),
		}
		if spec.Kind() == ir.KindPure {
			entries[i].Backing = ir.BackingNone
		}
	}

	if f.Format == "json" {
		return f.Success(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(f.Writer, "no enums defined")
		return nil
	}
	for _, e := range entries {
		kind := string(e.Kind)
		if e.Backing != ir.BackingNone {
			kind = fmt.Sprintf("%s(%s)", e.Kind, e.Backing)
		}
		fmt.Fprintf(f.Writer, "%s\t%s\t%d cases\n", e.Name, kind, e.Cases)
	}
	return nil
}

// NewDescribeCommand creates the describe command.
func NewDescribeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <enum>",
		Short: "Show an enum's type metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(rootOpts, args[0], cmd)
		},
	}
}

func runDescribe(opts *RootOptions, name string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	v, err := openView(opts, f, name)
	if err != nil {
		return err
	}

	info, err := v.Describe()
	if err != nil {
		return failEnum(f, err)
	}

	if f.Format == "json" {
		return f.Success(info)
	}

	rows := []struct{ key, value string }{
		{"name", info.Name},
		{"namespace", info.Namespace},
		{"kind", string(info.Kind)},
		{"backing_type", string(info.BackingType)},
		{"case_count", fmt.Sprint(info.CaseCount)},
		{"capabilities", fmt.Sprint(info.Capabilities)},
		{"parent", info.Parent},
		{"user_defined", fmt.Sprint(info.UserDefined)},
		{"fingerprint", info.Fingerprint},
	}
	for _, r := range rows {
		fmt.Fprintf(f.Writer, "%-14s%s\n", r.key+":", r.value)
	}
	return nil
}

// NewNamesCommand creates the names command.
func NewNamesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "names <enum>",
		Short: "Print member names in declaration order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			v, err := openView(rootOpts, f, args[0])
			if err != nil {
				return err
			}
			return outputNames(f, v.Names())
		},
	}
}

// NewValuesCommand creates the values command.
func NewValuesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "values <enum>",
		Short: "Print backing values in declaration order",
		Long:  "Print backing values in declaration order. Pure enums have no values.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			v, err := openView(rootOpts, f, args[0])
			if err != nil {
				return err
			}
			return outputValues(f, v.Values())
		},
	}
}

// NewFlipCommand creates the flip command.
func NewFlipCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "flip <enum>",
		Short: "Print the value to name mapping",
		Long: `Print the value to name mapping in declaration order.

Fails when two members share a value, since the mapping would not be
invertible.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlip(rootOpts, args[0], cmd)
		},
	}
}

func runFlip(opts *RootOptions, name string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	v, err := openView(opts, f, name)
	if err != nil {
		return err
	}

	flipped, err := v.Flip()
	if err != nil {
		return failEnum(f, err)
	}

	// Map iteration order is random; report in declaration order instead.
	entries := make([]FlipEntry, 0, len(flipped))
	for _, value := range v.Values() {
		entries = append(entries, FlipEntry{Value: value, Name: flipped[value]})
	}

	if f.Format == "json" {
		return f.Success(entries)
	}
	for _, e := range entries {
		fmt.Fprintf(f.Writer, "%s\t%s\n", e.Value, e.Name)
	}
	return nil
}

func outputNames(f *OutputFormatter, names []string) error {
	if f.Format == "json" {
		return f.Success(names)
	}
	for _, n := range names {
		fmt.Fprintln(f.Writer, n)
	}
	return nil
}

func outputValues(f *OutputFormatter, values []ir.Scalar) error {
	if f.Format == "json" {
		return f.Success(values)
	}
	for _, v := range values {
		fmt.Fprintln(f.Writer, v)
	}
	return nil
}
