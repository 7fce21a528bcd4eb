package compiler

import (
	"errors"
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/enumview/ir"
)

func compileCUE(t *testing.T, src, path string) (*ir.EnumSpec, error) {
	t.Helper()
	ctx := cuecontext.New()
	v := ctx.CompileString(src)
	require.NoError(t, v.Err())
	return CompileEnum(v.LookupPath(cue.ParsePath(path)))
}

func TestCompileEnumBacked(t *testing.T) {
	spec, err := compileCUE(t, `
		enum: Status: {
			namespace: "acme/orders"
			parent:    "string"
			capabilities: ["fmt.Stringer"]
			cases: [
				{name: "ACTIVE", value: "active"},
				{name: "PAUSED", value: "paused"},
			]
		}
	`, "enum.Status")
	require.NoError(t, err)

	assert.Equal(t, "Status", spec.Name)
	assert.Equal(t, "acme/orders", spec.Namespace)
	assert.Equal(t, "string", spec.Parent)
	assert.Equal(t, ir.BackingString, spec.Backing)
	assert.Equal(t, []string{"fmt.Stringer"}, spec.Capabilities)
	assert.True(t, spec.UserDefined)
	assert.Equal(t, []ir.Member{
		{Name: "ACTIVE", Value: ir.NewString("active")},
		{Name: "PAUSED", Value: ir.NewString("paused")},
	}, spec.Members)
}

func TestCompileEnumPureList(t *testing.T) {
	spec, err := compileCUE(t, `
		enum: Suit: {
			builtin: true
			cases: ["HEARTS", "DIAMONDS", "CLUBS", "SPADES"]
		}
	`, "enum.Suit")
	require.NoError(t, err)

	assert.Equal(t, ir.BackingNone, spec.Backing)
	assert.Equal(t, ir.KindPure, spec.Kind())
	assert.False(t, spec.UserDefined)
	require.Len(t, spec.Members, 4)
	assert.Equal(t, "CLUBS", spec.Members[2].Name)
	assert.Nil(t, spec.Members[2].Value)
}

func TestCompileEnumStructKeepsOrder(t *testing.T) {
	spec, err := compileCUE(t, `
		enum: Priority: cases: {
			URGENT: 30
			LOW:    10
			NORMAL: 20
		}
	`, "enum.Priority")
	require.NoError(t, err)

	assert.Equal(t, ir.BackingInt, spec.Backing)
	assert.Equal(t, []ir.Member{
		{Name: "URGENT", Value: ir.NewInt(30)},
		{Name: "LOW", Value: ir.NewInt(10)},
		{Name: "NORMAL", Value: ir.NewInt(20)},
	}, spec.Members)
}

func TestCompileEnumQuotedLabel(t *testing.T) {
	spec, err := compileCUE(t, `enum: "my-enum": cases: ["A", "B"]`, `enum."my-enum"`)
	require.NoError(t, err)
	assert.Equal(t, "my-enum", spec.Name)
}

func TestCompileEnumWithoutCasesIsEmpty(t *testing.T) {
	spec, err := compileCUE(t, `enum: Nothing: {}`, "enum.Nothing")
	require.NoError(t, err)

	assert.Equal(t, "Nothing", spec.Name)
	assert.Empty(t, spec.Members)
	assert.Equal(t, ir.KindPure, spec.Kind())
}

func TestCompileEnumErrors(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		field string
		want  string
	}{
		{
			name:  "float value",
			src:   `enum: E: cases: {HALF: 0.5}`,
			field: "value",
			want:  "float values are forbidden",
		},
		{
			name:  "bool value",
			src:   `enum: E: cases: [{name: "YES", value: true}]`,
			field: "value",
			want:  "unsupported value kind",
		},
		{
			name:  "missing name",
			src:   `enum: E: cases: [{value: 1}]`,
			field: "cases.name",
			want:  "name is required",
		},
		{
			name:  "cases not a collection",
			src:   `enum: E: cases: "A"`,
			field: "cases",
			want:  "must be a list or struct",
		},
		{
			name:  "bad list item",
			src:   `enum: E: cases: [1, 2]`,
			field: "cases",
			want:  "list items must be names",
		},
		{
			name:  "namespace not a string",
			src:   `enum: E: {namespace: 3, cases: ["A"]}`,
			field: "namespace",
			want:  "must be a string",
		},
		{
			name:  "capabilities not strings",
			src:   `enum: E: {capabilities: [1], cases: ["A"]}`,
			field: "capabilities",
			want:  "must be a list of strings",
		},
		{
			name:  "builtin not a bool",
			src:   `enum: E: {builtin: "yes", cases: ["A"]}`,
			field: "builtin",
			want:  "must be a bool",
		},
		{
			name:  "duplicate names",
			src:   `enum: E: cases: ["A", "B", "A"]`,
			field: "enum",
			want:  `duplicate member name "A"`,
		},
		{
			name:  "duplicate values",
			src:   `enum: E: cases: {A: 1, B: 1}`,
			field: "enum",
			want:  "shared by A and B",
		},
		{
			name:  "mixed kinds",
			src:   `enum: E: cases: {A: 1, B: "b"}`,
			field: "enum",
			want:  "has a string value but the enum is int-backed",
		},
		{
			name:  "declared backing disagrees",
			src:   `enum: E: {backing: "string", cases: {A: 1}}`,
			field: "enum",
			want:  "has a int value but the enum is string-backed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compileCUE(t, tt.src, "enum.E")
			require.Error(t, err)

			var ce *CompileError
			require.True(t, errors.As(err, &ce), "expected *CompileError, got %T", err)
			assert.Equal(t, tt.field, ce.Field)
			assert.Contains(t, ce.Message, tt.want)
		})
	}
}

func TestCompileEnumFloatHasPosition(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString("enum: E: cases: {\n\tHALF: 0.5\n}", cue.Filename("ratio.cue"))
	require.NoError(t, v.Err())

	_, err := CompileEnum(v.LookupPath(cue.ParsePath("enum.E")))
	require.Error(t, err)

	var ce *CompileError
	require.True(t, errors.As(err, &ce))
	require.True(t, ce.Pos.IsValid())
	assert.Equal(t, 2, ce.Pos.Line())
	assert.Contains(t, err.Error(), "ratio.cue:2:")
}

func TestCompileErrorFormat(t *testing.T) {
	assert.Equal(t, "cases: bad", (&CompileError{Field: "cases", Message: "bad"}).Error())
	assert.Equal(t, "a.yaml: yaml: bad", (&CompileError{Field: "yaml", Message: "bad", Filename: "a.yaml"}).Error())
	assert.Equal(t, "a.yaml:3:7: value: bad", (&CompileError{Field: "value", Message: "bad", Filename: "a.yaml", Line: 3, Column: 7}).Error())
}
