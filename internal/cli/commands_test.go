package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/enumview/enum"
	"github.com/roach88/enumview/internal/testutil"
	"github.com/roach88/enumview/ir"
)

func TestList(t *testing.T) {
	res := execute(t, nil, "--dir", definitionsDir(t), "list")
	require.NoError(t, res.err)

	assert.Equal(t,
		"acme/paint.Color\tBacked(int)\t3 cases\n"+
			"Suit\tPure\t4 cases\n"+
			"Nothing\tPure\t0 cases\n"+
			"Status\tBacked(string)\t3 cases\n",
		res.stdout)
}

func TestListJSON(t *testing.T) {
	res := execute(t, nil, "--dir", definitionsDir(t), "--format", "json", "list")
	require.NoError(t, res.err)

	resp := decodeResponse(t, res.stdout)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "trace-1", resp.TraceID)

	var entries []ListEntry
	require.NoError(t, json.Unmarshal(resp.Data, &entries))
	require.Len(t, entries, 4)
	assert.Equal(t, ListEntry{Name: "acme/paint.Color", Kind: ir.KindBacked, Backing: ir.BackingInt, Cases: 3}, entries[0])
	assert.Equal(t, ListEntry{Name: "Nothing", Kind: ir.KindPure, Backing: ir.BackingNone, Cases: 0}, entries[2])
}

func TestListVerboseGoesToStderr(t *testing.T) {
	res := execute(t, nil, "--dir", definitionsDir(t), "--format", "json", "--verbose", "list")
	require.NoError(t, res.err)

	assert.Contains(t, res.stderr, "Loaded 4 enum(s) from 2 file(s)")
	assert.Contains(t, res.stderr, "definitions loaded")
	assert.Equal(t, "ok", decodeResponse(t, res.stdout).Status)
}

func TestDescribe(t *testing.T) {
	res := execute(t, nil, "--dir", definitionsDir(t), "describe", "Color")
	require.NoError(t, res.err)

	assert.Regexp(t, `(?m)^name:\s+Color$`, res.stdout)
	assert.Regexp(t, `(?m)^namespace:\s+acme/paint$`, res.stdout)
	assert.Regexp(t, `(?m)^kind:\s+Backed$`, res.stdout)
	assert.Regexp(t, `(?m)^backing_type:\s+int$`, res.stdout)
	assert.Regexp(t, `(?m)^case_count:\s+3$`, res.stdout)
	assert.Regexp(t, `(?m)^capabilities:\s+\[enum.View\]$`, res.stdout)
	assert.Regexp(t, `(?m)^fingerprint:\s+[0-9a-f]{64}$`, res.stdout)
}

func TestDescribeJSON(t *testing.T) {
	res := execute(t, nil, "--dir", definitionsDir(t), "--format", "json", "describe", "acme/paint.Color")
	require.NoError(t, res.err)

	var info enum.Info
	require.NoError(t, json.Unmarshal(decodeResponse(t, res.stdout).Data, &info))
	assert.Equal(t, "Color", info.Name)
	assert.Equal(t, "int", info.Parent)
	assert.True(t, info.UserDefined)
}

func TestNamesAndValues(t *testing.T) {
	dir := definitionsDir(t)

	res := execute(t, nil, "--dir", dir, "names", "Color")
	require.NoError(t, res.err)
	assert.Equal(t, "RED\nGREEN\nBLUE\n", res.stdout)

	res = execute(t, nil, "--dir", dir, "values", "Status")
	require.NoError(t, res.err)
	assert.Equal(t, "active\npaused\narchived\n", res.stdout)

	res = execute(t, nil, "--dir", dir, "values", "Suit")
	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)

	res = execute(t, nil, "--dir", dir, "--format", "json", "values", "Color")
	require.NoError(t, res.err)
	assert.JSONEq(t, `[1,2,3]`, string(decodeResponse(t, res.stdout).Data))
}

func TestFlip(t *testing.T) {
	dir := definitionsDir(t)

	res := execute(t, nil, "--dir", dir, "flip", "Status")
	require.NoError(t, res.err)
	assert.Equal(t, "active\tACTIVE\npaused\tPAUSED\narchived\tARCHIVED\n", res.stdout)

	res = execute(t, nil, "--dir", dir, "--format", "json", "flip", "Color")
	require.NoError(t, res.err)
	assert.JSONEq(t,
		`[{"value":1,"name":"RED"},{"value":2,"name":"GREEN"},{"value":3,"name":"BLUE"}]`,
		string(decodeResponse(t, res.stdout).Data))

	res = execute(t, nil, "--dir", dir, "flip", "Suit")
	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)
}

func TestExport(t *testing.T) {
	dir := definitionsDir(t)

	res := execute(t, nil, "--dir", dir, "export", "Color")
	require.NoError(t, res.err)
	assert.Equal(t, "{\"RED\":1,\"GREEN\":2,\"BLUE\":3}\n", res.stdout)

	res = execute(t, nil, "--dir", dir, "export", "Suit", "--as", "xml", "--no-header")
	require.NoError(t, res.err)
	assert.Equal(t,
		"<enum><name>HEARTS</name><name>DIAMONDS</name><name>CLUBS</name><name>SPADES</name></enum>\n",
		res.stdout)

	res = execute(t, nil, "--dir", dir, "export", "Status", "--indent", "  ")
	require.NoError(t, res.err)
	assert.Equal(t, "{\n  \"ACTIVE\": \"active\",\n  \"PAUSED\": \"paused\",\n  \"ARCHIVED\": \"archived\"\n}\n", res.stdout)
}

func TestExportJSONEnvelope(t *testing.T) {
	res := execute(t, nil, "--dir", definitionsDir(t), "--format", "json", "export", "Color", "--as", "xml")
	require.NoError(t, res.err)

	var doc ExportResult
	require.NoError(t, json.Unmarshal(decodeResponse(t, res.stdout).Data, &doc))
	assert.Equal(t, "xml", doc.As)
	assert.Contains(t, doc.Document, "<enum><RED>1</RED><GREEN>2</GREEN><BLUE>3</BLUE></enum>")
}

func TestExportUnicode(t *testing.T) {
	dir := writeDefinitions(t, map[string]string{
		"drinks.yaml": "enums:\n  - name: Drink\n    cases:\n      CAFE: \"caf\\u00e9\"\n",
	})

	res := execute(t, nil, "--dir", dir, "export", "Drink")
	require.NoError(t, res.err)
	assert.Equal(t, "{\"CAFE\":\"caf\\u00e9\"}\n", res.stdout)

	res = execute(t, nil, "--dir", dir, "export", "Drink", "--unescaped-unicode")
	require.NoError(t, res.err)
	assert.Equal(t, "{\"CAFE\":\"café\"}\n", res.stdout)
}

func TestExportErrors(t *testing.T) {
	dir := definitionsDir(t)

	res := execute(t, nil, "--dir", dir, "export", "Color", "--as", "yaml")
	require.Error(t, res.err)
	assert.Equal(t, ExitCommandError, GetExitCode(res.err))
	assert.Contains(t, res.stdout, ErrCodeInvalidArgs)

	res = execute(t, nil, "--dir", dir, "export", "Nothing")
	require.Error(t, res.err)
	assert.Equal(t, ExitFailure, GetExitCode(res.err))
	assert.Contains(t, res.stdout, ErrCodeEmptyEnum)

	res = execute(t, nil, "--dir", dir, "--format", "json", "export", "Nothing", "--as", "xml")
	require.Error(t, res.err)
	resp := decodeResponse(t, res.stdout)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeEmptyEnum, resp.Error.Code)
	assert.Equal(t, "trace-1", resp.TraceID)
}

func TestFilter(t *testing.T) {
	dir := definitionsDir(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"values by suffix", []string{"filter", "Status", "--suffix", "ED"}, "paused\narchived\n"},
		{"values by prefix", []string{"filter", "Status", "--prefix", "act"}, "active\n"},
		{"prefix matches anywhere", []string{"filter", "Status", "--prefix", "ive"}, "active\narchived\n"},
		{"names by prefix", []string{"filter", "Status", "--names", "--prefix", "AR"}, "ARCHIVED\n"},
		{"names by suffix", []string{"filter", "Suit", "--names", "--suffix", "s"}, "HEARTS\nDIAMONDS\nCLUBS\nSPADES\n"},
		{"int values as text", []string{"filter", "Color", "--prefix", "2"}, "2\n"},
		{"no match", []string{"filter", "Color", "--names", "--prefix", "PURPLE"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, nil, append([]string{"--dir", dir}, tt.args...)...)
			require.NoError(t, res.err)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestFilterRequiresOneMode(t *testing.T) {
	dir := definitionsDir(t)

	res := execute(t, nil, "--dir", dir, "filter", "Status")
	require.Error(t, res.err)
	assert.Equal(t, ExitCommandError, GetExitCode(res.err))
	assert.Contains(t, res.stdout, "one of --prefix or --suffix is required")

	res = execute(t, nil, "--dir", dir, "filter", "Status", "--prefix", "a", "--suffix", "b")
	require.Error(t, res.err)
}

func TestExists(t *testing.T) {
	dir := definitionsDir(t)

	tests := []struct {
		name   string
		args   []string
		exists bool
	}{
		{"int value", []string{"exists", "Color", "--value", "2"}, true},
		{"int value padded", []string{"exists", "Color", "--value", "02"}, true},
		{"missing int value", []string{"exists", "Color", "--value", "9"}, false},
		{"non-numeric on int enum", []string{"exists", "Color", "--value", "nope"}, false},
		{"string value", []string{"exists", "Status", "--value", "paused"}, true},
		{"name is not a value", []string{"exists", "Status", "--value", "PAUSED"}, false},
		{"name", []string{"exists", "Status", "--name", "PAUSED"}, true},
		{"name is case sensitive", []string{"exists", "Status", "--name", "paused"}, false},
		{"pure enum has no values", []string{"exists", "Suit", "--value", "HEARTS"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, nil, append([]string{"--dir", dir}, tt.args...)...)
			if tt.exists {
				require.NoError(t, res.err)
				assert.Equal(t, "true\n", res.stdout)
				return
			}
			require.Error(t, res.err)
			assert.Equal(t, ExitFailure, GetExitCode(res.err))
			assert.Equal(t, "false\n", res.stdout)
		})
	}
}

func TestExistsLoose(t *testing.T) {
	dir := writeDefinitions(t, map[string]string{
		"http.yaml": "enums:\n  - name: Http\n    cases:\n      OK: \"200\"\n      NOT_FOUND: \"404\"\n",
	})

	res := execute(t, nil, "--dir", dir, "exists", "Http", "--value", "0404")
	require.Error(t, res.err)

	res = execute(t, nil, "--dir", dir, "--format", "json", "exists", "Http", "--value", "0404", "--loose")
	require.NoError(t, res.err)

	var found ExistsResult
	require.NoError(t, json.Unmarshal(decodeResponse(t, res.stdout).Data, &found))
	assert.Equal(t, ExistsResult{Exists: true, Name: "NOT_FOUND"}, found)
}

func TestExistsRequiresOneMode(t *testing.T) {
	res := execute(t, nil, "--dir", definitionsDir(t), "exists", "Color")
	require.Error(t, res.err)
	assert.Equal(t, ExitCommandError, GetExitCode(res.err))
}

func TestRandom(t *testing.T) {
	dir := definitionsDir(t)

	tests := []struct {
		what string
		want string
	}{
		{"case", "GREEN\t2\n"},
		{"name", "GREEN\n"},
		{"value", "2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.what, func(t *testing.T) {
			opts := &RootOptions{Picker: testutil.NewFixedPicker(1)}
			res := execute(t, opts, "--dir", dir, "random", "Color", "--what", tt.what)
			require.NoError(t, res.err)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestRandomPureCase(t *testing.T) {
	opts := &RootOptions{Picker: testutil.NewFixedPicker(3)}
	res := execute(t, opts, "--dir", definitionsDir(t), "random", "Suit")
	require.NoError(t, res.err)
	assert.Equal(t, "SPADES\n", res.stdout)
}

func TestRandomErrors(t *testing.T) {
	dir := definitionsDir(t)

	res := execute(t, nil, "--dir", dir, "random", "Suit", "--what", "value")
	require.Error(t, res.err)
	assert.Equal(t, ExitFailure, GetExitCode(res.err))
	assert.Contains(t, res.stdout, ErrCodeEmptyEnum)

	res = execute(t, nil, "--dir", dir, "random", "Nothing")
	require.Error(t, res.err)
	assert.Equal(t, ExitFailure, GetExitCode(res.err))

	res = execute(t, nil, "--dir", dir, "random", "Color", "--what", "everything")
	require.Error(t, res.err)
	assert.Equal(t, ExitCommandError, GetExitCode(res.err))
}

func TestUnknownEnum(t *testing.T) {
	res := execute(t, nil, "--dir", definitionsDir(t), "names", "Colour")

	require.Error(t, res.err)
	assert.Equal(t, ExitCommandError, GetExitCode(res.err))
	assert.Contains(t, res.err.Error(), ErrCodeUnknownEnum)
	assert.Contains(t, res.stdout, `unknown enum "Colour"`)
}
