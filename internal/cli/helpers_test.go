package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/enumview/internal/testutil"
)

const colorsCUE = `
enum: Color: {
	namespace: "acme/paint"
	parent:    "int"
	cases: {RED: 1, GREEN: 2, BLUE: 3}
}
enum: Suit: cases: ["HEARTS", "DIAMONDS", "CLUBS", "SPADES"]
enum: Nothing: {}
`

const statusYAML = `
enums:
  - name: Status
    cases:
      - name: ACTIVE
        value: active
      - name: PAUSED
        value: paused
      - name: ARCHIVED
        value: archived
`

// definitionsDir writes the standard fixture definitions into a temp dir.
func definitionsDir(t *testing.T) string {
	t.Helper()
	return writeDefinitions(t, map[string]string{
		"colors.cue":  colorsCUE,
		"status.yaml": statusYAML,
	})
}

func writeDefinitions(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

type result struct {
	stdout string
	stderr string
	err    error
}

// execute runs the root command with a fixed trace ID.
func execute(t *testing.T, opts *RootOptions, args ...string) result {
	t.Helper()
	if opts == nil {
		opts = &RootOptions{}
	}
	if opts.TraceIDs == nil {
		opts.TraceIDs = testutil.NewFixedTraceGenerator("trace-1")
	}

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(opts)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// jsonResponse is CLIResponse with the payload left undecoded.
type jsonResponse struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Error   *CLIError       `json:"error"`
	TraceID string          `json:"trace_id"`
}

func decodeResponse(t *testing.T, out string) jsonResponse {
	t.Helper()
	var resp jsonResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), "output: %s", out)
	return resp
}
