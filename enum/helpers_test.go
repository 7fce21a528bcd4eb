package enum

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/enumview/internal/testutil"
	"github.com/roach88/enumview/ir"
)

func backedIntView(t *testing.T, opts ...Option) *View[testutil.BackedInt] {
	t.Helper()
	v, err := Register("BackedInt", testutil.BackedIntCases(), opts...)
	require.NoError(t, err)
	return v
}

func backedStringView(t *testing.T, opts ...Option) *View[testutil.BackedString] {
	t.Helper()
	v, err := Register("BackedString", testutil.BackedStringCases(), opts...)
	require.NoError(t, err)
	return v
}

func pureView(t *testing.T, opts ...Option) *View[testutil.Pure] {
	t.Helper()
	v, err := Register("Pure", testutil.PureCases(), opts...)
	require.NoError(t, err)
	return v
}

func emptyView(t *testing.T, opts ...Option) *View[testutil.Empty] {
	t.Helper()
	v, err := Register("Empty", testutil.EmptyCases(), opts...)
	require.NoError(t, err)
	return v
}

// member builds a definition-file style view member.
func member(name string, value any) ir.Member {
	switch v := value.(type) {
	case int:
		return ir.Member{Name: name, Value: ir.NewInt(int64(v))}
	case string:
		return ir.Member{Name: name, Value: ir.NewString(v)}
	default:
		return ir.Member{Name: name}
	}
}
