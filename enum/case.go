package enum

import (
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/roach88/enumview/ir"
)

// CapabilityName is always listed first among a descriptor's capabilities.
const CapabilityName = "enum.View"

// Case is the capability constraint for enumeration members.
// Any comparable type that names its members can be viewed.
type Case interface {
	comparable
	CaseName() string
}

// Valued is implemented by members of backed enums.
// A member whose CaseValue returns nil counts as unbacked.
type Valued interface {
	CaseValue() ir.Scalar
}

// valueOf returns the backing value of c, or nil when c is pure.
func valueOf[E Case](c E) ir.Scalar {
	if v, ok := any(c).(Valued); ok {
		return v.CaseValue()
	}
	return nil
}

// Picker chooses an index in [0, n). *rand.Rand from math/rand/v2
// satisfies it, but is not safe for concurrent use on its own.
type Picker interface {
	IntN(n int) int
}

// globalPicker uses the concurrency-safe top-level math/rand/v2 source.
type globalPicker struct{}

func (globalPicker) IntN(n int) int { return rand.IntN(n) }

// Option configures registration.
type Option func(*options)

type options struct {
	namespace    string
	parent       string
	backing      ir.BackingType
	capabilities []string
	builtin      bool
	aliases      bool
	picker       Picker
	logger       *slog.Logger
}

func newOptions(opts []Option) *options {
	o := &options{
		picker: globalPicker{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithNamespace records the declaring package or module path.
func WithNamespace(ns string) Option {
	return func(o *options) { o.namespace = ns }
}

// WithParent records the declaring type ancestry, typically the underlying
// Go type ("int", "string").
func WithParent(parent string) Option {
	return func(o *options) { o.parent = parent }
}

// WithBacking declares the expected backing type. Registration fails if the
// members disagree. Without it the backing type is inferred.
func WithBacking(b ir.BackingType) Option {
	return func(o *options) { o.backing = b }
}

// WithCapabilities lists additional capability names the enum type carries
// (for example "fmt.Stringer").
func WithCapabilities(names ...string) Option {
	return func(o *options) { o.capabilities = append(o.capabilities, names...) }
}

// WithBuiltin marks the enum as provided by the library rather than user code.
func WithBuiltin() Option {
	return func(o *options) { o.builtin = true }
}

// WithAliases allows several members to share one backing value, as Go const
// blocks often do. Flip reports such enums as DUPLICATE_VALUE.
func WithAliases() Option {
	return func(o *options) { o.aliases = true }
}

// WithPicker replaces the random source used by the Random* operations.
func WithPicker(p Picker) Option {
	return func(o *options) { o.picker = p }
}

// WithLogger sets the logger used for registration diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// capabilityList puts CapabilityName first and drops repeats.
func capabilityList(extra []string) []string {
	caps := []string{CapabilityName}
	for _, c := range extra {
		if c != "" && !slices.Contains(caps, c) {
			caps = append(caps, c)
		}
	}
	return caps
}
