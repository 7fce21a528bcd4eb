package testutil

import (
	"math/rand/v2"
	"sync"
)

// FixedPicker returns predetermined indices for random-selection tests.
//
// Each call consumes the next index and reduces it modulo n, so the same
// sequence can drive enums of different sizes.
//
// Thread-safety: FixedPicker is safe for concurrent use via internal mutex.
type FixedPicker struct {
	mu      sync.Mutex
	indices []int
	idx     int
}

// NewFixedPicker creates a picker that returns indices in order.
//
// Example:
//
//	p := NewFixedPicker(2, 0)
//	p.IntN(4) // 2
//	p.IntN(4) // 0
//	p.IntN(4) // panic: all indices exhausted
func NewFixedPicker(indices ...int) *FixedPicker {
	return &FixedPicker{indices: indices}
}

// IntN returns the next predetermined index modulo n.
//
// Panics if all indices have been consumed, so a test that draws more often
// than it planned fails loudly.
func (p *FixedPicker) IntN(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.idx >= len(p.indices) {
		panic("FixedPicker: all indices exhausted")
	}
	i := p.indices[p.idx] % n
	p.idx++
	return i
}

// Calls returns how many indices have been consumed.
func (p *FixedPicker) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.idx
}

// LockedRand is a seeded, reproducible picker.
//
// Unlike a bare *rand.Rand, LockedRand is safe for concurrent use, so a
// single instance can back a shared View in parallel tests.
type LockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewLockedRand creates a picker seeded with seed.
// Two pickers with the same seed produce the same sequence.
func NewLockedRand(seed uint64) *LockedRand {
	return &LockedRand{rnd: rand.New(rand.NewPCG(seed, seed))}
}

// IntN returns a pseudo-random index in [0, n).
func (r *LockedRand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.IntN(n)
}
