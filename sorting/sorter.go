// Package sorting provides two in-place comparison sorts: a randomized
// partition-exchange sort (quicksort) and an adjacent-exchange sort (bubble
// sort). Both work on anything reachable through an element count and
// less/swap closures, so callers never need to create new types or adorn
// existing ones with sort methods.
package sorting

import (
	"math/rand/v2"
)

// Rand picks pivot indexes. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// Stats records the work done by a single sort call.
type Stats struct {
	// Passes is the number of outer passes made by the adjacent-exchange sort.
	Passes int

	// Comparisons is the number of calls made to less.
	Comparisons int

	// Swaps is the number of exchanges of two distinct positions.
	Swaps int
}

// Option configures a sort call.
type Option func(*options)

type options struct {
	rand  Rand
	stats *Stats
}

// WithRand sets the source used to choose quicksort pivots.
func WithRand(r Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}

// WithSeed makes pivot selection deterministic for the given seed.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithStats accumulates counters for the call into st.
func WithStats(st *Stats) Option {
	return func(o *options) {
		o.stats = st
	}
}

type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n)
}

type sorter struct {
	n     int
	less  func(i, j int) bool
	swap  func(i, j int)
	rand  Rand
	stats *Stats
}

func newSorter(n int, less func(i, j int) bool, swap func(i, j int), opts []Option) *sorter {
	o := options{rand: globalRand{}}
	for _, opt := range opts {
		opt(&o)
	}

	return &sorter{
		n:     n,
		less:  less,
		swap:  swap,
		rand:  o.rand,
		stats: o.stats,
	}
}

func (s *sorter) Less(i, j int) bool {
	if s.stats != nil {
		s.stats.Comparisons++
	}
	return s.less(i, j)
}

// Swap exchanges i and j. Exchanging a position with itself is skipped.
func (s *sorter) Swap(i, j int) {
	if i == j {
		return
	}
	if s.stats != nil {
		s.stats.Swaps++
	}
	s.swap(i, j)
}

func (s *sorter) pass() {
	if s.stats != nil {
		s.stats.Passes++
	}
}

func swapper[E any](s []E) func(i, j int) {
	return func(i, j int) {
		s[i], s[j] = s[j], s[i]
	}
}
