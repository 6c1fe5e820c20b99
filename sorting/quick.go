package sorting

import (
	"cmp"
	"fmt"
)

// Quick sorts s in place into non-decreasing order with a randomized
// partition-exchange sort and returns s. Equal elements may be reordered.
func Quick[S ~[]E, E cmp.Ordered](s S, opts ...Option) S {
	QuickIndex(len(s),
		func(i, j int) bool {
			return cmp.Less(s[i], s[j])
		},
		swapper(s),
		opts...)
	return s
}

// QuickFunc is like Quick but orders elements with the comparison function c,
// which returns a negative number when a < b, zero when a == b and a positive
// number when a > b.
func QuickFunc[S ~[]E, E any](s S, c func(a, b E) int, opts ...Option) S {
	QuickIndex(len(s),
		func(i, j int) bool {
			return c(s[i], s[j]) < 0
		},
		swapper(s),
		opts...)
	return s
}

// QuickRange sorts only the inclusive range [lo, hi] of s and returns s. A range
// with lo >= hi is left alone. It panics if lo < hi and the range does not fit
// inside s.
func QuickRange[S ~[]E, E cmp.Ordered](s S, lo, hi int, opts ...Option) S {
	if lo >= hi {
		return s
	}

	if lo < 0 || hi >= len(s) {
		panic(fmt.Sprintf("sorting: range [%d, %d] out of bounds for length %d",
			lo, hi, len(s)))
	}

	newSorter(len(s),
		func(i, j int) bool {
			return cmp.Less(s[i], s[j])
		},
		swapper(s),
		opts).quickSort(lo, hi)
	return s
}

// QuickIndex sorts the n elements reachable through less and swap with the
// partition-exchange sort.
func QuickIndex(n int, less func(i, j int) bool, swap func(i, j int), opts ...Option) {
	if n <= 1 {
		return
	}
	newSorter(n, less, swap, opts).quickSort(0, n-1)
}

// quickSort sorts [lo, hi]. Only the smaller side of each partition is sorted
// recursively, the larger one is handled by the loop, which keeps the stack
// depth at O(log n) no matter how the pivots fall.
func (s *sorter) quickSort(lo, hi int) {
	for lo < hi {
		p := s.partition(lo, hi)
		if p-lo < hi-p {
			s.quickSort(lo, p-1)
			lo = p + 1
		} else {
			s.quickSort(p+1, hi)
			hi = p - 1
		}
	}
}

// partition moves a randomly chosen pivot to its final position in [lo, hi]
// and returns that position. Afterwards everything left of it is <= the pivot
// and everything right of it is > the pivot.
func (s *sorter) partition(lo, hi int) int {
	s.Swap(lo+s.rand.IntN(hi-lo+1), hi)

	// [lo, i] holds elements <= pivot, (i, j) holds elements > pivot.
	i := lo - 1
	for j := lo; j < hi; j++ {
		if !s.Less(hi, j) {
			i++
			s.Swap(i, j)
		}
	}

	s.Swap(i+1, hi)
	return i + 1
}
