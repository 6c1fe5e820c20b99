package sorting

import "cmp"

// Bubble sorts s in place into non-decreasing order with an adjacent-exchange
// sort and returns s. The sort is stable and stops after the first pass that
// makes no exchange, so sorted input costs a single pass.
func Bubble[S ~[]E, E cmp.Ordered](s S, opts ...Option) S {
	BubbleIndex(len(s),
		func(i, j int) bool {
			return cmp.Less(s[i], s[j])
		},
		swapper(s),
		opts...)
	return s
}

// BubbleFunc is like Bubble but orders elements with the comparison function c.
func BubbleFunc[S ~[]E, E any](s S, c func(a, b E) int, opts ...Option) S {
	BubbleIndex(len(s),
		func(i, j int) bool {
			return c(s[i], s[j]) < 0
		},
		swapper(s),
		opts...)
	return s
}

// BubbleIndex sorts the n elements reachable through less and swap with the
// adjacent-exchange sort.
func BubbleIndex(n int, less func(i, j int) bool, swap func(i, j int), opts ...Option) {
	newSorter(n, less, swap, opts).bubbleSort()
}

func (s *sorter) bubbleSort() {
	for i := 0; i < s.n-1; i++ {
		s.pass()

		// after i passes the i largest elements sit at the tail.
		swapped := false
		for j := 0; j < s.n-1-i; j++ {
			if s.Less(j+1, j) {
				s.Swap(j, j+1)
				swapped = true
			}
		}

		if !swapped {
			return
		}
	}
}
