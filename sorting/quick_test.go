package sorting

import (
	"math/rand/v2"
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestQuickPartitionWithFixedPivot(t *testing.T) {
	var st Stats
	got := Quick([]int{3, 1, 2}, WithRand(lastRand{}), WithStats(&st))
	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}

	// pivot 2: 3 <= 2 fails, 1 <= 2 moves 1 to the front, then the pivot
	// lands in the middle and both sides have a single element.
	if want := (Stats{Comparisons: 2, Swaps: 2}); st != want {
		t.Fatalf("expected stats %+v, got %+v", want, st)
	}
}

func TestQuickPartition(t *testing.T) {
	v := []int{7, 2, 9, 4, 4, 1, 8}
	s := newSorter(len(v),
		func(i, j int) bool {
			return v[i] < v[j]
		},
		swapper(v),
		[]Option{WithRand(lastRand{})})

	p := s.partition(0, len(v)-1)
	if v[p] != 8 {
		t.Fatalf("expected pivot 8 at %d, got %d in %v", p, v[p], v)
	}

	for i := 0; i < p; i++ {
		if v[i] > v[p] {
			t.Fatalf("%d at %d is left of pivot %d in %v", v[i], i, v[p], v)
		}
	}

	for i := p + 1; i < len(v); i++ {
		if v[i] <= v[p] {
			t.Fatalf("%d at %d is right of pivot %d in %v", v[i], i, v[p], v)
		}
	}
}

func TestQuickSeedIsDeterministic(t *testing.T) {
	in := []int{9, 3, 3, 7, 1, 8, 2, 2, 6}

	var a, b Stats
	Quick(slices.Clone(in), WithSeed(42), WithStats(&a))
	Quick(slices.Clone(in), WithSeed(42), WithStats(&b))
	if a != b {
		t.Fatalf("same seed gave different work: %+v vs %+v", a, b)
	}
}

func TestQuickFunc(t *testing.T) {
	words := []string{"pear", "Apple", "fig", "banana"}
	got := QuickFunc(words, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})

	if diff := cmp.Diff([]string{"Apple", "banana", "fig", "pear"}, got); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}
}

func TestQuickRange(t *testing.T) {
	v := []int{9, 8, 7, 6, 5, 4, 3, 2, 1}
	got := QuickRange(v, 2, 5)
	if diff := cmp.Diff([]int{9, 8, 4, 5, 6, 7, 3, 2, 1}, got); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}
}

func TestQuickRangeNoop(t *testing.T) {
	tests := []struct {
		lo, hi int
	}{
		{3, 3},
		{5, 2},
		{10, -4},
	}

	for _, test := range tests {
		v := []int{3, 1, 2}
		got := QuickRange(v, test.lo, test.hi)
		if diff := cmp.Diff([]int{3, 1, 2}, got); diff != "" {
			t.Fatalf("[%d, %d] should be a no-op (-want +got):\n%s",
				test.lo, test.hi, diff)
		}
	}
}

func TestQuickRangeOutOfBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an out of bounds range")
		}
	}()

	QuickRange([]int{3, 1, 2}, 0, 3)
}

func TestQuickAdversarial(t *testing.T) {
	const n = 5000

	sorted := make([]int, n)
	for i := range sorted {
		sorted[i] = i
	}

	equal := make([]int, n)

	tests := map[string][]int{
		"sorted": sorted,
		"equal":  equal,
	}

	for name, v := range tests {
		// always choosing the last element splits sorted and all-equal input
		// as badly as possible.
		got := Quick(slices.Clone(v), WithRand(lastRand{}))
		if !sort.IntsAreSorted(got) {
			t.Fatalf("%s: result not sorted", name)
		}
	}
}

func TestQuickFloats(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	v := make([]float64, 64)
	for i := range v {
		v[i] = r.NormFloat64()
	}

	Quick(v, WithRand(r))
	if !sort.Float64sAreSorted(v) {
		t.Fatalf("%v not sorted.", v)
	}
}
