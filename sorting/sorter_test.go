package sorting

import (
	"math/rand/v2"
	"slices"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type algorithm struct {
	name string
	sort func(s []int, opts ...Option) []int
}

var algorithms = []algorithm{
	{"quick", Quick[[]int]},
	{"bubble", Bubble[[]int]},
}

// lastRand always picks the last index, which makes partitioning deterministic.
type lastRand struct{}

func (lastRand) IntN(n int) int {
	return n - 1
}

func randomInts(r *rand.Rand, n, limit int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = r.IntN(limit)
	}
	return v
}

func TestExample(t *testing.T) {
	for _, alg := range algorithms {
		v := []int{5, 6, 8, 1, 2, 3, 7, 4, 9, 10}
		got := alg.sort(v)

		if diff := cmp.Diff([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, got); diff != "" {
			t.Fatalf("%s: unexpected result (-want +got):\n%s", alg.name, diff)
		}

		if &got[0] != &v[0] {
			t.Fatalf("%s: result does not share storage with the input", alg.name)
		}
	}
}

func TestEmptyAndSingle(t *testing.T) {
	for _, alg := range algorithms {
		if got := alg.sort([]int{}); len(got) != 0 {
			t.Fatalf("%s: expected empty result, got %v", alg.name, got)
		}

		if got := alg.sort(nil); got != nil {
			t.Fatalf("%s: expected nil result, got %v", alg.name, got)
		}

		if got := alg.sort([]int{42}); !slices.Equal(got, []int{42}) {
			t.Fatalf("%s: expected [42], got %v", alg.name, got)
		}
	}
}

func TestDuplicates(t *testing.T) {
	for _, alg := range algorithms {
		got := alg.sort([]int{3, 3, 2, 2, 1, 1})
		if diff := cmp.Diff([]int{1, 1, 2, 2, 3, 3}, got); diff != "" {
			t.Fatalf("%s: unexpected result (-want +got):\n%s", alg.name, diff)
		}
	}
}

func TestPermutationAndOrder(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, alg := range algorithms {
		for _, n := range []int{2, 3, 7, 16, 100, 513} {
			for _, limit := range []int{2, 10, 1000} {
				v := randomInts(r, n, limit)
				want := slices.Clone(v)
				sort.Ints(want)

				got := alg.sort(v, WithRand(r))
				if !sort.IntsAreSorted(got) {
					t.Fatalf("%s: %v not sorted.", alg.name, got)
				}

				if diff := cmp.Diff(want, got); diff != "" {
					t.Fatalf("%s: n=%d limit=%d lost or gained elements (-want +got):\n%s",
						alg.name, n, limit, diff)
				}
			}
		}
	}
}

func TestIdempotence(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for _, alg := range algorithms {
		once := alg.sort(randomInts(r, 200, 50))
		twice := alg.sort(slices.Clone(once))
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Fatalf("%s: second sort changed the result (-once +twice):\n%s",
				alg.name, diff)
		}
	}
}

func TestAlreadySorted(t *testing.T) {
	for _, alg := range algorithms {
		got := alg.sort([]int{1, 2, 3, 4, 5})
		if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, got); diff != "" {
			t.Fatalf("%s: unexpected result (-want +got):\n%s", alg.name, diff)
		}
	}
}

func TestWithIndexFuncs(t *testing.T) {
	v := []int{100, 101, 99, 98, 102}
	less := func(i, j int) bool {
		return v[i] < v[j]
	}
	swap := func(i, j int) {
		v[i], v[j] = v[j], v[i]
	}

	QuickIndex(len(v), less, swap)
	if !sort.IntsAreSorted(v) {
		t.Errorf("%v not sorted.", v)
	}

	v = []int{100, 101, 99, 98, 102}
	BubbleIndex(len(v), less, swap)
	if !sort.IntsAreSorted(v) {
		t.Errorf("%v not sorted.", v)
	}
}

func TestEmptyIndex(t *testing.T) {
	less := func(i, j int) bool {
		t.Fatal("less called for empty input")
		return false
	}
	swap := func(i, j int) {
		t.Fatal("swap called for empty input")
	}

	QuickIndex(0, less, swap)
	BubbleIndex(0, less, swap)
}
