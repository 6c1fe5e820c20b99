package sorting

import (
	"cmp"
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Algorithm selects one of the two sorts.
type Algorithm int

const (
	// Quicksort is the randomized partition-exchange sort.
	Quicksort Algorithm = iota

	// BubbleSort is the adjacent-exchange sort.
	BubbleSort
)

func (a Algorithm) String() string {
	switch a {
	case Quicksort:
		return "quick"
	case BubbleSort:
		return "bubble"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps "quick" or "bubble" (any case) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quick", "quicksort", "":
		return Quicksort, nil
	case "bubble", "bubblesort":
		return BubbleSort, nil
	}
	return 0, fmt.Errorf("sorting: unknown algorithm %q", s)
}

// TypeMismatchError reports two values that have no order between them.
type TypeMismatchError struct {
	A, B any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("sorting: cannot compare %T(%v) with %T(%v)",
		e.A, e.A, e.B, e.B)
}

// Values sorts vs in place with alg. Integers and floats are ordered
// numerically against each other and strings are ordered against strings.
// The first comparison between values with no order (a number and a string,
// an unsupported type or a NaN) ends the sort with a *TypeMismatchError and
// leaves vs as some permutation of its input.
func Values(alg Algorithm, vs []any, opts ...Option) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*TypeMismatchError)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()

	less := func(i, j int) bool {
		c, err := compareValues(vs[i], vs[j])
		if err != nil {
			panic(err)
		}
		return c < 0
	}

	switch alg {
	case Quicksort:
		QuickIndex(len(vs), less, swapper(vs), opts...)
	case BubbleSort:
		BubbleIndex(len(vs), less, swapper(vs), opts...)
	default:
		return fmt.Errorf("sorting: unknown algorithm %s", alg)
	}

	return nil
}

type kind int

const (
	kindInvalid kind = iota
	kindInt
	kindUint
	kindFloat
	kindString
)

type value struct {
	kind kind
	i    int64
	u    uint64
	f    float64
	s    string
}

func valueOf(v any) value {
	switch t := v.(type) {
	case int:
		return value{kind: kindInt, i: int64(t)}
	case int8:
		return value{kind: kindInt, i: int64(t)}
	case int16:
		return value{kind: kindInt, i: int64(t)}
	case int32:
		return value{kind: kindInt, i: int64(t)}
	case int64:
		return value{kind: kindInt, i: t}
	case uint:
		return unsignedValue(uint64(t))
	case uint8:
		return value{kind: kindInt, i: int64(t)}
	case uint16:
		return value{kind: kindInt, i: int64(t)}
	case uint32:
		return value{kind: kindInt, i: int64(t)}
	case uint64:
		return unsignedValue(t)
	case float32:
		return floatValue(float64(t))
	case float64:
		return floatValue(t)
	case string:
		return value{kind: kindString, s: t}
	}
	return value{}
}

func unsignedValue(u uint64) value {
	if u > math.MaxInt64 {
		return value{kind: kindUint, u: u}
	}
	return value{kind: kindInt, i: int64(u)}
}

func floatValue(f float64) value {
	if math.IsNaN(f) {
		return value{}
	}
	return value{kind: kindFloat, f: f}
}

func compareValues(a, b any) (int, error) {
	va, vb := valueOf(a), valueOf(b)
	switch {
	case va.kind == kindInvalid || vb.kind == kindInvalid:
	case va.kind == kindInt && vb.kind == kindInt:
		return cmp.Compare(va.i, vb.i), nil
	case va.kind == kindFloat && vb.kind == kindFloat:
		return cmp.Compare(va.f, vb.f), nil
	case va.kind == kindString && vb.kind == kindString:
		return strings.Compare(va.s, vb.s), nil
	case va.kind != kindString && vb.kind != kindString:
		return va.number().Cmp(vb.number()), nil
	}
	return 0, &TypeMismatchError{A: a, B: b}
}

// number holds v exactly. Every int64, uint64 and finite or infinite float64
// fits a big.Float without rounding, so mixed comparisons never tie falsely.
func (v value) number() *big.Float {
	switch v.kind {
	case kindInt:
		return new(big.Float).SetInt64(v.i)
	case kindUint:
		return new(big.Float).SetUint64(v.u)
	}
	return new(big.Float).SetFloat64(v.f)
}
