// Package factorial computes factorials, remembering every value it has
// computed along the way.
package factorial

import (
	"fmt"
	"math/big"
)

// Memo caches factorials. The zero value is ready to use. A Memo is not safe
// for concurrent use.
type Memo struct {
	vals []*big.Int
}

// Of returns n!. Values already in the memo are returned directly, otherwise
// the computation resumes from the largest cached value and caches every
// intermediate result.
func (m *Memo) Of(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("factorial: negative input %d", n)
	}

	if len(m.vals) == 0 {
		m.vals = append(m.vals, big.NewInt(1))
	}

	for i := len(m.vals); i <= n; i++ {
		v := new(big.Int).Mul(m.vals[i-1], big.NewInt(int64(i)))
		m.vals = append(m.vals, v)
	}

	return new(big.Int).Set(m.vals[n]), nil
}

// Cached returns the values of n whose factorial has been memoized, in
// ascending order.
func (m *Memo) Cached() []int {
	ns := make([]int, len(m.vals))
	for i := range ns {
		ns[i] = i
	}
	return ns
}

// Lookup returns the memoized n! without computing anything.
func (m *Memo) Lookup(n int) (*big.Int, bool) {
	if n < 0 || n >= len(m.vals) {
		return nil, false
	}
	return new(big.Int).Set(m.vals[n]), true
}
