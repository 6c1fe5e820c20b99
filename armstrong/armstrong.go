// Package armstrong checks whether a number equals the sum of its digits each
// raised to the number of digits.
package armstrong

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Result is the outcome of Check, kept around so it can be explained.
type Result struct {
	Number      uint64
	Digits      []uint64
	Powers      []*big.Int
	Sum         *big.Int
	IsArmstrong bool
}

// Check computes the digit powers of n.
func Check(n uint64) Result {
	s := strconv.FormatUint(n, 10)
	r := Result{
		Number: n,
		Digits: make([]uint64, len(s)),
		Powers: make([]*big.Int, len(s)),
		Sum:    new(big.Int),
	}

	// 20-digit inputs overflow uint64 once the digits are large enough.
	e := big.NewInt(int64(len(s)))
	for i, c := range s {
		d := uint64(c - '0')
		r.Digits[i] = d
		r.Powers[i] = new(big.Int).Exp(new(big.Int).SetUint64(d), e, nil)
		r.Sum.Add(r.Sum, r.Powers[i])
	}

	r.IsArmstrong = r.Sum.IsUint64() && r.Sum.Uint64() == n
	return r
}

// Explain renders the arithmetic behind r, e.g.
// "1^3 + 5^3 + 3^3 = 1 + 125 + 27 = 153".
func (r *Result) Explain() string {
	exps := make([]string, len(r.Digits))
	vals := make([]string, len(r.Powers))
	for i := range r.Digits {
		exps[i] = fmt.Sprintf("%d^%d", r.Digits[i], len(r.Digits))
		vals[i] = r.Powers[i].String()
	}

	s := fmt.Sprintf("%s = %s = %s",
		strings.Join(exps, " + "),
		strings.Join(vals, " + "),
		r.Sum.String())
	if !r.IsArmstrong {
		s += fmt.Sprintf(" (≠ %d)", r.Number)
	}
	return s
}

// Parse reads a non-negative decimal number. Signs, spaces and anything other
// than the digits 0-9 are rejected.
func Parse(s string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("armstrong: empty input")
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("armstrong: %q is not a valid number", s)
		}
	}

	return strconv.ParseUint(s, 10, 64)
}
