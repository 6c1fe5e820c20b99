package prime

// TrialDivision reports whether n is prime by trying every divisor in [2, n).
func TrialDivision(n int) bool {
	if n <= 1 {
		return false
	}

	for i := 2; i < n; i++ {
		if n%i == 0 {
			return false
		}
	}

	return true
}

// SquareRoot reports whether n is prime by trying divisors up to the square
// root of n.
func SquareRoot(n int) bool {
	if n <= 1 {
		return false
	}

	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}

	return true
}

// SixK reports whether n is prime. After ruling out multiples of 2 and 3 every
// remaining prime has the form 6k±1, so only those candidates are tried.
func SixK(n int) bool {
	if n <= 1 {
		return false
	}

	if n <= 3 {
		return true
	}

	if n%2 == 0 || n%3 == 0 {
		return false
	}

	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// Label renders the outcome of a check as "Prime" or "Not Prime".
func Label(isPrime bool) string {
	if isPrime {
		return "Prime"
	}
	return "Not Prime"
}
