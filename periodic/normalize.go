package periodic

import "strings"

// normalize brings (initial, period) into canonical form:
//  1. shrink period to its primitive root,
//  2. strip trailing copies of period from initial,
//  3. rotate the boundary left while the last bit of initial equals
//     the last bit of period.
//
// Each rotation strictly shortens initial, so the loop terminates.
func normalize(initial, period string) (string, string) {
	period = primitiveRoot(period)
	initial = stripPeriod(initial, period)

	for len(initial) > 0 && initial[len(initial)-1] == period[len(period)-1] {
		last := initial[len(initial)-1]
		initial = initial[:len(initial)-1]
		// rotate right by one: the dropped bit becomes the new head
		period = string(last) + period[:len(period)-1]
	}

	return initial, period
}

// primitiveRoot returns the shortest word w such that period = w^k.
// Candidate lengths are tried in increasing order, so the first match is minimal.
func primitiveRoot(period string) string {
	n := len(period)
	for k := 1; k < n; k++ {
		if n%k != 0 {
			continue
		}
		if strings.Repeat(period[:k], n/k) == period {
			return period[:k]
		}
	}

	return period
}

// stripPeriod removes trailing copies of period from initial.
func stripPeriod(initial, period string) string {
	for strings.HasSuffix(initial, period) {
		initial = initial[:len(initial)-len(period)]
	}

	return initial
}

// checkBinary reports the index of the first non-binary byte of s, or -1.
func checkBinary(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != Zero && s[i] != One {
			return i
		}
	}

	return -1
}
