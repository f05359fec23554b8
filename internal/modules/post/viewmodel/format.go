package viewmodel

import "strconv"

// FormatCount abbreviates a count for display: one decimal place with a K or
// M suffix from a thousand upward, rounded half away from zero. The trailing
// ".0" is kept, so 1000 renders as "1.0K".
func FormatCount(n int) string {
	switch {
	case n >= 1_000_000:
		return tenths(n, 100_000) + "M"
	case n >= 1_000:
		return tenths(n, 100) + "K"
	default:
		return strconv.Itoa(n)
	}
}

// tenths renders n/(unit*10) with one decimal. n must be positive.
func tenths(n, unit int) string {
	q, r := n/unit, n%unit
	if r*2 >= unit {
		q++
	}
	return strconv.Itoa(q/10) + "." + strconv.Itoa(q%10)
}
