package card

import "strings"

// LastN returns the last n bytes of s, or s itself when shorter.
func LastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// MaskPAN keeps the first six and last four digits of a card number and masks
// the rest. Short inputs keep at most the last four characters.
func MaskPAN(pan string) string {
	n := len(pan)
	switch {
	case n == 0:
		return ""
	case n <= 4:
		return strings.Repeat("*", n)
	case n < 10:
		return strings.Repeat("*", n-4) + LastN(pan, 4)
	}
	return pan[:6] + strings.Repeat("*", n-10) + LastN(pan, 4)
}
