package domain

import "strings"

// NormalizePhone keeps ASCII digits and '+' in their original order and drops everything else.
// It is a filter, not a validator: the result may be empty or contain several '+'.
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if (c >= '0' && c <= '9') || c == '+' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
