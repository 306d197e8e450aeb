package domain

import "strings"

// ComposeFullName joins given and family with a single space and trims only the two ends.
// Whitespace inside the result (including leading whitespace of family) is kept.
func ComposeFullName(given, family string) string {
	return strings.TrimSpace(given + " " + family)
}
