package filter

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold trims s and applies Unicode case folding so comparisons are case-insensitive.
// Casers are not safe for concurrent use, so each call builds its own.
func Fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return cases.Fold().String(s)
}
