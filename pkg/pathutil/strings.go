// Package pathutil provides deterministic string, path, and filename helpers
// plus minimal filesystem predicates, shared by every fmkit component.
package pathutil

import (
	"strings"
)

// asciiSpace is the set of characters removed by [Trim]. Unlike
// [strings.TrimSpace], Unicode whitespace is left alone, matching the
// behavior expected by callers handling raw filenames.
const asciiSpace = " \t\r\n"

// Trim removes leading and trailing spaces, tabs, and line breaks.
// It is idempotent and returns the empty string unchanged.
func Trim(s string) string {
	return strings.Trim(s, asciiSpace)
}

// EndsWith reports whether s ends with suffix. A suffix longer than s
// never matches; the empty suffix matches everything.
func EndsWith(s, suffix string) bool {
	return strings.HasSuffix(s, suffix)
}

// ReplaceAll replaces every non-overlapping occurrence of pattern in s,
// scanning left to right. An empty pattern is treated as absent input and
// s is returned unchanged, rather than interleaving the replacement at
// every position like [strings.ReplaceAll] would.
func ReplaceAll(s, pattern, replacement string) string {
	if pattern == "" {
		return s
	}

	return strings.ReplaceAll(s, pattern, replacement)
}
