package util

import "strings"

// StripNonDigits drops every character outside 0-9.
func StripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// HasPhoneDigits reports whether s still yields a non-empty digit string once
// everything but ASCII digits is removed. "abc123" qualifies, "abc" does not.
func HasPhoneDigits(s string) bool {
	return StripNonDigits(s) != ""
}
