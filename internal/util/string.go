package util

import "strings"

// TruncateString truncates a string to maxRunes characters (rune-based, not byte-based)
// If truncated, appends "..." to the result
func TruncateString(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}

// Preview flattens s onto one line and truncates it for log fields.
func Preview(s string, maxRunes int) string {
	return TruncateString(strings.Join(strings.Fields(s), " "), maxRunes)
}
