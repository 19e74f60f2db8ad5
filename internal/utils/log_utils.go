// Package utils holds small shared helpers
package utils

import (
	"strings"
	"unicode"
)

// maxLogStringLength caps user-provided strings in log lines
const maxLogStringLength = 120

// SanitizeLogString makes a user-controlled string safe to log: control
// characters become spaces, percent signs are doubled so the value cannot be
// mistaken for a format directive, and overly long values are truncated.
// Room names, booking titles and record keys all pass through here before
// reaching a log line.
func SanitizeLogString(input string) string {
	if input == "" {
		return ""
	}

	if len(input) > maxLogStringLength {
		input = input[:maxLogStringLength] + "..."
	}

	sanitized := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, input)

	return strings.ReplaceAll(sanitized, "%", "%%")
}
