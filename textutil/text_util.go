package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var reMultiSpace = regexp.MustCompile(`[ \t]+`)

// SmartTrim collapses runs of spaces and tabs and trims the ends.
// The result is NFC normalized.
func SmartTrim(s string) string {
	return norm.NFC.String(strings.TrimSpace(reMultiSpace.ReplaceAllString(s, " ")))
}

// Clean trims the ends of s and NFC normalizes it so decomposed Hangul
// sent by some clients is stored composed.
func Clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Truncate cuts s to at most max runes.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}

	var n int
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}
