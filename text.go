package caniuse

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	noteRE       = regexp.MustCompile(`^#(\d+)$`)
)

// NormalizeWhitespace collapses runs of whitespace to a single space and
// trims the ends.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}

// ParsePercent parses a percentage string like "96.79%" into a float.
// A decimal comma is accepted in place of a decimal point. Returns false for
// empty or non-numeric input; it never fails harder than that.
func ParsePercent(s string) (float64, bool) {
	cleaned := NormalizeWhitespace(s)
	cleaned = strings.ReplaceAll(cleaned, "%", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// NoteMarkers extracts footnote numbers from marker tokens like "#1", "#12"
// in a support cell's raw class list, in order of appearance.
func NoteMarkers(rawClasses []string) []string {
	var markers []string
	for _, token := range rawClasses {
		if m := noteRE.FindStringSubmatch(token); m != nil {
			markers = append(markers, m[1])
		}
	}
	return markers
}
