package caniuse

import (
	"regexp"
	"strings"
)

var slugRE = regexp.MustCompile(`^[a-z0-9_-]+$`)

// ValidSlug reports whether s has the URL-path-safe shape of a feature
// identifier.
func ValidSlug(s string) bool {
	return slugRE.MatchString(s)
}

// Match is one candidate search result. Slug is a URL-path-safe token
// (lowercase letters, digits, hyphens, underscores) uniquely naming a
// feature on the source site.
type Match struct {
	Slug  string
	Title string
	Href  string
}

// DedupeMatches drops later duplicates by slug. The first occurrence wins
// and insertion order is preserved.
func DedupeMatches(matches []Match) []Match {
	seen := make(map[string]bool, len(matches))
	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		if seen[m.Slug] {
			continue
		}
		seen[m.Slug] = true
		out = append(out, m)
	}
	return out
}

// SelectionKind is the outcome of the match-resolution decision table.
type SelectionKind int

// Decision table outcomes.
const (
	// SelectionNone means zero matches; the run fails with a friendly message.
	SelectionNone SelectionKind = iota

	// SelectionAuto means a single candidate was chosen without interaction.
	SelectionAuto

	// SelectionPrompt means the full list must be handed to the interactive
	// selector.
	SelectionPrompt
)

// Selection is the result of Resolve. Slug is set only for SelectionAuto.
type Selection struct {
	Kind SelectionKind
	Slug string
}

// Resolve applies the selection decision table in fixed priority order:
// zero matches, exact-slug match, singleton match, else interactive.
// An exact match bypasses the list regardless of its size.
func Resolve(matches []Match, query string) Selection {
	if len(matches) == 0 {
		return Selection{Kind: SelectionNone}
	}
	normalized := strings.ToLower(strings.TrimSpace(query))
	for _, m := range matches {
		if m.Slug == normalized {
			return Selection{Kind: SelectionAuto, Slug: m.Slug}
		}
	}
	if len(matches) == 1 {
		return Selection{Kind: SelectionAuto, Slug: matches[0].Slug}
	}
	return Selection{Kind: SelectionPrompt}
}
