package caniuse

// SearchParser extracts candidate matches from a search-results page, or
// from any page containing plausible feature links as a fallback.
type SearchParser interface {
	// ParseSearch returns an ordered, slug-deduplicated list of matches.
	// The error return is reserved for unreadable input; a page with no
	// recognizable matches yields an empty list and a nil error.
	ParseSearch(html string) ([]Match, error)
}

// FeatureParser extracts a structured record from a single feature page.
// Implementations never fail on missing or malformed sections: every field
// uses an independent fallback chain, and total failure of a chain records
// a Warning on the record instead of returning an error.
type FeatureParser interface {
	// ParseBasic extracts the basic record: header metadata plus support
	// blocks filtered to BasicBrowsers.
	ParseBasic(html, slug string) (*Feature, error)

	// ParseFull extracts the full record: everything in ParseBasic plus
	// notes, resources, sub-features, tabs, and the unfiltered block set.
	ParseFull(html, slug string) (*Feature, error)
}

// Converter transforms an HTML fragment into markdown-ish plain text:
// code spans become backticks, hyperlinks keep their visible text.
type Converter interface {
	Convert(html string) (string, error)
}

// Renderer formats a feature record for static (non-interactive) output.
type Renderer interface {
	RenderBasic(feature *Feature) string
}
