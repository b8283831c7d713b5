package goquery

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/caniuse"
)

// Ensure SearchParser implements caniuse.SearchParser at compile time.
var _ caniuse.SearchParser = (*SearchParser)(nil)

// ignoredPrefixes are known non-feature path prefixes on the source site.
var ignoredPrefixes = []string{
	"/ciu/",
	"/issue-list",
	"/about",
	"/news",
	"/compare",
	"/process/",
	"/usage-table",
	"/stats",
	"/support/",
}

// resultSelectors are the primary-strategy container selectors, tried in
// order. The first selector yielding any match wins.
var resultSelectors = []string{
	".search-results a[href]",
	".search-result a[href]",
	".feature-list a[href]",
	".features-list a[href]",
	"main a[href]",
}

// SearchParser extracts candidate matches from a search-results page.
type SearchParser struct {
	logger *slog.Logger
}

// SearchOption configures a SearchParser.
type SearchOption func(*SearchParser)

// WithSearchLogger sets a diagnostics logger. Without one, parsing has no
// diagnostic side effects.
func WithSearchLogger(logger *slog.Logger) SearchOption {
	return func(p *SearchParser) {
		p.logger = logger
	}
}

// NewSearchParser creates a new SearchParser.
func NewSearchParser(opts ...SearchOption) *SearchParser {
	p := &SearchParser{}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}
	return p
}

// ParseSearch returns an ordered, slug-deduplicated list of matches.
// Strategy S1 scans dedicated result containers; strategy S2 falls back to
// every hyperlink on the page, and runs only when S1 yields nothing. The two
// result sets are never merged: S2 would pollute a real results page with
// incidental navigation links.
func (p *SearchParser) ParseSearch(html string) ([]caniuse.Match, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	var matches []caniuse.Match
	for _, selector := range resultSelectors {
		matches = p.collect(doc.Find(selector))
		if len(matches) > 0 {
			p.logger.Debug("search strategy S1", "selector", selector, "matches", len(matches))
			break
		}
	}

	if len(matches) == 0 {
		matches = p.collect(doc.Find("a[href]"))
		p.logger.Debug("search strategy S2 fallback", "matches", len(matches))
	}

	return caniuse.DedupeMatches(matches), nil
}

// collect gathers plausible feature matches from a set of anchors.
func (p *SearchParser) collect(anchors *goquery.Selection) []caniuse.Match {
	var matches []caniuse.Match
	anchors.Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		slug, ok := slugFromHref(href)
		if !ok {
			return
		}
		title := nodeText(a)
		if utf8.RuneCountInString(title) < 3 {
			return
		}
		if href == "" {
			href = fmt.Sprintf("/%s", slug)
		}
		matches = append(matches, caniuse.Match{Slug: slug, Title: title, Href: href})
	})
	return matches
}

// slugFromHref derives a feature slug from a link target. A link qualifies
// only if its path is site-relative, carries no query string, avoids known
// non-feature prefixes, and its final segment matches the slug shape.
func slugFromHref(href string) (string, bool) {
	if href == "" {
		return "", false
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return "", false
	}
	if strings.Contains(href, "?") {
		return "", false
	}
	if !strings.HasPrefix(href, "/") {
		return "", false
	}
	for _, prefix := range ignoredPrefixes {
		if strings.HasPrefix(href, prefix) {
			return "", false
		}
	}
	slug := strings.ToLower(strings.Trim(href, "/"))
	if slug == "" || !caniuse.ValidSlug(slug) {
		return "", false
	}
	return slug, true
}
