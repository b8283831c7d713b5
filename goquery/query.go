// Package goquery implements the markup extraction engine using CSS
// selectors. It contains the search-result parser, the feature-page parser,
// and the browser support-matrix parser. All extraction is tolerant by
// construction: missing nodes are first-class absent results, and no input
// can make the parsers panic.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/caniuse"
)

// parse builds a document from raw markup. goquery's underlying HTML parser
// recovers from malformed input, so this only fails on unreadable input
// (e.g. an invalid reader), which callers surface as EINVALID.
func parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, caniuse.Errorf(caniuse.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// nodeText returns the normalized text content of the first node in the
// selection. Empty selections yield an empty string.
func nodeText(sel *goquery.Selection) string {
	if sel == nil || sel.Length() == 0 {
		return ""
	}
	return caniuse.NormalizeWhitespace(sel.First().Text())
}

// classTokens returns the class attribute of the first node split into
// tokens. Empty selections yield nil.
func classTokens(sel *goquery.Selection) []string {
	if sel == nil || sel.Length() == 0 {
		return nil
	}
	raw, ok := sel.First().Attr("class")
	if !ok {
		return nil
	}
	return strings.Fields(raw)
}

// resolveURL resolves href against base. Absolute hrefs pass through
// unchanged; unparsable input yields an empty string rather than an error.
func resolveURL(base, href string) string {
	if href == "" {
		return ""
	}
	b, err := url.Parse(base)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return b.ResolveReference(ref).String()
}
