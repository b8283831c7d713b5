package mock

import "github.com/fwojciec/caniuse"

var (
	_ caniuse.SearchParser  = (*SearchParser)(nil)
	_ caniuse.FeatureParser = (*FeatureParser)(nil)
)

// SearchParser is a mock implementation of caniuse.SearchParser.
type SearchParser struct {
	ParseSearchFn func(html string) ([]caniuse.Match, error)
}

func (p *SearchParser) ParseSearch(html string) ([]caniuse.Match, error) {
	return p.ParseSearchFn(html)
}

// FeatureParser is a mock implementation of caniuse.FeatureParser.
type FeatureParser struct {
	ParseBasicFn func(html, slug string) (*caniuse.Feature, error)
	ParseFullFn  func(html, slug string) (*caniuse.Feature, error)
}

func (p *FeatureParser) ParseBasic(html, slug string) (*caniuse.Feature, error) {
	return p.ParseBasicFn(html, slug)
}

func (p *FeatureParser) ParseFull(html, slug string) (*caniuse.Feature, error) {
	return p.ParseFullFn(html, slug)
}
