package caniuse

import "context"

// Fetcher retrieves raw HTML markup from URLs.
// Implementations distinguish connection failure, timeout, and non-success
// status through error codes (ENETWORK, ETIMEOUT, ECONTENT).
type Fetcher interface {
	// Fetch performs a single blocking request and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any underlying resources.
	Close() error
}

// PageClient fetches the site's search and feature pages as raw HTML.
type PageClient interface {
	// SearchPage fetches the results page for a free-text query.
	SearchPage(ctx context.Context, query string) (string, error)

	// FeaturePage fetches the page for a single feature slug.
	FeaturePage(ctx context.Context, slug string) (string, error)
}

// SearchAPI talks to the site's JSON search backend. It supplements page
// scraping; callers treat every failure as a silent no-op.
type SearchAPI interface {
	// SearchFeatureIDs returns the feature identifiers matching a query.
	SearchFeatureIDs(ctx context.Context, query string) ([]string, error)

	// SupportData returns display titles keyed by feature identifier.
	SupportData(ctx context.Context, ids []string) (map[string]string, error)
}
