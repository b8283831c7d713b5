package mock

import (
	"context"

	"github.com/fwojciec/caniuse"
)

var (
	_ caniuse.PageClient = (*PageClient)(nil)
	_ caniuse.SearchAPI  = (*SearchAPI)(nil)
)

// PageClient is a mock implementation of caniuse.PageClient.
type PageClient struct {
	SearchPageFn  func(ctx context.Context, query string) (string, error)
	FeaturePageFn func(ctx context.Context, slug string) (string, error)
}

func (c *PageClient) SearchPage(ctx context.Context, query string) (string, error) {
	return c.SearchPageFn(ctx, query)
}

func (c *PageClient) FeaturePage(ctx context.Context, slug string) (string, error) {
	return c.FeaturePageFn(ctx, slug)
}

// SearchAPI is a mock implementation of caniuse.SearchAPI.
type SearchAPI struct {
	SearchFeatureIDsFn func(ctx context.Context, query string) ([]string, error)
	SupportDataFn      func(ctx context.Context, ids []string) (map[string]string, error)
}

func (a *SearchAPI) SearchFeatureIDs(ctx context.Context, query string) ([]string, error) {
	return a.SearchFeatureIDsFn(ctx, query)
}

func (a *SearchAPI) SupportData(ctx context.Context, ids []string) (map[string]string, error) {
	return a.SupportDataFn(ctx, ids)
}
