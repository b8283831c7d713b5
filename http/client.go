package http

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/fwojciec/caniuse"
)

// staticParam is the "prefer static rendering" query parameter: it asks the
// site for simpler, less script-dependent markup.
const staticParam = "static"

// Client wraps a Fetcher with the site's URL shapes. It owns the one
// documented retry: a feature-page fetch decorated with the static parameter
// that comes back with a non-success status is retried once without it.
type Client struct {
	fetcher caniuse.Fetcher
	baseURL string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the site root. Defaults to caniuse.BaseURL.
func WithBaseURL(base string) ClientOption {
	return func(c *Client) {
		c.baseURL = base
	}
}

// NewClient creates a Client around the given fetcher.
func NewClient(fetcher caniuse.Fetcher, opts ...ClientOption) *Client {
	c := &Client{fetcher: fetcher, baseURL: caniuse.BaseURL}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchPage fetches the search results page for a free-text query.
func (c *Client) SearchPage(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("search", query)
	params.Set(staticParam, "1")
	return c.fetcher.Fetch(ctx, fmt.Sprintf("%s/?%s", c.baseURL, params.Encode()))
}

// FeaturePage fetches a feature page by slug, preferring static markup.
// A non-success HTTP status on the static-flagged request is retried
// exactly once without the parameter; transport failures, timeouts, and
// empty bodies surface directly since dropping the parameter cannot cure
// them.
func (c *Client) FeaturePage(ctx context.Context, slug string) (string, error) {
	params := url.Values{}
	params.Set(staticParam, "1")
	html, err := c.fetcher.Fetch(ctx, fmt.Sprintf("%s/%s?%s", c.baseURL, url.PathEscape(slug), params.Encode()))
	if err == nil {
		return html, nil
	}
	var statusErr *statusError
	if !errors.As(err, &statusErr) {
		return "", err
	}
	return c.fetcher.Fetch(ctx, fmt.Sprintf("%s/%s", c.baseURL, url.PathEscape(slug)))
}
