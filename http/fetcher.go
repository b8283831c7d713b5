// Package http provides the HTTP transport for caniuse.com: a Fetcher for
// raw markup, the site's URL shapes, and the search backend JSON API.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fwojciec/caniuse"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements caniuse.Fetcher at compile time.
var _ caniuse.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// Failures are distinguishable by error code: ETIMEOUT for deadlines,
// ENETWORK for transport errors and non-success statuses, ECONTENT for
// empty bodies.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithHTTPClient replaces the underlying client. The client's own timeout
// is preserved; WithTimeout is ignored in that case.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch performs a single blocking GET and returns the response body.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", caniuse.Errorf(caniuse.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", caniuse.Errorf(caniuse.ETIMEOUT, "request to %s timed out", url)
		}
		return "", caniuse.Errorf(caniuse.ENETWORK, "request to %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &statusError{
			status: resp.StatusCode,
			err:    caniuse.Errorf(caniuse.ENETWORK, "HTTP %d for %s", resp.StatusCode, url),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", caniuse.Errorf(caniuse.ENETWORK, "reading response from %s: %v", url, err)
	}

	if strings.TrimSpace(string(body)) == "" {
		return "", caniuse.Errorf(caniuse.ECONTENT, "empty response body from %s", url)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// statusError marks a response that arrived with a non-success HTTP status,
// as opposed to a transport failure or an empty body. It unwraps to an
// application error so ErrorCode still reports ENETWORK.
type statusError struct {
	status int
	err    *caniuse.Error
}

func (e *statusError) Error() string {
	return e.err.Error()
}

func (e *statusError) Unwrap() error {
	return e.err
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}

func userAgent() string {
	return fmt.Sprintf("caniuse/%s", caniuse.Version)
}
