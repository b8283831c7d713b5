package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/fwojciec/caniuse"
)

// Search backend endpoints, relative to the site root.
const (
	searchQueryPath = "/process/query.php"
	featureDataPath = "/process/get_feat_data.php"
)

// API talks to the site's JSON search backend. It exists to enrich scraped
// search results with authoritative ordering and titles; callers treat every
// failure as a silent miss, never as a fatal condition.
type API struct {
	client  *http.Client
	baseURL string
}

// APIOption configures an API.
type APIOption func(*API)

// WithAPIBaseURL overrides the site root. Defaults to caniuse.BaseURL.
func WithAPIBaseURL(base string) APIOption {
	return func(a *API) {
		a.baseURL = base
	}
}

// WithAPIHTTPClient replaces the underlying client.
func WithAPIHTTPClient(client *http.Client) APIOption {
	return func(a *API) {
		a.client = client
	}
}

// NewAPI creates a new search backend client.
func NewAPI(opts ...APIOption) *API {
	a := &API{baseURL: caniuse.BaseURL}
	for _, opt := range opts {
		opt(a)
	}
	if a.client == nil {
		a.client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	return a
}

// SearchFeatureIDs returns the backend's ordered feature IDs for a query.
// IDs are normalized to lowercase and deduplicated preserving order.
func (a *API) SearchFeatureIDs(ctx context.Context, query string) ([]string, error) {
	params := url.Values{}
	params.Set("search", query)
	body, err := a.get(ctx, a.baseURL+searchQueryPath+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var payload struct {
		FeatureIDs []string `json:"featureIds"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, caniuse.Errorf(caniuse.ECONTENT, "undecodable search payload: %v", err)
	}

	return normalizeIDs(payload.FeatureIDs), nil
}

// SupportData fetches feature metadata for the given IDs and returns a map
// from feature ID to title. Unknown IDs are simply absent from the map.
func (a *API) SupportData(ctx context.Context, ids []string) (map[string]string, error) {
	ids = normalizeIDs(ids)
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	form := url.Values{}
	form.Set("type", "support-data")
	form.Set("fullDataFeats", strings.Join(ids, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+featureDataPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, caniuse.Errorf(caniuse.EINVALID, "building feature-data request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent())

	body, err := a.do(req)
	if err != nil {
		return nil, err
	}

	var payload struct {
		FullData []struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"fullData"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, caniuse.Errorf(caniuse.ECONTENT, "undecodable feature-data payload: %v", err)
	}

	titles := make(map[string]string, len(payload.FullData))
	for _, entry := range payload.FullData {
		id := strings.ToLower(strings.TrimSpace(entry.ID))
		title := strings.TrimSpace(entry.Title)
		if id != "" && title != "" {
			titles[id] = title
		}
	}
	return titles, nil
}

func (a *API) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, caniuse.Errorf(caniuse.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent())
	return a.do(req)
}

func (a *API) do(req *http.Request) ([]byte, error) {
	resp, err := a.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, caniuse.Errorf(caniuse.ETIMEOUT, "request to %s timed out", req.URL)
		}
		return nil, caniuse.Errorf(caniuse.ENETWORK, "request to %s failed: %v", req.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, caniuse.Errorf(caniuse.ENETWORK, "HTTP %d for %s", resp.StatusCode, req.URL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, caniuse.Errorf(caniuse.ENETWORK, "reading response from %s: %v", req.URL, err)
	}
	return body, nil
}

func normalizeIDs(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		id := strings.ToLower(strings.TrimSpace(v))
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
