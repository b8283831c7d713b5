package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/caniuse"
	caniusehttp "github.com/fwojciec/caniuse/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ caniuse.SearchAPI = (*caniusehttp.API)(nil)

func TestAPI_SearchFeatureIDs(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/process/query.php", r.URL.Path)
		assert.Equal(t, "grid", r.URL.Query().Get("search"))
		_, _ = w.Write([]byte(`{"featureIds": ["CSS-Grid", "flexbox", "css-grid", ""]}`))
	}))
	defer srv.Close()

	api := caniusehttp.NewAPI(caniusehttp.WithAPIBaseURL(srv.URL))
	ids, err := api.SearchFeatureIDs(context.Background(), "grid")

	require.NoError(t, err)
	assert.Equal(t, []string{"css-grid", "flexbox"}, ids,
		"normalized, deduplicated, order preserved")
}

func TestAPI_SearchFeatureIDs_UndecodablePayload(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	api := caniusehttp.NewAPI(caniusehttp.WithAPIBaseURL(srv.URL))
	_, err := api.SearchFeatureIDs(context.Background(), "grid")

	require.Error(t, err)
	assert.Equal(t, caniuse.ECONTENT, caniuse.ErrorCode(err))
}

func TestAPI_SupportData(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/process/get_feat_data.php", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "support-data", r.PostForm.Get("type"))
		assert.Equal(t, "css-grid,flexbox", r.PostForm.Get("fullDataFeats"))
		_, _ = w.Write([]byte(`{"fullData": [
			{"id": "css-grid", "title": "CSS Grid Layout"},
			{"id": "flexbox", "title": "Flexbox"},
			{"id": "", "title": "orphan"}
		]}`))
	}))
	defer srv.Close()

	api := caniusehttp.NewAPI(caniusehttp.WithAPIBaseURL(srv.URL))
	titles, err := api.SupportData(context.Background(), []string{"css-grid", "flexbox"})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"css-grid": "CSS Grid Layout",
		"flexbox":  "Flexbox",
	}, titles)
}

func TestAPI_SupportData_NoIDs(t *testing.T) {
	t.Parallel()

	api := caniusehttp.NewAPI(caniusehttp.WithAPIBaseURL("http://127.0.0.1:0"))
	titles, err := api.SupportData(context.Background(), nil)

	require.NoError(t, err, "no request is made for an empty ID list")
	assert.Empty(t, titles)
}
