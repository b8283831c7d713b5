package goquery_test

import (
	"testing"

	"github.com/fwojciec/caniuse"
	"github.com/fwojciec/caniuse/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure FeatureParser implements caniuse.FeatureParser at compile time.
var _ caniuse.FeatureParser = (*goquery.FeatureParser)(nil)

const featurePageHTML = `<!DOCTYPE html>
<html>
<head><title>CSS Grid Layout (level 1) | Can I use... Support tables</title></head>
<body>
<h1 class="feature-title">CSS Grid Layout (level 1)</h1>
<a class="specification wd" href="/spec-link">CSS Grid Layout Module Level 1 - CR</a>
<ul>
	<li class="support-stats" data-usage-id="region.global">
		<span class="support">93.42%</span>
		<span class="partial">2,15%</span>
		<span class="total">95.57%</span>
	</li>
</ul>
<div class="feature-description">
	Method of using a <code>grid</code> layout, see <a href="/css-grid">the grid page</a> for details.
</div>
<div class="support-container">
	<div class="support-list">
		<h4 class="browser-heading browser--firefox">Firefox</h4>
		<ol><li class="stat-cell y current">148</li></ol>
	</div>
	<div class="support-list">
		<h4 class="browser-heading browser--chrome">Chrome</h4>
		<ol><li class="stat-cell y current">144</li></ol>
	</div>
	<div class="support-list">
		<h4 class="browser-heading browser--ios_saf">Safari on iOS</h4>
		<ol><li class="stat-cell y current">26</li></ol>
	</div>
</div>
<div class="single-page__notes"><p>Grid notes here.</p></div>
<dl class="single-feat-resources">
	<dt>Resources:</dt>
	<dd><a href="https://example.com/tutorial">Grid tutorial</a></dd>
	<dd><a href="/polyfill">Polyfill</a></dd>
</dl>
<dl>
	<dt>Sub-features:</dt>
	<dd><a href="/subgrid">Subgrid</a></dd>
	<dd><a href="/css-grid-animation">Animating grid</a></dd>
	<dt>Other section:</dt>
	<dd><a href="/flexbox">Flexbox link after next header</a></dd>
</dl>
</body>
</html>`

func TestFeatureParser_Basic(t *testing.T) {
	t.Parallel()

	p := goquery.NewFeatureParser()
	f, err := p.ParseBasic(featurePageHTML, "css-grid")
	require.NoError(t, err)

	assert.Equal(t, "css-grid", f.Slug)
	assert.Equal(t, "CSS Grid Layout (level 1)", f.Title)

	require.NotNil(t, f.SpecURL)
	assert.Equal(t, "https://caniuse.com/spec-link", *f.SpecURL)
	require.NotNil(t, f.SpecStatus)
	assert.Equal(t, "CR", *f.SpecStatus)

	require.NotNil(t, f.UsageSupported)
	assert.InDelta(t, 93.42, *f.UsageSupported, 0.0001)
	require.NotNil(t, f.UsagePartial)
	assert.InDelta(t, 2.15, *f.UsagePartial, 0.0001, "decimal comma accepted")
	require.NotNil(t, f.UsageTotal)
	assert.InDelta(t, 95.57, *f.UsageTotal, 0.0001)

	assert.Equal(t, "Method of using a `grid` layout, see the grid page for details.", f.Description,
		"code spans become backticks, links keep visible text only in basic mode")

	// Basic mode: fixed key order, extra browsers dropped.
	keys := make([]string, len(f.Blocks))
	for i, b := range f.Blocks {
		keys[i] = b.Key
	}
	assert.Equal(t, []string{"chrome", "firefox"}, keys)

	assert.Nil(t, f.Notes)
	assert.Empty(t, f.Tabs)
	assert.Empty(t, f.Warnings)
}

func TestFeatureParser_Full(t *testing.T) {
	t.Parallel()

	p := goquery.NewFeatureParser()
	f, err := p.ParseFull(featurePageHTML, "css-grid")
	require.NoError(t, err)

	assert.Contains(t, f.Description, "(https://caniuse.com/css-grid)",
		"full mode appends link URLs")

	require.NotNil(t, f.Notes)
	assert.Equal(t, "Grid notes here.", *f.Notes)

	require.Len(t, f.Resources, 2)
	assert.Equal(t, caniuse.Link{Label: "Grid tutorial", URL: "https://example.com/tutorial"}, f.Resources[0])
	assert.Equal(t, "https://caniuse.com/polyfill", f.Resources[1].URL)

	require.Len(t, f.Subfeatures, 2, "links after the next section header are excluded")
	assert.Equal(t, "Subgrid", f.Subfeatures[0].Label)
	assert.Equal(t, "Animating grid", f.Subfeatures[1].Label)

	// Full mode preserves source order and set.
	keys := make([]string, len(f.AllBlocks))
	for i, b := range f.AllBlocks {
		keys[i] = b.Key
	}
	assert.Equal(t, []string{"firefox", "chrome", "ios_saf"}, keys)

	// Tabs in fixed order: Notes, Resources, Sub-features, then Support.
	names := make([]string, len(f.Tabs))
	for i, tab := range f.Tabs {
		names[i] = tab.Name
	}
	assert.Equal(t, []string{"Notes", "Resources", "Sub-features", "Support"}, names)
	assert.Equal(t, caniuse.TabNotes, f.Tabs[0].Kind)
	assert.Equal(t, caniuse.TabOther, f.Tabs[3].Kind)
	assert.Contains(t, f.Tabs[3].Content, "Firefox")
}

func TestFeatureParser_TitleFallbackChain(t *testing.T) {
	t.Parallel()

	t.Run("head title with suffix stripped", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Subgrid | Can I use... Support tables</title></head><body></body></html>`
		p := goquery.NewFeatureParser()
		f, err := p.ParseBasic(html, "subgrid")
		require.NoError(t, err)
		assert.Equal(t, "Subgrid", f.Title)
	})

	t.Run("slug as last resort", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewFeatureParser()
		f, err := p.ParseBasic("<html><body></body></html>", "subgrid")
		require.NoError(t, err)
		assert.Equal(t, "subgrid", f.Title)
	})
}

func TestFeatureParser_SpecStatusFromClassToken(t *testing.T) {
	t.Parallel()

	html := `<html><body><a class="specification wd" href="/spec">CSS Subgrid</a></body></html>`
	p := goquery.NewFeatureParser()
	f, err := p.ParseBasic(html, "subgrid")
	require.NoError(t, err)

	require.NotNil(t, f.SpecStatus)
	assert.Equal(t, "WD", *f.SpecStatus, "visible text has no hyphen tail; class token used")
}

func TestFeatureParser_MalformedInputNeverFails(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"plain text, not markup at all",
		"<div><<<>>>",
		"<html><body><div class=\"support-container\"><div class=\"support-list\">",
	}

	p := goquery.NewFeatureParser()
	for _, input := range inputs {
		f, err := p.ParseBasic(input, "some-slug")
		require.NoError(t, err)
		require.NotNil(t, f)
		assert.Equal(t, "some-slug", f.Slug)
		assert.NotEmpty(t, f.Title, "title always non-empty")
		assert.NotEmpty(t, f.Warnings, "missing sections accumulate warnings")
	}
}

func TestFeatureParser_EmptySupportIsWarningNotError(t *testing.T) {
	t.Parallel()

	html := `<html><body><h1 class="feature-title">Orphan</h1></body></html>`
	p := goquery.NewFeatureParser()
	f, err := p.ParseBasic(html, "orphan")
	require.NoError(t, err)

	assert.Empty(t, f.Blocks)
	fields := make([]string, len(f.Warnings))
	for i, w := range f.Warnings {
		fields[i] = w.Field
	}
	assert.Contains(t, fields, "support")
}
