package lipgloss_test

import (
	"bytes"
	"testing"

	"github.com/fwojciec/caniuse"
	"github.com/fwojciec/caniuse/lipgloss"
	"github.com/stretchr/testify/assert"
)

// Ensure Renderer implements caniuse.Renderer at compile time.
var _ caniuse.Renderer = (*lipgloss.Renderer)(nil)

func renderedFeature() *caniuse.Feature {
	specURL := "https://caniuse.com/spec"
	specStatus := "CR"
	supported := 93.42
	total := 95.57
	return &caniuse.Feature{
		Slug:           "css-grid",
		Title:          "CSS Grid Layout",
		SpecURL:        &specURL,
		SpecStatus:     &specStatus,
		UsageSupported: &supported,
		UsageTotal:     &total,
		Description:    "Method of using a `grid` layout.",
		Blocks: []caniuse.BrowserBlock{
			{
				Name: "Chrome",
				Key:  "chrome",
				Ranges: []caniuse.SupportRange{
					{RangeText: "4 - 20", Status: caniuse.StatusPartial, RawClasses: []string{"stat-cell", "a", "#1"}},
					{RangeText: "144", Status: caniuse.StatusSupported, IsCurrent: true},
				},
			},
		},
	}
}

func TestRenderer_RenderBasic(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := lipgloss.NewRenderer(&buf)
	out := r.RenderBasic(renderedFeature())

	assert.Contains(t, out, "/css-grid")
	assert.Contains(t, out, "CSS Grid Layout")
	assert.Contains(t, out, "Spec: https://caniuse.com/spec [CR]")
	assert.Contains(t, out, "Usage: ✅ 93.42%  Total: 95.57%")
	assert.Contains(t, out, "Method of using a `grid` layout.")
	assert.Contains(t, out, "Chrome")
	assert.Contains(t, out, "4 - 20: ◐ Partial support [See notes: 1]")
	assert.Contains(t, out, "144: ✅ Supported")
	assert.Contains(t, out, "--full")
}

func TestRenderer_RenderBasic_SparseRecord(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := lipgloss.NewRenderer(&buf)
	out := r.RenderBasic(&caniuse.Feature{
		Slug:     "orphan",
		Title:    "orphan",
		Warnings: []caniuse.Warning{{Field: "support", Reason: "none"}},
	})

	assert.Contains(t, out, "orphan")
	assert.Contains(t, out, "No browser support data found.")
	assert.NotContains(t, out, "Spec:")
	assert.NotContains(t, out, "Usage:")
}
