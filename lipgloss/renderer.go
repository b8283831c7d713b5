// Package lipgloss implements the static (non-interactive) renderer for
// feature records. Styles are bound to the output writer, so piped output
// degrades to plain text automatically.
package lipgloss

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/caniuse"
)

// FullModeHint is appended to basic output to advertise the interactive mode.
const FullModeHint = "Run with --full to see all browsers + Notes/Resources/Sub-features."

// Ensure Renderer implements caniuse.Renderer at compile time.
var _ caniuse.Renderer = (*Renderer)(nil)

// Renderer formats feature records as static text.
type Renderer struct {
	title   lipgloss.Style
	section lipgloss.Style
	browser lipgloss.Style
	hint    lipgloss.Style
	panel   lipgloss.Style
}

// NewRenderer creates a Renderer whose styles are bound to out.
func NewRenderer(out io.Writer) *Renderer {
	r := lipgloss.NewRenderer(out)
	return &Renderer{
		title:   r.NewStyle().Bold(true),
		section: r.NewStyle().Bold(true),
		browser: r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		hint:    r.NewStyle().Faint(true),
		panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1),
	}
}

// RenderBasic renders the basic-mode panel: title, spec line, usage line,
// description, and the per-browser support timelines.
func (r *Renderer) RenderBasic(f *caniuse.Feature) string {
	var lines []string

	lines = append(lines, r.title.Render(f.Title))

	if f.SpecURL != nil {
		spec := "Spec: " + *f.SpecURL
		if f.SpecStatus != nil {
			spec += fmt.Sprintf(" [%s]", *f.SpecStatus)
		}
		lines = append(lines, spec)
	}

	if usage := usageLine(f); usage != "" {
		lines = append(lines, usage)
	}

	if f.Description != "" {
		lines = append(lines, "", r.section.Render("Description"), f.Description)
	}

	lines = append(lines, "", r.section.Render("Browser Support"))
	for _, block := range f.Blocks {
		lines = append(lines, r.browser.Render(block.Name))
		for _, sr := range block.Ranges {
			line := fmt.Sprintf("  %s: %s %s", sr.RangeText, sr.Status.Icon(), sr.Status.Label())
			if markers := caniuse.NoteMarkers(sr.RawClasses); len(markers) > 0 {
				line += fmt.Sprintf(" [See notes: %s]", strings.Join(markers, ","))
			}
			lines = append(lines, line)
		}
	}
	if len(f.Blocks) == 0 {
		lines = append(lines, "No browser support data found.")
	}

	lines = append(lines, "", r.hint.Render(FullModeHint))

	body := strings.Join(lines, "\n")
	return r.panel.Render(r.title.Render("/"+f.Slug) + "\n" + body)
}

func usageLine(f *caniuse.Feature) string {
	var parts []string
	if f.UsageSupported != nil {
		parts = append(parts, fmt.Sprintf("✅ %.2f%%", *f.UsageSupported))
	}
	if f.UsagePartial != nil {
		parts = append(parts, fmt.Sprintf("◐ %.2f%%", *f.UsagePartial))
	}
	if f.UsageTotal != nil {
		parts = append(parts, fmt.Sprintf("Total: %.2f%%", *f.UsageTotal))
	}
	if len(parts) == 0 {
		return ""
	}
	return "Usage: " + strings.Join(parts, "  ")
}
