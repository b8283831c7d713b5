package goquery

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/caniuse"
	"golang.org/x/net/html"
)

// Ensure FeatureParser implements caniuse.FeatureParser at compile time.
var _ caniuse.FeatureParser = (*FeatureParser)(nil)

// fieldFn is one step in a scalar field's fallback chain: it inspects the
// document and either yields a value or reports absence. Chains are explicit
// ordered lists; the first success wins and later steps are not tried.
type fieldFn func(doc *goquery.Document) (string, bool)

// FeatureParser extracts a structured record from a single feature page.
// Every scalar field uses an independent fallback chain; total failure of a
// chain records a warning on the record instead of aborting, so parsing
// always returns a record.
type FeatureParser struct {
	baseURL   string
	converter caniuse.Converter
	logger    *slog.Logger
}

// FeatureOption configures a FeatureParser.
type FeatureOption func(*FeatureParser)

// WithBaseURL sets the base used to resolve relative links.
// Defaults to caniuse.BaseURL.
func WithBaseURL(base string) FeatureOption {
	return func(p *FeatureParser) {
		p.baseURL = base
	}
}

// WithConverter sets the HTML-to-text converter used for the notes section.
// Without one, notes fall back to normalized plain text.
func WithConverter(c caniuse.Converter) FeatureOption {
	return func(p *FeatureParser) {
		p.converter = c
	}
}

// WithFeatureLogger sets a diagnostics logger. Without one, parsing has no
// diagnostic side effects.
func WithFeatureLogger(logger *slog.Logger) FeatureOption {
	return func(p *FeatureParser) {
		p.logger = logger
	}
}

// NewFeatureParser creates a new FeatureParser.
func NewFeatureParser(opts ...FeatureOption) *FeatureParser {
	p := &FeatureParser{baseURL: caniuse.BaseURL}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}
	return p
}

// ParseBasic extracts the basic record, with support blocks filtered to the
// fixed basic-browser set.
func (p *FeatureParser) ParseBasic(htmlSrc, slug string) (*caniuse.Feature, error) {
	return p.parse(htmlSrc, slug, false)
}

// ParseFull extracts the full record: basic fields plus notes, resources,
// sub-features, tabs, and the unfiltered block set.
func (p *FeatureParser) ParseFull(htmlSrc, slug string) (*caniuse.Feature, error) {
	return p.parse(htmlSrc, slug, true)
}

func (p *FeatureParser) parse(htmlSrc, slug string, full bool) (*caniuse.Feature, error) {
	doc, err := parse(htmlSrc)
	if err != nil {
		return nil, err
	}

	f := &caniuse.Feature{Slug: slug}

	f.Title = slug
	if title, ok := p.runChain(doc, f, "title", titleChain()); ok {
		f.Title = title
	}
	p.parseSpec(doc, f)
	p.parseUsage(doc, f)
	if desc, ok := p.runChain(doc, f, "description", p.descriptionChain(full)); ok {
		f.Description = desc
	}

	blocks := parseBrowserBlocks(doc)
	if len(blocks) == 0 {
		p.warn(f, "support", "no browser support blocks found")
	}
	if full {
		f.AllBlocks = blocks
		f.Blocks = blocks
	} else {
		f.Blocks = caniuse.FilterBlocks(blocks, caniuse.BasicBrowsers)
	}

	if full {
		f.Notes = p.parseNotes(doc)
		f.Resources = p.parseLinks(doc.Find("dl.single-feat-resources dd a"))
		f.Subfeatures = p.parseSubfeatures(doc)
		f.Tabs = buildTabs(f)
	}

	return f, nil
}

// runChain evaluates a field's fallback chain in order and returns the first
// non-empty result. An exhausted chain records a warning and reports absence.
func (p *FeatureParser) runChain(doc *goquery.Document, f *caniuse.Feature, field string, chain []fieldFn) (string, bool) {
	for _, fn := range chain {
		if value, ok := fn(doc); ok && value != "" {
			return value, true
		}
	}
	p.warn(f, field, "no selector in the fallback chain matched")
	return "", false
}

// titleChain: dedicated title element, then the document head title with the
// site's trailing suffix stripped. The slug itself is the caller's last
// resort.
func titleChain() []fieldFn {
	return []fieldFn{
		func(doc *goquery.Document) (string, bool) {
			title := nodeText(doc.Find(".feature-title"))
			return title, title != ""
		},
		func(doc *goquery.Document) (string, bool) {
			title := nodeText(doc.Find("title"))
			if title == "" {
				return "", false
			}
			title, _, _ = strings.Cut(title, "| Can I use")
			title = strings.TrimSpace(title)
			return title, title != ""
		},
	}
}

// descriptionChain extracts the description container's inline text,
// preserving code spans as backticks. In full mode hyperlink URLs are
// appended after their visible text.
func (p *FeatureParser) descriptionChain(full bool) []fieldFn {
	return []fieldFn{
		func(doc *goquery.Document) (string, bool) {
			sel := doc.Find(".feature-description").First()
			if sel.Length() == 0 {
				return "", false
			}
			text := p.inlineText(sel, full)
			return text, text != ""
		},
	}
}

// parseSpec reads the specification anchor. The status text is the last
// non-empty token after a hyphen in the visible text, falling back to a
// short alphabetic class token (a standardization-stage code like "wd" or
// "rec") when the visible-text heuristic yields nothing.
func (p *FeatureParser) parseSpec(doc *goquery.Document, f *caniuse.Feature) {
	anchor := doc.Find("a.specification").First()
	if anchor.Length() == 0 {
		p.warn(f, "spec", "no specification anchor found")
		return
	}

	if href, ok := anchor.Attr("href"); ok {
		if resolved := resolveURL(p.baseURL, href); resolved != "" {
			f.SpecURL = &resolved
		}
	}

	var status string
	visible := nodeText(anchor)
	if idx := strings.LastIndex(visible, "-"); idx >= 0 {
		status = strings.TrimSpace(visible[idx+1:])
	}
	if status == "" {
		for _, token := range classTokens(anchor) {
			if token == "specification" || len(token) > 4 {
				continue
			}
			if isAlpha(token) {
				status = strings.ToUpper(token)
				break
			}
		}
	}
	if status != "" {
		f.SpecStatus = &status
	}
}

// parseUsage reads the global-region usage statistics. The three child
// lookups are independent; each percentage is individually optional.
func (p *FeatureParser) parseUsage(doc *goquery.Document, f *caniuse.Feature) {
	node := doc.Find(`li.support-stats[data-usage-id="region.global"]`).First()
	if node.Length() == 0 {
		p.warn(f, "usage", "no global usage stats found")
		return
	}
	if v, ok := caniuse.ParsePercent(nodeText(node.Find(".support"))); ok {
		f.UsageSupported = &v
	}
	if v, ok := caniuse.ParsePercent(nodeText(node.Find(".partial"))); ok {
		f.UsagePartial = &v
	}
	if v, ok := caniuse.ParsePercent(nodeText(node.Find(".total"))); ok {
		f.UsageTotal = &v
	}
}

// parseNotes extracts the notes section, preferring the converter's
// markdown-ish rendering and falling back to normalized plain text.
func (p *FeatureParser) parseNotes(doc *goquery.Document) *string {
	sel := doc.Find("div.single-page__notes").First()
	if sel.Length() == 0 {
		return nil
	}
	var notes string
	if p.converter != nil {
		if inner, err := sel.Html(); err == nil {
			if converted, err := p.converter.Convert(inner); err == nil {
				notes = strings.TrimSpace(converted)
			}
		}
	}
	if notes == "" {
		notes = nodeText(sel)
	}
	if notes == "" {
		return nil
	}
	return &notes
}

// parseLinks collects labeled absolute links from a set of anchors.
func (p *FeatureParser) parseLinks(anchors *goquery.Selection) []caniuse.Link {
	var links []caniuse.Link
	anchors.Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		url := resolveURL(p.baseURL, href)
		label := nodeText(a)
		if url != "" && label != "" {
			links = append(links, caniuse.Link{Label: label, URL: url})
		}
	})
	return links
}

// parseSubfeatures collects links from the "Sub-features:" definition-list
// section using sibling traversal: a <dt> reading "Sub-features" starts
// collection, any other <dt> stops it, and <dd> entries in between
// contribute their anchors in source order.
func (p *FeatureParser) parseSubfeatures(doc *goquery.Document) []caniuse.Link {
	var links []caniuse.Link
	doc.Find("dl").Each(func(_ int, dl *goquery.Selection) {
		collecting := false
		dl.Children().Each(func(_ int, child *goquery.Selection) {
			switch goquery.NodeName(child) {
			case "dt":
				label := strings.TrimSuffix(nodeText(child), ":")
				collecting = strings.EqualFold(strings.TrimSpace(label), "sub-features")
			case "dd":
				if collecting {
					links = append(links, p.parseLinks(child.Find("a"))...)
				}
			}
		})
	})
	return links
}

// buildTabs assembles the full-mode tab list in its fixed order: Notes,
// Resources, Sub-features, then the generated Support section. Sections
// that produced no content are never added, so index-based tab jumps need
// no empty-pane special cases.
func buildTabs(f *caniuse.Feature) []caniuse.Tab {
	var tabs []caniuse.Tab
	if f.Notes != nil {
		tabs = append(tabs, caniuse.Tab{Kind: caniuse.TabNotes, Name: "Notes", Content: *f.Notes})
	}
	if len(f.Resources) > 0 {
		tabs = append(tabs, caniuse.Tab{Kind: caniuse.TabResources, Name: "Resources", Content: linkList(f.Resources)})
	}
	if len(f.Subfeatures) > 0 {
		tabs = append(tabs, caniuse.Tab{Kind: caniuse.TabSubfeatures, Name: "Sub-features", Content: linkList(f.Subfeatures)})
	}
	if support := supportTab(f.AllBlocks); support != "" {
		tabs = append(tabs, caniuse.Tab{Kind: caniuse.TabOther, Name: "Support", Content: support})
	}
	return tabs
}

func linkList(links []caniuse.Link) string {
	lines := make([]string, len(links))
	for i, l := range links {
		lines[i] = fmt.Sprintf("- %s: %s", l.Label, l.URL)
	}
	return strings.Join(lines, "\n")
}

// supportTab renders the unfiltered block set as the viewer's trailing
// Support section.
func supportTab(blocks []caniuse.BrowserBlock) string {
	if len(blocks) == 0 {
		return ""
	}
	var b strings.Builder
	for i, block := range blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(block.Name)
		b.WriteString("\n")
		for _, r := range block.Ranges {
			fmt.Fprintf(&b, "  %s %s", r.Status.Icon(), r.RangeText)
			if markers := caniuse.NoteMarkers(r.RawClasses); len(markers) > 0 {
				fmt.Fprintf(&b, " [notes: %s]", strings.Join(markers, ","))
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// inlineText walks the selection's nodes and renders inline content: code
// spans wrapped in backticks, hyperlinks keeping their visible text with
// the resolved URL appended only when includeURLs is set.
func (p *FeatureParser) inlineText(sel *goquery.Selection, includeURLs bool) string {
	var b strings.Builder
	for _, node := range sel.Nodes {
		p.walkInline(&b, node, includeURLs)
	}
	return caniuse.NormalizeWhitespace(b.String())
}

func (p *FeatureParser) walkInline(b *strings.Builder, node *html.Node, includeURLs bool) {
	switch {
	case node.Type == html.TextNode:
		b.WriteString(node.Data)
	case node.Type == html.ElementNode && node.Data == "code":
		b.WriteString("`")
		b.WriteString(caniuse.NormalizeWhitespace(textContent(node)))
		b.WriteString("`")
	case node.Type == html.ElementNode && node.Data == "a":
		b.WriteString(textContent(node))
		if includeURLs {
			if url := resolveURL(p.baseURL, attrValue(node, "href")); url != "" {
				fmt.Fprintf(b, " (%s)", url)
			}
		}
	default:
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			p.walkInline(b, child, includeURLs)
		}
	}
}

func textContent(node *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(node)
	return b.String()
}

func attrValue(node *html.Node, name string) string {
	for _, a := range node.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return s != ""
}

// warn records a non-fatal extraction failure on the record.
func (p *FeatureParser) warn(f *caniuse.Feature, field, reason string) {
	p.logger.Debug("parse warning", "field", field, "reason", reason)
	f.Warnings = append(f.Warnings, caniuse.Warning{Field: field, Reason: reason})
}
