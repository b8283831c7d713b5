package caniuse

// Status classifies browser support for a version range. The values mirror
// the single-letter class tokens used by the source site's markup.
type Status string

// Support statuses in tie-break priority order.
const (
	StatusSupported   Status = "y"
	StatusUnsupported Status = "n"
	StatusPartial     Status = "a"
	StatusUnknown     Status = "u"
)

// Label returns a human-readable name for the status.
func (s Status) Label() string {
	switch s {
	case StatusSupported:
		return "Supported"
	case StatusUnsupported:
		return "Not supported"
	case StatusPartial:
		return "Partial support"
	default:
		return "Unknown"
	}
}

// Icon returns the terminal glyph for the status.
func (s Status) Icon() string {
	switch s {
	case StatusSupported:
		return "✅"
	case StatusUnsupported:
		return "❌"
	case StatusPartial:
		return "◐"
	default:
		return "﹖"
	}
}

// SupportRange is one version-or-version-span cell in a browser's support
// timeline. RawClasses preserves every classifying token seen on the source
// cell, including footnote markers, so renderers can surface "see note N"
// hints without the parser understanding note semantics.
type SupportRange struct {
	RangeText  string
	Status     Status
	IsPast     bool
	IsCurrent  bool
	IsFuture   bool
	TitleAttr  string
	RawClasses []string
}

// BrowserBlock is one browser's support timeline. Key is a normalized
// lowercase identifier such as "chrome". Ranges preserve source document
// order; the source lists oldest to newest.
type BrowserBlock struct {
	Name   string
	Key    string
	Ranges []SupportRange
}

// Link is a labeled absolute URL.
type Link struct {
	Label string
	URL   string
}

// TabKind identifies a known full-mode section. Renderers can handle the
// closed set exhaustively; TabOther carries sections discovered on the page
// that this client does not yet know by name.
type TabKind int

// Known tab kinds in their fixed presentation order.
const (
	TabNotes TabKind = iota
	TabResources
	TabSubfeatures
	TabOther
)

// Tab is one full-mode content section.
type Tab struct {
	Kind    TabKind
	Name    string
	Content string
}

// Warning records a non-fatal extraction failure. Warnings accumulate on the
// record; they never abort extraction.
type Warning struct {
	Field  string
	Reason string
}

// Feature is a structured record extracted from a single feature page.
// Optional scalar fields are nil when no fallback in their extraction chain
// produced a value. Blocks is empty, never nil semantics aside, when no
// support data was found; that case also records a Warning.
//
// Basic mode populates the fields through Warnings. Full mode additionally
// populates Notes, Resources, Subfeatures, Tabs, and AllBlocks; in full mode
// Blocks and AllBlocks are the same unfiltered sequence, while basic mode
// restricts Blocks to BasicBrowsers order.
type Feature struct {
	Slug           string
	Title          string
	SpecURL        *string
	SpecStatus     *string
	UsageSupported *float64
	UsagePartial   *float64
	UsageTotal     *float64
	Description    string
	Blocks         []BrowserBlock
	Warnings       []Warning

	// Full mode only.
	Notes       *string
	Resources   []Link
	Subfeatures []Link
	Tabs        []Tab
	AllBlocks   []BrowserBlock
}

// BasicBrowsers is the fixed set and order of browser keys shown in basic
// mode, regardless of source page order.
var BasicBrowsers = []string{"chrome", "edge", "firefox", "safari", "opera"}

// FilterBlocks restricts blocks to the given keys, re-ordered to match the
// key sequence. Filtering happens after parsing so that warnings and
// "no support data" detection see the complete picture.
func FilterBlocks(blocks []BrowserBlock, keys []string) []BrowserBlock {
	out := make([]BrowserBlock, 0, len(keys))
	for _, key := range keys {
		for _, block := range blocks {
			if block.Key == key {
				out = append(out, block)
				break
			}
		}
	}
	return out
}
