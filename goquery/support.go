package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/caniuse"
)

// browserKeyPrefix marks the heading class token that carries the normalized
// browser key, e.g. "browser--chrome".
const browserKeyPrefix = "browser--"

// statusOrder is the tie-break scan order when a cell carries more than one
// status class token. The first hit wins.
var statusOrder = []caniuse.Status{
	caniuse.StatusSupported,
	caniuse.StatusUnsupported,
	caniuse.StatusPartial,
	caniuse.StatusUnknown,
}

// parseBrowserBlocks decodes every per-browser support timeline on the page,
// in document order. Blocks with no readable heading are skipped entirely:
// no record, no warning. The matrix parser is itself one field-level
// fallback target for the feature parser, so its absence is reported there.
func parseBrowserBlocks(doc *goquery.Document) []caniuse.BrowserBlock {
	var blocks []caniuse.BrowserBlock

	doc.Find(".support-container .support-list").Each(func(_ int, list *goquery.Selection) {
		heading := list.Find("h4.browser-heading").First()
		name := nodeText(heading)
		if name == "" {
			return
		}

		key := ""
		for _, token := range classTokens(heading) {
			if strings.HasPrefix(token, browserKeyPrefix) {
				key = strings.ToLower(strings.TrimPrefix(token, browserKeyPrefix))
				break
			}
		}
		if key == "" {
			key = strings.ReplaceAll(strings.ToLower(name), " ", "-")
		}

		var ranges []caniuse.SupportRange
		list.Find("ol > li.stat-cell").Each(func(_ int, cell *goquery.Selection) {
			rangeText := nodeText(cell)
			if rangeText == "" {
				return
			}
			classes := classTokens(cell)
			title, _ := cell.Attr("title")
			ranges = append(ranges, caniuse.SupportRange{
				RangeText:  rangeText,
				Status:     cellStatus(classes),
				IsPast:     hasToken(classes, "past"),
				IsCurrent:  hasToken(classes, "current"),
				IsFuture:   hasToken(classes, "future"),
				TitleAttr:  title,
				RawClasses: classes,
			})
		})

		blocks = append(blocks, caniuse.BrowserBlock{Name: name, Key: key, Ranges: ranges})
	})

	return blocks
}

// cellStatus scans class tokens in the documented priority order and stops
// at the first hit. A cell is expected to carry exactly one status token;
// when multiple appear the order breaks the tie deterministically.
func cellStatus(classes []string) caniuse.Status {
	for _, status := range statusOrder {
		if hasToken(classes, string(status)) {
			return status
		}
	}
	return caniuse.StatusUnknown
}

func hasToken(classes []string, token string) bool {
	for _, c := range classes {
		if c == token {
			return true
		}
	}
	return false
}
