package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/caniuse"
)

// Ensure Converter implements caniuse.Converter at compile time.
var _ caniuse.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to turn HTML fragments into markdown-ish
// text: code spans become backticks, links keep their visible text with the
// URL attached. Used for the notes section, which carries block structure
// (paragraphs, lists) worth preserving. Feature descriptions use a simpler
// inline walk; they are one paragraph of prose.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", caniuse.Errorf(caniuse.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}
