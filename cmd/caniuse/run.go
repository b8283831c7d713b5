package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/caniuse"
)

// advisory is printed to stderr when any extraction chain came up empty.
// One line regardless of how many sections failed.
const advisory = "Some sections could not be parsed (site layout may have changed)."

// Run executes a feature lookup: search, resolve, fetch, parse, present.
func (c *CLI) Run(deps *Dependencies) error {
	query := strings.TrimSpace(strings.Join(c.Query, " "))
	if query == "" {
		return caniuse.Errorf(caniuse.EINVALID, "Query must not be empty.")
	}

	matches, err := c.search(deps, query)
	if err != nil {
		return err
	}

	slug, err := c.resolve(deps, matches, query)
	if err != nil {
		return err
	}

	return c.present(deps, slug)
}

// search scrapes the search-results page and enriches the match list from
// the JSON search backend. Enrichment failures degrade silently: the page
// scrape alone is a complete result.
func (c *CLI) search(deps *Dependencies, query string) ([]caniuse.Match, error) {
	html, err := deps.Pages.SearchPage(deps.Ctx, query)
	if err != nil {
		return nil, err
	}

	matches, err := deps.Search.ParseSearch(html)
	if err != nil {
		return nil, err
	}

	return c.enrich(deps, matches, query), nil
}

// enrich merges matches known to the search API with the scraped list.
// The API's ordering is authoritative: its matches come first, so it also
// drives prompt order and the non-interactive first-match pick. Any API
// failure returns the scraped list unchanged.
func (c *CLI) enrich(deps *Dependencies, matches []caniuse.Match, query string) []caniuse.Match {
	if deps.API == nil {
		return matches
	}

	ids, err := deps.API.SearchFeatureIDs(deps.Ctx, query)
	if err != nil || len(ids) == 0 {
		return matches
	}

	var valid []string
	for _, id := range ids {
		if caniuse.ValidSlug(id) {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return matches
	}

	titles, err := deps.API.SupportData(deps.Ctx, valid)
	if err != nil {
		titles = nil
	}
	scraped := make(map[string]string, len(matches))
	for _, m := range matches {
		scraped[m.Slug] = m.Title
	}

	merged := make([]caniuse.Match, 0, len(valid)+len(matches))
	for _, id := range valid {
		title := titles[id]
		if title == "" {
			title = scraped[id]
		}
		if title == "" {
			title = id
		}
		merged = append(merged, caniuse.Match{Slug: id, Title: title, Href: "/" + id})
	}
	merged = append(merged, matches...)
	return caniuse.DedupeMatches(merged)
}

// resolve turns the match list into a single slug, prompting interactively
// when the decision table calls for it.
func (c *CLI) resolve(deps *Dependencies, matches []caniuse.Match, query string) (string, error) {
	sel := caniuse.Resolve(matches, query)
	switch sel.Kind {
	case caniuse.SelectionAuto:
		return sel.Slug, nil
	case caniuse.SelectionPrompt:
		return deps.SelectFn(matches)
	default:
		return "", caniuse.Errorf(caniuse.ENOTFOUND, "No features found matching %q.", query)
	}
}

// present fetches the feature page and renders it in the requested mode.
func (c *CLI) present(deps *Dependencies, slug string) error {
	html, err := deps.Pages.FeaturePage(deps.Ctx, slug)
	if err != nil {
		return err
	}

	if c.Full {
		feature, err := deps.Features.ParseFull(html, slug)
		if err != nil {
			return err
		}
		if len(feature.Warnings) > 0 {
			fmt.Fprintln(deps.Stderr, advisory)
		}
		return deps.ViewFn(feature, deps.Stdout)
	}

	feature, err := deps.Features.ParseBasic(html, slug)
	if err != nil {
		return err
	}
	if len(feature.Warnings) > 0 {
		fmt.Fprintln(deps.Stderr, advisory)
	}
	fmt.Fprintln(deps.Stdout, deps.Renderer.RenderBasic(feature))
	return nil
}
