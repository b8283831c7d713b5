package main

import (
	"context"
	"io"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/caniuse"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Pages caniuse.PageClient
	// API is optional: a nil API means search results come from page
	// scraping alone.
	API      caniuse.SearchAPI
	Search   caniuse.SearchParser
	Features caniuse.FeatureParser
	Renderer caniuse.Renderer

	// SelectFn resolves an ambiguous match list to a slug, normally by
	// running the interactive selector. Injectable for testing.
	SelectFn func(matches []caniuse.Match) (string, error)

	// ViewFn presents a full record, normally the full-screen viewer.
	// Injectable for testing.
	ViewFn func(f *caniuse.Feature, out io.Writer) error
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Query   []string         `arg:"" help:"Feature to look up (free text or exact slug)"`
	Full    bool             `help:"Full mode: all browsers plus Notes/Resources/Sub-features in an interactive view"`
	Timeout time.Duration    `default:"10s" help:"Request timeout"`
	Debug   bool             `help:"Log extraction diagnostics to stderr"`
	Version kong.VersionFlag `short:"v" help:"Print version and exit"`
}
