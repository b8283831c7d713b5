// Package caniuse provides a terminal client for caniuse.com. It resolves a
// free-text query against the site's search, extracts structured browser
// compatibility data from uncontrolled HTML markup, and presents it either
// as static text or as an interactive terminal view.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, bubbletea/).
package caniuse

// Version is the client version reported in the User-Agent header and the
// --version flag. Overridden at build time via -ldflags.
var Version = "0.3.0"

// BaseURL is the root of the compatibility-data site.
const BaseURL = "https://caniuse.com"
