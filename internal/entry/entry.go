// Package entry classifies raw parcel entry strings into typed launch targets.
package entry

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Kind identifies which launch target an Entry represents.
type Kind int

const (
	// KindApp is an application identifier, opened with platform
	// app-launch semantics. The fallback classification.
	KindApp Kind = iota

	// KindFile is a filesystem path (file or directory), tilde-expanded
	// at classification time.
	KindFile

	// KindURL is an absolute URI with an explicit scheme.
	KindURL

	// KindShell is a raw shell command. Shell entries execute arbitrary
	// code through the platform shell and are only produced when the
	// classifier's shell capability is enabled.
	KindShell
)

// Explicit entry markers recognized during classification.
const (
	shellMarker = "sh:"
	fileMarker  = "fs:"
)

// Entry is one launch target: an app name, a normalized file path, an
// absolute URL, or a shell command.
type Entry struct {
	Kind  Kind
	Value string
}

// String renders the entry in its display form: the string a user would
// type for the same target, except that File paths render normalized
// (tilde already expanded) and Shell commands render without the marker.
func (e Entry) String() string {
	return e.Value
}

// Classifier turns raw strings into Entries. The zero value classifies
// with the shell capability disabled and the real user home directory.
type Classifier struct {
	// AllowShell enables the sh: marker. Off by default: shell entries
	// execute arbitrary commands and require explicit opt-in.
	AllowShell bool

	// Home overrides the home directory used for tilde expansion.
	// Empty means os.UserHomeDir.
	Home string
}

// Classify maps a raw string to exactly one Entry. It is total: every
// input produces a variant, falling back to App. Rules are tried in
// order, first match wins:
//
//  1. sh: marker (only when AllowShell is set) -> Shell, marker stripped
//  2. fs: marker, or a leading ~ or / -> File, tilde expanded
//  3. parses as a URI with a scheme -> URL
//  4. anything else -> App
//
// A bare domain like "example.com" has no scheme and classifies as App;
// only scheme-qualified strings ("https://example.com") are URLs.
func (c Classifier) Classify(raw string) Entry {
	if c.AllowShell {
		if cmd, ok := strings.CutPrefix(raw, shellMarker); ok {
			return Entry{Kind: KindShell, Value: cmd}
		}
	}
	if path, ok := strings.CutPrefix(raw, fileMarker); ok {
		return Entry{Kind: KindFile, Value: c.expand(path)}
	}
	if strings.HasPrefix(raw, "~") || strings.HasPrefix(raw, "/") {
		return Entry{Kind: KindFile, Value: c.expand(raw)}
	}
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		return Entry{Kind: KindURL, Value: raw}
	}
	return Entry{Kind: KindApp, Value: raw}
}

// ClassifyAll classifies a parcel's raw entries in source order.
func (c Classifier) ClassifyAll(raws []string) []Entry {
	entries := make([]Entry, 0, len(raws))
	for _, raw := range raws {
		entries = append(entries, c.Classify(raw))
	}
	return entries
}

// expand normalizes a path-shaped string: "~" and "~/..." expand to the
// home directory, everything else is just cleaned. "~user" forms are
// left untouched apart from cleaning.
func (c Classifier) expand(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home := c.Home
		if home == "" {
			if h, err := os.UserHomeDir(); err == nil {
				home = h
			}
		}
		if home != "" {
			path = filepath.Join(home, path[1:])
		}
	}
	return filepath.Clean(path)
}
