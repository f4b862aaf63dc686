package catalog

import (
	"embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Load parses and validates every embedded guide. Authoring errors are
// fatal here, at startup, so malformed content can never reach a render
// path (a bad correct-index or an empty category would otherwise surface
// as undefined UI behavior much later).
func Load() (*Catalog, error) {
	entries, err := dataFS.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("read embedded guide data: %w", err)
	}

	// Embedded FS order is already lexical, but sort anyway so the guide
	// list order never depends on embed internals.
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	cat := &Catalog{}
	for _, name := range names {
		raw, err := dataFS.ReadFile("data/" + name)
		if err != nil {
			return nil, fmt.Errorf("read guide %s: %w", name, err)
		}

		var g Guide
		if err := yaml.Unmarshal(raw, &g); err != nil {
			return nil, fmt.Errorf("parse guide %s: %w", name, err)
		}

		g, err = Prepare(g)
		if err != nil {
			return nil, fmt.Errorf("guide %s: %w", name, err)
		}

		cat.Guides = append(cat.Guides, g)
	}

	if err := validateCatalog(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// Prepare validates an authored guide and fixes its item total. Every
// guide must pass through here before use; Load does it for embedded
// data, tests do it for fixtures.
func Prepare(g Guide) (Guide, error) {
	if err := validateGuide(&g); err != nil {
		return Guide{}, err
	}
	g.totalItems = 0
	for _, c := range g.Categories {
		g.totalItems += len(c.Items)
	}
	return g, nil
}
