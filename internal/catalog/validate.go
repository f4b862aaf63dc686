package catalog

import (
	"fmt"
	"strings"
)

// maxQuestionOptions bounds the options of one question so every option
// can carry a single-letter label (A through Z) in the quiz renderers.
const maxQuestionOptions = 26

// validateGuide performs all structural checks on a single guide. Returns
// a combined error describing all problems found, or nil if valid.
func validateGuide(g *Guide) error {
	var errs []string

	if g.ID == "" {
		errs = append(errs, "missing guide id")
	}
	if g.Title == "" {
		errs = append(errs, "missing guide title")
	}
	if len(g.Categories) == 0 {
		errs = append(errs, "guide has no concept categories")
	}

	catIDs := make(map[string]bool, len(g.Categories))
	for _, c := range g.Categories {
		if c.ID == "" {
			errs = append(errs, fmt.Sprintf("category %q has no id", c.Category))
			continue
		}
		if catIDs[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate category id: %q", c.ID))
		}
		catIDs[c.ID] = true
		if len(c.Items) == 0 {
			// An empty category would make the completion denominator
			// misleading and, with no siblings, zero.
			errs = append(errs, fmt.Sprintf("category %q has no items", c.ID))
		}
	}

	for i, q := range g.Questions {
		if q.Prompt == "" {
			errs = append(errs, fmt.Sprintf("question %d has no prompt", i))
		}
		if len(q.Options) < 2 {
			errs = append(errs, fmt.Sprintf("question %d has %d options, need at least 2", i, len(q.Options)))
		}
		if len(q.Options) > maxQuestionOptions {
			errs = append(errs, fmt.Sprintf("question %d has %d options, at most %d allowed", i, len(q.Options), maxQuestionOptions))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			errs = append(errs, fmt.Sprintf("question %d: correct index %d out of range [0,%d)", i, q.CorrectIndex, len(q.Options)))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid guide: %s", strings.Join(errs, "; "))
	}
	return nil
}

// validateCatalog checks cross-guide constraints.
func validateCatalog(c *Catalog) error {
	seen := make(map[string]bool, len(c.Guides))
	for _, g := range c.Guides {
		if seen[g.ID] {
			return fmt.Errorf("duplicate guide id: %q", g.ID)
		}
		seen[g.ID] = true
	}
	if len(c.Guides) == 0 {
		return fmt.Errorf("catalog contains no guides")
	}
	return nil
}
