package catalog

import "fmt"

// Guide is one self-contained learning guide: prose overview, a concept
// checklist, reference tables, and a self-quiz. Guides are immutable after
// Load; nothing in the app mutates catalog data at runtime.
type Guide struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Tagline  string `yaml:"tagline"`
	Overview string `yaml:"overview"`

	Categories []ConceptCategory `yaml:"categories"`
	Tools      []ToolRow         `yaml:"tools"`
	Risks      []RiskRow         `yaml:"risks"`
	Questions  []QuizQuestion    `yaml:"questions"`

	// totalItems is counted once at load time. It is the fixed
	// denominator of the completion ratio, independent of checklist state.
	totalItems int
}

// ConceptCategory groups related checkable concept statements.
type ConceptCategory struct {
	ID       string   `yaml:"id"`
	Category string   `yaml:"category"`
	Items    []string `yaml:"items"`
}

// QuizQuestion is a single multiple-choice question. CorrectIndex is a
// zero-based index into Options.
type QuizQuestion struct {
	Prompt       string   `yaml:"prompt"`
	Options      []string `yaml:"options"`
	CorrectIndex int      `yaml:"correct"`
}

// ToolRow is a read-only row in a guide's tool-comparison table.
type ToolRow struct {
	Name     string `yaml:"name"`
	Score    string `yaml:"score"`
	Strength string `yaml:"strength"`
	Caveat   string `yaml:"caveat"`
}

// RiskRow is a read-only row in a guide's risk table.
type RiskRow struct {
	Name     string `yaml:"name"`
	Severity string `yaml:"severity"`
	Detail   string `yaml:"detail"`
}

// TotalItems returns the number of concept items across all categories,
// fixed at load time.
func (g *Guide) TotalItems() int {
	return g.totalItems
}

// ItemKey returns the checklist key for one concept item. The key space is
// "<categoryID>-<itemIndex>"; the progress tracker stores checklist state
// under these keys but never validates against them.
func ItemKey(categoryID string, itemIndex int) string {
	return fmt.Sprintf("%s-%d", categoryID, itemIndex)
}

// Catalog holds every guide shipped with the binary, in authored order.
type Catalog struct {
	Guides []Guide
}

// Get returns the guide with the given ID.
func (c *Catalog) Get(id string) (*Guide, bool) {
	for i := range c.Guides {
		if c.Guides[i].ID == id {
			return &c.Guides[i], true
		}
	}
	return nil, false
}
