// Package models defines the taxonomy and grid structures of a scoring template.
package models

// Header labels of the fixed grid columns.
const (
	HeaderSubcategory = "Spec"
	HeaderSource      = "Source"
	HeaderType        = "Type"
	HeaderNotes       = "Notes"
)

// SummarySheet is the name of the overview sheet.
const SummarySheet = "Summary"

// Category is a top-level grouping (a class) with its ordered subcategories (specs).
type Category struct {
	Name          string   `yaml:"name" json:"name"`
	Subcategories []string `yaml:"subcategories" json:"subcategories"`
}

// RotationType is a rotation kind such as single target or area of effect.
type RotationType struct {
	// Code is the short form written into grid rows (e.g. "ST").
	Code string `yaml:"code" json:"code"`
	// Label is the long form shown in the overview legend.
	Label string `yaml:"label,omitempty" json:"label,omitempty"`
}

// ScoreLevel is one line of the scoring guide.
type ScoreLevel struct {
	Score       string `yaml:"score" json:"score"`
	Description string `yaml:"description" json:"description"`
}

// Taxonomy is the full static input of a scoring template.
// It is built once and treated as read-only afterwards.
type Taxonomy struct {
	// Title is the overview sheet heading.
	Title string `yaml:"title" json:"title"`
	// Categories are enumerated in order, one sheet each.
	Categories []Category `yaml:"categories" json:"categories"`
	// Sources are the rotation sources being compared.
	Sources []string `yaml:"sources" json:"sources"`
	// RotationTypes are the rotation kinds enumerated per source.
	RotationTypes []RotationType `yaml:"rotation_types" json:"rotation_types"`
	// Evaluators get one blank scoring column each.
	Evaluators []string `yaml:"evaluators" json:"evaluators"`
	// ScoringGuide is the legend printed on the overview.
	ScoringGuide []ScoreLevel `yaml:"scoring_guide,omitempty" json:"scoring_guide,omitempty"`
	// FailureChecklist lists known failure points to check while scoring.
	FailureChecklist []string `yaml:"failure_checklist,omitempty" json:"failure_checklist,omitempty"`
}

// Header returns the grid header row: subcategory, source, type,
// one column per evaluator, notes.
func (t *Taxonomy) Header() []string {
	header := make([]string, 0, 4+len(t.Evaluators))
	header = append(header, HeaderSubcategory, HeaderSource, HeaderType)
	header = append(header, t.Evaluators...)
	return append(header, HeaderNotes)
}

// RowCount returns the number of data rows of a category sheet.
func (t *Taxonomy) RowCount(c Category) int {
	return len(c.Subcategories) * len(t.Sources) * len(t.RotationTypes)
}

// Rows enumerates the grid rows of a category in subcategory, source,
// rotation type order. Every score and the notes cell are blank.
func (t *Taxonomy) Rows(c Category) []GridRow {
	rows := make([]GridRow, 0, t.RowCount(c))
	for _, sub := range c.Subcategories {
		for _, source := range t.Sources {
			for _, rt := range t.RotationTypes {
				rows = append(rows, GridRow{
					Category:     c.Name,
					Subcategory:  sub,
					Source:       source,
					RotationType: rt.Code,
					Scores:       make([]string, len(t.Evaluators)),
				})
			}
		}
	}
	return rows
}

// Category looks up a category by name.
func (t *Taxonomy) Category(name string) (Category, bool) {
	for _, c := range t.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// Keys returns every (category, subcategory, source, rotation type) tuple
// of the taxonomy in enumeration order.
func (t *Taxonomy) Keys() []RowKey {
	var keys []RowKey
	for _, c := range t.Categories {
		for _, row := range t.Rows(c) {
			keys = append(keys, row.Key())
		}
	}
	return keys
}
