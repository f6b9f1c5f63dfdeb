package models

// RowKey identifies a grid row.
type RowKey struct {
	Category     string `json:"category"`
	Subcategory  string `json:"subcategory"`
	Source       string `json:"source"`
	RotationType string `json:"rotation_type"`
}

// GridRow is one enumerated row of a category sheet.
type GridRow struct {
	Category     string `json:"category"`
	Subcategory  string `json:"subcategory"`
	Source       string `json:"source"`
	RotationType string `json:"rotation_type"`
	// Scores holds one cell per evaluator, in taxonomy order.
	Scores []string `json:"scores"`
	Notes  string   `json:"notes"`
}

// Key returns the identifying tuple of the row.
func (r GridRow) Key() RowKey {
	return RowKey{
		Category:     r.Category,
		Subcategory:  r.Subcategory,
		Source:       r.Source,
		RotationType: r.RotationType,
	}
}

// Cells returns the row as sheet cell values, without the category.
func (r GridRow) Cells() []string {
	cells := make([]string, 0, 4+len(r.Scores))
	cells = append(cells, r.Subcategory, r.Source, r.RotationType)
	cells = append(cells, r.Scores...)
	return append(cells, r.Notes)
}

// Blank reports whether no score or note has been filled in.
func (r GridRow) Blank() bool {
	if r.Notes != "" {
		return false
	}
	for _, s := range r.Scores {
		if s != "" {
			return false
		}
	}
	return true
}
