package models

// SheetKind distinguishes the overview from category grids.
type SheetKind string

const (
	// SheetSummary is the free-form overview sheet.
	SheetSummary SheetKind = "summary"
	// SheetGridKind is a category grid with a header row.
	SheetGridKind SheetKind = "grid"
)

// SheetGrid is the content of one sheet (or CSV file) read back from an artifact.
type SheetGrid struct {
	// Name is the sheet name, or the CSV file name without extension.
	Name string `json:"name"`
	// Kind tells whether Header is meaningful.
	Kind SheetKind `json:"kind"`
	// Header is the first non-empty row of a grid sheet.
	Header []string `json:"header,omitempty"`
	// Rows are the rows below the header, padded to header width.
	// For the summary every non-empty row is kept as-is.
	Rows [][]string `json:"rows"`
	// Range is the bounding cell range of all data (e.g. "A1:G19").
	Range string `json:"range,omitempty"`
	// PrintAreas contains user-defined print areas (workbook only).
	PrintAreas []PrintArea `json:"print_areas,omitempty"`
}
