package parser

import (
	"strconv"

	"github.com/ukaji3/rotagrid/pkg/rotagrid/models"
	"github.com/xuri/excelize/v2"
)

// ExtractGrid reads one sheet of a workbook.
// For a grid sheet the first non-empty row becomes the header and every
// following row is padded to the header width; blank rows are dropped.
func ExtractGrid(f *excelize.File, sheetName string) (models.SheetGrid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.SheetGrid{}, err
	}

	kind := models.SheetGridKind
	if sheetName == models.SummarySheet {
		kind = models.SheetSummary
	}
	return buildGrid(sheetName, kind, rows), nil
}

func buildGrid(name string, kind models.SheetKind, rows [][]string) models.SheetGrid {
	grid := models.SheetGrid{
		Name:  name,
		Kind:  kind,
		Range: DataRange(rows),
		Rows:  [][]string{},
	}

	for _, row := range rows {
		if isBlank(row) {
			continue
		}
		if kind == models.SheetGridKind && grid.Header == nil {
			grid.Header = trimTrailing(row)
			continue
		}
		if kind == models.SheetGridKind {
			row = pad(row, len(grid.Header))
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

func trimTrailing(row []string) []string {
	n := len(row)
	for n > 0 && row[n-1] == "" {
		n--
	}
	return row[:n]
}

// pad extends row with empty cells up to width.
func pad(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	out := make([]string, width)
	copy(out, row)
	return out
}

// ParseValue attempts to parse a filled-in score as a number.
// Returns int64 for integers, float64 for decimals, or the original string
// (e.g. "Pass").
func ParseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
