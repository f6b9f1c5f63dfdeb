package rotagrid

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/ukaji3/rotagrid/pkg/rotagrid/models"
	"github.com/ukaji3/rotagrid/pkg/rotagrid/parser"
	"github.com/ukaji3/rotagrid/pkg/rotagrid/writer"
)

// maxListed caps the number of tuples named per problem in a Verify error.
const maxListed = 5

// Inspect reads a generated artifact back. A directory is read as delimited
// text, anything else as a workbook.
func Inspect(path string) (*models.Artifact, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, err
	}

	art := &models.Artifact{Path: path}
	if info.IsDir() {
		art.Format = string(FormatDelimited)
		art.Sheets, err = parser.ReadCSVDir(path)
	} else {
		art.Format = string(FormatWorkbook)
		art.Sheets, err = parser.ReadWorkbook(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	return art, nil
}

// sheetCategory maps a sheet back to its category, by sheet name for
// workbooks and by file name for CSV directories.
func sheetCategory(t *models.Taxonomy, sheet string) (models.Category, bool) {
	if c, ok := t.Category(sheet); ok {
		return c, true
	}
	for _, c := range t.Categories {
		if strings.TrimSuffix(writer.FileName(c.Name), ".csv") == sheet {
			return c, true
		}
	}
	return models.Category{}, false
}

// Recover returns the grid rows of every category sheet in artifact order.
// Columns are located by header name, so reordered columns are tolerated.
func Recover(art *models.Artifact, t *models.Taxonomy) ([]models.GridRow, error) {
	var rows []models.GridRow
	for _, sheet := range art.Sheets {
		if sheet.Kind != models.SheetGridKind {
			continue
		}
		c, ok := sheetCategory(t, sheet.Name)
		if !ok {
			return nil, fmt.Errorf("%w: sheet %q matches no category", ErrMismatch, sheet.Name)
		}

		index := make(map[string]int, len(sheet.Header))
		for i, name := range sheet.Header {
			index[name] = i
		}
		for _, name := range t.Header() {
			if _, ok := index[name]; !ok {
				return nil, fmt.Errorf("%w: sheet %q has no %q column", ErrMismatch, sheet.Name, name)
			}
		}

		for _, cells := range sheet.Rows {
			row := models.GridRow{
				Category:     c.Name,
				Subcategory:  cells[index[models.HeaderSubcategory]],
				Source:       cells[index[models.HeaderSource]],
				RotationType: cells[index[models.HeaderType]],
				Scores:       make([]string, len(t.Evaluators)),
				Notes:        cells[index[models.HeaderNotes]],
			}
			for i, e := range t.Evaluators {
				row.Scores[i] = cells[index[e]]
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// Verify checks that art holds exactly one sheet per category, a summary,
// and exactly the rows the taxonomy enumerates: no duplicates, no omissions.
func Verify(art *models.Artifact, t *models.Taxonomy) error {
	var problems []string

	sheets := make(map[string]int)
	summaries := 0
	for _, sheet := range art.Sheets {
		if sheet.Kind == models.SheetSummary {
			summaries++
			continue
		}
		c, ok := sheetCategory(t, sheet.Name)
		if !ok {
			continue
		}
		sheets[c.Name]++
		if !slices.Equal(sheet.Header, t.Header()) {
			problems = append(problems, fmt.Sprintf("sheet %q header %q, expected %q", sheet.Name, sheet.Header, t.Header()))
		}
		problems = append(problems, checkPrintArea(sheet)...)
	}
	if summaries != 1 {
		problems = append(problems, fmt.Sprintf("%d summary sheets, expected 1", summaries))
	}
	for _, c := range t.Categories {
		if n := sheets[c.Name]; n != 1 {
			problems = append(problems, fmt.Sprintf("category %q has %d sheets, expected 1", c.Name, n))
		}
	}

	rows, err := Recover(art, t)
	if err != nil {
		return err
	}

	seen := make(map[models.RowKey]int, len(rows))
	for _, r := range rows {
		seen[r.Key()]++
	}
	expected := make(map[models.RowKey]bool)
	var missing, duplicate, unexpected []models.RowKey
	for _, k := range t.Keys() {
		expected[k] = true
		switch n := seen[k]; {
		case n == 0:
			missing = append(missing, k)
		case n > 1:
			duplicate = append(duplicate, k)
		}
	}
	for _, r := range rows {
		if k := r.Key(); !expected[k] {
			unexpected = append(unexpected, k)
		}
	}
	problems = appendKeys(problems, "missing", missing)
	problems = appendKeys(problems, "duplicate", duplicate)
	problems = appendKeys(problems, "unexpected", unexpected)

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrMismatch, strings.Join(problems, "; "))
	}
	return nil
}

// checkPrintArea reports a workbook print area that does not cover the grid.
func checkPrintArea(sheet models.SheetGrid) []string {
	if len(sheet.PrintAreas) == 0 || sheet.Range == "" {
		return nil
	}
	r1, c1, r2, c2, err := parser.RangeBounds(sheet.Range)
	if err != nil {
		return []string{fmt.Sprintf("sheet %q: %v", sheet.Name, err)}
	}
	for _, area := range sheet.PrintAreas {
		if area.Covers(r1, c1, r2, c2) {
			return nil
		}
	}
	return []string{fmt.Sprintf("sheet %q print area does not cover %s", sheet.Name, sheet.Range)}
}

func appendKeys(problems []string, what string, keys []models.RowKey) []string {
	if len(keys) == 0 {
		return problems
	}
	listed := make([]string, 0, maxListed)
	for i, k := range keys {
		if i == maxListed {
			listed = append(listed, fmt.Sprintf("and %d more", len(keys)-maxListed))
			break
		}
		listed = append(listed, fmt.Sprintf("%s/%s/%s/%s", k.Category, k.Subcategory, k.Source, k.RotationType))
	}
	return append(problems, fmt.Sprintf("%d %s rows (%s)", len(keys), what, strings.Join(listed, ", ")))
}
