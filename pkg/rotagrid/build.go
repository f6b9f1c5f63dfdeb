package rotagrid

import (
	"fmt"

	"github.com/ukaji3/rotagrid/pkg/rotagrid/models"
	"github.com/ukaji3/rotagrid/pkg/rotagrid/writer"
)

// Column widths of the generated sheets.
const (
	widthLabel       = 15
	widthDescription = 70
	widthSubcategory = 20
	widthSource      = 15
	widthType        = 10
	widthEvaluator   = 18
	widthNotes       = 40
)

var (
	headerStyle = writer.Style{FontBold: true, FontColor: "FFFFFF", Fill: "4472C4", Center: true, Border: true}
	cellStyle   = writer.Style{Border: true}
)

// BuildOverview writes the Summary sheet: evaluators, sources, rotation
// types, the scoring guide and the failure checklist.
func BuildOverview(w writer.Writer, t *models.Taxonomy) error {
	sheet, err := w.NewSheet(models.SummarySheet, []writer.Column{
		{Width: widthLabel},
		{Width: widthDescription},
	})
	if err != nil {
		return err
	}

	rows := [][]any{
		{writer.Title(t.Title)},
		{},
		{"LLMs Being Compared:"},
	}
	rows = append(rows, bullets(t.Evaluators)...)
	rows = append(rows, []any{}, []any{"Sources Being Compared:"})
	rows = append(rows, bullets(t.Sources)...)

	rows = append(rows, []any{}, []any{"Rotation Types:"})
	for _, rt := range t.RotationTypes {
		item := rt.Code
		if rt.Label != "" {
			item = fmt.Sprintf("%s (%s)", rt.Code, rt.Label)
		}
		rows = append(rows, []any{"  - " + item})
	}

	if len(t.ScoringGuide) > 0 {
		rows = append(rows, []any{}, []any{writer.Heading("Scoring Guide (1-5 or Pass/Fail):")})
		for _, level := range t.ScoringGuide {
			rows = append(rows, []any{level.Score, level.Description})
		}
	}

	if len(t.FailureChecklist) > 0 {
		rows = append(rows, []any{}, []any{writer.Heading("Common Failure Points to Check:")})
		rows = append(rows, bullets(t.FailureChecklist)...)
	}

	for _, row := range rows {
		if err := sheet.AppendRow(row...); err != nil {
			return err
		}
	}
	return nil
}

func bullets(items []string) [][]any {
	rows := make([][]any, len(items))
	for i, item := range items {
		rows[i] = []any{"  - " + item}
	}
	return rows
}

// BuildCategorySheet writes the grid of one category: a header row and one
// blank scoring row per subcategory, source and rotation type.
// It returns the number of data rows written.
func BuildCategorySheet(w writer.Writer, t *models.Taxonomy, c models.Category) (int, error) {
	sheet, err := w.NewSheet(c.Name, gridColumns(t))
	if err != nil {
		return 0, err
	}

	rows := t.Rows(c)
	for _, row := range rows {
		cells := row.Cells()
		values := make([]any, len(cells))
		for i, v := range cells {
			values[i] = v
		}
		if err := sheet.AppendRow(values...); err != nil {
			return 0, err
		}
	}
	return len(rows), nil
}

func gridColumns(t *models.Taxonomy) []writer.Column {
	header := t.Header()
	cols := make([]writer.Column, len(header))
	for i, name := range header {
		width := float64(widthEvaluator)
		switch {
		case i == 0:
			width = widthSubcategory
		case i == 1:
			width = widthSource
		case i == 2:
			width = widthType
		case i == len(header)-1:
			width = widthNotes
		}
		cols[i] = writer.Column{Name: name, Width: width, Header: headerStyle, Column: cellStyle}
	}
	return cols
}
