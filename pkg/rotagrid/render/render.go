// Package render prints human-readable generation and verification reports.
package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/ukaji3/rotagrid/pkg/rotagrid"
	"github.com/ukaji3/rotagrid/pkg/rotagrid/models"
)

var (
	okStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	warnStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

// Result prints where a generated artifact was written.
func Result(w io.Writer, res *rotagrid.Result) {
	if res.FellBack {
		fmt.Fprintln(w, warnStyle.Render("Workbook writer not available, falling back to delimited text"))
	}

	if res.Format == rotagrid.FormatWorkbook {
		fmt.Fprintf(w, "%s %s\n", okStyle.Render("Workbook saved to:"), pathStyle.Render(res.Path))
	} else {
		for _, f := range res.Files {
			fmt.Fprintf(w, "%s %s\n", okStyle.Render("Created:"), pathStyle.Render(f))
		}
	}
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%d sheets, %d rows", res.Sheets, res.Rows)))
}

// Verified prints a successful verification summary.
func Verified(w io.Writer, art *models.Artifact, rows []models.GridRow) {
	blank := 0
	for _, r := range rows {
		if r.Blank() {
			blank++
		}
	}
	fmt.Fprintf(w, "%s %s\n", okStyle.Render("Verified:"), pathStyle.Render(art.Path))
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%d sheets, %d rows, %d scored", len(art.Sheets), len(rows), len(rows)-blank)))
}
