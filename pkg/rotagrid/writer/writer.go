// Package writer renders scoring template sheets to xlsx workbooks or CSV directories.
package writer

import (
	"fmt"
	"io"
)

// Writer writes the artifact consisting of the sheets created with NewSheet.
// Nothing is visible at the destination until Close commits the artifact;
// Abort discards everything written so far.
type Writer interface {
	io.Closer
	NewSheet(name string, cols []Column) (Sheet, error)
	Abort() error
	// Files lists the paths written by a successful Close.
	Files() []string
}

// Sheet receives rows in order.
type Sheet interface {
	AppendRow(values ...any) error
}

// Style is a style for a column header or the column's data cells.
type Style struct {
	// FontBold is true if the font is bold
	FontBold bool
	// FontColor is an RGB hex color, e.g. "FFFFFF"
	FontColor string
	// Fill is an RGB hex background color
	Fill string
	// Center aligns the cell horizontally
	Center bool
	// Border draws a thin border around the cell
	Border bool
}

// Column contains the Name of the column, its width and the header's and column's style.
// A sheet whose columns are all unnamed gets no header row.
type Column struct {
	Name           string
	Width          float64
	Header, Column Style
}

// Title is a cell value rendered as the sheet title.
type Title string

// Heading is a cell value rendered as a section heading.
type Heading string

func hasHeader(cols []Column) bool {
	for _, c := range cols {
		if c.Name != "" {
			return true
		}
	}
	return false
}

func headerRow(cols []Column) []any {
	row := make([]any, len(cols))
	for i, c := range cols {
		row[i] = c.Name
	}
	return row
}

// cellString converts a row value to its plain text form.
func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case Title:
		return string(x)
	case Heading:
		return string(x)
	default:
		return fmt.Sprint(x)
	}
}
