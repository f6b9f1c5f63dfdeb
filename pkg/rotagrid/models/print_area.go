package models

import "github.com/xuri/excelize/v2"

// PrintArea represents cell coordinate bounds for a print area.
type PrintArea struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Covers reports whether the area contains the given 1-based bounds.
func (p PrintArea) Covers(r1, c1, r2, c2 int) bool {
	return p.R1 <= r1 && p.C1 <= c1 && p.R2 >= r2 && p.C2 >= c2
}

// Ref returns the absolute range reference of the area, e.g. "$A$1:$G$19".
func (p PrintArea) Ref() string {
	start, _ := excelize.CoordinatesToCellName(p.C1, p.R1, true)
	end, _ := excelize.CoordinatesToCellName(p.C2, p.R2, true)
	return start + ":" + end
}
