package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/rotagrid/pkg/rotagrid/models"
	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// DataRange returns the bounding cell range of the non-empty cells,
// e.g. "A1:G19", or "" for an empty sheet.
func DataRange(rows [][]string) string {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return ""
	}

	startCell, _ := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	endCell, _ := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// findDataBounds finds the bounding box of non-empty cells (0-based).
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// ParseRange converts "A1:G19", "$A$1:$G$19" or "'Sheet'!$A$1:$G$19" to
// 1-based bounds. A sheet prefix is ignored.
func ParseRange(ref string) (models.PrintArea, error) {
	if i := strings.LastIndex(ref, "!"); i >= 0 {
		ref = ref[i+1:]
	}
	start, end, ok := strings.Cut(strings.ReplaceAll(ref, "$", ""), ":")
	if !ok {
		return models.PrintArea{}, fmt.Errorf("invalid range %q", ref)
	}
	c1, r1, err := excelize.CellNameToCoordinates(start)
	if err != nil {
		return models.PrintArea{}, err
	}
	c2, r2, err := excelize.CellNameToCoordinates(end)
	if err != nil {
		return models.PrintArea{}, err
	}
	return models.PrintArea{R1: r1, C1: c1, R2: r2, C2: c2}, nil
}

// RangeBounds converts a range like "A1:G19" to 1-based bounds.
func RangeBounds(ref string) (r1, c1, r2, c2 int, err error) {
	area, err := ParseRange(ref)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return area.R1, area.C1, area.R2, area.C2, nil
}

// PrintAreas maps sheet names to the print areas defined for them.
// Areas go to the sheet named in their reference, falling back to the
// defined name's scope. Unparseable references are skipped.
func PrintAreas(f *excelize.File) map[string][]models.PrintArea {
	areas := make(map[string][]models.PrintArea)
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		for _, ref := range strings.Split(dn.RefersTo, ",") {
			ref = strings.TrimSpace(ref)
			sheet := dn.Scope
			if i := strings.LastIndex(ref, "!"); i >= 0 {
				sheet = strings.Trim(ref[:i], "'")
			}
			if sheet == "" || sheet == "Workbook" {
				continue
			}
			area, err := ParseRange(ref)
			if err != nil {
				continue
			}
			areas[sheet] = append(areas[sheet], area)
		}
	}
	return areas
}
