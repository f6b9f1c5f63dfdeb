// Package parser reads generated scoring templates back from disk.
package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ukaji3/rotagrid/pkg/rotagrid/models"
	"github.com/ukaji3/rotagrid/pkg/rotagrid/writer"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook reads every sheet of an xlsx file in workbook order.
func ReadWorkbook(path string) ([]models.SheetGrid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	printAreas := PrintAreas(f)

	var sheets []models.SheetGrid
	for _, name := range f.GetSheetList() {
		grid, err := ExtractGrid(f, name)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		grid.PrintAreas = printAreas[name]
		sheets = append(sheets, grid)
	}
	return sheets, nil
}

// ReadCSVDir reads every .csv file of dir in file name order.
// Sheet names are the file names without the .csv extension.
func ReadCSVDir(dir string) ([]models.SheetGrid, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var sheets []models.SheetGrid
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		rows, err := ParseCSV(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		kind := models.SheetGridKind
		if name == writer.SummaryFile {
			kind = models.SheetSummary
		}
		sheets = append(sheets, buildGrid(strings.TrimSuffix(name, filepath.Ext(name)), kind, rows))
	}
	return sheets, nil
}

// ParseCSV decodes CSV records of varying width.
func ParseCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	return r.ReadAll()
}
