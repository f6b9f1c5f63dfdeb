package writer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const defaultSheet = "Sheet1"

// XLSXWriter builds a workbook in memory and saves it on Close.
type XLSXWriter struct {
	path   string
	file   *excelize.File
	opts   options
	sheets []*xlsxSheet
	styles map[Style]int
	title  int
	files  []string
	done   bool
}

type xlsxSheet struct {
	w      *XLSXWriter
	name   string
	cols   []Column
	header bool
	row    int
	maxCol int
}

// NewXLSX returns a writer that saves a workbook to path.
func NewXLSX(path string, opts ...Option) (*XLSXWriter, error) {
	if path == "" {
		return nil, errors.New("empty workbook path")
	}
	return &XLSXWriter{
		path:   path,
		file:   excelize.NewFile(),
		opts:   buildOptions(opts),
		styles: make(map[Style]int),
	}, nil
}

// NewSheet adds a sheet. The first sheet replaces the default one of a new workbook.
func (w *XLSXWriter) NewSheet(name string, cols []Column) (Sheet, error) {
	if w.done {
		return nil, errors.New("workbook already closed")
	}
	for _, sh := range w.sheets {
		if strings.EqualFold(sh.name, name) {
			return nil, fmt.Errorf("duplicate sheet %q", name)
		}
	}

	if len(w.sheets) == 0 {
		if err := w.file.SetSheetName(defaultSheet, name); err != nil {
			return nil, err
		}
	} else if _, err := w.file.NewSheet(name); err != nil {
		return nil, err
	}

	sh := &xlsxSheet{w: w, name: name, cols: cols, header: hasHeader(cols)}
	w.sheets = append(w.sheets, sh)

	for i, c := range cols {
		if c.Width <= 0 {
			continue
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := w.file.SetColWidth(name, col, col, c.Width); err != nil {
			return nil, err
		}
	}

	if sh.header {
		if err := sh.writeRow(headerRow(cols), func(i int) Style { return cols[i].Header }); err != nil {
			return nil, err
		}
		if err := w.file.SetPanes(name, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return nil, err
		}
	}

	w.opts.logger.Debug("sheet added", zap.String("sheet", name), zap.Int("columns", len(cols)))
	return sh, nil
}

// AppendRow writes values into the next row. An empty call leaves a blank row.
func (s *xlsxSheet) AppendRow(values ...any) error {
	return s.writeRow(values, func(i int) Style {
		if i < len(s.cols) {
			return s.cols[i].Column
		}
		return Style{}
	})
}

func (s *xlsxSheet) writeRow(values []any, styleOf func(int) Style) error {
	s.row++
	if len(values) == 0 {
		return nil
	}

	cell, err := excelize.CoordinatesToCellName(1, s.row)
	if err != nil {
		return err
	}
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = cellString(v)
	}
	if err := s.w.file.SetSheetRow(s.name, cell, &row); err != nil {
		return err
	}

	for i, v := range values {
		var id int
		switch v.(type) {
		case Title:
			id, err = s.w.titleStyle()
		case Heading:
			id, err = s.w.styleID(Style{FontBold: true})
		default:
			st := styleOf(i)
			if st == (Style{}) {
				continue
			}
			id, err = s.w.styleID(st)
		}
		if err != nil {
			return err
		}
		ref, _ := excelize.CoordinatesToCellName(i+1, s.row)
		if err := s.w.file.SetCellStyle(s.name, ref, ref, id); err != nil {
			return err
		}
	}

	if len(values) > s.maxCol {
		s.maxCol = len(values)
	}
	return nil
}

// finish adds the autofilter and print area of a grid sheet.
func (s *xlsxSheet) finish() error {
	if !s.header || s.maxCol == 0 {
		return nil
	}
	end, err := excelize.CoordinatesToCellName(s.maxCol, s.row)
	if err != nil {
		return err
	}
	if err := s.w.file.AutoFilter(s.name, "A1:"+end, nil); err != nil {
		return err
	}
	absEnd, _ := excelize.CoordinatesToCellName(s.maxCol, s.row, true)
	return s.w.file.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: fmt.Sprintf("'%s'!$A$1:%s", s.name, absEnd),
		Scope:    s.name,
	})
}

func (w *XLSXWriter) titleStyle() (int, error) {
	if w.title != 0 {
		return w.title, nil
	}
	id, err := w.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return 0, err
	}
	w.title = id
	return id, nil
}

func (w *XLSXWriter) styleID(s Style) (int, error) {
	if id, ok := w.styles[s]; ok {
		return id, nil
	}

	st := &excelize.Style{}
	if s.FontBold || s.FontColor != "" {
		st.Font = &excelize.Font{Bold: s.FontBold, Color: s.FontColor}
	}
	if s.Fill != "" {
		st.Fill = excelize.Fill{Type: "pattern", Color: []string{s.Fill}, Pattern: 1}
	}
	if s.Center {
		st.Alignment = &excelize.Alignment{Horizontal: "center"}
	}
	if s.Border {
		st.Border = []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		}
	}

	id, err := w.file.NewStyle(st)
	if err != nil {
		return 0, err
	}
	w.styles[s] = id
	return id, nil
}

// Close finalizes the sheets and replaces the file at the target path.
// The workbook is written to a temp file in the same directory first,
// so a failed save leaves any previous workbook untouched.
func (w *XLSXWriter) Close() error {
	if w.done {
		return nil
	}
	w.done = true
	defer w.file.Close()

	if len(w.sheets) == 0 {
		return errors.New("workbook has no sheets")
	}
	for _, s := range w.sheets {
		if err := s.finish(); err != nil {
			return fmt.Errorf("sheet %q: %w", s.name, err)
		}
	}
	w.file.SetActiveSheet(0)
	if err := w.file.SetDocProps(&excelize.DocProperties{
		Title:   w.opts.title,
		Creator: "rotagrid",
	}); err != nil {
		return err
	}

	if err := w.save(); err != nil {
		return err
	}
	w.files = []string{w.path}
	w.opts.logger.Info("workbook saved", zap.String("path", w.path), zap.Int("sheets", len(w.sheets)))
	return nil
}

func (w *XLSXWriter) save() error {
	tmp, err := os.CreateTemp(filepath.Dir(w.path), ".rotagrid-*.xlsx")
	if err != nil {
		return err
	}
	success := false
	defer func() {
		if !success {
			os.Remove(tmp.Name())
		}
	}()

	if _, err := w.file.WriteTo(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), w.path); err != nil {
		return err
	}

	success = true
	return nil
}

// Abort discards the workbook without writing anything.
func (w *XLSXWriter) Abort() error {
	if w.done {
		return nil
	}
	w.done = true
	return w.file.Close()
}

// Files returns the saved workbook path after a successful Close.
func (w *XLSXWriter) Files() []string {
	return w.files
}
