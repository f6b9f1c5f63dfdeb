package writer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/rotagrid/pkg/rotagrid/config"
	"github.com/ukaji3/rotagrid/pkg/rotagrid/models"
	"go.uber.org/zap"
)

// SummaryFile is the CSV file name of the overview sheet.
const SummaryFile = "_summary.csv"

// ErrNotDirectory is returned when the CSV output path exists but is not a directory.
var ErrNotDirectory = errors.New("output path exists and is not a directory")

// FileName returns the CSV file name of a sheet.
func FileName(sheet string) string {
	if sheet == models.SummarySheet {
		return SummaryFile
	}
	return config.Slug(sheet) + "_comparison.csv"
}

// CSVWriter buffers one CSV file per sheet and writes the directory on Close.
type CSVWriter struct {
	dir    string
	opts   options
	sheets []*csvSheet
	files  []string
	done   bool
}

type csvSheet struct {
	file string
	buf  bytes.Buffer
	w    *csv.Writer
}

// NewCSV returns a writer that produces the directory dir.
func NewCSV(dir string, opts ...Option) (*CSVWriter, error) {
	if dir == "" {
		return nil, errors.New("empty output directory")
	}
	return &CSVWriter{dir: dir, opts: buildOptions(opts)}, nil
}

// NewSheet adds a file to the directory.
func (w *CSVWriter) NewSheet(name string, cols []Column) (Sheet, error) {
	if w.done {
		return nil, errors.New("csv directory already closed")
	}
	file := FileName(name)
	for _, s := range w.sheets {
		if s.file == file {
			return nil, fmt.Errorf("sheet %q: duplicate file %s", name, file)
		}
	}

	s := &csvSheet{file: file}
	s.w = csv.NewWriter(&s.buf)
	w.sheets = append(w.sheets, s)

	if hasHeader(cols) {
		if err := s.AppendRow(headerRow(cols)...); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AppendRow writes one record. Title and Heading values are written as plain text.
func (s *csvSheet) AppendRow(values ...any) error {
	record := make([]string, len(values))
	for i, v := range values {
		record[i] = cellString(v)
	}
	return s.w.Write(record)
}

// Close writes every file into a temp directory beside the target and
// renames it into place, replacing any previous directory.
// If the parent directory is missing or unwritable nothing is created.
func (w *CSVWriter) Close() error {
	if w.done {
		return nil
	}
	w.done = true

	existing := false
	if fi, err := os.Lstat(w.dir); err == nil {
		if !fi.IsDir() {
			return fmt.Errorf("%s: %w", w.dir, ErrNotDirectory)
		}
		existing = true
	} else if !os.IsNotExist(err) {
		return err
	}

	tmp, err := os.MkdirTemp(filepath.Dir(w.dir), ".rotagrid-*")
	if err != nil {
		return err
	}
	success := false
	defer func() {
		if !success {
			os.RemoveAll(tmp)
		}
	}()

	for _, s := range w.sheets {
		s.w.Flush()
		if err := s.w.Error(); err != nil {
			return fmt.Errorf("%s: %w", s.file, err)
		}
		if err := os.WriteFile(filepath.Join(tmp, s.file), s.buf.Bytes(), 0644); err != nil {
			return err
		}
	}
	if err := os.Chmod(tmp, 0755); err != nil {
		return err
	}

	// The previous directory stays in place under a backup name until the
	// new one has been renamed over it.
	backup := tmp + ".old"
	if existing {
		if err := os.Rename(w.dir, backup); err != nil {
			return err
		}
	}
	if err := os.Rename(tmp, w.dir); err != nil {
		if existing {
			os.Rename(backup, w.dir)
		}
		return err
	}
	if existing {
		if err := os.RemoveAll(backup); err != nil {
			w.opts.logger.Warn("failed to remove previous output", zap.String("dir", backup), zap.Error(err))
		}
	}
	success = true

	for _, s := range w.sheets {
		path := filepath.Join(w.dir, s.file)
		w.files = append(w.files, path)
		w.opts.logger.Info("Created", zap.String("file", path))
	}
	return nil
}

// Abort drops the buffered files.
func (w *CSVWriter) Abort() error {
	w.done = true
	w.sheets = nil
	return nil
}

// Files returns the written file paths after a successful Close.
func (w *CSVWriter) Files() []string {
	return w.files
}
