package rotagrid

import (
	"fmt"

	"github.com/ukaji3/rotagrid/pkg/rotagrid/config"
	"github.com/ukaji3/rotagrid/pkg/rotagrid/models"
	"github.com/ukaji3/rotagrid/pkg/rotagrid/writer"
	"go.uber.org/zap"
)

// Result describes a generated artifact.
type Result struct {
	// Format is the format actually written.
	Format Format `json:"format"`
	// Path is the workbook file or the CSV directory.
	Path string `json:"path"`
	// Files lists every file written.
	Files []string `json:"files"`
	// Sheets counts the summary and the category sheets.
	Sheets int `json:"sheets"`
	// Rows counts the data rows over all category sheets.
	Rows int `json:"rows"`
	// FellBack is true when a workbook was requested but delimited text was written.
	FellBack bool `json:"fell_back,omitempty"`
}

// Generate writes the scoring template of t.
// If a workbook is requested and the capability is unavailable, it logs a
// notice and writes delimited text instead. Nothing is committed when any
// sheet fails.
func Generate(t *models.Taxonomy, opts Options) (*Result, error) {
	if err := config.Validate(t); err != nil {
		return nil, err
	}
	log := opts.logger()

	output := opts.Output
	if output == "" {
		output = DefaultOutput
	}
	capability := opts.capability()
	format := opts.Format
	if format == "" {
		format = DefaultFormat(capability)
	}

	res := &Result{Format: format}
	var factory writer.Factory
	switch format {
	case FormatWorkbook:
		var ok bool
		if factory, ok = capability.Factory(); !ok {
			log.Warn("workbook writer unavailable, falling back to delimited text",
				zap.String("dir", CSVDir(output)))
			res.Format = FormatDelimited
			res.FellBack = true
		}
	case FormatDelimited:
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, format)
	}

	var (
		w   writer.Writer
		err error
	)
	if res.Format == FormatWorkbook {
		res.Path = output
		w, err = factory(output, writer.WithLogger(log), writer.WithTitle(t.Title))
	} else {
		res.Path = CSVDir(output)
		w, err = writer.NewCSV(res.Path, writer.WithLogger(log))
	}
	if err != nil {
		return nil, NewWriteError(res.Path, "open", err)
	}

	if err := build(w, t, res, log); err != nil {
		w.Abort()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, NewWriteError(res.Path, "commit", err)
	}
	res.Files = w.Files()
	return res, nil
}

func build(w writer.Writer, t *models.Taxonomy, res *Result, log *zap.Logger) error {
	if err := BuildOverview(w, t); err != nil {
		return NewWriteError(res.Path, "summary", err)
	}
	res.Sheets++

	for _, c := range t.Categories {
		n, err := BuildCategorySheet(w, t, c)
		if err != nil {
			return NewWriteError(res.Path, "sheet", fmt.Errorf("%s: %w", c.Name, err))
		}
		log.Debug("category sheet built", zap.String("category", c.Name), zap.Int("rows", n))
		res.Sheets++
		res.Rows += n
	}
	return nil
}
