// Package rotagrid generates rotation comparison scoring templates.
package rotagrid

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/rotagrid/pkg/rotagrid/writer"
	"go.uber.org/zap"
)

// Format represents the output format.
type Format string

const (
	// FormatWorkbook writes a single multi-sheet xlsx file.
	FormatWorkbook Format = "workbook"
	// FormatDelimited writes a directory with one CSV file per sheet.
	FormatDelimited Format = "delimited-text"
)

// DefaultOutput is the default workbook path.
const DefaultOutput = "rotation_comparison.xlsx"

// ParseFormat parses a format name. "excel" and "xlsx" are accepted for
// workbook, "csv" for delimited text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "workbook", "excel", "xlsx":
		return FormatWorkbook, nil
	case "delimited-text", "delimited", "csv":
		return FormatDelimited, nil
	default:
		return "", fmt.Errorf("%w: %s (must be workbook or delimited-text)", ErrInvalidFormat, s)
	}
}

// DefaultFormat returns workbook when the capability is available,
// delimited text otherwise.
func DefaultFormat(c writer.Capability) Format {
	if c.Available() {
		return FormatWorkbook
	}
	return FormatDelimited
}

// Options configures generation.
type Options struct {
	// Output is the workbook path. Delimited text goes to <dir>/<stem>_csv/.
	Output string
	// Format selects the artifact layout. Empty means DefaultFormat(Capability).
	Format Format
	// Capability decides whether workbooks can be written.
	// If nil, writer.DetectCapability() is used.
	Capability *writer.Capability
	// Logger receives progress and fallback notices. Nil discards them.
	Logger *zap.Logger
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		Output: DefaultOutput,
	}
}

func (o Options) capability() writer.Capability {
	if o.Capability != nil {
		return *o.Capability
	}
	return writer.DetectCapability()
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

// CSVDir returns the directory used for delimited text output:
// the output's stem plus "_csv", beside the output path.
func CSVDir(output string) string {
	base := filepath.Base(output)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(output), stem+"_csv")
}
