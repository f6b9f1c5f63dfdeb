package rotagrid

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/rotagrid/pkg/rotagrid/writer"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"workbook", FormatWorkbook},
		{"excel", FormatWorkbook},
		{"XLSX", FormatWorkbook},
		{"delimited-text", FormatDelimited},
		{"csv", FormatDelimited},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		assert.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, got, tt.input)
	}

	_, err := ParseFormat("pdf")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestDefaultFormat(t *testing.T) {
	assert.Equal(t, FormatDelimited, DefaultFormat(writer.Unavailable()))
	assert.Equal(t, FormatWorkbook, DefaultFormat(*workbookCapability()))
}

func TestCSVDir(t *testing.T) {
	assert.Equal(t, "rotation_comparison_csv", CSVDir("rotation_comparison.xlsx"))
	assert.Equal(t, filepath.Join("out", "report_csv"), CSVDir(filepath.Join("out", "report.xlsx")))
	assert.Equal(t, "noext_csv", CSVDir("noext"))
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, DefaultOutput, opts.Output)
	assert.NotNil(t, opts.logger())
}

func TestWriteError(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("generate: %w", NewWriteError("out.xlsx", "commit", cause))

	assert.ErrorIs(t, err, cause)
	var werr *WriteError
	assert.True(t, errors.As(err, &werr))
	assert.Equal(t, "write error for out.xlsx (commit): disk full", werr.Error())
}
