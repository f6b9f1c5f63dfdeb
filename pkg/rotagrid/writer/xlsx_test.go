package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	w, err := NewXLSX(path, WithTitle("Rotation Comparison"))
	require.NoError(t, err)

	summary, err := w.NewSheet("Summary", []Column{{Width: 15}, {Width: 70}})
	require.NoError(t, err)
	require.NoError(t, summary.AppendRow(Title("Rotation Comparison - Summary")))
	require.NoError(t, summary.AppendRow())
	require.NoError(t, summary.AppendRow(Heading("Sources Being Compared:")))

	cols := []Column{
		{Name: "Spec", Width: 20, Header: Style{FontBold: true}, Column: Style{Border: true}},
		{Name: "Source", Width: 15, Header: Style{FontBold: true}, Column: Style{Border: true}},
		{Name: "Notes", Width: 40, Header: Style{FontBold: true}, Column: Style{Border: true}},
	}
	grid, err := w.NewSheet("Death Knight", cols)
	require.NoError(t, err)
	require.NoError(t, grid.AppendRow("Blood", "Wowhead", ""))
	require.NoError(t, grid.AppendRow("Frost", "Wowhead", ""))

	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err), "workbook must not exist before Close")

	require.NoError(t, w.Close())
	assert.Equal(t, []string{path}, w.Files())

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Death Knight"}, f.GetSheetList())

	rows, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Rotation Comparison - Summary", rows[0][0])
	assert.Empty(t, rows[1])
	assert.Equal(t, "Sources Being Compared:", rows[2][0])

	rows, err = f.GetRows("Death Knight")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Spec", "Source", "Notes"}, rows[0])
	assert.Equal(t, []string{"Blood", "Wowhead"}, rows[1])

	width, err := f.GetColWidth("Death Knight", "A")
	require.NoError(t, err)
	assert.Equal(t, 20.0, width)

	var printArea string
	for _, dn := range f.GetDefinedName() {
		if dn.Name == "_xlnm.Print_Area" && dn.Scope == "Death Knight" {
			printArea = dn.RefersTo
		}
	}
	assert.Equal(t, "'Death Knight'!$A$1:$C$3", printArea)

	props, err := f.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, "Rotation Comparison", props.Title)
}

func TestXLSXWriterDuplicateSheet(t *testing.T) {
	w, err := NewXLSX(filepath.Join(t.TempDir(), "out.xlsx"))
	require.NoError(t, err)
	defer w.Abort()

	_, err = w.NewSheet("Rogue", nil)
	require.NoError(t, err)
	_, err = w.NewSheet("ROGUE", nil)
	assert.Error(t, err)
}

func TestXLSXWriterMissingParent(t *testing.T) {
	root := t.TempDir()
	w, err := NewXLSX(filepath.Join(root, "missing", "out.xlsx"))
	require.NoError(t, err)
	_, err = w.NewSheet("Rogue", nil)
	require.NoError(t, err)

	require.Error(t, w.Close())
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestXLSXWriterAbort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	w, err := NewXLSX(path)
	require.NoError(t, err)
	_, err = w.NewSheet("Rogue", nil)
	require.NoError(t, err)

	require.NoError(t, w.Abort())
	require.NoError(t, w.Close())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestXLSXWriterEmptyPath(t *testing.T) {
	_, err := NewXLSX("")
	assert.Error(t, err)
}

func TestCapability(t *testing.T) {
	assert.False(t, Unavailable().Available())
	assert.False(t, Capability{}.Available())

	_, ok := Unavailable().Factory()
	assert.False(t, ok)

	c := Available(func(path string, opts ...Option) (Writer, error) {
		return NewCSV(path, opts...)
	})
	factory, ok := c.Factory()
	require.True(t, ok)
	w, err := factory(filepath.Join(t.TempDir(), "x"))
	require.NoError(t, err)
	assert.IsType(t, &CSVWriter{}, w)
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "", cellString(nil))
	assert.Equal(t, "x", cellString(Title("x")))
	assert.Equal(t, "y", cellString(Heading("y")))
	assert.Equal(t, "5", cellString(5))
}
