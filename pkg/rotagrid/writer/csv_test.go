package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var testCols = []Column{{Name: "Spec"}, {Name: "Source"}, {Name: "Type"}, {Name: "A"}, {Name: "Notes"}}

func TestFileName(t *testing.T) {
	assert.Equal(t, "_summary.csv", FileName("Summary"))
	assert.Equal(t, "death_knight_comparison.csv", FileName("Death Knight"))
	assert.Equal(t, "rogue_comparison.csv", FileName("Rogue"))
}

func TestCSVWriter(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	dir := filepath.Join(t.TempDir(), "out_csv")

	w, err := NewCSV(dir, WithLogger(zap.New(core)))
	require.NoError(t, err)

	summary, err := w.NewSheet("Summary", []Column{{Width: 15}, {Width: 70}})
	require.NoError(t, err)
	require.NoError(t, summary.AppendRow(Title("Rotation Comparison - Summary")))
	require.NoError(t, summary.AppendRow())
	require.NoError(t, summary.AppendRow("4", "Good - Minor issues, mostly correct"))

	grid, err := w.NewSheet("Death Knight", testCols)
	require.NoError(t, err)
	require.NoError(t, grid.AppendRow("Blood", "Wowhead", "ST", "", ""))

	// Nothing is visible before Close.
	_, err = os.Stat(dir)
	require.True(t, os.IsNotExist(err))

	require.NoError(t, w.Close())

	data, err := os.ReadFile(filepath.Join(dir, "death_knight_comparison.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Spec,Source,Type,A,Notes\nBlood,Wowhead,ST,,\n", string(data))

	data, err = os.ReadFile(filepath.Join(dir, "_summary.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Rotation Comparison - Summary\n\n4,\"Good - Minor issues, mostly correct\"\n", string(data))

	assert.Equal(t, []string{
		filepath.Join(dir, "_summary.csv"),
		filepath.Join(dir, "death_knight_comparison.csv"),
	}, w.Files())
	assert.Equal(t, 2, logs.FilterMessage("Created").Len())
}

func TestCSVWriterReplacesDirectory(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "out_csv")
	require.NoError(t, os.MkdirAll(dir, 0755))
	stale := filepath.Join(dir, "stale_comparison.csv")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0644))

	w, err := NewCSV(dir)
	require.NoError(t, err)
	_, err = w.NewSheet("Rogue", testCols)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "rogue_comparison.csv"))
	assert.NoError(t, err)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out_csv", entries[0].Name())
}

func TestCSVWriterRefusesRegularFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "out_csv")
	require.NoError(t, os.WriteFile(path, []byte("precious"), 0644))

	w, err := NewCSV(path)
	require.NoError(t, err)
	_, err = w.NewSheet("Rogue", testCols)
	require.NoError(t, err)

	err = w.Close()
	require.ErrorIs(t, err, ErrNotDirectory)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "precious", string(data))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCSVWriterMissingParent(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "missing", "out_csv")

	w, err := NewCSV(dir)
	require.NoError(t, err)
	_, err = w.NewSheet("Rogue", testCols)
	require.NoError(t, err)
	require.Error(t, w.Close())

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCSVWriterReadOnlyParent(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	root := t.TempDir()
	parent := filepath.Join(root, "ro")
	require.NoError(t, os.Mkdir(parent, 0555))
	t.Cleanup(func() { os.Chmod(parent, 0755) })

	w, err := NewCSV(filepath.Join(parent, "out_csv"))
	require.NoError(t, err)
	_, err = w.NewSheet("Rogue", testCols)
	require.NoError(t, err)
	require.Error(t, w.Close())

	entries, err := os.ReadDir(parent)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCSVWriterDuplicateSheet(t *testing.T) {
	w, err := NewCSV(filepath.Join(t.TempDir(), "out_csv"))
	require.NoError(t, err)
	_, err = w.NewSheet("Death Knight", testCols)
	require.NoError(t, err)
	_, err = w.NewSheet("death knight", testCols)
	assert.Error(t, err)
}

func TestCSVWriterAbort(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out_csv")
	w, err := NewCSV(dir)
	require.NoError(t, err)
	_, err = w.NewSheet("Rogue", testCols)
	require.NoError(t, err)
	require.NoError(t, w.Abort())
	require.NoError(t, w.Close())

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}
