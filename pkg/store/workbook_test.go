package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempWorkbook(t *testing.T) *Workbook {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tracker.xlsx")
	w, err := OpenWorkbook(path, "Tracker")
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	require.NoError(t, w.EnsureSheet([]string{"Name", "Status", "Notes"}))
	return w
}

func TestWorkbookEnsureSheet(t *testing.T) {
	w := tempWorkbook(t)

	assert.True(t, w.Exists())
	header, err := w.HeaderRow()
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Status", "Notes"}, header)

	rows, err := w.DataRows()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestWorkbookAppendAndUpdate(t *testing.T) {
	w := tempWorkbook(t)

	rowIndex, err := w.AppendRow([]interface{}{"P1", "Active", ""})
	require.NoError(t, err)
	assert.Equal(t, 1, rowIndex)

	rowIndex, err = w.AppendRow([]interface{}{"P2", "At Risk", "check in weekly"})
	require.NoError(t, err)
	assert.Equal(t, 2, rowIndex)

	require.NoError(t, w.SetCell(2, 2, "Complete"))

	got, err := w.Cell(2, 2)
	require.NoError(t, err)
	assert.Equal(t, "Complete", got)

	rows, err := w.DataRows()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []interface{}{"P2", "Complete", "check in weekly"}, rows[1])
}

func TestWorkbookSetCellOutOfRange(t *testing.T) {
	w := tempWorkbook(t)
	assert.Error(t, w.SetCell(5, 1, "x"))
}

func TestWorkbookPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.xlsx")
	w, err := OpenWorkbook(path, "Tracker")
	require.NoError(t, err)
	require.NoError(t, w.EnsureSheet([]string{"Name", "Status"}))
	_, err = w.AppendRow([]interface{}{"P1", "Active"})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reopened, err := OpenWorkbook(path, "Tracker")
	require.NoError(t, err)
	defer reopened.Close()

	rows, err := reopened.DataRows()
	require.NoError(t, err)
	assert.Equal(t, [][]interface{}{{"P1", "Active"}}, rows)
}
