package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory("Tracker", []string{"Name", "Status"},
		[]interface{}{"P1", "Active"},
	)

	assert.True(t, m.Exists())
	assert.Equal(t, "Tracker", m.Name())

	header, err := m.HeaderRow()
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Status"}, header)

	rowIndex, err := m.AppendRow([]interface{}{"P2", "At Risk"})
	require.NoError(t, err)
	assert.Equal(t, 2, rowIndex)

	require.NoError(t, m.SetCell(2, 2, "Complete"))
	got, err := m.Cell(2, 2)
	require.NoError(t, err)
	assert.Equal(t, "Complete", got)

	rows, err := m.DataRows()
	require.NoError(t, err)
	assert.Equal(t, [][]interface{}{
		{"P1", "Active"},
		{"P2", "Complete"},
	}, rows)
}

func TestMemoryOutOfRange(t *testing.T) {
	m := NewMemory("Tracker", []string{"Name"},
		[]interface{}{"P1"},
	)

	assert.Error(t, m.SetCell(2, 1, "x"))
	assert.Error(t, m.SetCell(1, 2, "x"))
	assert.Error(t, m.SetCell(0, 1, "x"))
	_, err := m.Cell(5, 1)
	assert.Error(t, err)
}

func TestMemoryShortRowPadding(t *testing.T) {
	m := NewMemory("Tracker", []string{"Name", "Status", "Notes"},
		[]interface{}{"P1"},
	)

	got, err := m.Cell(1, 3)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	require.NoError(t, m.SetCell(1, 3, "padded"))
	got, err = m.Cell(1, 3)
	require.NoError(t, err)
	assert.Equal(t, "padded", got)
}

func TestAbsentMemory(t *testing.T) {
	m := NewAbsentMemory("Gone")
	assert.False(t, m.Exists())
	_, err := m.HeaderRow()
	assert.Error(t, err)
	_, err = m.DataRows()
	assert.Error(t, err)
	_, err = m.AppendRow([]interface{}{"x"})
	assert.Error(t, err)
}

func TestColumnName(t *testing.T) {
	tests := []struct {
		col  int
		want string
	}{
		{1, "A"},
		{2, "B"},
		{26, "Z"},
		{27, "AA"},
		{52, "AZ"},
		{53, "BA"},
	}
	for _, tt := range tests {
		if got := columnName(tt.col); got != tt.want {
			t.Errorf("columnName(%d) = %q, want %q", tt.col, got, tt.want)
		}
	}
}
