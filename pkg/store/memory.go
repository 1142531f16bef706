package store

import (
	"fmt"
	"sync"
)

// Memory is an in-memory RowStore. It backs tests and the -demo mode.
// The mutex keeps concurrent HTTP requests from racing on the grid; it does
// not make read-modify-write sequences atomic.
type Memory struct {
	mu     sync.Mutex
	name   string
	absent bool
	header []string
	rows   [][]interface{}
}

func NewMemory(name string, header []string, rows ...[]interface{}) *Memory {
	return &Memory{
		name:   name,
		header: header,
		rows:   rows,
	}
}

// NewAbsentMemory returns a store whose sheet does not exist.
func NewAbsentMemory(name string) *Memory {
	return &Memory{name: name, absent: true}
}

func (m *Memory) Name() string {
	return m.name
}

func (m *Memory) Exists() bool {
	return !m.absent
}

func (m *Memory) HeaderRow() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.absent {
		return nil, fmt.Errorf("sheet %q does not exist", m.name)
	}
	header := make([]string, len(m.header))
	copy(header, m.header)
	return header, nil
}

func (m *Memory) DataRows() ([][]interface{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.absent {
		return nil, fmt.Errorf("sheet %q does not exist", m.name)
	}
	rows := make([][]interface{}, len(m.rows))
	for i, row := range m.rows {
		rows[i] = append([]interface{}{}, row...)
	}
	return rows, nil
}

func (m *Memory) Cell(row, col int) (interface{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkCoords(row, col); err != nil {
		return nil, err
	}
	if col > len(m.rows[row-1]) {
		return "", nil
	}
	return m.rows[row-1][col-1], nil
}

func (m *Memory) SetCell(row, col int, value interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkCoords(row, col); err != nil {
		return err
	}
	// Pad short rows so the column is addressable.
	for len(m.rows[row-1]) < col {
		m.rows[row-1] = append(m.rows[row-1], "")
	}
	m.rows[row-1][col-1] = value
	return nil
}

func (m *Memory) AppendRow(row []interface{}) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.absent {
		return 0, fmt.Errorf("sheet %q does not exist", m.name)
	}
	m.rows = append(m.rows, append([]interface{}{}, row...))
	return len(m.rows), nil
}

func (m *Memory) checkCoords(row, col int) error {
	if m.absent {
		return fmt.Errorf("sheet %q does not exist", m.name)
	}
	if row < 1 || row > len(m.rows) || col < 1 || col > len(m.header) {
		return fmt.Errorf("cell (%d,%d) is out of range", row, col)
	}
	return nil
}
