package store

// RowStore is the contract every sheet backend satisfies. Rows and columns
// are 1-based; data row 1 is the first row below the header row.
type RowStore interface {
	// Name returns the sheet name this store is bound to.
	Name() string
	// Exists reports whether the named sheet is present in the backend.
	Exists() bool
	// HeaderRow returns the header row as a list of column labels.
	HeaderRow() ([]string, error)
	// DataRows returns every data row in sheet order.
	DataRows() ([][]interface{}, error)
	// Cell returns the value at (data row, column).
	Cell(row, col int) (interface{}, error)
	// SetCell writes a value at (data row, column).
	SetCell(row, col int, value interface{}) error
	// AppendRow appends a row after the last data row and returns its
	// 1-based data row index.
	AppendRow(row []interface{}) (int, error)
}

// columnName converts a 1-based column number to its A1-notation letters.
func columnName(col int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+col%26)) + name
		col /= 26
	}
	return name
}
