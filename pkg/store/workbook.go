package store

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// Workbook is a RowStore backed by one sheet of a local .xlsx file. Every
// write saves the whole workbook, which is fine at tracker scale.
type Workbook struct {
	path      string
	sheetName string
	file      *excelize.File
}

func OpenWorkbook(path, sheetName string) (*Workbook, error) {
	var f *excelize.File
	if _, err := os.Stat(path); os.IsNotExist(err) {
		f = excelize.NewFile()
	} else {
		f, err = excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to open workbook %s: %w", path, err)
		}
	}
	return &Workbook{
		path:      path,
		sheetName: sheetName,
		file:      f,
	}, nil
}

func (w *Workbook) Name() string {
	return w.sheetName
}

func (w *Workbook) Exists() bool {
	idx, err := w.file.GetSheetIndex(w.sheetName)
	return err == nil && idx >= 0
}

func (w *Workbook) HeaderRow() ([]string, error) {
	rows, err := w.file.GetRows(w.sheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (w *Workbook) DataRows() ([][]interface{}, error) {
	rows, err := w.file.GetRows(w.sheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, nil
	}
	data := make([][]interface{}, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cells := make([]interface{}, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		data = append(data, cells)
	}
	return data, nil
}

func (w *Workbook) Cell(row, col int) (interface{}, error) {
	cell, err := excelize.CoordinatesToCellName(col, row+1)
	if err != nil {
		return nil, err
	}
	value, err := w.file.GetCellValue(w.sheetName, cell)
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (w *Workbook) SetCell(row, col int, value interface{}) error {
	rows, err := w.file.GetRows(w.sheetName)
	if err != nil {
		return err
	}
	if row < 1 || row > len(rows)-1 {
		return fmt.Errorf("cell (%d,%d) is out of range", row, col)
	}
	cell, err := excelize.CoordinatesToCellName(col, row+1)
	if err != nil {
		return err
	}
	if err := w.file.SetCellValue(w.sheetName, cell, value); err != nil {
		return err
	}
	return w.file.SaveAs(w.path)
}

func (w *Workbook) AppendRow(row []interface{}) (int, error) {
	rows, err := w.file.GetRows(w.sheetName)
	if err != nil {
		return 0, err
	}
	sheetRow := len(rows) + 1
	for i, value := range row {
		cell, err := excelize.CoordinatesToCellName(i+1, sheetRow)
		if err != nil {
			return 0, err
		}
		if err := w.file.SetCellValue(w.sheetName, cell, value); err != nil {
			return 0, err
		}
	}
	if err := w.file.SaveAs(w.path); err != nil {
		return 0, err
	}
	return sheetRow - 1, nil
}

// EnsureSheet creates the sheet with the given header row if the workbook
// does not already have it.
func (w *Workbook) EnsureSheet(header []string) error {
	if w.Exists() {
		return nil
	}
	if _, err := w.file.NewSheet(w.sheetName); err != nil {
		return err
	}
	for i, h := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := w.file.SetCellValue(w.sheetName, cell, h); err != nil {
			return err
		}
	}
	return w.file.SaveAs(w.path)
}

func (w *Workbook) Close() error {
	return w.file.Close()
}
