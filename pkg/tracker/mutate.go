package tracker

import (
	"projecttracker/pkg/store"
)

// UpdateStatus writes a new status into the fixed status column of the
// given data row.
func UpdateStatus(st store.RowStore, rowIndex int, status string) error {
	if err := st.SetCell(rowIndex, StatusColumn, status); err != nil {
		return &WriteError{Row: rowIndex, Col: StatusColumn, Err: err}
	}
	return nil
}

// UpdateCell writes a value into the column whose normalized header matches
// fieldKey. The header row is re-read on every call so renamed columns are
// picked up without a restart.
func UpdateCell(st store.RowStore, rowIndex int, fieldKey string, value interface{}) error {
	labels, err := st.HeaderRow()
	if err != nil {
		return wrapUnknown(err)
	}
	col := 0
	for i, label := range labels {
		if FieldKey(label) == fieldKey {
			col = i + 1
			break
		}
	}
	if col == 0 {
		return &ColumnNotFoundError{Key: fieldKey}
	}
	if err := st.SetCell(rowIndex, col, value); err != nil {
		return &WriteError{Row: rowIndex, Col: col, Err: err}
	}
	return nil
}

// AddRecord appends a new row built from the given fields, one cell per
// header column in sheet order, empty string for absent fields. Returns
// the 1-based data row index of the new row.
func AddRecord(st store.RowStore, fields Record) (int, error) {
	labels, err := st.HeaderRow()
	if err != nil {
		return 0, wrapUnknown(err)
	}
	row := make([]interface{}, len(labels))
	for i, label := range labels {
		if value, ok := fields[FieldKey(label)]; ok {
			row[i] = value
		} else {
			row[i] = ""
		}
	}
	rowIndex, err := st.AppendRow(row)
	if err != nil {
		return 0, &WriteError{Row: rowIndex, Err: err}
	}
	return rowIndex, nil
}
