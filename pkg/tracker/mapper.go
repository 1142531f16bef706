package tracker

import (
	"fmt"
	"strings"
	"time"

	"projecttracker/pkg/store"
)

// Field keys for the columns the tracker reasons about. Derived from the
// canonical header labels via FieldKey.
const (
	FieldProjectActivityName = "projectActivityName"
	FieldCategory            = "category"
	FieldStatus              = "status"
	FieldFunctionalOwner     = "functionalOwnerOfDeliverable"
	FieldProgramOwner        = "programOwnerLeadContact"
	FieldEffort              = "effort"
	FieldHelpNeeded          = "helpNeeded"
	FieldStartDate           = "startDate"
	FieldEndDate             = "endDate"

	// RowIndexKey is the reserved record key carrying the 1-based data
	// row position in the backing store.
	RowIndexKey = "rowIndex"
)

// Do not rename these or existing sheets will stop matching
var DefaultHeaderRow = []string{
	"Project/Activity Name",
	"Category",
	"Status",
	"Functional Owner of Deliverable",
	"Program Owner (Lead Contact)",
	"Effort",
	"Help Needed",
	"Start Date",
	"End Date",
	"Notes",
}

// StatusColumn is the fixed 1-based position of the status column in
// DefaultHeaderRow.
const StatusColumn = 3

// Record maps field keys to cell values, plus the reserved rowIndex key.
type Record map[string]interface{}

// Header pairs a raw column label with its normalized field key.
type Header struct {
	Original   string `json:"original"`
	Normalized string `json:"normalized"`
}

// Snapshot is one full read of the sheet.
type Snapshot struct {
	Headers []Header
	Records []Record
}

// GetRecords reads the whole sheet and converts it into keyed records.
// Rows without a project/activity name are treated as blank and dropped.
// A sheet with a header but no data rows is an empty snapshot, not an
// error.
func GetRecords(st store.RowStore) (*Snapshot, error) {
	if !st.Exists() {
		return nil, &NotFoundError{Sheet: st.Name()}
	}

	labels, err := st.HeaderRow()
	if err != nil {
		return nil, wrapUnknown(err)
	}
	headers := make([]Header, 0, len(labels))
	for _, label := range labels {
		headers = append(headers, Header{Original: label, Normalized: FieldKey(label)})
	}

	rows, err := st.DataRows()
	if err != nil {
		return nil, wrapUnknown(err)
	}

	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		rec := make(Record, len(headers))
		for j, h := range headers {
			if h.Normalized == "" {
				continue
			}
			var value interface{}
			if j < len(row) {
				value = row[j]
			}
			rec[h.Normalized] = cellValue(value)
		}
		if fieldString(rec[FieldProjectActivityName]) == "" {
			continue
		}
		rec[RowIndexKey] = i + 1
		records = append(records, rec)
	}

	return &Snapshot{Headers: headers, Records: records}, nil
}

// cellValue shapes a raw cell for the record: native dates become display
// strings, everything else is kept as the store handed it over.
func cellValue(value interface{}) interface{} {
	switch value.(type) {
	case nil:
		return ""
	case time.Time:
		return FormatDate(value)
	default:
		return value
	}
}

// fieldString renders a record value for comparisons, "" when unset.
func fieldString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case time.Time:
		return FormatDate(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
