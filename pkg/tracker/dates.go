package tracker

import (
	"strings"
	"time"
)

// Dates are surfaced to clients as M/D/YYYY strings, never as native dates.
const displayDateLayout = "1/2/2006"

// Serial date epoch used by Sheets and Excel.
var serialEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// FormatDate renders a cell value as an M/D/YYYY string. Strings pass
// through unchanged, native dates and serial date numbers are formatted,
// empty values yield "".
func FormatDate(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format(displayDateLayout)
	case float64:
		return serialEpoch.Add(time.Duration(v * 24 * float64(time.Hour))).Format(displayDateLayout)
	default:
		return ""
	}
}

// ParseDate interprets a cell value as a date. M/D/YYYY strings are parsed
// at local midnight; otherwise ISO-8601 (2006-01-02, then RFC 3339) is
// tried. The second return is false when the value holds no recognisable
// date, and callers treat that as "does not match".
func ParseDate(value interface{}) (time.Time, bool) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return v, !v.IsZero()
	case float64:
		return serialEpoch.Add(time.Duration(v * 24 * float64(time.Hour))), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, false
		}
		if strings.Count(s, "/") == 2 {
			t, err := time.ParseInLocation(displayDateLayout, s, time.Local)
			if err != nil {
				return time.Time{}, false
			}
			return t, true
		}
		if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
			return t, true
		}
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t, true
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}
