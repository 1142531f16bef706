package tracker

import (
	"sort"
	"time"

	"projecttracker/pkg/store"
)

const (
	StatusAtRisk   = "At Risk"
	StatusComplete = "Complete"
)

// Help-needed options are fixed regardless of what the sheet holds.
var helpNeededOptions = []string{"Yes", "No"}

var nowFunc = time.Now

// FilterSet holds the distinct values available for each filterable field.
type FilterSet struct {
	Categories       []string `json:"categories"`
	Statuses         []string `json:"statuses"`
	FunctionalOwners []string `json:"functionalOwners"`
	ProgramOwners    []string `json:"programOwners"`
	Efforts          []string `json:"efforts"`
	HelpNeeded       []string `json:"helpNeeded"`
}

// Stats summarises the whole sheet in one pass.
type Stats struct {
	Total              int            `json:"total"`
	ByStatus           map[string]int `json:"byStatus"`
	ByCategory         map[string]int `json:"byCategory"`
	ByEffort           map[string]int `json:"byEffort"`
	HelpNeeded         int            `json:"helpNeeded"`
	AtRisk             int            `json:"atRisk"`
	CompletedThisMonth int            `json:"completedThisMonth"`
}

// FilterOptions collects the sorted distinct non-empty values for the five
// filterable fields across all records. Data is re-read on every call.
func FilterOptions(st store.RowStore) (*FilterSet, error) {
	snap, err := GetRecords(st)
	if err != nil {
		return nil, err
	}
	return &FilterSet{
		Categories:       distinctValues(snap.Records, FieldCategory),
		Statuses:         distinctValues(snap.Records, FieldStatus),
		FunctionalOwners: distinctValues(snap.Records, FieldFunctionalOwner),
		ProgramOwners:    distinctValues(snap.Records, FieldProgramOwner),
		Efforts:          distinctValues(snap.Records, FieldEffort),
		HelpNeeded:       helpNeededOptions,
	}, nil
}

// SummaryStats tallies record counts by status, category and effort, plus
// the help-needed, at-risk and completed-this-month counters. Records with
// an empty value land in the "Unknown" bucket.
func SummaryStats(st store.RowStore) (*Stats, error) {
	snap, err := GetRecords(st)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		ByStatus:   make(map[string]int),
		ByCategory: make(map[string]int),
		ByEffort:   make(map[string]int),
	}
	now := nowFunc()
	for _, rec := range snap.Records {
		stats.Total++
		stats.ByStatus[bucket(rec, FieldStatus)]++
		stats.ByCategory[bucket(rec, FieldCategory)]++
		stats.ByEffort[bucket(rec, FieldEffort)]++
		if fieldString(rec[FieldHelpNeeded]) == "Yes" {
			stats.HelpNeeded++
		}
		status := fieldString(rec[FieldStatus])
		if status == StatusAtRisk {
			stats.AtRisk++
		}
		if status == StatusComplete {
			if end, ok := ParseDate(rec[FieldEndDate]); ok &&
				end.Year() == now.Year() && end.Month() == now.Month() {
				stats.CompletedThisMonth++
			}
		}
	}
	return stats, nil
}

// ProjectsByMonth returns the records whose schedule touches the given
// month. A record with both dates matches when its [start,end] interval
// overlaps the month inclusively; with only one date it matches on
// month and year equality; with neither it never matches.
func ProjectsByMonth(st store.RowStore, month, year int) ([]Record, error) {
	snap, err := GetRecords(st)
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	matched := make([]Record, 0)
	for _, rec := range snap.Records {
		start, hasStart := ParseDate(rec[FieldStartDate])
		end, hasEnd := ParseDate(rec[FieldEndDate])
		switch {
		case hasStart && hasEnd:
			if !start.After(monthEnd) && !end.Before(monthStart) {
				matched = append(matched, rec)
			}
		case hasStart:
			if start.Year() == year && start.Month() == time.Month(month) {
				matched = append(matched, rec)
			}
		case hasEnd:
			if end.Year() == year && end.Month() == time.Month(month) {
				matched = append(matched, rec)
			}
		}
	}
	return matched, nil
}

func distinctValues(records []Record, key string) []string {
	seen := make(map[string]bool)
	for _, rec := range records {
		if v := fieldString(rec[key]); v != "" {
			seen[v] = true
		}
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

func bucket(rec Record, key string) string {
	if v := fieldString(rec[key]); v != "" {
		return v
	}
	return "Unknown"
}
