package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projecttracker/pkg/store"
)

func TestFilterOptions(t *testing.T) {
	st := testStore(
		[]interface{}{"P1", "Reporting", "Active", "Dana", "Robin", "Small", "No", "", "", ""},
		[]interface{}{"P2", "Infrastructure", "Active", "Sam", "Robin", "Large", "Yes", "", "", ""},
		[]interface{}{"P3", "Reporting", "At Risk", "", "Lee", "Small", "", "", "", ""},
	)

	filters, err := FilterOptions(st)
	require.NoError(t, err)

	assert.Equal(t, []string{"Infrastructure", "Reporting"}, filters.Categories)
	assert.Equal(t, []string{"Active", "At Risk"}, filters.Statuses)
	assert.Equal(t, []string{"Dana", "Sam"}, filters.FunctionalOwners)
	assert.Equal(t, []string{"Lee", "Robin"}, filters.ProgramOwners)
	assert.Equal(t, []string{"Large", "Small"}, filters.Efforts)
	// Fixed regardless of sheet contents.
	assert.Equal(t, []string{"Yes", "No"}, filters.HelpNeeded)
}

func TestFilterOptionsPropagatesMapperError(t *testing.T) {
	_, err := FilterOptions(store.NewAbsentMemory("Gone"))
	require.Error(t, err)
	_, ok := err.(*NotFoundError)
	assert.True(t, ok, "want *NotFoundError, got %T", err)
}

func TestSummaryStats(t *testing.T) {
	fixedTime := time.Date(2024, 2, 15, 12, 0, 0, 0, time.Local)
	oldNowFunc := nowFunc
	nowFunc = func() time.Time { return fixedTime }
	defer func() { nowFunc = oldNowFunc }()

	st := testStore(
		[]interface{}{"P1", "Reporting", "Active", "", "", "Small", "Yes", "", "", ""},
		[]interface{}{"P2", "Reporting", "Active", "", "", "Large", "No", "", "", ""},
		[]interface{}{"P3", "", "At Risk", "", "", "", "Yes", "", "", ""},
		[]interface{}{"P4", "Enablement", "Complete", "", "", "Small", "", "1/2/2024", "2/10/2024", ""},
		[]interface{}{"P5", "Enablement", "Complete", "", "", "Small", "", "12/1/2023", "1/31/2024", ""},
	)

	stats, err := SummaryStats(st)
	require.NoError(t, err)

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, map[string]int{"Active": 2, "At Risk": 1, "Complete": 2}, stats.ByStatus)
	assert.Equal(t, map[string]int{"Reporting": 2, "Unknown": 1, "Enablement": 2}, stats.ByCategory)
	assert.Equal(t, map[string]int{"Small": 3, "Large": 1, "Unknown": 1}, stats.ByEffort)
	assert.Equal(t, 2, stats.HelpNeeded)
	assert.Equal(t, 1, stats.AtRisk)
	// Only the Complete project ending inside the current month counts.
	assert.Equal(t, 1, stats.CompletedThisMonth)
}

func TestProjectsByMonth(t *testing.T) {
	st := testStore(
		[]interface{}{"Spans Jan-Feb", "", "", "", "", "", "", "1/15/2024", "2/10/2024", ""},
		[]interface{}{"Start only March", "", "", "", "", "", "", "3/5/2024", "", ""},
		[]interface{}{"End only Feb", "", "", "", "", "", "", "", "2/20/2024", ""},
		[]interface{}{"No dates", "", "", "", "", "", "", "", "", ""},
	)

	names := func(records []Record) []string {
		out := make([]string, len(records))
		for i, rec := range records {
			out[i] = rec[FieldProjectActivityName].(string)
		}
		return out
	}

	tests := []struct {
		month int
		year  int
		want  []string
	}{
		{1, 2024, []string{"Spans Jan-Feb"}},
		{2, 2024, []string{"Spans Jan-Feb", "End only Feb"}},
		{3, 2024, []string{"Start only March"}},
		{4, 2024, []string{}},
		{2, 2023, []string{}},
	}
	for _, tt := range tests {
		records, err := ProjectsByMonth(st, tt.month, tt.year)
		require.NoError(t, err)
		assert.Equal(t, tt.want, names(records), "month %d/%d", tt.month, tt.year)
	}
}

func TestProjectsByMonthUnparseableDates(t *testing.T) {
	st := testStore(
		[]interface{}{"Bad dates", "", "", "", "", "", "", "whenever", "soon", ""},
	)
	records, err := ProjectsByMonth(st, 2, 2024)
	require.NoError(t, err)
	assert.Empty(t, records)
}
