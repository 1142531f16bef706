package tracker

import "testing"

func TestFieldKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"!!!", ""},
		{"Status", "status"},
		{"Help Needed", "helpNeeded"},
		{"Functional Owner of Deliverable", "functionalOwnerOfDeliverable"},
		{"Program Owner (Lead Contact)", "programOwnerLeadContact"},
		{"Project/Activity Name", "projectActivityName"},
		{"A/B Test!", "aBTest"},
		{"  spaced   out  ", "spacedOut"},
		{"UPPER CASE", "upperCase"},
		{"123 Go", "123Go"},
	}
	for _, tt := range tests {
		got := FieldKey(tt.in)
		if got != tt.want {
			t.Errorf("FieldKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFieldKeyDeterministic(t *testing.T) {
	for _, h := range DefaultHeaderRow {
		if FieldKey(h) != FieldKey(h) {
			t.Errorf("FieldKey(%q) is not deterministic", h)
		}
	}
}
