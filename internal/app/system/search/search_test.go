package search

import "testing"

func TestMatches(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		fields []string
		want   bool
	}{
		{"empty query matches", "", []string{"Water bottles"}, true},
		{"exact", "water", []string{"Water bottles"}, true},
		{"case folded", "WATER", []string{"water bottles"}, true},
		{"substring in second field", "downtown", []string{"Water", "Downtown shelter"}, true},
		{"no match", "fuel", []string{"Water bottles", "Downtown shelter"}, false},
		{"trims query", "  water ", []string{"Water bottles"}, true},
		{"no fields", "water", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.query, tt.fields...); got != tt.want {
				t.Errorf("Matches(%q, %v) = %v, want %v", tt.query, tt.fields, got, tt.want)
			}
		})
	}
}
