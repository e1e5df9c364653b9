package gallery

import (
	"reflect"
	"testing"
)

func names(records []MediaRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

func TestFilterByTag(t *testing.T) {
	records := []MediaRecord{
		{Name: "a.png", Tags: []string{"Cat", "outdoor"}},
		{Name: "b.png", Tags: nil},
		{Name: "c.webm", Tags: []string{"dog"}},
		{Name: "d.jpg", Tags: []string{"CATALOG"}},
	}

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{name: "empty query keeps everything", query: "", expected: []string{"a.png", "b.png", "c.webm", "d.jpg"}},
		{name: "case insensitive substring", query: "cat", expected: []string{"a.png", "d.jpg"}},
		{name: "uppercase query", query: "DOG", expected: []string{"c.webm"}},
		{name: "no match", query: "bird", expected: []string{}},
		{name: "partial tag", query: "door", expected: []string{"a.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(FilterByTag(records, tt.query))
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("FilterByTag(%q) = %v, want %v", tt.query, got, tt.expected)
			}
		})
	}
}
