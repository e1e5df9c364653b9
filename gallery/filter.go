package gallery

import "strings"

// FilterByTag keeps the records having at least one tag that contains query,
// ignoring case. An empty query returns records unchanged.
func FilterByTag(records []MediaRecord, query string) []MediaRecord {
	lower := strings.ToLower(query)
	if lower == "" {
		return records
	}

	filtered := make([]MediaRecord, 0, len(records))
	for _, r := range records {
		for _, t := range r.Tags {
			if strings.Contains(strings.ToLower(t), lower) {
				filtered = append(filtered, r)
				break
			}
		}
	}
	return filtered
}
