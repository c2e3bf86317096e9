package models

import (
	"sort"

	"github.com/bay-transit/bayt-cli/internal/siri"
)

// TransitLine is one named service line. Name may be empty; display falls
// back to the id.
type TransitLine struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DisplayName returns the name, or the id when the name is empty.
func (l TransitLine) DisplayName() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// DeriveLines turns normalized line records into the line list. Only a
// missing id drops a record; the name is the first non-empty of the
// display name and the public code, possibly empty. Sorted by DisplayName
// ascending, ties keeping input order.
func DeriveLines(records []siri.LineRecord) []TransitLine {
	lines := make([]TransitLine, 0, len(records))
	for _, r := range records {
		if r.ID == "" {
			continue
		}
		name := r.Name
		if name == "" {
			name = r.PublicCode
		}
		lines = append(lines, TransitLine{ID: r.ID, Name: name})
	}
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].DisplayName() < lines[j].DisplayName()
	})
	return lines
}
