package models

import (
	"sort"
	"strconv"

	"github.com/bay-transit/bayt-cli/internal/siri"
)

// Station is one transit stop. Coordinates are nil when the upstream
// omitted them or sent unparseable text.
type Station struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// DeriveStations turns normalized stop records into the station list.
// Records missing an id or a name are dropped whole; a bad coordinate only
// loses the coordinate. Sorted by name ascending, ties keeping input order.
// Duplicate ids pass through untouched.
func DeriveStations(records []siri.StopRecord) []Station {
	stations := make([]Station, 0, len(records))
	for _, r := range records {
		if r.ID == "" || r.Name == "" {
			continue
		}
		stations = append(stations, Station{
			ID:        r.ID,
			Name:      r.Name,
			Latitude:  parseCoordinate(r.Latitude),
			Longitude: parseCoordinate(r.Longitude),
		})
	}
	sort.SliceStable(stations, func(i, j int) bool {
		return stations[i].Name < stations[j].Name
	})
	return stations
}

// parseCoordinate parses an upstream decimal-string coordinate, nil on
// absence or malformed text.
func parseCoordinate(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
