package models

import (
	"sort"
	"time"

	"github.com/bay-transit/bayt-cli/internal/siri"
)

// maxDepartures caps the derived departure board.
const maxDepartures = 5

// Fallback labels for visits missing a line name or destination.
const (
	fallbackLineName    = "Train"
	fallbackDestination = "Unknown"
)

// Departure is one upcoming departure at a stop.
type Departure struct {
	LineName      string    `json:"lineName"`
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departureTime"`
	IsRealTime    bool      `json:"isRealTime"`
}

// DeriveDepartures turns normalized stop-monitoring visits into the
// departure board: filter by line (exact match, empty filter means all),
// pick the best available time per visit, drop anything unparseable or not
// strictly in the future, sort ascending and cap to maxDepartures.
// Pure: same visits, filter and now always yield the same board.
func DeriveDepartures(visits []siri.StopVisit, lineFilter string, now time.Time) []Departure {
	departures := make([]Departure, 0, len(visits))
	for _, v := range visits {
		if lineFilter != "" && v.LineRef != lineFilter {
			continue
		}
		if !v.HasCall {
			continue
		}
		raw := selectVisitTime(v)
		if raw == "" {
			continue
		}
		t, err := parseTimestamp(raw)
		if err != nil {
			continue
		}
		if !t.After(now) {
			continue
		}

		name := v.PublishedLineName
		if name == "" {
			name = v.LineRef
		}
		if name == "" {
			name = fallbackLineName
		}
		dest := v.DestinationName
		if dest == "" {
			dest = fallbackDestination
		}

		departures = append(departures, Departure{
			LineName:      name,
			Destination:   dest,
			DepartureTime: t,
			IsRealTime:    v.Monitored,
		})
	}

	sort.SliceStable(departures, func(i, j int) bool {
		return departures[i].DepartureTime.Before(departures[j].DepartureTime)
	})
	if len(departures) > maxDepartures {
		departures = departures[:maxDepartures]
	}
	return departures
}

// selectVisitTime returns the first populated candidate time field, in
// fixed precedence: expected departure, aimed departure, expected arrival,
// aimed arrival.
func selectVisitTime(v siri.StopVisit) string {
	for _, s := range []string{
		v.ExpectedDepartureTime,
		v.AimedDepartureTime,
		v.ExpectedArrivalTime,
		v.AimedArrivalTime,
	} {
		if s != "" {
			return s
		}
	}
	return ""
}
