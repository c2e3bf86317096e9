package tui

import (
	"time"

	"github.com/bay-transit/bayt-cli/internal/models"
)

// autoRefreshTickMsg is sent every 30 seconds when auto-refresh is enabled.
type autoRefreshTickMsg time.Time

// stopsResultMsg carries the stop list back to the model.
type stopsResultMsg struct {
	operatorID string
	stops      []models.Station
	err        error
}

// departuresResultMsg carries departure results for a specific stop.
// seq is used for stale-result detection when the selection changes while
// a fetch is in flight.
type departuresResultMsg struct {
	seq        int
	departures []models.Departure
	err        error
}
