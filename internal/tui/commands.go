package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bay-transit/bayt-cli/internal/api"
)

const (
	apiTimeout          = 5 * time.Second
	autoRefreshInterval = 30 * time.Second
)

// autoRefreshTick returns a tea.Cmd that sends a tick after the refresh interval.
func autoRefreshTick() tea.Cmd {
	return tea.Tick(autoRefreshInterval, func(t time.Time) tea.Msg {
		return autoRefreshTickMsg(t)
	})
}

// fetchStops returns a tea.Cmd that fetches the operator's stop list.
func fetchStops(client *api.Client, operatorID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		stops, err := client.GetStops(ctx, operatorID)
		return stopsResultMsg{
			operatorID: operatorID,
			stops:      stops,
			err:        err,
		}
	}
}

// fetchDepartures returns a tea.Cmd that fetches the departure board for a
// stop.
func fetchDepartures(client *api.Client, operatorID, stopCode string, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		departures, err := client.GetDepartures(ctx, api.DepartureRequest{
			Agency:   operatorID,
			StopCode: stopCode,
		})
		return departuresResultMsg{
			seq:        seq,
			departures: departures,
			err:        err,
		}
	}
}
