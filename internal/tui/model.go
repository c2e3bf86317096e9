package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bay-transit/bayt-cli/internal/api"
	"github.com/bay-transit/bayt-cli/internal/models"
)

type focusPanel int

const (
	focusFilter focusPanel = iota
	focusStops
	focusDepartures
)

// Model is the root Bubble Tea model for the TUI.
type Model struct {
	client     *api.Client
	operatorID string
	width      int
	height     int

	filterInput textinput.Model
	focus       focusPanel

	// Left panel - stops
	stops        []models.Station
	stopCursor   int
	stopsLoading bool
	stopsErr     error

	// Right panel - departures
	selectedStop      *models.Station
	departures        []models.Departure
	departuresLoading bool
	departuresErr     error
	departuresSeq     int
	lastUpdate        time.Time

	// Auto-refresh
	autoRefresh bool
}

// New creates a new TUI model for one operator.
func New(client *api.Client, operatorID string) Model {
	ti := textinput.New()
	ti.Placeholder = "Filter stops..."
	ti.Focus()
	ti.CharLimit = 60
	ti.Width = 30

	return Model{
		client:       client,
		operatorID:   operatorID,
		filterInput:  ti,
		focus:        focusFilter,
		autoRefresh:  true,
		stopsLoading: true,
	}
}

// Init starts the stop fetch and the textinput blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, fetchStops(m.client, m.operatorID))
}

// visibleStops returns the stop list filtered by the current input,
// case-insensitive substring on the stop name.
func (m Model) visibleStops() []models.Station {
	query := strings.ToLower(strings.TrimSpace(m.filterInput.Value()))
	if query == "" {
		return m.stops
	}
	var out []models.Station
	for _, s := range m.stops {
		if strings.Contains(strings.ToLower(s.Name), query) {
			out = append(out, s)
		}
	}
	return out
}
