package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bay-transit/bayt-cli/internal/models"
)

// Update handles all messages and key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case stopsResultMsg:
		return m.handleStopsResult(msg)

	case departuresResultMsg:
		return m.handleDeparturesResult(msg)

	case autoRefreshTickMsg:
		return m.handleAutoRefreshTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Pass remaining messages to textinput when focused
	if m.focus == focusFilter {
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleStopsResult(msg stopsResultMsg) (tea.Model, tea.Cmd) {
	if msg.operatorID != m.operatorID {
		return m, nil
	}
	m.stopsLoading = false
	m.stopsErr = msg.err
	if msg.err != nil {
		m.stops = nil
		return m, nil
	}

	m.stops = msg.stops
	m.stopCursor = 0

	// Auto-select the first stop and fetch its board
	if len(m.stops) > 0 {
		return m.selectStop(m.stops[0])
	}
	return m, nil
}

func (m Model) handleDeparturesResult(msg departuresResultMsg) (tea.Model, tea.Cmd) {
	// Ignore results for a stop that is no longer selected
	if msg.seq != m.departuresSeq {
		return m, nil
	}
	m.departuresLoading = false
	m.departuresErr = msg.err
	if msg.err != nil {
		m.departures = nil
	} else {
		m.departures = msg.departures
		m.lastUpdate = time.Now()
	}

	if m.autoRefresh {
		return m, autoRefreshTick()
	}
	return m, nil
}

func (m Model) handleAutoRefreshTick() (tea.Model, tea.Cmd) {
	if !m.autoRefresh || m.selectedStop == nil {
		return m, nil
	}
	// Keep the stale board on screen while the refresh is in flight
	m.departuresLoading = true
	m.departuresErr = nil
	m.departuresSeq++
	return m, fetchDepartures(m.client, m.operatorID, m.selectedStop.ID, m.departuresSeq)
}

// selectStop makes a stop the active selection and starts a board fetch.
func (m Model) selectStop(stop models.Station) (tea.Model, tea.Cmd) {
	m.selectedStop = &stop
	m.departures = nil
	m.departuresErr = nil
	m.departuresLoading = true
	m.departuresSeq++
	return m, fetchDepartures(m.client, m.operatorID, stop.ID, m.departuresSeq)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c":
		return m, tea.Quit

	case "tab":
		switch m.focus {
		case focusFilter:
			m.focus = focusStops
			m.filterInput.Blur()
		case focusStops:
			m.focus = focusDepartures
		default:
			m.focus = focusFilter
			m.filterInput.Focus()
		}
		return m, nil

	case "esc":
		if m.focus != focusFilter {
			m.focus = focusFilter
			m.filterInput.Focus()
			return m, nil
		}
		return m, tea.Quit
	}

	// Keys below only apply outside the filter input
	if m.focus == focusFilter {
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		// Typing changes the visible list; keep the cursor in range
		if visible := m.visibleStops(); m.stopCursor >= len(visible) {
			m.stopCursor = 0
		}
		return m, cmd
	}

	switch key {
	case "q":
		return m, tea.Quit

	case "up", "k":
		if m.focus == focusStops && m.stopCursor > 0 {
			m.stopCursor--
		}
		return m, nil

	case "down", "j":
		if m.focus == focusStops && m.stopCursor < len(m.visibleStops())-1 {
			m.stopCursor++
		}
		return m, nil

	case "enter":
		if m.focus == focusStops {
			visible := m.visibleStops()
			if m.stopCursor < len(visible) {
				return m.selectStop(visible[m.stopCursor])
			}
		}
		return m, nil

	case "r":
		if m.selectedStop != nil {
			m.departuresLoading = true
			m.departuresErr = nil
			m.departuresSeq++
			return m, fetchDepartures(m.client, m.operatorID, m.selectedStop.ID, m.departuresSeq)
		}
		return m, nil

	case "a":
		m.autoRefresh = !m.autoRefresh
		if m.autoRefresh && m.selectedStop != nil {
			return m, autoRefreshTick()
		}
		return m, nil
	}

	return m, nil
}
