package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bay-transit/bayt-cli/internal/operators"
)

// View renders the entire TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	filterBar := m.renderFilterBar()
	statusBar := m.renderStatusBar()

	headerHeight := lipgloss.Height(header)
	filterHeight := lipgloss.Height(filterBar)
	statusHeight := lipgloss.Height(statusBar)
	panelHeight := m.height - headerHeight - filterHeight - statusHeight
	if panelHeight < 3 {
		panelHeight = 3
	}

	// Panel widths: ~40% left, ~60% right
	leftWidth := m.width*40/100 - 2
	rightWidth := m.width - leftWidth - 4
	if leftWidth < 20 {
		leftWidth = 20
	}
	if rightWidth < 20 {
		rightWidth = 20
	}

	leftPanel := m.renderStopList(leftWidth, panelHeight-2)
	rightPanel := m.renderDepartureBoard(rightWidth, panelHeight-2)

	leftBorder := stylePanelNormal
	if m.focus == focusStops {
		leftBorder = stylePanelFocused
	}
	leftPanel = leftBorder.
		Width(leftWidth).
		Height(panelHeight - 2).
		Render(leftPanel)

	rightBorder := stylePanelNormal
	if m.focus == focusDepartures {
		rightBorder = stylePanelFocused
	}
	rightPanel = rightBorder.
		Width(rightWidth).
		Height(panelHeight - 2).
		Render(rightPanel)

	panels := lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel)

	return lipgloss.JoinVertical(lipgloss.Left, header, filterBar, panels, statusBar)
}

func (m Model) renderHeader() string {
	brand := styleLogo.Render("bayt")
	op := styleMuted.Render(" · " + operators.GetOperatorName(m.operatorID))
	return brand + op
}

func (m Model) renderFilterBar() string {
	return m.filterInput.View()
}

// renderStopList renders the left panel.
func (m Model) renderStopList(width, height int) string {
	if m.stopsLoading {
		return styleLoading.Render("Loading stops...")
	}
	if m.stopsErr != nil {
		return styleError.Render("Error: " + m.stopsErr.Error())
	}

	visible := m.visibleStops()
	if len(visible) == 0 {
		return styleMuted.Render("No stops match.")
	}

	// Scroll window around the cursor
	start := 0
	if m.stopCursor >= height {
		start = m.stopCursor - height + 1
	}
	end := start + height
	if end > len(visible) {
		end = len(visible)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		stop := visible[i]
		name := truncate(stop.Name, width-4)
		if i == m.stopCursor && m.focus == focusStops {
			b.WriteString(styleSelected.Render("> " + name))
		} else if m.selectedStop != nil && stop.ID == m.selectedStop.ID {
			b.WriteString(styleLine.Render("  " + name))
		} else {
			b.WriteString("  " + name)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderDepartureBoard renders the right panel.
func (m Model) renderDepartureBoard(width, height int) string {
	if m.selectedStop == nil {
		return styleMuted.Render("Select a stop to see departures.")
	}

	var b strings.Builder
	b.WriteString(styleHeader.Render(truncate(m.selectedStop.Name, width-2)))
	b.WriteString("\n\n")

	switch {
	case m.departuresErr != nil:
		b.WriteString(styleError.Render("Error: " + m.departuresErr.Error()))
	case m.departuresLoading && len(m.departures) == 0:
		b.WriteString(styleLoading.Render("Loading departures..."))
	case len(m.departures) == 0:
		b.WriteString(styleMuted.Render("No upcoming departures."))
	default:
		for _, dep := range m.departures {
			marker := styleSched.Render("sched")
			if dep.IsRealTime {
				marker = styleRealTime.Render("live ")
			}
			row := fmt.Sprintf("%s %s %s %s",
				styleTime.Render(dep.DepartureTime.Local().Format("15:04")),
				marker,
				styleLine.Render(fmt.Sprintf("%-12s", truncate(dep.LineName, 12))),
				truncate(dep.Destination, width-26),
			)
			b.WriteString(row)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderStatusBar() string {
	var parts []string
	parts = append(parts, "tab: focus", "enter: select", "r: refresh", "a: auto-refresh", "q: quit")
	if m.autoRefresh {
		parts = append(parts, "auto: on")
	} else {
		parts = append(parts, "auto: off")
	}
	if !m.lastUpdate.IsZero() {
		parts = append(parts, "updated "+m.lastUpdate.Format("15:04:05"))
	}
	bar := " " + strings.Join(parts, "  ·  ")
	return styleStatusBar.Width(m.width).Render(bar)
}

// truncate shortens s to max runes, leaving room for an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
