package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors matching the output package's scheme
var (
	colorCyan   = lipgloss.Color("6")  // Cyan - lines, selection
	colorYellow = lipgloss.Color("3")  // Yellow - loading
	colorRed    = lipgloss.Color("1")  // Red - errors
	colorGreen  = lipgloss.Color("2")  // Green - real-time departures
	colorWhite  = lipgloss.Color("15") // White - times, text
	colorGray   = lipgloss.Color("8")  // Gray - muted text
)

// Text styles
var (
	styleTime     = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleLine     = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styleRealTime = lipgloss.NewStyle().Foreground(colorGreen)
	styleSched    = lipgloss.NewStyle().Foreground(colorGray)
	styleMuted    = lipgloss.NewStyle().Foreground(colorGray)
	styleHeader   = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
)

// Panel border styles
var (
	stylePanelFocused = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorCyan)

	stylePanelNormal = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorGray)
)

// Selected item in a list
var styleSelected = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)

// Status bar at the bottom
var styleStatusBar = lipgloss.NewStyle().
	Foreground(colorGray).
	Background(lipgloss.Color("0"))

// Loading indicator
var styleLoading = lipgloss.NewStyle().Foreground(colorYellow).Italic(true)

// Error text
var styleError = lipgloss.NewStyle().Foreground(colorRed)

// Logo/brand style
var styleLogo = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
