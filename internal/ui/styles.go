package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// --- UI Styles ---
var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#8942E1"))
	subtleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	okStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
	warnStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B"))
	errorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	dividerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	focusStyle     = lipgloss.NewStyle().Bold(true)
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#3AC4BA")).Bold(true)
	sectionStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	sectionFocused = sectionStyle.BorderForeground(lipgloss.Color("#8942E1"))

	cursorLineStyle = lipgloss.NewStyle().Background(lipgloss.Color("#2A2B3D"))
	cursorBarStyle  = lipgloss.NewStyle().Background(lipgloss.Color("#FFAB78"))
	markBarStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#3AC4BA"))
	disabledStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)

	chipStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("#3F3F5A")).Padding(0, 1)
	chipSelectedStyle = chipStyle.Background(lipgloss.Color("#8942E1")).Bold(true)
	chipMoreStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("250")).Padding(0, 1)

	dayStyle        = lipgloss.NewStyle().Width(4).Align(lipgloss.Right)
	dayOutsideStyle = dayStyle.Foreground(lipgloss.Color("240"))
	dayInRangeStyle = dayStyle.Background(lipgloss.Color("#3F3F5A"))
	dayEdgeStyle    = dayStyle.Background(lipgloss.Color("#8942E1")).Bold(true)
	dayCursorStyle  = dayStyle.Background(lipgloss.Color("#FFAB78")).Foreground(lipgloss.Color("0"))
	dayTodayStyle   = dayStyle.Underline(true)
)

// checkbox glyphs for the tri-state rows
const (
	boxChecked       = "[x]"
	boxIndeterminate = "[-]"
	boxUnchecked     = "[ ]"
)

// renderFooter creates a consistent footer across all widgets
// statusLine: optional status information (shown in subtleStyle)
// helpLines: help text lines (shown in helpStyle)
func renderFooter(statusLine string, helpLines ...string) string {
	var b strings.Builder

	if statusLine != "" {
		b.WriteString(subtleStyle.Render(statusLine) + "\n")
	}

	for _, line := range helpLines {
		b.WriteString(helpStyle.Render(line) + "\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}
