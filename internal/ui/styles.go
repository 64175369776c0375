package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Report styles
	Header     lipgloss.Style
	Subheader  lipgloss.Style
	MetricName lipgloss.Style
	Value      lipgloss.Style
	Interval   lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconSuccess string
	IconWarning string
	IconError   string
}

// NewStyles creates a new Styles instance
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")) // White bold
		s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))          // Gray
		s.MetricName = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))        // Cyan
		s.Value = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))             // White
		s.Interval = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))          // Blue

		s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green
		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Yellow
		s.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))    // Red

		s.IconSuccess = "\u2713" // ✓
		s.IconWarning = "\u26a0" // ⚠
		s.IconError = "\u2717"   // ✗
	} else {
		// No-op styles for non-TTY (plain text output)
		s.Header = lipgloss.NewStyle()
		s.Subheader = lipgloss.NewStyle()
		s.MetricName = lipgloss.NewStyle()
		s.Value = lipgloss.NewStyle()
		s.Interval = lipgloss.NewStyle()

		s.Success = lipgloss.NewStyle()
		s.Warning = lipgloss.NewStyle()
		s.Error = lipgloss.NewStyle()

		s.IconSuccess = "OK:"
		s.IconWarning = "WARN:"
		s.IconError = "ERROR:"
	}

	return s
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}
