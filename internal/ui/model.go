package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Stage represents the current stage of the analysis pipeline
type Stage int

const (
	StageLoadInput Stage = iota
	StageTally
	StageSample
	StageSummarize
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageLoadInput:
		return "Loading predictions"
	case StageTally:
		return "Tallying confusion matrix"
	case StageSample:
		return "Sampling posterior matrices"
	case StageSummarize:
		return "Summarizing credible intervals"
	default:
		return "Done"
	}
}

// Message types for updating the model
type (
	StageMsg     Stage
	OperationMsg string
	DoneMsg      struct{ Err error }
)

// Model is the Bubbletea model for progress display
type Model struct {
	stage     Stage
	spinner   spinner.Model
	currentOp string
	quitting  bool
	err       error
}

// NewModel creates a new progress model
func NewModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		stage:   StageLoadInput,
		spinner: s,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case StageMsg:
		m.stage = Stage(msg)
		m.currentOp = ""
		return m, nil

	case OperationMsg:
		m.currentOp = string(msg)
		return m, nil

	case DoneMsg:
		m.err = msg.Err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s", m.spinner.View(), m.stage))
	if m.currentOp != "" {
		b.WriteString(fmt.Sprintf(" (%s)", m.currentOp))
	}
	b.WriteString("\n")
	return b.String()
}
