package tui

import (
	"fmt"
	"os"
	"strings"

	"imginfo/internal/domain"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Phase represents the current state of the TUI
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseDone
	PhaseError
)

// Messages for the TUI
type (
	MetadataReadyMsg struct {
		Meta domain.Metadata
	}
	ErrorMsg struct {
		Err error
	}
)

// InspectFunc starts the extraction and delivers a MetadataReadyMsg or
// ErrorMsg when it finishes.
type InspectFunc func() tea.Cmd

// Config for the TUI
type Config struct {
	Path    string
	Inspect InspectFunc
}

// Model is the main TUI model
type Model struct {
	config   Config
	Phase    Phase
	Meta     domain.Metadata
	Err      error
	Quitting bool
	spinner  spinner.Model
}

// NewModel creates a new TUI model
func NewModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return Model{
		config:  cfg,
		Phase:   PhaseLoading,
		spinner: s,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.config.Inspect != nil {
		cmds = append(cmds, m.config.Inspect())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.Quitting = true
			return m, tea.Quit
		case "enter":
			if m.Phase == PhaseDone || m.Phase == PhaseError {
				return m, tea.Quit
			}
		}

	case MetadataReadyMsg:
		m.Phase = PhaseDone
		m.Meta = msg.Meta
		return m, nil

	case ErrorMsg:
		m.Phase = PhaseError
		m.Err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if m.Phase == PhaseLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.Phase {
	case PhaseLoading:
		b.WriteString(fmt.Sprintf("%s Reading metadata...", m.spinner.View()))
	case PhaseDone:
		b.WriteString(m.renderReport())
	case PhaseError:
		b.WriteString(m.renderError())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render(iconCamera + " imginfo")
	subtitle := subtitleStyle.Render("Image metadata at a glance")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		"",
		dimStyle.Render("File: "+shortenPath(m.config.Path)),
	)
}

func (m Model) renderReport() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Metadata"))
	b.WriteString("\n\n")

	b.WriteString(renderField("File size", fmt.Sprintf("%d bytes", m.Meta.SizeBytes)))
	if m.Meta.Created != nil {
		b.WriteString(renderField("Created", m.Meta.Created.Format("2006-01-02 15:04:05")))
	}
	b.WriteString(renderField("Dimensions", fmt.Sprintf("%d x %d", m.Meta.Width, m.Meta.Height)))
	b.WriteString(renderField("Color type", m.Meta.ColorType))

	if m.Meta.CameraModel != "" {
		b.WriteString(renderField("Camera model", m.Meta.CameraModel))
	} else {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			fieldLabelStyle.Render("Camera model:"),
			dimStyle.Render("not available"),
		))
	}

	return b.String()
}

func renderField(label, value string) string {
	return fmt.Sprintf("  %s  %s\n",
		fieldLabelStyle.Render(label+":"),
		fieldValueStyle.Render(value),
	)
}

func (m Model) renderError() string {
	icon := errorStyle.Render(iconError)
	msg := errorStyle.Render("Extraction failed")

	return errorBoxStyle.Render(fmt.Sprintf("%s %s", icon, msg))
}

func (m Model) renderHelp() string {
	var help string
	switch m.Phase {
	case PhaseLoading:
		help = "Press q to quit"
	case PhaseDone:
		help = "Press Enter to exit"
	case PhaseError:
		help = "Press Enter or q to exit"
	}
	return helpStyle.Render(help)
}

// shortenPath replaces the home directory prefix with ~ for display
func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
