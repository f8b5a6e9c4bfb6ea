// Package tui renders live build progress from a progrock recording.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vito/progrock"
	"go.trai.ch/vcbuild/internal/ui/style"
)

const (
	statusRunning   = "running"
	statusCompleted = "completed"
	statusFailed    = "failed"
	statusCached    = "cached"
)

// VertexState is the rendered state of one recorded step.
type VertexState struct {
	ID     string
	Name   string
	Status string
	Err    string
}

type styles struct {
	running   lipgloss.Style
	completed lipgloss.Style
	failed    lipgloss.Style
	cached    lipgloss.Style
}

// Model is the Bubble Tea model of the progress view.
type Model struct {
	vertices []VertexState
	width    int
	height   int
	spinner  spinner.Model
	styles   styles
}

// NewModel creates an empty progress view.
func NewModel() *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(style.Yellow)

	return &Model{
		spinner: s,
		styles: styles{
			running:   lipgloss.NewStyle().Foreground(style.Yellow),
			completed: lipgloss.NewStyle().Foreground(style.Green),
			failed:    lipgloss.NewStyle().Foreground(style.Red),
			cached:    lipgloss.NewStyle().Foreground(style.Slate).Faint(true),
		},
	}
}

// Init starts the spinner.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case MsgTapeUpdate:
		for _, v := range msg.Update.GetVertexes() {
			m.updateOrAddVertex(v)
		}
		return m, nil
	case MsgLog:
		return m, tea.Println(msg.Line)
	case MsgTapeEnded:
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) updateOrAddVertex(v *progrock.Vertex) {
	for i := range m.vertices {
		if m.vertices[i].ID == v.GetId() {
			m.vertices[i].Status, m.vertices[i].Err = vertexStatus(v)
			return
		}
	}
	state := VertexState{ID: v.GetId(), Name: v.GetName()}
	state.Status, state.Err = vertexStatus(v)
	m.vertices = append(m.vertices, state)
}

func vertexStatus(v *progrock.Vertex) (string, string) {
	switch {
	case v.GetError() != "":
		return statusFailed, v.GetError()
	case v.GetCanceled():
		return statusFailed, "canceled"
	case v.GetCached():
		return statusCached, ""
	case v.GetCompleted() != nil:
		return statusCompleted, ""
	default:
		return statusRunning, ""
	}
}

// Vertices returns a snapshot of the rendered vertices.
func (m *Model) Vertices() []VertexState {
	return append([]VertexState(nil), m.vertices...)
}

// View renders the most recent vertices that fit the terminal height.
func (m *Model) View() string {
	var s strings.Builder

	start := 0
	if m.height > 0 && len(m.vertices) > m.height {
		start = len(m.vertices) - m.height
	}

	for _, v := range m.vertices[start:] {
		var icon string
		var st lipgloss.Style
		switch v.Status {
		case statusCompleted:
			icon, st = style.Check, m.styles.completed
		case statusFailed:
			icon, st = style.Cross, m.styles.failed
		case statusCached:
			icon, st = style.Skip, m.styles.cached
		default:
			icon, st = m.spinner.View(), m.styles.running
		}

		line := fmt.Sprintf("%s %s", st.Render(icon), v.Name)
		if v.Err != "" {
			line += ": " + st.Render(v.Err)
		}
		if m.width > 0 {
			line = lipgloss.NewStyle().MaxWidth(m.width).Render(line)
		}
		s.WriteString(line + "\n")
	}
	return s.String()
}
