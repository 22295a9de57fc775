package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model that shows frames produced by a Host and
// feeds key presses and resizes back to it. The game loop itself runs
// outside Bubble Tea.
type Model struct {
	host     *Host
	frame    string
	keys     KeyMap
	help     help.Model
	quitting bool
}

// NewModel creates a model displaying frames of host.
func NewModel(host *Host) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		host: host,
		keys: host.keys,
		help: h,
	}
}

// Init starts waiting for the first frame.
func (m Model) Init() tea.Cmd {
	return waitForFrame(m.host.frames)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.host.resize(msg.Width, msg.Height-footerLines)
		return m, nil

	case FrameMsg:
		m.frame = string(msg)
		return m, waitForFrame(m.host.frames)

	case framesClosedMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey forwards key presses to the host.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k, quit := m.keys.MapKey(msg)
	if quit {
		m.host.requestQuit()
		return m, nil
	}
	m.host.keyDown(k)
	return m, nil
}

// View renders the latest frame and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.frame)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}
