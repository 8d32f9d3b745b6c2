package gamelogview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scrawl-party/scrawl-cli/internal/view/messages"
	"github.com/scrawl-party/scrawl-cli/pkg/game"
)

const maxEntries = 8

var (
	plainStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00E676"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5722"))
)

type entry struct {
	kind game.EventKind
	text string
}

// Model keeps a short scrollback of session events: joins, leaves,
// correct guesses and coordinator errors.
type Model struct {
	entries []entry
}

func New() Model {
	return Model{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) Model {
	switch msg := msg.(type) {
	case messages.GameEventMessage:
		if msg.Event.Text == "" {
			break
		}
		m.entries = append(m.entries, entry{
			kind: msg.Event.Kind,
			text: msg.Event.Text,
		})
		if len(m.entries) > maxEntries {
			m.entries = m.entries[len(m.entries)-maxEntries:]
		}
	}
	return m
}

func (m Model) View() string {
	lines := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		switch e.kind {
		case game.EventCorrectGuess:
			lines = append(lines, successStyle.Render(e.text))
		case game.EventCoordinatorError:
			lines = append(lines, errorStyle.Render(e.text))
		default:
			lines = append(lines, plainStyle.Render(e.text))
		}
	}
	return strings.Join(lines, "\n")
}
