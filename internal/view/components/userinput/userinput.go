package userinput

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scrawl-party/scrawl-cli/internal/config"
	"github.com/scrawl-party/scrawl-cli/internal/view/messages"
	"github.com/scrawl-party/scrawl-cli/internal/view/states"
)

var style = lipgloss.NewStyle().Foreground(config.UserColor)

type Model struct {
	input textinput.Model
}

func New() Model {
	input := textinput.New()
	input.Placeholder = "Type a guess, or / for commands..."
	input.Prompt = "┃ "
	input.Cursor.SetMode(cursor.CursorBlink)
	input.Cursor.Style = style
	input.Focus()

	return Model{
		input: input,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case messages.AppStateMessage:
		switch msg.State {
		case states.Playing:
			m.input.Placeholder = "Type a guess, or / for commands..."
		case states.InputPlayerName:
			cmd = m.input.Focus()
			cmds = append(cmds, cmd)
			m.input.Placeholder = "Type your name..."
		default:
		}
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	return m.input.View()
}

func (m *Model) SetValue(s string) {
	m.input.SetValue(s)
}

func (m *Model) Focused() bool {
	return m.input.Focused()
}

func (m *Model) Reset() {
	m.input.Reset()
}

func (m *Model) Value() string {
	return m.input.Value()
}
