package playersview

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/scrawl-party/scrawl-cli/internal/view/messages"
	"github.com/scrawl-party/scrawl-cli/pkg/protocol"
)

const textColor = lipgloss.Color("#FAFAFA")
const borderColor = lipgloss.Color("#555555")

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(textColor).
			PaddingLeft(1).
			PaddingRight(1).
			Bold(true)
	playerStyle = lipgloss.NewStyle().
			Foreground(textColor).
			PaddingLeft(1).
			PaddingRight(1)
	myStyle     = playerStyle.Copy().Bold(true)
	borderStyle = lipgloss.NewStyle().Foreground(borderColor)
)

type Model struct {
	players     []protocol.Player
	currentTurn string
	myRow       int
}

func New() Model {
	return Model{
		myRow: -1,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.GameStateMessage:
		handleNewState(&m, msg.State)
	}
	return m, nil
}

func (m Model) View() string {
	rows := make([][]string, 0, len(m.players))
	for _, player := range m.players {
		name := player.Name
		if player.Name == m.currentTurn {
			name = "✏ " + name
		}
		rows = append(rows, []string{name, strconv.Itoa(player.Score)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return headerStyle
			}
			if row-1 == m.myRow {
				return myStyle
			}
			return playerStyle
		}).
		Headers("Player", "Score").
		Rows(rows...)

	return t.String()
}

func handleNewState(m *Model, state *protocol.State) {
	if state == nil {
		m.players = nil
		m.currentTurn = ""
		m.myRow = -1
		return
	}

	m.players = state.Players
	m.currentTurn = state.CurrentTurn
	m.myRow = -1
	for i, player := range state.Players {
		if player.IsCurrentUser {
			m.myRow = i
		}
	}
}
