package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/scrawl-party/scrawl-cli/internal/config"
	"github.com/scrawl-party/scrawl-cli/internal/view/states"
	"github.com/scrawl-party/scrawl-cli/pkg/game"
)

var (
	wordStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA"))
	shadeStyle = lipgloss.NewStyle().Foreground(config.ForegroundShadeColor)
)

func (m model) renderAppState() string {
	switch m.state {
	case states.Idle:
		return "nothing is happening. boring life."
	case states.Initializing:
		return m.spinner.View() + " Starting up..."
	case states.InputPlayerName:
		return m.renderPlayerNameInput()
	case states.Connecting:
		return lipgloss.JoinVertical(lipgloss.Top,
			m.spinner.View()+" Connecting to "+config.ServerURL()+" ...",
			m.connectionView.View(),
		)
	case states.Playing:
		return m.renderGame()
	}

	return "unknown app state"
}

func (m model) renderPlayerNameInput() string {
	return lipgloss.JoinVertical(
		lipgloss.Top,
		m.input.View(),
		m.errorView.View(),
	)
}

func (m model) renderGame() string {
	if m.gameState == nil {
		return fmt.Sprintf("\n%s Waiting for initial game state ...\n",
			m.spinner.View(),
		)
	}

	if m.game.Phase() == game.PhaseGameOver {
		return m.renderGameOver()
	}

	sidebar := lipgloss.JoinVertical(lipgloss.Top,
		m.playersView.View(),
		"",
		m.gameLogView.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Top,
		m.renderTurnBar(),
		lipgloss.JoinHorizontal(lipgloss.Top, m.canvasView.View(), "  ", sidebar),
		m.connectionView.View(),
		m.input.View(),
		m.errorView.View(),
	)
}

func (m model) renderTurnBar() string {
	round := fmt.Sprintf("Round %d/%d", m.gameState.RoundsPlayed+1, m.gameState.MaxRounds)

	var turn string
	if m.game.IsDrawing() {
		turn = "Your turn! Draw: " + wordStyle.Render(m.game.CurrentWord())
	} else if m.gameState.CurrentTurn != "" {
		turn = m.gameState.CurrentTurn + " is drawing. Guess the word!"
	} else {
		turn = "Waiting for players ..."
	}

	return lipgloss.JoinHorizontal(lipgloss.Left, turn, shadeStyle.Render("  "+round))
}

func (m model) renderGameOver() string {
	scores := m.game.FinalScores()

	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return scores[names[i]] > scores[names[j]]
	})

	lines := []string{wordStyle.Render("Game over!"), ""}
	for i, name := range names {
		lines = append(lines, fmt.Sprintf("%d. %s: %d", i+1, name, scores[name]))
	}
	lines = append(lines, "", shadeStyle.Render("Type /reset to play again, /exit to quit."))
	lines = append(lines, m.input.View(), m.errorView.View())

	return lipgloss.JoinVertical(lipgloss.Top, lines...)
}

func renderLogPath() string {
	path := strings.Replace(config.LogFilePath, " ", "%20", -1)
	return fmt.Sprintf("Log: file:///%s", path)
}
