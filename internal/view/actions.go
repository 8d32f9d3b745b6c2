package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/scrawl-party/scrawl-cli/internal/config"
	"github.com/scrawl-party/scrawl-cli/internal/view/commands"
	"github.com/scrawl-party/scrawl-cli/internal/view/messages"
	"github.com/scrawl-party/scrawl-cli/internal/view/states"
)

type Action string

const (
	Join  Action = "join"
	Reset Action = "reset"
	Retry Action = "retry"
	Share Action = "share"
	Clear Action = "clear"
	Exit  Action = "exit"
)

type actionFunc func(m *model, args []string) tea.Cmd

var actions = map[Action]actionFunc{
	Join:  runJoinAction,
	Reset: runResetAction,
	Retry: runRetryAction,
	Share: runShareAction,
	Clear: runClearAction,
	Exit:  runExitAction,
}

func processPlayerNameInput(m *model, playerName string) tea.Cmd {
	return func() tea.Msg {
		if playerName == "" {
			return messages.NewErrorMessage(errors.New("empty name"))
		}
		m.game.SetPlayerName(playerName)
		if m.storage != nil {
			if err := m.storage.SetPlayerName(playerName); err != nil {
				config.Logger.Warn("failed to store player name", zap.Error(err))
			}
		}
		return messages.AppStateFinishedMessage{
			State: states.InputPlayerName,
		}
	}
}

func runJoinAction(m *model, args []string) tea.Cmd {
	return commands.JoinGame(m.game)
}

func runResetAction(m *model, args []string) tea.Cmd {
	return commands.ResetGame(m.game)
}

func runRetryAction(m *model, args []string) tea.Cmd {
	return commands.RetryConnection(m.transport)
}

func runShareAction(m *model, args []string) tea.Cmd {
	return commands.CopyRoomCode(config.ServerURL())
}

// runClearAction wipes the local surface only. The next remote stroke or
// snapshot repaints it.
func runClearAction(m *model, args []string) tea.Cmd {
	surface := m.surface
	return func() tea.Msg {
		surface.Clear()
		return messages.NewErrorMessage(nil)
	}
}

func runExitAction(m *model, args []string) tea.Cmd {
	return commands.QuitApp(m.game, m.transport)
}
