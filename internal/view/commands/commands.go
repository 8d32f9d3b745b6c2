package commands

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/scrawl-party/scrawl-cli/internal/transport"
	"github.com/scrawl-party/scrawl-cli/internal/view/messages"
	"github.com/scrawl-party/scrawl-cli/internal/view/states"
	"github.com/scrawl-party/scrawl-cli/pkg/game"
	"github.com/scrawl-party/scrawl-cli/pkg/protocol"
)

func InitializeApp(game *game.Game, transport transport.Service) tea.Cmd {
	return func() tea.Msg {
		game.Start()

		// A dial failure is not fatal: the channel keeps retrying on its
		// own and the status view reports progress.
		_ = transport.Connect()

		return messages.AppStateFinishedMessage{State: states.Initializing}
	}
}

func JoinGame(game *game.Game) tea.Cmd {
	return func() tea.Msg {
		err := game.Join()
		if err != nil {
			return messages.NewErrorMessage(err)
		}
		return messages.AppStateFinishedMessage{State: states.Connecting}
	}
}

func PublishGuess(game *game.Game, guess string) tea.Cmd {
	return func() tea.Msg {
		err := game.Guess(guess)
		return messages.NewErrorMessage(err)
	}
}

func ResetGame(game *game.Game) tea.Cmd {
	return func() tea.Msg {
		err := game.Reset()
		return messages.NewErrorMessage(err)
	}
}

func RetryConnection(transport transport.Service) tea.Cmd {
	return func() tea.Msg {
		err := transport.Reconnect()
		return messages.NewErrorMessage(err)
	}
}

// CopyRoomCode puts a shareable room code for the current endpoint on the
// system clipboard.
func CopyRoomCode(endpoint string) tea.Cmd {
	return func() tea.Msg {
		roomID := protocol.NewRoom(endpoint).ToRoomID()
		err := clipboard.WriteAll(roomID.String())
		if err != nil {
			return messages.NewErrorMessage(errors.Wrap(err, "failed to copy room code"))
		}
		return messages.NewErrorMessage(nil)
	}
}

func QuitApp(game *game.Game, transport transport.Service) tea.Cmd {
	return func() tea.Msg {
		if game != nil {
			game.Stop()
		}
		if transport != nil {
			transport.Stop()
		}
		return tea.Quit()
	}
}
