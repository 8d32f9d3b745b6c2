package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/scrawl-party/scrawl-cli/internal/config"
	"github.com/scrawl-party/scrawl-cli/internal/view/commands"
	"github.com/scrawl-party/scrawl-cli/internal/view/messages"
	"github.com/scrawl-party/scrawl-cli/internal/view/states"
)

func ProcessUserInput(m *model) tea.Cmd {
	defer m.input.Reset()
	return ProcessInput(m)
}

func ProcessInput(m *model) tea.Cmd {
	if m.state == states.InputPlayerName {
		return processPlayerNameInput(m, strings.TrimSpace(m.input.Value()))
	}

	if m.state == states.Playing {
		return ProcessAction(m, m.input.Value())
	}

	return nil
}

// ProcessAction routes a line of input: a leading slash selects a command,
// anything else is a guess.
func ProcessAction(m *model, action string) tea.Cmd {
	defer func() {
		config.Logger.Debug("user action processed",
			zap.Any("state", m.state),
		)
	}()

	action = strings.TrimSpace(action)
	if action == "" {
		return nil
	}

	if !strings.HasPrefix(action, "/") {
		return commands.PublishGuess(m.game, action)
	}

	args := strings.Fields(strings.TrimPrefix(action, "/"))
	if len(args) == 0 {
		return nil
	}

	commandRoot := Action(args[0])
	commandFn, ok := actions[commandRoot]

	if !ok {
		return func() tea.Msg {
			err := fmt.Errorf("unknown action: %s", commandRoot)
			return messages.NewErrorMessage(err)
		}
	}

	return commandFn(m, args[1:])
}
