package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/scrawl-party/scrawl-cli/internal/config"
	"github.com/scrawl-party/scrawl-cli/internal/transport"
	"github.com/scrawl-party/scrawl-cli/internal/view/components/canvasview"
	"github.com/scrawl-party/scrawl-cli/pkg/game"
	"github.com/scrawl-party/scrawl-cli/pkg/relay"
	"github.com/scrawl-party/scrawl-cli/pkg/storage"
)

func Run(game *game.Game, transport transport.Service, producer *relay.Producer, surface *canvasview.Surface, storage storage.Service) int {
	m := initialModel(game, transport, producer, surface, storage)
	p := tea.NewProgram(m, tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		config.Logger.Error("error running program", zap.Error(err))
		return 1
	}
	return 0
}
