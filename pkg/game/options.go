package game

import (
	"context"

	"go.uber.org/zap"

	"github.com/scrawl-party/scrawl-cli/internal/dispatch"
	"github.com/scrawl-party/scrawl-cli/internal/transport"
)

type Option func(*Game)

func WithContext(ctx context.Context) Option {
	return func(g *Game) {
		g.ctx = ctx
	}
}

func WithTransport(t transport.Service) Option {
	return func(g *Game) {
		g.transport = t
	}
}

func WithDispatcher(d *dispatch.Dispatcher) Option {
	return func(g *Game) {
		g.dispatcher = d
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

func WithPlayerName(name string) Option {
	return func(g *Game) {
		g.config.PlayerName = name
	}
}
