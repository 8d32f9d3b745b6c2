package relay

import (
	"go.uber.org/zap"

	"github.com/scrawl-party/scrawl-cli/internal/dispatch"
	"github.com/scrawl-party/scrawl-cli/pkg/game"
	"github.com/scrawl-party/scrawl-cli/pkg/protocol"
)

// Consumer renders remote draw messages onto a Canvas. It owns the path
// anchor: a stroke only continues from an anchored point, and the anchor
// never survives a turn change.
type Consumer struct {
	logger     *zap.Logger
	game       *game.Game
	dispatcher *dispatch.Dispatcher
	canvas     Canvas

	sub *dispatch.Subscription

	// Touched only from the dispatcher goroutine.
	hasAnchor bool
	lastTurn  string
}

type ConsumerOption func(*Consumer)

func WithConsumerLogger(logger *zap.Logger) ConsumerOption {
	return func(c *Consumer) {
		c.logger = logger
	}
}

func NewConsumer(g *game.Game, d *dispatch.Dispatcher, canvas Canvas, opts ...ConsumerOption) *Consumer {
	c := &Consumer{
		game:       g,
		dispatcher: d,
		canvas:     canvas,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	c.logger = c.logger.Named("consumer")

	return c
}

func (c *Consumer) Start() {
	c.sub = c.dispatcher.Subscribe(c.handleMessage)
}

func (c *Consumer) Stop() {
	c.dispatcher.Unsubscribe(c.sub)
	c.sub = nil
}

func (c *Consumer) handleMessage(message *protocol.Message, payload []byte) {
	switch message.Type {
	case protocol.MessageTypeDraw:
		c.handleDraw(payload)
	case protocol.MessageTypeGameState:
		c.handleGameState(payload)
	}
}

func (c *Consumer) handleGameState(payload []byte) {
	message, err := protocol.UnmarshalGameState(payload)
	if err != nil {
		return
	}

	if message.State.CurrentTurn != c.lastTurn {
		c.lastTurn = message.State.CurrentTurn
		c.hasAnchor = false
		c.canvas.Clear()
	}
}

func (c *Consumer) handleDraw(payload []byte) {
	message, err := protocol.UnmarshalDraw(payload)
	if err != nil {
		c.logger.Warn("dropping draw message", zap.Error(err))
		return
	}

	// The drawer renders locally; its own samples echo back only if the
	// coordinator broadcasts to everyone.
	if c.game.IsDrawing() {
		return
	}

	switch message.DrawType {
	case protocol.DrawStart:
		c.canvas.MoveTo(message.X, message.Y)
		c.hasAnchor = true

	case protocol.DrawMove:
		if !c.hasAnchor {
			// A sample without a path start opens a fresh path.
			c.canvas.MoveTo(message.X, message.Y)
			c.hasAnchor = true
			return
		}
		c.canvas.LineTo(message.X, message.Y, message.Color, message.LineWidth)

	case protocol.DrawEnd:
		if c.hasAnchor {
			c.canvas.LineTo(message.X, message.Y, message.Color, message.LineWidth)
		}
		c.hasAnchor = false
	}
}
