package relay

import (
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/scrawl-party/scrawl-cli/internal/config"
	"github.com/scrawl-party/scrawl-cli/internal/throttle"
	"github.com/scrawl-party/scrawl-cli/pkg/game"
	"github.com/scrawl-party/scrawl-cli/pkg/protocol"
)

const (
	DefaultColor     = "#ffffff"
	DefaultLineWidth = 2
)

// Producer turns local pointer input into draw messages. Intermediate
// samples are rate limited; stroke boundaries always go out immediately so
// the remote path stays continuous.
type Producer struct {
	logger   *zap.Logger
	game     *game.Game
	throttle *throttle.Throttle[protocol.DrawMessage]

	mutex     sync.Mutex
	color     string
	lineWidth float64
}

type ProducerOption func(*Producer)

func WithLogger(logger *zap.Logger) ProducerOption {
	return func(p *Producer) {
		p.logger = logger
	}
}

func WithClock(clock clockwork.Clock) ProducerOption {
	return func(p *Producer) {
		p.throttle = throttle.New(clock, config.StrokeSampleInterval, p.send)
	}
}

func NewProducer(g *game.Game, opts ...ProducerOption) *Producer {
	p := &Producer{
		game:      g,
		color:     DefaultColor,
		lineWidth: DefaultLineWidth,
	}
	p.throttle = throttle.New(clockwork.NewRealClock(), config.StrokeSampleInterval, p.send)

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = zap.NewNop()
	}
	p.logger = p.logger.Named("producer")

	return p
}

func (p *Producer) Color() string {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.color
}

func (p *Producer) LineWidth() float64 {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.lineWidth
}

func (p *Producer) SetColor(color string) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.color = color
}

func (p *Producer) SetLineWidth(width float64) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.lineWidth = width
}

// StrokeStart anchors a new path. Boundary samples bypass the rate
// limiter; any pending intermediate sample is flushed first to keep the
// wire order consistent with the local order.
func (p *Producer) StrokeStart(x, y float64) {
	p.throttle.Flush()
	p.send(p.sample(protocol.DrawStart, x, y))
}

// StrokeMove emits an intermediate sample through the rate limiter.
func (p *Producer) StrokeMove(x, y float64) {
	p.throttle.Do(p.sample(protocol.DrawMove, x, y))
}

// StrokeEnd closes the current path.
func (p *Producer) StrokeEnd(x, y float64) {
	p.throttle.Flush()
	p.send(p.sample(protocol.DrawEnd, x, y))
}

func (p *Producer) Stop() {
	p.throttle.Stop()
}

func (p *Producer) sample(drawType protocol.DrawType, x, y float64) protocol.DrawMessage {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return protocol.DrawMessage{
		Message:   protocol.Message{Type: protocol.MessageTypeDraw},
		X:         x,
		Y:         y,
		DrawType:  drawType,
		Color:     p.color,
		LineWidth: p.lineWidth,
	}
}

func (p *Producer) send(sample protocol.DrawMessage) {
	err := p.game.SendStroke(sample)
	switch {
	case errors.Is(err, game.ErrNotYourTurn):
		// Input while not drawing is inert.
	case err != nil:
		p.logger.Warn("failed to relay stroke sample", zap.Error(err))
	}
}
