package transport

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

type Option func(*Channel)

func WithContext(ctx context.Context) Option {
	return func(c *Channel) {
		c.ctx = ctx
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Channel) {
		c.logger = logger
	}
}

func WithClock(clock clockwork.Clock) Option {
	return func(c *Channel) {
		c.clock = clock
	}
}

func WithDialer(dialer *websocket.Dialer) Option {
	return func(c *Channel) {
		c.dialer = dialer
	}
}

func WithMaxRetries(maxRetries int) Option {
	return func(c *Channel) {
		c.maxRetries = maxRetries
	}
}

func WithRetryDelay(delay time.Duration) Option {
	return func(c *Channel) {
		c.retryDelay = delay
	}
}
