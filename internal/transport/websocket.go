package transport

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/scrawl-party/scrawl-cli/internal/config"
)

const messageChannelSize = 42

// Channel owns exactly one physical websocket connection to the
// coordinator. The connection is destroyed and recreated on every
// reconnection attempt; only the retry counter carries over.
type Channel struct {
	logger *zap.Logger
	ctx    context.Context
	clock  clockwork.Clock
	dialer *websocket.Dialer

	url        string
	maxRetries int
	retryDelay time.Duration

	mutex       sync.Mutex
	conn        *websocket.Conn
	status      ConnectionStatus
	generation  int
	retryCancel chan struct{}

	messageSubscribers []*MessagesSubscription
	statusSubscribers  []ConnectionStatusSubscription
}

var _ Service = (*Channel)(nil)

func NewChannel(url string, opts ...Option) *Channel {
	c := &Channel{
		url:        url,
		maxRetries: config.MaxRetries,
		retryDelay: config.RetryDelay,
		status:     ConnectionStatus{State: StateClosed},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.ctx == nil {
		c.ctx = context.Background()
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	c.logger = c.logger.Named("transport")
	if c.clock == nil {
		c.clock = clockwork.NewRealClock()
	}
	if c.dialer == nil {
		c.dialer = websocket.DefaultDialer
	}

	return c
}

// Connect establishes the connection. If a connection is already open it is
// torn down first, so at most one physical socket exists at any time.
func (c *Channel) Connect() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.connectLocked()
}

func (c *Channel) Reconnect() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.cancelPendingRetryLocked()
	c.status.RetryCount = 0
	return c.connectLocked()
}

func (c *Channel) connectLocked() error {
	c.teardownLocked()
	c.setStatusLocked(ConnectionStatus{
		State:      StateConnecting,
		RetryCount: c.status.RetryCount,
	})

	conn, _, err := c.dialer.DialContext(c.ctx, c.url, nil)
	if err != nil {
		err = errors.Wrap(err, "failed to dial coordinator")
		c.logger.Warn("connect failed", zap.String("url", c.url), zap.Error(err))
		c.scheduleRetryLocked(err)
		return err
	}

	c.conn = conn
	c.generation++
	c.setStatusLocked(ConnectionStatus{State: StateOpen})
	c.logger.Info("connected", zap.String("url", c.url))

	go c.readLoop(conn, c.generation)
	return nil
}

// Send delivers one frame if the channel is open. Anything else is a
// best-effort no-op surfaced as ErrNotConnected.
func (c *Channel) Send(payload []byte) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.status.State != StateOpen || c.conn == nil {
		c.logger.Debug("dropping outbound message: channel not open",
			zap.String("state", c.status.State.String()))
		return ErrNotConnected
	}

	err := c.conn.WriteMessage(websocket.TextMessage, payload)
	return errors.Wrap(err, "failed to write message")
}

func (c *Channel) SubscribeToMessages() *MessagesSubscription {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	sub := &MessagesSubscription{
		Ch: make(chan []byte, messageChannelSize),
	}
	sub.Unsubscribe = func() {
		c.unsubscribeMessages(sub)
	}
	c.messageSubscribers = append(c.messageSubscribers, sub)
	return sub
}

func (c *Channel) Status() ConnectionStatus {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.status
}

func (c *Channel) SubscribeToConnectionStatus() ConnectionStatusSubscription {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	channel := make(ConnectionStatusSubscription, 10)
	c.statusSubscribers = append(c.statusSubscribers, channel)
	return channel
}

// Stop releases the connection and cancels any pending reconnection.
// No timer or callback fires after Stop returns.
func (c *Channel) Stop() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.cancelPendingRetryLocked()
	c.teardownLocked()
	c.setStatusLocked(ConnectionStatus{State: StateClosed})

	for _, sub := range c.messageSubscribers {
		close(sub.Ch)
	}
	c.messageSubscribers = nil

	for _, sub := range c.statusSubscribers {
		close(sub)
	}
	c.statusSubscribers = nil
}

func (c *Channel) teardownLocked() {
	if c.conn == nil {
		return
	}
	// Invalidate the read loop of the old connection before closing it.
	c.generation++
	_ = c.conn.Close()
	c.conn = nil
}

func (c *Channel) readLoop(conn *websocket.Conn, generation int) {
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			c.handleDisconnect(generation, err)
			return
		}
		c.deliver(payload)
	}
}

func (c *Channel) deliver(payload []byte) {
	c.mutex.Lock()
	subscribers := make([]*MessagesSubscription, len(c.messageSubscribers))
	copy(subscribers, c.messageSubscribers)
	c.mutex.Unlock()

	for _, sub := range subscribers {
		select {
		case sub.Ch <- payload:
		default:
			// Slow consumer. Dropping beats stalling the read loop.
			c.logger.Warn("message subscriber is full, dropping frame")
		}
	}
}

func (c *Channel) handleDisconnect(generation int, err error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if generation != c.generation {
		// A deliberate teardown already replaced this connection.
		return
	}

	c.conn = nil

	select {
	case <-c.ctx.Done():
		c.setStatusLocked(ConnectionStatus{State: StateClosed})
		return
	default:
	}

	c.logger.Warn("connection lost", zap.Error(err))
	c.scheduleRetryLocked(err)
}

// scheduleRetryLocked implements the bounded reconnection policy: a fixed
// delay between attempts, at most maxRetries consecutive attempts, then the
// terminal Failed state until a manual Reconnect.
func (c *Channel) scheduleRetryLocked(err error) {
	if c.status.RetryCount >= c.maxRetries {
		c.logger.Error("retries exhausted",
			zap.Int("maxRetries", c.maxRetries),
			zap.Error(err),
		)
		c.setStatusLocked(ConnectionStatus{
			State:      StateFailed,
			RetryCount: c.status.RetryCount,
			LastError:  err,
		})
		return
	}

	c.status.RetryCount++
	c.setStatusLocked(ConnectionStatus{
		State:      StateConnecting,
		RetryCount: c.status.RetryCount,
		LastError:  err,
	})

	cancel := make(chan struct{})
	c.retryCancel = cancel

	c.logger.Info("scheduling reconnect",
		zap.Int("attempt", c.status.RetryCount),
		zap.Duration("delay", c.retryDelay),
	)

	go func() {
		select {
		case <-cancel:
			return
		case <-c.ctx.Done():
			return
		case <-c.clock.After(c.retryDelay):
		}

		c.mutex.Lock()
		defer c.mutex.Unlock()
		if c.retryCancel != cancel {
			// A manual reconnect or Stop intervened.
			return
		}
		c.retryCancel = nil
		_ = c.connectLocked()
	}()
}

func (c *Channel) cancelPendingRetryLocked() {
	if c.retryCancel != nil {
		close(c.retryCancel)
		c.retryCancel = nil
	}
}

func (c *Channel) setStatusLocked(status ConnectionStatus) {
	c.status = status
	for _, sub := range c.statusSubscribers {
		select {
		case sub <- status:
		default:
		}
	}
}

func (c *Channel) unsubscribeMessages(sub *MessagesSubscription) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for i, s := range c.messageSubscribers {
		if s == sub {
			c.messageSubscribers = append(c.messageSubscribers[:i], c.messageSubscribers[i+1:]...)
			close(s.Ch)
			return
		}
	}
}
