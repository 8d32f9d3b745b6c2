package dispatch

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/scrawl-party/scrawl-cli/pkg/protocol"
)

// Handler receives every inbound message together with its raw payload,
// so that consumers can unmarshal the typed variant they care about.
type Handler func(message *protocol.Message, payload []byte)

type Subscription struct {
	handler Handler
	removed bool
}

// Dispatcher is a process-local pub/sub registry for inbound messages.
// Handlers are invoked in registration order. Each dispatch iterates over a
// snapshot of the registration list, so a handler may unsubscribe itself or
// any other handler without disturbing the dispatch in flight.
type Dispatcher struct {
	logger        *zap.Logger
	mutex         sync.Mutex
	subscriptions []*Subscription
}

func New(logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		logger: logger.Named("dispatch"),
	}
}

func (d *Dispatcher) Subscribe(handler Handler) *Subscription {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	sub := &Subscription{handler: handler}
	d.subscriptions = append(d.subscriptions, sub)
	return sub
}

func (d *Dispatcher) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	sub.removed = true
	for i, s := range d.subscriptions {
		if s == sub {
			d.subscriptions = append(d.subscriptions[:i], d.subscriptions[i+1:]...)
			return
		}
	}
}

func (d *Dispatcher) Count() int {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return len(d.subscriptions)
}

// Dispatch parses the frame and delivers it to every registered handler.
// Malformed frames are dropped with a diagnostic and never reach handlers.
func (d *Dispatcher) Dispatch(payload []byte) {
	message, err := protocol.UnmarshalMessage(payload)
	if err != nil {
		d.logger.Warn("dropping malformed frame",
			zap.Error(err),
			zap.ByteString("payload", payload),
		)
		return
	}

	d.mutex.Lock()
	snapshot := make([]*Subscription, len(d.subscriptions))
	copy(snapshot, d.subscriptions)
	d.mutex.Unlock()

	for _, sub := range snapshot {
		d.mutex.Lock()
		removed := sub.removed
		d.mutex.Unlock()
		if removed {
			continue
		}
		d.invoke(sub, message, payload)
	}
}

// Run drains the inbound channel and dispatches sequentially. This is the
// single delivery goroutine: no two messages are ever dispatched
// concurrently, which keeps session state free of data races.
func (d *Dispatcher) Run(ctx context.Context, messages <-chan []byte) {
	for {
		select {
		case <-ctx.Done():
			return
		case payload, more := <-messages:
			if !more {
				return
			}
			d.Dispatch(payload)
		}
	}
}

func (d *Dispatcher) invoke(sub *Subscription, message *protocol.Message, payload []byte) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("message handler panicked",
				zap.Any("panic", r),
				zap.String("type", string(message.Type)),
			)
		}
	}()
	sub.handler(message, payload)
}
