package transport

import "github.com/pkg/errors"

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock

// ErrNotConnected is returned by Send when the channel is not open.
// Callers treat sends as best-effort: the message is simply not delivered.
var ErrNotConnected = errors.New("channel is not open")

type Service interface {
	Connect() error
	// Reconnect resets the retry budget and dials immediately, even from
	// the Failed state. This is the manual retry affordance.
	Reconnect() error
	Send(payload []byte) error

	SubscribeToMessages() *MessagesSubscription
	Status() ConnectionStatus
	SubscribeToConnectionStatus() ConnectionStatusSubscription

	Stop()
}

type ConnectionState int

const (
	StateClosed ConnectionState = iota
	StateConnecting
	StateOpen
	StateFailed
)

func (s ConnectionState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

type ConnectionStatus struct {
	State      ConnectionState
	RetryCount int
	LastError  error
}

type MessagesSubscription struct {
	Ch          chan []byte
	Unsubscribe func()
}

type ConnectionStatusSubscription chan ConnectionStatus
