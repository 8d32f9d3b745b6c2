package game

import "sync"

type EventKind int

const (
	EventPlayerJoined EventKind = iota
	EventPlayerLeft
	EventCorrectGuess
	EventGameOver
	EventCoordinatorError
)

// Event is one human-readable entry for the session log. Text is what the
// view shows; the structured fields let components react to specific kinds.
type Event struct {
	Kind   EventKind
	Text   string
	Player string
	Word   string
}

type EventSubscription chan Event

type EventManager struct {
	mutex       sync.Mutex
	subscribers []EventSubscription
}

func NewEventManager() *EventManager {
	return &EventManager{}
}

func (m *EventManager) Send(event Event) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, subscriber := range m.subscribers {
		subscriber <- event
	}
}

func (m *EventManager) Subscribe() EventSubscription {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	channel := make(EventSubscription, 10)
	m.subscribers = append(m.subscribers, channel)
	return channel
}

func (m *EventManager) Count() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.subscribers)
}

func (m *EventManager) Close() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, subscriber := range m.subscribers {
		close(subscriber)
	}
	m.subscribers = nil
}
