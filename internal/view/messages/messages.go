package messages

import (
	"github.com/scrawl-party/scrawl-cli/internal/transport"
	"github.com/scrawl-party/scrawl-cli/internal/view/states"
	"github.com/scrawl-party/scrawl-cli/pkg/game"
	"github.com/scrawl-party/scrawl-cli/pkg/protocol"
)

type FatalErrorMessage struct {
	Err error
}

type AppStateFinishedMessage struct {
	State states.AppState
}

type AppStateMessage struct {
	State states.AppState
}

type GameStateMessage struct {
	State *protocol.State
}

type GameEventMessage struct {
	Event game.Event
}

type ErrorMessage struct {
	Err error
}

func NewErrorMessage(err error) ErrorMessage {
	return ErrorMessage{Err: err}
}

type ConnectionStatus struct {
	Status transport.ConnectionStatus
}

type CommandModeChange struct {
	CommandMode bool
}

// RedrawCanvas is emitted on a timer so remote strokes written to the
// shared surface between tea messages become visible.
type RedrawCanvas struct{}
