package game

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/scrawl-party/scrawl-cli/internal/dispatch"
	"github.com/scrawl-party/scrawl-cli/internal/transport"
	"github.com/scrawl-party/scrawl-cli/pkg/protocol"
)

var (
	ErrNotYourTurn       = errors.New("not your turn to draw")
	ErrDrawerCannotGuess = errors.New("the drawer cannot guess")
	ErrNoActiveRound     = errors.New("no active round")
)

// Phase is the client-side session lifecycle. Transitions are driven purely
// by inbound messages; the coordinator owns all timing.
type Phase string

const (
	PhaseLobby           Phase = "lobby"
	PhaseActive          Phase = "active"
	PhaseRoundTransition Phase = "round_transition"
	PhaseGameOver        Phase = "game_over"
)

type StateSubscription chan *protocol.State

// Game reflects the authoritative session state asserted by the
// coordinator. It never invents state: the snapshot is replaced wholesale
// on every game_state message and exposed read-only.
type Game struct {
	logger     *zap.Logger
	ctx        context.Context
	transport  transport.Service
	dispatcher *dispatch.Dispatcher
	events     *EventManager
	config     configuration

	sub *dispatch.Subscription

	mutex            sync.RWMutex
	phase            Phase
	state            *protocol.State
	finalScores      map[string]int
	stateSubscribers []StateSubscription
}

func NewGame(opts []Option) *Game {
	game := &Game{
		events: NewEventManager(),
		phase:  PhaseLobby,
		config: defaultConfig,
	}

	for _, opt := range opts {
		opt(game)
	}

	if game.ctx == nil {
		game.ctx = context.Background()
	}
	if game.logger == nil {
		game.logger = zap.NewNop()
	}
	game.logger = game.logger.Named("game")

	if game.transport == nil {
		game.logger.Error("transport is required")
		return nil
	}
	if game.dispatcher == nil {
		game.logger.Error("dispatcher is required")
		return nil
	}

	return game
}

// Start registers the game with the dispatcher. From here on every inbound
// message is delivered to handleMessage in arrival order.
func (g *Game) Start() {
	g.sub = g.dispatcher.Subscribe(g.handleMessage)
}

func (g *Game) Stop() {
	g.dispatcher.Unsubscribe(g.sub)
	g.sub = nil

	g.mutex.Lock()
	for _, subscriber := range g.stateSubscribers {
		close(subscriber)
	}
	g.stateSubscribers = nil
	g.mutex.Unlock()

	g.events.Close()
}

func (g *Game) PlayerName() string {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.config.PlayerName
}

// SetPlayerName changes the name announced in the next Join. It has no
// effect on a session the coordinator already knows us in.
func (g *Game) SetPlayerName(name string) {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	g.config.PlayerName = name
}

func (g *Game) Phase() Phase {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.phase
}

func (g *Game) CurrentState() *protocol.State {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.state
}

func (g *Game) FinalScores() map[string]int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.finalScores
}

// IsDrawing recomputes the turn gate from the latest snapshot on every
// call. It is never cached across snapshot updates.
func (g *Game) IsDrawing() bool {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.isDrawingLocked()
}

func (g *Game) isDrawingLocked() bool {
	if g.state == nil {
		return false
	}
	if me := g.state.Me(); me != nil {
		return g.state.CurrentTurn == me.Name
	}
	return g.state.IsDrawer(g.config.PlayerName)
}

// CurrentWord returns the word to draw. The coordinator only includes it in
// the drawer's own view of the snapshot, so this is empty for guessers.
func (g *Game) CurrentWord() string {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	if g.state == nil {
		return ""
	}
	return g.state.Word
}

func (g *Game) SubscribeToStateChanges() StateSubscription {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	channel := make(StateSubscription, 10)
	g.stateSubscribers = append(g.stateSubscribers, channel)
	return channel
}

func (g *Game) Events() *EventManager {
	return g.events
}

// Join announces this player to the coordinator.
func (g *Game) Join() error {
	g.logger.Debug("joining session", zap.String("player", g.config.PlayerName))
	return g.publishMessage(protocol.JoinMessage{
		Message: protocol.Message{Type: protocol.MessageTypeJoin},
		Player:  g.config.PlayerName,
	})
}

// Guess submits a guess. The drawer's guess is a local no-op: it is never
// sent, regardless of what the coordinator would do with it.
func (g *Game) Guess(guess string) error {
	g.mutex.RLock()
	phase := g.phase
	drawing := g.isDrawingLocked()
	g.mutex.RUnlock()

	if drawing {
		return ErrDrawerCannotGuess
	}
	if phase != PhaseActive {
		return ErrNoActiveRound
	}

	g.logger.Debug("publishing guess", zap.String("guess", guess))
	return g.publishMessage(protocol.GuessMessage{
		Message: protocol.Message{Type: protocol.MessageTypeGuess},
		Guess:   guess,
	})
}

// SendStroke relays one stroke sample. Only the current drawer may emit;
// everyone else's local input is inert.
func (g *Game) SendStroke(sample protocol.DrawMessage) error {
	if !g.IsDrawing() {
		return ErrNotYourTurn
	}

	sample.Type = protocol.MessageTypeDraw
	return g.publishMessage(sample)
}

// Reset asks the coordinator to restart the session with current players.
func (g *Game) Reset() error {
	g.logger.Debug("requesting game reset")
	return g.publishMessage(protocol.ResetGameMessage{
		Message: protocol.Message{Type: protocol.MessageTypeResetGame},
	})
}

func (g *Game) publishMessage(message any) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return errors.Wrap(err, "failed to marshal message")
	}

	err = g.transport.Send(payload)
	if errors.Is(err, transport.ErrNotConnected) {
		// Best effort: the channel is down, reconnection is in progress.
		g.logger.Debug("message not sent: channel not open")
		return err
	}
	return err
}

func (g *Game) handleMessage(message *protocol.Message, payload []byte) {
	logger := g.logger.With(zap.String("type", string(message.Type)))

	switch message.Type {
	case protocol.MessageTypeGameState:
		g.handleGameState(logger, payload)

	case protocol.MessageTypeCorrectGuess:
		g.handleCorrectGuess(logger, payload)

	case protocol.MessageTypePlayerJoined:
		g.handlePlayerJoined(logger, payload)

	case protocol.MessageTypePlayerLeft:
		g.handlePlayerLeft(logger, payload)

	case protocol.MessageTypeGameOver:
		g.handleGameOver(logger, payload)

	case protocol.MessageTypeError:
		g.handleError(logger, payload)

	case protocol.MessageTypePing:
		g.handlePing()

	case protocol.MessageTypePong:
		// Keepalive echo, nothing to do.

	case protocol.MessageTypeDraw:
		// Consumed by the drawing relay, not by the session machine.

	default:
		logger.Warn("unsupported message type")
	}
}

func (g *Game) handleGameState(logger *zap.Logger, payload []byte) {
	message, err := protocol.UnmarshalGameState(payload)
	if err != nil {
		logger.Warn("dropping message", zap.Error(err))
		return
	}

	g.mutex.Lock()
	// The coordinator is the single source of truth: no partial merge.
	state := message.State
	g.state = &state
	if state.CurrentTurn == "" {
		g.phase = PhaseLobby
	} else {
		g.phase = PhaseActive
	}
	subscribers := make([]StateSubscription, len(g.stateSubscribers))
	copy(subscribers, g.stateSubscribers)
	g.mutex.Unlock()

	logger.Debug("snapshot replaced",
		zap.String("currentTurn", state.CurrentTurn),
		zap.Int("players", len(state.Players)),
		zap.Int("roundsPlayed", state.RoundsPlayed),
	)

	for _, subscriber := range subscribers {
		subscriber <- &state
	}
}

func (g *Game) handleCorrectGuess(logger *zap.Logger, payload []byte) {
	message, err := protocol.UnmarshalCorrectGuess(payload)
	if err != nil {
		logger.Warn("dropping message", zap.Error(err))
		return
	}

	g.mutex.Lock()
	g.phase = PhaseRoundTransition
	g.mutex.Unlock()

	// Scores are not touched here: they only change with the next snapshot.
	g.events.Send(Event{
		Kind:   EventCorrectGuess,
		Player: message.Player,
		Word:   message.Word,
		Text:   fmt.Sprintf("%s guessed the word %q", message.Player, message.Word),
	})
}

func (g *Game) handlePlayerJoined(logger *zap.Logger, payload []byte) {
	message, err := protocol.UnmarshalPlayerJoined(payload)
	if err != nil {
		logger.Warn("dropping message", zap.Error(err))
		return
	}

	text := message.Info
	if text == "" {
		text = fmt.Sprintf("%s joined the session", message.Player)
	}
	g.events.Send(Event{
		Kind:   EventPlayerJoined,
		Player: message.Player,
		Text:   text,
	})
}

func (g *Game) handlePlayerLeft(logger *zap.Logger, payload []byte) {
	message, err := protocol.UnmarshalPlayerLeft(payload)
	if err != nil {
		logger.Warn("dropping message", zap.Error(err))
		return
	}

	g.events.Send(Event{
		Kind:   EventPlayerLeft,
		Player: message.Player,
		Text:   fmt.Sprintf("%s left the session", message.Player),
	})
}

func (g *Game) handleGameOver(logger *zap.Logger, payload []byte) {
	message, err := protocol.UnmarshalGameOver(payload)
	if err != nil {
		logger.Warn("dropping message", zap.Error(err))
		return
	}

	g.mutex.Lock()
	g.phase = PhaseGameOver
	g.finalScores = message.Scores
	g.mutex.Unlock()

	g.events.Send(Event{
		Kind: EventGameOver,
		Text: "game over",
	})
}

func (g *Game) handleError(logger *zap.Logger, payload []byte) {
	message, err := protocol.UnmarshalError(payload)
	if err != nil {
		logger.Warn("dropping message", zap.Error(err))
		return
	}

	logger.Warn("coordinator reported error", zap.String("message", message.Text))
	g.events.Send(Event{
		Kind: EventCoordinatorError,
		Text: message.Text,
	})
}

func (g *Game) handlePing() {
	err := g.publishMessage(protocol.Message{Type: protocol.MessageTypePong})
	if err != nil {
		g.logger.Debug("failed to answer ping", zap.Error(err))
	}
}
