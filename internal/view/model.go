package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scrawl-party/scrawl-cli/internal/config"
	"github.com/scrawl-party/scrawl-cli/internal/transport"
	"github.com/scrawl-party/scrawl-cli/internal/view/commands"
	"github.com/scrawl-party/scrawl-cli/internal/view/components/canvasview"
	"github.com/scrawl-party/scrawl-cli/internal/view/components/connectionview"
	"github.com/scrawl-party/scrawl-cli/internal/view/components/errorview"
	"github.com/scrawl-party/scrawl-cli/internal/view/components/eventhandler"
	"github.com/scrawl-party/scrawl-cli/internal/view/components/gamelogview"
	"github.com/scrawl-party/scrawl-cli/internal/view/components/playersview"
	"github.com/scrawl-party/scrawl-cli/internal/view/components/userinput"
	"github.com/scrawl-party/scrawl-cli/internal/view/messages"
	"github.com/scrawl-party/scrawl-cli/internal/view/states"
	"github.com/scrawl-party/scrawl-cli/internal/view/update"
	"github.com/scrawl-party/scrawl-cli/pkg/game"
	"github.com/scrawl-party/scrawl-cli/pkg/protocol"
	"github.com/scrawl-party/scrawl-cli/pkg/relay"
	"github.com/scrawl-party/scrawl-cli/pkg/storage"
)

type model struct {
	game      *game.Game
	transport transport.Service
	surface   *canvasview.Surface
	storage   storage.Service

	// Actual state rendered in components, filled during Update.
	state            states.AppState
	fatalError       error
	gameState        *protocol.State
	connectionStatus transport.ConnectionStatus
	joined           bool

	// UI components state
	errorView             errorview.Model
	playersView           playersview.Model
	gameLogView           gamelogview.Model
	connectionView        connectionview.Model
	canvasView            canvasview.Model
	gameEventHandler      eventhandler.Model[*protocol.State, messages.GameStateMessage]
	sessionEventHandler   eventhandler.Model[game.Event, messages.GameEventMessage]
	transportEventHandler eventhandler.Model[transport.ConnectionStatus, messages.ConnectionStatus]

	input   userinput.Model
	spinner spinner.Model
}

func initialModel(game *game.Game, transport transport.Service, producer *relay.Producer, surface *canvasview.Surface, storage storage.Service) model {
	return model{
		game:      game,
		transport: transport,
		surface:   surface,
		storage:   storage,

		state:     states.Initializing,
		gameState: nil,

		input:          userinput.New(),
		spinner:        createSpinner(),
		errorView:      errorview.New(),
		playersView:    playersview.New(),
		gameLogView:    gamelogview.New(),
		connectionView: connectionview.New(config.MaxRetries),
		canvasView:     canvasview.New(game, producer, surface),
	}
}

func createSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return s
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.input.Init(),
		m.spinner.Tick,
		m.errorView.Init(),
		m.playersView.Init(),
		m.gameLogView.Init(),
		m.connectionView.Init(),
		m.canvasView.Init(),
		commands.InitializeApp(m.game, m.transport),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := update.NewUpdateCommands()

	switchToState := func(state states.AppState) {
		m.state = state
		cmds.AppendMessage(messages.AppStateMessage{State: state})
	}

	switch msg := msg.(type) {
	case messages.FatalErrorMessage:
		m.fatalError = msg.Err

	case messages.AppStateFinishedMessage:
		switch msg.State {
		case states.Initializing:
			// Subscribe to everything once the app is wired up.
			convertStatus := func(status transport.ConnectionStatus) messages.ConnectionStatus {
				return messages.ConnectionStatus{Status: status}
			}
			m.transportEventHandler = eventhandler.New[transport.ConnectionStatus, messages.ConnectionStatus](convertStatus)
			cmds.AppendCommand(m.transportEventHandler.Init(
				m.transport.SubscribeToConnectionStatus(),
				m.transport.Status(),
			))

			convertState := func(state *protocol.State) messages.GameStateMessage {
				return messages.GameStateMessage{State: state}
			}
			m.gameEventHandler = eventhandler.New[*protocol.State, messages.GameStateMessage](convertState)
			cmds.AppendCommand(m.gameEventHandler.Init(
				m.game.SubscribeToStateChanges(),
				m.game.CurrentState(),
			))

			convertEvent := func(event game.Event) messages.GameEventMessage {
				return messages.GameEventMessage{Event: event}
			}
			m.sessionEventHandler = eventhandler.New[game.Event, messages.GameEventMessage](convertEvent)
			cmds.AppendCommand(m.sessionEventHandler.Init(
				m.game.Events().Subscribe(),
				game.Event{},
			))

			if m.game.PlayerName() == "" {
				switchToState(states.InputPlayerName)
			} else {
				switchToState(states.Connecting)
			}

		case states.InputPlayerName:
			switchToState(states.Connecting)

		case states.Connecting:
			m.joined = true
			switchToState(states.Playing)

		case states.Playing:
			break
		}

	case messages.AppStateMessage:
		// Skip the waiting state if the channel is already open.
		if m.state == states.Connecting && m.connectionStatus.State == transport.StateOpen {
			cmds.AppendCommand(commands.JoinGame(m.game))
		}

	case messages.ConnectionStatus:
		opened := msg.Status.State == transport.StateOpen &&
			m.connectionStatus.State != transport.StateOpen
		m.connectionStatus = msg.Status

		if opened && m.state == states.Connecting {
			cmds.AppendCommand(commands.JoinGame(m.game))
		}
		// A reconnected socket is a fresh session for the coordinator:
		// announce ourselves again.
		if opened && m.state == states.Playing && m.joined {
			cmds.AppendCommand(commands.JoinGame(m.game))
		}

	case messages.GameStateMessage:
		m.gameState = msg.State

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			cmds.AppendCommand(commands.QuitApp(m.game, m.transport))
		case tea.KeyEnter:
			if m.input.Focused() {
				cmds.AppendCommand(ProcessUserInput(&m))
			}
		default:
		}
	}

	m.input, cmds.InputCommand = m.input.Update(msg)
	m.spinner, cmds.SpinnerCommand = m.spinner.Update(msg)
	m.errorView = m.errorView.Update(msg)
	m.playersView, cmds.PlayersCommand = m.playersView.Update(msg)
	m.gameLogView = m.gameLogView.Update(msg)
	m.connectionView = m.connectionView.Update(msg)
	m.canvasView, cmds.CanvasCommand = m.canvasView.Update(msg)
	m.gameEventHandler, cmds.GameEventHandlerCommand = m.gameEventHandler.Update(msg)
	m.sessionEventHandler, cmds.SessionEventHandlerCommand = m.sessionEventHandler.Update(msg)
	m.transportEventHandler, cmds.TransportEventHandlerCommand = m.transportEventHandler.Update(msg)

	return m, cmds.Batch()
}

func (m model) View() string {
	if m.fatalError != nil {
		return fmt.Sprintf(" ☠️ fatal error: %s\n%s", m.fatalError, renderLogPath())
	}

	view := "\n"
	if config.Debug() {
		view += fmt.Sprintf("%s\n\n", renderLogPath())
	}
	view += m.renderAppState()

	return lipgloss.JoinHorizontal(lipgloss.Left, "  ", view)
}

var _ tea.Model = (*model)(nil)
