package canvasview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scrawl-party/scrawl-cli/internal/view/messages"
	"github.com/scrawl-party/scrawl-cli/pkg/game"
	"github.com/scrawl-party/scrawl-cli/pkg/relay"
)

const redrawInterval = 100 * time.Millisecond

// Offset of the canvas cells inside the composed layout. Mouse events
// arrive in terminal coordinates and are translated by these before they
// reach the producer.
const (
	offsetX = 3
	offsetY = 1
)

var borderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#555555"))

type Model struct {
	game     *game.Game
	producer *relay.Producer
	surface  *Surface

	pressed bool
}

func New(game *game.Game, producer *relay.Producer, surface *Surface) Model {
	return Model{
		game:     game,
		producer: producer,
		surface:  surface,
	}
}

func (m Model) Init() tea.Cmd {
	return redrawTick()
}

func redrawTick() tea.Cmd {
	return tea.Tick(redrawInterval, func(time.Time) tea.Msg {
		return messages.RedrawCanvas{}
	})
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.RedrawCanvas:
		// The surface changes between tea messages as remote strokes
		// arrive; the tick makes them visible.
		return m, redrawTick()

	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if !m.game.IsDrawing() {
		m.pressed = false
		return
	}

	x := float64(msg.X - offsetX)
	y := float64(msg.Y - offsetY)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.pressed = true
		m.producer.StrokeStart(x, y)
		m.surface.MoveTo(x, y)

	case tea.MouseActionMotion:
		if !m.pressed {
			return
		}
		m.producer.StrokeMove(x, y)
		m.surface.LineTo(x, y, m.producer.Color(), m.producer.LineWidth())

	case tea.MouseActionRelease:
		if !m.pressed {
			return
		}
		m.pressed = false
		m.producer.StrokeEnd(x, y)
		m.surface.LineTo(x, y, m.producer.Color(), m.producer.LineWidth())
	}
}

func (m Model) View() string {
	return borderStyle.Render(m.surface.Render())
}
