package connectionview

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scrawl-party/scrawl-cli/internal/transport"
	"github.com/scrawl-party/scrawl-cli/internal/view/messages"
)

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00E676"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEA00"))
	dangerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5722"))
	idleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
)

type Model struct {
	status     transport.ConnectionStatus
	maxRetries int
}

func New(maxRetries int) Model {
	return Model{
		maxRetries: maxRetries,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) Model {
	switch msg := msg.(type) {
	case messages.ConnectionStatus:
		m.status = msg.Status
	}
	return m
}

func (m Model) View() string {
	marker := "●"
	var text string

	switch m.status.State {
	case transport.StateOpen:
		marker = okStyle.Render(marker)
		text = " connected"
	case transport.StateConnecting:
		marker = warnStyle.Render(marker)
		if m.status.RetryCount > 0 {
			text = fmt.Sprintf(" reconnecting (attempt %d/%d)", m.status.RetryCount, m.maxRetries)
		} else {
			text = " connecting"
		}
	case transport.StateFailed:
		marker = dangerStyle.Render(marker)
		text = " connection failed, type /retry"
	default:
		marker = idleStyle.Render(marker)
		text = " offline"
	}

	return lipgloss.JoinHorizontal(lipgloss.Left, marker, text)
}
