package relay

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/scrawl-party/scrawl-cli/internal/dispatch"
	"github.com/scrawl-party/scrawl-cli/internal/testcommon"
	transportmock "github.com/scrawl-party/scrawl-cli/internal/transport/mock"
	"github.com/scrawl-party/scrawl-cli/pkg/game"
	"github.com/scrawl-party/scrawl-cli/pkg/protocol"
	"github.com/scrawl-party/scrawl-cli/pkg/relay/mock"
)

func TestConsumer(t *testing.T) {
	suite.Run(t, new(ConsumerSuite))
}

type ConsumerSuite struct {
	testcommon.Suite
	ctrl       *gomock.Controller
	transport  *transportmock.MockService
	dispatcher *dispatch.Dispatcher
	canvas     *mock.MockCanvas
	game       *game.Game
	consumer   *Consumer
}

func (s *ConsumerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transport = transportmock.NewMockService(s.ctrl)
	s.dispatcher = dispatch.New(s.Logger)
	s.canvas = mock.NewMockCanvas(s.ctrl)

	s.game = game.NewGame([]game.Option{
		game.WithLogger(s.Logger),
		game.WithTransport(s.transport),
		game.WithDispatcher(s.dispatcher),
		game.WithPlayerName("alice"),
	})
	s.Require().NotNil(s.game)
	s.game.Start()

	s.consumer = NewConsumer(s.game, s.dispatcher, s.canvas,
		WithConsumerLogger(s.Logger),
	)
	s.consumer.Start()
}

func (s *ConsumerSuite) TearDownTest() {
	s.consumer.Stop()
	s.game.Stop()
	s.ctrl.Finish()
}

func (s *ConsumerSuite) dispatchDraw(drawType protocol.DrawType, x, y float64) {
	message := protocol.DrawMessage{
		Message:   protocol.Message{Type: protocol.MessageTypeDraw},
		X:         x,
		Y:         y,
		DrawType:  drawType,
		Color:     "#00ff00",
		LineWidth: 2,
	}
	payload, err := json.Marshal(message)
	s.Require().NoError(err)
	s.dispatcher.Dispatch(payload)
}

func (s *ConsumerSuite) dispatchTurn(turn string) {
	message := protocol.GameStateMessage{
		Message: protocol.Message{Type: protocol.MessageTypeGameState},
		State: protocol.State{
			Players: []protocol.Player{
				{Name: "alice", IsCurrentUser: true},
				{Name: "bob"},
			},
			CurrentTurn: turn,
		},
	}
	payload, err := json.Marshal(message)
	s.Require().NoError(err)
	s.dispatcher.Dispatch(payload)
}

func (s *ConsumerSuite) TestStrokeIsRendered() {
	gomock.InOrder(
		s.canvas.EXPECT().MoveTo(1.0, 1.0),
		s.canvas.EXPECT().LineTo(2.0, 2.0, "#00ff00", 2.0),
		s.canvas.EXPECT().LineTo(3.0, 3.0, "#00ff00", 2.0),
	)

	s.dispatchDraw(protocol.DrawStart, 1, 1)
	s.dispatchDraw(protocol.DrawMove, 2, 2)
	s.dispatchDraw(protocol.DrawEnd, 3, 3)
}

func (s *ConsumerSuite) TestMoveWithoutAnchorStartsFreshPath() {
	s.canvas.EXPECT().MoveTo(5.0, 5.0)

	s.dispatchDraw(protocol.DrawMove, 5, 5)

	// The next move continues the fresh path.
	s.canvas.EXPECT().LineTo(6.0, 6.0, "#00ff00", 2.0)
	s.dispatchDraw(protocol.DrawMove, 6, 6)
}

func (s *ConsumerSuite) TestEndWithoutAnchorIsIgnored() {
	s.dispatchDraw(protocol.DrawEnd, 1, 1)
}

func (s *ConsumerSuite) TestTurnChangeClearsCanvasAndAnchor() {
	s.canvas.EXPECT().Clear()
	s.dispatchTurn("bob")

	s.canvas.EXPECT().MoveTo(1.0, 1.0)
	s.dispatchDraw(protocol.DrawStart, 1, 1)

	// Same turn again: no clear, the path survives.
	s.dispatchTurn("bob")
	s.canvas.EXPECT().LineTo(2.0, 2.0, "#00ff00", 2.0)
	s.dispatchDraw(protocol.DrawMove, 2, 2)

	// New turn: canvas cleared, anchor gone, a move restarts the path.
	s.canvas.EXPECT().Clear()
	s.dispatchTurn("carol")
	s.canvas.EXPECT().MoveTo(3.0, 3.0)
	s.dispatchDraw(protocol.DrawMove, 3, 3)
}

func (s *ConsumerSuite) TestOwnEchoedStrokesSkipped() {
	s.canvas.EXPECT().Clear()
	s.dispatchTurn("alice")

	// Drawing locally: echoed samples must not hit the canvas twice.
	s.dispatchDraw(protocol.DrawStart, 1, 1)
	s.dispatchDraw(protocol.DrawMove, 2, 2)
	s.dispatchDraw(protocol.DrawEnd, 3, 3)
}

func (s *ConsumerSuite) TestMalformedDrawDropped() {
	s.dispatcher.Dispatch([]byte(`{"type":"draw","drawType":"wiggle","x":1,"y":1}`))
}
