package dispatch

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/scrawl-party/scrawl-cli/internal/testcommon"
	"github.com/scrawl-party/scrawl-cli/pkg/protocol"
)

func TestDispatcher(t *testing.T) {
	suite.Run(t, new(Suite))
}

type Suite struct {
	testcommon.Suite
	dispatcher *Dispatcher
}

func (s *Suite) SetupTest() {
	s.dispatcher = New(s.Logger)
}

func payload(messageType protocol.MessageType) []byte {
	return []byte(fmt.Sprintf(`{"type":%q}`, messageType))
}

func (s *Suite) TestHandlersCalledInRegistrationOrder() {
	var order []string

	s.dispatcher.Subscribe(func(*protocol.Message, []byte) {
		order = append(order, "first")
	})
	s.dispatcher.Subscribe(func(*protocol.Message, []byte) {
		order = append(order, "second")
	})

	s.dispatcher.Dispatch(payload(protocol.MessageTypePing))
	s.Require().Equal([]string{"first", "second"}, order)
}

func (s *Suite) TestHandlerReceivesTypeAndRawPayload() {
	raw := []byte(`{"type":"guess","guess":"cat"}`)

	var received *protocol.Message
	var receivedPayload []byte
	s.dispatcher.Subscribe(func(message *protocol.Message, payload []byte) {
		received = message
		receivedPayload = payload
	})

	s.dispatcher.Dispatch(raw)
	s.Require().NotNil(received)
	s.Require().Equal(protocol.MessageTypeGuess, received.Type)
	s.Require().Equal(raw, receivedPayload)
}

func (s *Suite) TestMalformedFrameDropped() {
	calls := 0
	s.dispatcher.Subscribe(func(*protocol.Message, []byte) {
		calls++
	})

	s.dispatcher.Dispatch([]byte(`not json`))
	s.dispatcher.Dispatch([]byte(`{"guess":"no type"}`))
	s.Require().Zero(calls)

	s.dispatcher.Dispatch(payload(protocol.MessageTypePing))
	s.Require().Equal(1, calls)
}

func (s *Suite) TestUnsubscribeDuringDispatch() {
	var order []string
	var second *Subscription

	s.dispatcher.Subscribe(func(*protocol.Message, []byte) {
		order = append(order, "first")
		s.dispatcher.Unsubscribe(second)
	})
	second = s.dispatcher.Subscribe(func(*protocol.Message, []byte) {
		order = append(order, "second")
	})

	s.dispatcher.Dispatch(payload(protocol.MessageTypePing))
	s.Require().Equal([]string{"first"}, order)
	s.Require().Equal(1, s.dispatcher.Count())
}

func (s *Suite) TestPanicDoesNotPoisonOtherHandlers() {
	calls := 0

	s.dispatcher.Subscribe(func(*protocol.Message, []byte) {
		panic("boom")
	})
	s.dispatcher.Subscribe(func(*protocol.Message, []byte) {
		calls++
	})

	s.dispatcher.Dispatch(payload(protocol.MessageTypePing))
	s.Require().Equal(1, calls)
}

func (s *Suite) TestRunDeliversSequentially() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var types []protocol.MessageType
	done := make(chan struct{})
	s.dispatcher.Subscribe(func(message *protocol.Message, _ []byte) {
		types = append(types, message.Type)
		if len(types) == 3 {
			close(done)
		}
	})

	messages := make(chan []byte, 3)
	messages <- payload(protocol.MessageTypePing)
	messages <- payload(protocol.MessageTypePong)
	messages <- payload(protocol.MessageTypeGameOver)

	go s.dispatcher.Run(ctx, messages)

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Require().Fail("timeout waiting for dispatch")
	}
	s.Require().Equal([]protocol.MessageType{
		protocol.MessageTypePing,
		protocol.MessageTypePong,
		protocol.MessageTypeGameOver,
	}, types)
}

func (s *Suite) TestRunStopsOnClosedChannel() {
	messages := make(chan []byte)
	close(messages)

	finished := make(chan struct{})
	go func() {
		s.dispatcher.Run(context.Background(), messages)
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		s.Require().Fail("run did not stop on closed channel")
	}
}
