package matchers

import (
	"testing"
	"time"

	"github.com/scrawl-party/scrawl-cli/pkg/protocol"
)

type DrawMatcher struct {
	MessageMatcher
	drawType protocol.DrawType
	sample   protocol.DrawMessage

	triggered chan protocol.DrawMessage
}

func NewDrawMatcher(drawType protocol.DrawType) *DrawMatcher {
	return &DrawMatcher{
		drawType:  drawType,
		triggered: make(chan protocol.DrawMessage, 42),
	}
}

func (m *DrawMatcher) Matches(x interface{}) bool {
	if !m.MessageMatcher.Matches(x) {
		return false
	}

	if m.message.Type != protocol.MessageTypeDraw {
		return false
	}

	sample, err := protocol.UnmarshalDraw(m.payload)
	if err != nil {
		return false
	}

	if sample.DrawType != m.drawType {
		return false
	}

	m.sample = *sample
	m.triggered <- m.sample
	return true
}

func (m *DrawMatcher) String() string {
	return "is draw message"
}

func (m *DrawMatcher) Sample() protocol.DrawMessage {
	return m.sample
}

func (m *DrawMatcher) Wait(t *testing.T) protocol.DrawMessage {
	select {
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for draw message")
	case sample := <-m.triggered:
		return sample
	}
	return protocol.DrawMessage{}
}
