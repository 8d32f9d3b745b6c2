package matchers

import (
	"github.com/scrawl-party/scrawl-cli/pkg/protocol"
)

type PongMatcher struct {
	MessageMatcher
}

func NewPongMatcher() *PongMatcher {
	return &PongMatcher{}
}

func (m *PongMatcher) Matches(x interface{}) bool {
	return m.MessageMatcher.Matches(x) && m.message.Type == protocol.MessageTypePong
}

func (m *PongMatcher) String() string {
	return "is pong message"
}
