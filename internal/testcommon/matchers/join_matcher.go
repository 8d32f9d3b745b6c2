package matchers

import (
	"github.com/scrawl-party/scrawl-cli/pkg/protocol"
)

type JoinMatcher struct {
	MessageMatcher
	player string
}

func NewJoinMatcher(player string) *JoinMatcher {
	return &JoinMatcher{
		player: player,
	}
}

func (m *JoinMatcher) Matches(x interface{}) bool {
	if !m.MessageMatcher.Matches(x) {
		return false
	}

	if m.message.Type != protocol.MessageTypeJoin {
		return false
	}

	join, err := protocol.UnmarshalJoin(m.payload)
	if err != nil {
		return false
	}

	return join.Player == m.player
}

func (m *JoinMatcher) String() string {
	return "is join message"
}
