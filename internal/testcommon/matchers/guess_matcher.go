package matchers

import (
	"github.com/scrawl-party/scrawl-cli/pkg/protocol"
)

type GuessMatcher struct {
	MessageMatcher
	guess string
}

func NewGuessMatcher(guess string) *GuessMatcher {
	return &GuessMatcher{
		guess: guess,
	}
}

func (m *GuessMatcher) Matches(x interface{}) bool {
	if !m.MessageMatcher.Matches(x) {
		return false
	}

	if m.message.Type != protocol.MessageTypeGuess {
		return false
	}

	guess, err := protocol.UnmarshalGuess(m.payload)
	if err != nil {
		return false
	}

	return guess.Guess == m.guess
}

func (m *GuessMatcher) String() string {
	return "is guess message"
}
