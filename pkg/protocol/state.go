package protocol

import (
	"golang.org/x/exp/slices"
)

type Player struct {
	Name          string `json:"name"`
	Score         int    `json:"score"`
	IsCurrentUser bool   `json:"isCurrentUser"`
}

// State is the full session snapshot as last asserted by the coordinator.
// It is replaced wholesale on every game_state message; the client never
// merges into it.
type State struct {
	Players      []Player `json:"players"`
	CurrentTurn  string   `json:"currentTurn"`
	Word         string   `json:"word,omitempty"` // present only in the drawer's own view
	RoundsPlayed int      `json:"roundsPlayed"`
	MaxRounds    int      `json:"maxRounds"`
}

func (s *State) PlayerIndex(name string) int {
	return slices.IndexFunc(s.Players, func(player Player) bool {
		return player.Name == name
	})
}

func (s *State) Me() *Player {
	index := slices.IndexFunc(s.Players, func(player Player) bool {
		return player.IsCurrentUser
	})
	if index < 0 {
		return nil
	}
	return &s.Players[index]
}

// IsDrawer reports whether the named player holds the current turn.
func (s *State) IsDrawer(name string) bool {
	return name != "" && s.CurrentTurn == name
}
