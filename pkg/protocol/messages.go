package protocol

const Version byte = 1

type MessageType string

const (
	MessageTypeJoin         MessageType = "join"
	MessageTypeGameState    MessageType = "game_state"
	MessageTypeDraw         MessageType = "draw"
	MessageTypeGuess        MessageType = "guess"
	MessageTypeCorrectGuess MessageType = "correct_guess"
	MessageTypePlayerJoined MessageType = "player_joined"
	MessageTypePlayerLeft   MessageType = "player_left"
	MessageTypeGameOver     MessageType = "game_over"
	MessageTypeResetGame    MessageType = "reset_game"
	MessageTypeError        MessageType = "error"
	MessageTypePing         MessageType = "ping"
	MessageTypePong         MessageType = "pong"
)

type Message struct {
	Type MessageType `json:"type"`
}

type JoinMessage struct {
	Message
	Player string `json:"player"`
}

type GameStateMessage struct {
	Message
	State State `json:"state"`
}

type DrawType string

const (
	DrawStart DrawType = "start"
	DrawMove  DrawType = "draw"
	DrawEnd   DrawType = "end"
)

// DrawMessage carries a single stroke sample. Coordinates are canvas-local.
// Color and LineWidth travel with every sample, so a coarsened stream stays
// self-describing for late joiners.
type DrawMessage struct {
	Message
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	DrawType  DrawType `json:"drawType"`
	Color     string   `json:"color,omitempty"`
	LineWidth float64  `json:"lineWidth,omitempty"`
}

type GuessMessage struct {
	Message
	Guess string `json:"guess"`
}

type CorrectGuessMessage struct {
	Message
	Player string `json:"player"`
	Word   string `json:"word"`
}

type PlayerJoinedMessage struct {
	Message
	Player string `json:"player"`
	Status string `json:"status,omitempty"`
	Info   string `json:"message,omitempty"`
}

type PlayerLeftMessage struct {
	Message
	Player string `json:"player"`
}

type GameOverMessage struct {
	Message
	Scores map[string]int `json:"scores,omitempty"`
}

type ResetGameMessage struct {
	Message
}

type ErrorMessage struct {
	Message
	Text string `json:"message"`
}
