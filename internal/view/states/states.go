package states

type AppState int

const (
	Idle AppState = iota
	Initializing
	InputPlayerName
	Connecting
	Playing
)
