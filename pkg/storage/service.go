package storage

// Service persists player preferences between runs.
type Service interface {
	Initialize() error
	PlayerName() string
	SetPlayerName(name string) error
	ResetPlayer() error
}
