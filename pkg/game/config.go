package game

type configuration struct {
	PlayerName string
}

var defaultConfig = configuration{}
