package protocol

import (
	"encoding/json"

	"github.com/pkg/errors"
)

func UnmarshalMessage(payload []byte) (*Message, error) {
	message := Message{}
	err := json.Unmarshal(payload, &message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal message")
	}
	if message.Type == "" {
		return nil, errors.New("message has no type")
	}
	return &message, nil
}

func UnmarshalJoin(payload []byte) (*JoinMessage, error) {
	message := JoinMessage{}
	err := json.Unmarshal(payload, &message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal join message")
	}
	if message.Type != MessageTypeJoin {
		return nil, errors.New("message is not a join message")
	}
	return &message, nil
}

func UnmarshalGuess(payload []byte) (*GuessMessage, error) {
	message := GuessMessage{}
	err := json.Unmarshal(payload, &message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal guess message")
	}
	if message.Type != MessageTypeGuess {
		return nil, errors.New("message is not a guess message")
	}
	return &message, nil
}

func UnmarshalGameState(payload []byte) (*GameStateMessage, error) {
	message := GameStateMessage{}
	err := json.Unmarshal(payload, &message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal game state message")
	}
	if message.Type != MessageTypeGameState {
		return nil, errors.New("message is not a game state message")
	}
	return &message, nil
}

func UnmarshalDraw(payload []byte) (*DrawMessage, error) {
	message := DrawMessage{}
	err := json.Unmarshal(payload, &message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal draw message")
	}
	if message.Type != MessageTypeDraw {
		return nil, errors.New("message is not a draw message")
	}
	switch message.DrawType {
	case DrawStart, DrawMove, DrawEnd:
	default:
		return nil, errors.Errorf("unknown draw type '%s'", message.DrawType)
	}
	return &message, nil
}

func UnmarshalCorrectGuess(payload []byte) (*CorrectGuessMessage, error) {
	message := CorrectGuessMessage{}
	err := json.Unmarshal(payload, &message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal correct guess message")
	}
	if message.Type != MessageTypeCorrectGuess {
		return nil, errors.New("message is not a correct guess message")
	}
	return &message, nil
}

func UnmarshalPlayerJoined(payload []byte) (*PlayerJoinedMessage, error) {
	message := PlayerJoinedMessage{}
	err := json.Unmarshal(payload, &message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal player joined message")
	}
	if message.Type != MessageTypePlayerJoined {
		return nil, errors.New("message is not a player joined message")
	}
	return &message, nil
}

func UnmarshalPlayerLeft(payload []byte) (*PlayerLeftMessage, error) {
	message := PlayerLeftMessage{}
	err := json.Unmarshal(payload, &message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal player left message")
	}
	if message.Type != MessageTypePlayerLeft {
		return nil, errors.New("message is not a player left message")
	}
	return &message, nil
}

func UnmarshalGameOver(payload []byte) (*GameOverMessage, error) {
	message := GameOverMessage{}
	err := json.Unmarshal(payload, &message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal game over message")
	}
	if message.Type != MessageTypeGameOver {
		return nil, errors.New("message is not a game over message")
	}
	return &message, nil
}

func UnmarshalError(payload []byte) (*ErrorMessage, error) {
	message := ErrorMessage{}
	err := json.Unmarshal(payload, &message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal error message")
	}
	if message.Type != MessageTypeError {
		return nil, errors.New("message is not an error message")
	}
	return &message, nil
}
