package protocol

import (
	"strings"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// Room identifies a coordinator endpoint in a form that is easy to pass
// around in chat: a versioned base58 code instead of a raw websocket URL.
type Room struct {
	Version  byte
	Endpoint string
}

type RoomID struct {
	string
}

func NewRoomID(roomID string) RoomID {
	return RoomID{roomID}
}

func (id RoomID) String() string {
	return id.string
}

func (id RoomID) Empty() bool {
	return id.string == ""
}

// RoomID: base58 encoded byte array:
// - byte 0:      version
// - byte 1..end: endpoint URL

func NewRoom(endpoint string) *Room {
	return &Room{
		Version:  Version,
		Endpoint: endpoint,
	}
}

func (room *Room) Bytes() []byte {
	bytes := make([]byte, 0, 1+len(room.Endpoint))
	bytes = append(bytes, room.Version)
	bytes = append(bytes, []byte(room.Endpoint)...)
	return bytes
}

func (room *Room) ToRoomID() RoomID {
	return NewRoomID(base58.Encode(room.Bytes()))
}

func (room *Room) VersionSupported() bool {
	return room.Version == Version
}

func ParseRoomID(roomID string) (*Room, error) {
	decoded, err := base58.Decode(roomID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode room ID")
	}

	if len(decoded) < 2 {
		return nil, errors.New("room ID is too short")
	}

	return &Room{
		Version:  decoded[0],
		Endpoint: string(decoded[1:]),
	}, nil
}

// ResolveEndpoint accepts either a raw websocket URL or a shared room code
// and returns the websocket URL to dial.
func ResolveEndpoint(value string) (string, error) {
	if strings.HasPrefix(value, "ws://") || strings.HasPrefix(value, "wss://") {
		return value, nil
	}

	room, err := ParseRoomID(value)
	if err != nil {
		return "", errors.Wrap(err, "value is neither a websocket URL nor a room code")
	}
	if !room.VersionSupported() {
		return "", errors.Errorf("room code has unsupported version %d", room.Version)
	}
	return room.Endpoint, nil
}
