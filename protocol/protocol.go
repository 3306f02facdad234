package protocol

import (
	"encoding/json"
)

// server -> client
const (
	MsgWelcome    = "welcome"
	MsgState      = "state"
	MsgEliminated = "eliminated"
	MsgError      = "error"
)

// client -> server
const (
	MsgMove = "move"
	MsgJoin = "join"
)

type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type Welcome struct {
	PlayerID string `json:"playerId" msgpack:"playerId"`
	TickMS   int    `json:"tickMs" msgpack:"tickMs"`
	Width    int    `json:"width" msgpack:"width"`
	Height   int    `json:"height" msgpack:"height"`
}

type Eliminated struct {
	PlayerID string `json:"playerId" msgpack:"playerId"`
	WinnerID string `json:"winnerId" msgpack:"winnerId"`
}

type Error struct {
	Message string `json:"message" msgpack:"message"`
}

type Move struct {
	Direction string `json:"direction"`
}

type Join struct {
	Name string `json:"name"`
}
