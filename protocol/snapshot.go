package protocol

import (
	"github.com/4cecoder/arena/models"
)

// Snapshot is what clients see of the world each broadcast. Meteors that are
// blinked off are left out.
type Snapshot struct {
	Tick       uint64            `json:"tick" msgpack:"tick"`
	Field      models.FieldSize  `json:"fieldSize" msgpack:"fieldSize"`
	Players    []models.Player   `json:"players" msgpack:"players"`
	Coins      []models.Coin     `json:"coins" msgpack:"coins"`
	Weapons    []models.Weapon   `json:"weapons" msgpack:"weapons"`
	Meteors    []models.Meteor   `json:"meteors" msgpack:"meteors"`
	Eliminated map[string]string `json:"eliminatedPlayers" msgpack:"eliminatedPlayers"`
}

// NewSnapshot copies s so the result can be encoded after the caller drops
// its lock on the world.
func NewSnapshot(s *models.WorldState) Snapshot {
	snap := Snapshot{
		Tick:       s.Tick,
		Field:      s.FieldSize,
		Players:    make([]models.Player, 0, len(s.Players)),
		Coins:      make([]models.Coin, 0, len(s.Coins)),
		Weapons:    make([]models.Weapon, 0, len(s.Weapons)),
		Meteors:    make([]models.Meteor, 0, len(s.Meteors)),
		Eliminated: make(map[string]string, len(s.EliminatedPlayers)),
	}
	for _, p := range s.Players {
		snap.Players = append(snap.Players, *p)
	}
	for _, c := range s.Coins {
		snap.Coins = append(snap.Coins, *c)
	}
	for _, w := range s.Weapons {
		snap.Weapons = append(snap.Weapons, *w)
	}
	for _, m := range s.Meteors {
		if m.Visible {
			snap.Meteors = append(snap.Meteors, *m)
		}
	}
	for k, v := range s.EliminatedPlayers {
		snap.Eliminated[k] = v
	}
	return snap
}
