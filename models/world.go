package models

type FieldSize struct {
	Width  int `json:"width" msgpack:"width"`
	Height int `json:"height" msgpack:"height"`
}

// WorldState is the whole game. The host owns it and hands it to the engine
// once per tick; nothing else may touch it while a tick runs.
type WorldState struct {
	Players   []*Player `json:"players"`
	Coins     []*Coin   `json:"coins"`
	Weapons   []*Weapon `json:"weapons"`
	Meteors   []*Meteor `json:"meteors"`
	FieldSize FieldSize `json:"fieldSize"`

	// EliminatedPlayers maps loser id -> winner id. Entries are never removed
	// or overwritten.
	EliminatedPlayers map[string]string `json:"eliminatedPlayers"`

	// Loaded is set once the first replenishment has run.
	Loaded bool `json:"loaded"`

	MeteorSpawnCounter  int `json:"meteorSpawnCounter"`
	MeteorSpawnInterval int `json:"meteorSpawnInterval"`

	Tick uint64 `json:"tick"`
}

// InBounds uses the inclusive upper bound that movement checks against.
func (fs FieldSize) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x <= fs.Width && y <= fs.Height
}
