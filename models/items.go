package models

// Coin is worth one point to whoever steps on it.
type Coin struct {
	X        int  `json:"x" msgpack:"x"`
	Y        int  `json:"y" msgpack:"y"`
	IsDeadly bool `json:"isDeadly" msgpack:"isDeadly"`
}

func (c *Coin) Cell() Cell {
	return Cell{X: c.X, Y: c.Y}
}

// Weapon adds Power to the player that picks it up.
type Weapon struct {
	X     int `json:"x" msgpack:"x"`
	Y     int `json:"y" msgpack:"y"`
	Power int `json:"power" msgpack:"power"`
}

func (w *Weapon) Cell() Cell {
	return Cell{X: w.X, Y: w.Y}
}

// Meteor sits still and blinks while LaunchTimer > 0, then flies along its
// velocity every tick.
type Meteor struct {
	X           int  `json:"x" msgpack:"x"`
	Y           int  `json:"y" msgpack:"y"`
	VelocityX   int  `json:"velocityX" msgpack:"velocityX"`
	VelocityY   int  `json:"velocityY" msgpack:"velocityY"`
	LaunchTimer int  `json:"launchTimer" msgpack:"launchTimer"`
	Visible     bool `json:"visible" msgpack:"visible"`
}

func (m *Meteor) Cell() Cell {
	return Cell{X: m.X, Y: m.Y}
}

// InFlight reports whether the launch delay has expired.
func (m *Meteor) InFlight() bool {
	return m.LaunchTimer <= 0
}
