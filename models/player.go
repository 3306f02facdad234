// Package models player.go
package models

// Player is an active participant on the field. Coordinates are grid cells.
type Player struct {
	ID    string `json:"id" msgpack:"id"`
	Name  string `json:"name" msgpack:"name"`
	Score int    `json:"score" msgpack:"score"`
	Power int    `json:"power" msgpack:"power"`
	X     int    `json:"x" msgpack:"x"`
	Y     int    `json:"y" msgpack:"y"`
}

func (p *Player) Cell() Cell {
	return Cell{X: p.X, Y: p.Y}
}

// Cell is a single grid position.
type Cell struct {
	X int `json:"x" msgpack:"x"`
	Y int `json:"y" msgpack:"y"`
}
