package game

import "github.com/4cecoder/arena/models"

func applyCommands(s *models.WorldState, cmds models.Commands) {
	for id, cmd := range cmds {
		p := FindPlayer(s, id)
		if p == nil {
			continue
		}
		dx, dy := cmd.Delta()
		if dx == 0 && dy == 0 {
			continue
		}
		nx, ny := p.X+dx, p.Y+dy
		// Out-of-range moves are dropped, not clamped.
		if !s.FieldSize.InBounds(nx, ny) {
			continue
		}
		p.X, p.Y = nx, ny
	}
}
