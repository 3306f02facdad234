package game

import (
	"fmt"

	"github.com/4cecoder/arena/models"
)

// occupancy tracks cells taken by players, coins and weapons. Meteors are
// deliberately not part of it.
type occupancy map[models.Cell]struct{}

func newOccupancy(s *models.WorldState) occupancy {
	occ := make(occupancy, len(s.Players)+len(s.Coins)+len(s.Weapons))
	for _, p := range s.Players {
		occ[p.Cell()] = struct{}{}
	}
	for _, c := range s.Coins {
		occ[c.Cell()] = struct{}{}
	}
	for _, w := range s.Weapons {
		occ[w.Cell()] = struct{}{}
	}
	return occ
}

func (o occupancy) has(c models.Cell) bool {
	_, ok := o[c]
	return ok
}

// unoccupiedCell samples [0,width) x [0,height) until it finds a free cell.
// The sampled range is exclusive of the upper bound even though players may
// walk onto x == width or y == height.
func (e *Engine) unoccupiedCell(s *models.WorldState, occ occupancy, kind string) (models.Cell, error) {
	w, h := s.FieldSize.Width, s.FieldSize.Height
	if w <= 0 || h <= 0 {
		return models.Cell{}, fmt.Errorf("%s: empty field %dx%d: %w", kind, w, h, ErrPlacementExhausted)
	}
	for i := 0; i < e.attempts; i++ {
		c := models.Cell{X: e.rng.IntN(w), Y: e.rng.IntN(h)}
		if !occ.has(c) {
			return c, nil
		}
	}
	return models.Cell{}, fmt.Errorf("%s: no free cell after %d attempts: %w", kind, e.attempts, ErrPlacementExhausted)
}
