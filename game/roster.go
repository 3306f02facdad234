package game

import (
	"fmt"

	"github.com/4cecoder/arena/models"
)

// FindPlayer returns the first active player with the given id.
func FindPlayer(s *models.WorldState, id string) *models.Player {
	for _, p := range s.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// AddPlayer puts a fresh player with zero score and power on a free cell.
// Ids already on the roster or in the elimination ledger are refused.
func (e *Engine) AddPlayer(s *models.WorldState, id, name string) (*models.Player, error) {
	if FindPlayer(s, id) != nil {
		return nil, fmt.Errorf("player %s: %w", id, ErrDuplicatePlayer)
	}
	if _, ok := s.EliminatedPlayers[id]; ok {
		return nil, fmt.Errorf("player %s: %w", id, ErrPlayerEliminated)
	}
	c, err := e.unoccupiedCell(s, newOccupancy(s), "player")
	if err != nil {
		return nil, err
	}
	p := &models.Player{ID: id, Name: name, X: c.X, Y: c.Y}
	s.Players = append(s.Players, p)
	return p, nil
}

// RemovePlayer drops a player that left the game. The ledger is untouched.
func RemovePlayer(s *models.WorldState, id string) bool {
	for i, p := range s.Players {
		if p.ID == id {
			s.Players = append(s.Players[:i:i], s.Players[i+1:]...)
			return true
		}
	}
	return false
}
