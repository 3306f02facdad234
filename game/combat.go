package game

import "github.com/4cecoder/arena/models"

func fightWeight(p *models.Player) int {
	return max(p.Power, 1)
}

// resolvePlayerCollisions pairs up players sharing a cell. Each pair fights
// once; the loser leaves the roster and goes into the elimination ledger.
func (e *Engine) resolvePlayerCollisions(s *models.WorldState) {
	snapshot := s.Players
	removed := make(map[*models.Player]bool)

	for _, player := range snapshot {
		if removed[player] {
			continue
		}
		var other *models.Player
		for _, p := range snapshot {
			if p != player && !removed[p] && p.X == player.X && p.Y == player.Y {
				other = p
				break
			}
		}
		if other == nil {
			continue
		}

		winner, loser := e.fight(player, other)
		winner.Score += loser.Score
		winner.Power += loser.Power
		removed[loser] = true
		if _, ok := s.EliminatedPlayers[loser.ID]; !ok {
			s.EliminatedPlayers[loser.ID] = winner.ID
		}
	}

	if len(removed) == 0 {
		return
	}
	active := make([]*models.Player, 0, len(snapshot)-len(removed))
	for _, p := range snapshot {
		if !removed[p] {
			active = append(active, p)
		}
	}
	s.Players = active
}

// fight draws a winner with probability proportional to max(power, 1).
func (e *Engine) fight(a, b *models.Player) (winner, loser *models.Player) {
	wa, wb := fightWeight(a), fightWeight(b)
	if e.rng.IntN(wa+wb) < wa {
		return a, b
	}
	return b, a
}
