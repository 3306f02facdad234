package game

import "github.com/4cecoder/arena/models"

// playerAt returns the first roster player standing on c.
func playerAt(s *models.WorldState, c models.Cell) *models.Player {
	for _, p := range s.Players {
		if p.X == c.X && p.Y == c.Y {
			return p
		}
	}
	return nil
}

func resolveCoinCollisions(s *models.WorldState) {
	kept := make([]*models.Coin, 0, len(s.Coins))
	for _, coin := range s.Coins {
		if p := playerAt(s, coin.Cell()); p != nil {
			p.Score++
			continue
		}
		kept = append(kept, coin)
	}
	s.Coins = kept
}

func resolveWeaponCollisions(s *models.WorldState) {
	kept := make([]*models.Weapon, 0, len(s.Weapons))
	for _, w := range s.Weapons {
		if p := playerAt(s, w.Cell()); p != nil {
			p.Power += w.Power
			continue
		}
		kept = append(kept, w)
	}
	s.Weapons = kept
}
