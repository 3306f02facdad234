package game

import (
	"errors"

	"github.com/4cecoder/arena/models"
)

// replenish always runs every step; a placement failure in one only leaves
// that collection short.
func (e *Engine) replenish(s *models.WorldState) error {
	occ := newOccupancy(s)
	var errs []error
	if err := e.addMoreCoins(s, occ); err != nil {
		errs = append(errs, err)
	}
	if !s.Loaded {
		if err := e.addMoreWeapons(s, occ); err != nil {
			errs = append(errs, err)
		}
		s.Loaded = true
	}
	if err := e.advanceMeteors(s, occ); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (e *Engine) addMoreCoins(s *models.WorldState, occ occupancy) error {
	for len(s.Coins) < CoinTarget {
		c, err := e.unoccupiedCell(s, occ, "coin")
		if err != nil {
			return err
		}
		occ[c] = struct{}{}
		s.Coins = append(s.Coins, &models.Coin{X: c.X, Y: c.Y, IsDeadly: e.rng.IntN(2) == 1})
	}
	return nil
}

// addMoreWeapons only runs before the world is loaded; consumed weapons are
// not replaced afterwards.
func (e *Engine) addMoreWeapons(s *models.WorldState, occ occupancy) error {
	for len(s.Weapons) < WeaponTarget {
		c, err := e.unoccupiedCell(s, occ, "weapon")
		if err != nil {
			return err
		}
		occ[c] = struct{}{}
		power := WeaponPowers[e.rng.IntN(len(WeaponPowers))]
		s.Weapons = append(s.Weapons, &models.Weapon{X: c.X, Y: c.Y, Power: power})
	}
	return nil
}
