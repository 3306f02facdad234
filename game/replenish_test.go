package game

import (
	"errors"
	"testing"

	"github.com/4cecoder/arena/models"
)

func TestFirstTickLoadsWorld(t *testing.T) {
	e := newTestEngine(t)
	s := e.InitialState()
	s.Players = append(s.Players, &models.Player{ID: "p1", X: 50, Y: 50})

	if _, err := e.Tick(s, nil); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if !s.Loaded {
		t.Fatalf("expected Loaded after the first tick")
	}
	if len(s.Coins) != CoinTarget {
		t.Fatalf("coins = %d, want %d", len(s.Coins), CoinTarget)
	}
	if len(s.Weapons) != WeaponTarget {
		t.Fatalf("weapons = %d, want %d", len(s.Weapons), WeaponTarget)
	}

	seen := map[models.Cell]bool{{X: 50, Y: 50}: true}
	check := func(c models.Cell) {
		if seen[c] {
			t.Fatalf("cell %+v used twice", c)
		}
		if c.X < 0 || c.X >= FieldWidth || c.Y < 0 || c.Y >= FieldHeight {
			t.Fatalf("cell %+v outside the spawn range", c)
		}
		seen[c] = true
	}
	for _, c := range s.Coins {
		check(c.Cell())
	}
	for _, w := range s.Weapons {
		check(w.Cell())
		if w.Power != 5 && w.Power != 10 && w.Power != 15 {
			t.Fatalf("weapon power %d not in {5,10,15}", w.Power)
		}
	}
}

func TestCoinCountStaysAtTarget(t *testing.T) {
	e := newTestEngine(t)
	s := e.InitialState()
	p := &models.Player{ID: "p1", X: 0, Y: 0}
	s.Players = append(s.Players, p)

	for i := 0; i < 30; i++ {
		if len(s.Coins) > 0 {
			// park the player on a coin so one is eaten every tick
			p.X, p.Y = s.Coins[0].X, s.Coins[0].Y
		}
		if _, err := e.Tick(s, nil); err != nil {
			t.Fatalf("Tick %d: %v", i, err)
		}
		if len(s.Coins) != CoinTarget {
			t.Fatalf("tick %d: coins = %d, want %d", i, len(s.Coins), CoinTarget)
		}
	}
	if p.Score != 29 {
		t.Fatalf("score = %d, want 29", p.Score)
	}
}

func TestWeaponsAreNotReplacedAfterLoad(t *testing.T) {
	e := newTestEngine(t)
	s := e.InitialState()
	if _, err := e.Tick(s, nil); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	w := s.Weapons[0]
	s.Players = append(s.Players, &models.Player{ID: "p1", X: w.X, Y: w.Y})

	if _, err := e.Tick(s, nil); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if len(s.Weapons) != WeaponTarget-1 {
		t.Fatalf("weapons = %d, want %d", len(s.Weapons), WeaponTarget-1)
	}
	if got := s.Players[0].Power; got != w.Power {
		t.Fatalf("power = %d, want %d", got, w.Power)
	}
}

func TestPlacementExhausted(t *testing.T) {
	e := NewEngine(Options{Seed: 3, PlacementAttempts: 10})
	s := e.InitialState()
	s.FieldSize = models.FieldSize{Width: 1, Height: 1}
	s.Players = append(s.Players, &models.Player{ID: "p1", X: 0, Y: 0})
	waiting := &models.Meteor{X: 5, Y: 5, VelocityX: 1, LaunchTimer: 5, Visible: true}
	s.Meteors = []*models.Meteor{waiting}

	got, err := e.Tick(s, nil)
	if !errors.Is(err, ErrPlacementExhausted) {
		t.Fatalf("err = %v, want ErrPlacementExhausted", err)
	}
	if got != s {
		t.Fatalf("Tick returned a different state")
	}
	if len(s.Coins) != 0 || len(s.Weapons) != 0 {
		t.Fatalf("coins=%d weapons=%d, want 0 0", len(s.Coins), len(s.Weapons))
	}
	if !s.Loaded {
		t.Fatalf("Loaded should be set after the weapon attempt even when it fails")
	}
	if waiting.LaunchTimer != 4 {
		t.Fatalf("LaunchTimer = %d, want 4; meteors must still step", waiting.LaunchTimer)
	}
	if s.MeteorSpawnCounter != MeteorInitialCountdown-1 {
		t.Fatalf("MeteorSpawnCounter = %d, want %d", s.MeteorSpawnCounter, MeteorInitialCountdown-1)
	}
	if s.Tick != 1 {
		t.Fatalf("Tick = %d, want 1", s.Tick)
	}
}
