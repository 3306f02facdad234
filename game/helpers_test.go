package game

import (
	"testing"

	"github.com/4cecoder/arena/models"
)

// scriptedRand replays fixed draws, each reduced modulo n.
type scriptedRand struct {
	vals []int
	i    int
}

func (r *scriptedRand) IntN(n int) int {
	if r.i >= len(r.vals) {
		return 0
	}
	v := r.vals[r.i] % n
	r.i++
	return v
}

func newTestEngine(t *testing.T, draws ...int) *Engine {
	t.Helper()
	if len(draws) == 0 {
		return NewEngine(Options{Seed: 42})
	}
	return NewEngine(Options{Rand: &scriptedRand{vals: draws}})
}

func newTestState(players ...*models.Player) *models.WorldState {
	s := NewEngine(Options{Seed: 1}).InitialState()
	s.Players = append(s.Players, players...)
	return s
}
