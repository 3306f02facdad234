package game

import (
	"math/rand/v2"
	"time"
)

// Source is the randomness the engine draws from. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

func newSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
