package game

import (
	"errors"

	"github.com/4cecoder/arena/models"
)

const (
	FieldWidth  = 100
	FieldHeight = 100

	CoinTarget   = 100
	WeaponTarget = 5

	MeteorInitialCountdown  = 60
	MeteorLaunchDelay       = 15
	MeteorIntervalDecrement = 4
	MeteorMinInterval       = 12

	DefaultPlacementAttempts = 10000
)

// WeaponPowers are the magnitudes a spawned weapon can carry.
var WeaponPowers = [...]int{5, 10, 15}

var (
	// ErrPlacementExhausted is returned when no free cell turned up within
	// the configured number of attempts.
	ErrPlacementExhausted = errors.New("placement exhausted")

	ErrDuplicatePlayer  = errors.New("player already on the field")
	ErrPlayerEliminated = errors.New("player was eliminated")
)

type Options struct {
	// Seed feeds the default PCG source. Zero means seed from the clock.
	Seed uint64
	// Rand overrides the default source entirely.
	Rand Source
	// PlacementAttempts caps the free-cell search per spawned item.
	PlacementAttempts int
}

// Engine runs ticks. It holds no game state of its own beyond the random
// source, so one Engine can drive any number of worlds as long as ticks are
// not run concurrently.
type Engine struct {
	rng      Source
	attempts int
}

func NewEngine(opts Options) *Engine {
	rng := opts.Rand
	if rng == nil {
		rng = newSource(opts.Seed)
	}
	attempts := opts.PlacementAttempts
	if attempts <= 0 {
		attempts = DefaultPlacementAttempts
	}
	return &Engine{rng: rng, attempts: attempts}
}

// InitialState returns an empty 100x100 world.
func (e *Engine) InitialState() *models.WorldState {
	return &models.WorldState{
		Players:             []*models.Player{},
		Coins:               []*models.Coin{},
		Weapons:             []*models.Weapon{},
		Meteors:             []*models.Meteor{},
		FieldSize:           models.FieldSize{Width: FieldWidth, Height: FieldHeight},
		EliminatedPlayers:   make(map[string]string),
		MeteorSpawnCounter:  MeteorInitialCountdown,
		MeteorSpawnInterval: MeteorInitialCountdown,
	}
}

// Tick advances s by one step and returns it. Malformed commands are ignored.
// The only error is a wrapped ErrPlacementExhausted, in which case s is still
// consistent but was not fully replenished.
func (e *Engine) Tick(s *models.WorldState, cmds models.Commands) (*models.WorldState, error) {
	applyCommands(s, cmds)
	resolveCoinCollisions(s)
	resolveWeaponCollisions(s)
	e.resolvePlayerCollisions(s)
	resolveMeteorCollisions(s)
	err := e.replenish(s)
	s.Tick++
	return s, err
}
