package game

import "github.com/4cecoder/arena/models"

// advanceMeteors moves or blinks every meteor and spawns a new one when the
// countdown runs out. Field edges do not stop or remove a meteor.
func (e *Engine) advanceMeteors(s *models.WorldState, occ occupancy) error {
	for _, m := range s.Meteors {
		stepMeteor(m)
	}

	s.MeteorSpawnCounter--
	if s.MeteorSpawnCounter > 0 {
		return nil
	}

	c, err := e.unoccupiedCell(s, occ, "meteor")
	if err != nil {
		// Try again next tick.
		s.MeteorSpawnCounter = 1
		return err
	}
	vx, vy := e.meteorVelocity()
	s.Meteors = append(s.Meteors, &models.Meteor{
		X:           c.X,
		Y:           c.Y,
		VelocityX:   vx,
		VelocityY:   vy,
		LaunchTimer: MeteorLaunchDelay,
		Visible:     true,
	})

	s.MeteorSpawnInterval = max(s.MeteorSpawnInterval-MeteorIntervalDecrement, MeteorMinInterval)
	s.MeteorSpawnCounter = s.MeteorSpawnInterval
	return nil
}

// stepMeteor blinks a waiting meteor and counts down its launch timer, or
// moves an in-flight one by its velocity.
func stepMeteor(m *models.Meteor) {
	if m.LaunchTimer > 0 {
		m.Visible = !m.Visible
		m.LaunchTimer--
		if m.LaunchTimer == 0 {
			m.Visible = true
		}
		return
	}
	m.Visible = true
	m.X += m.VelocityX
	m.Y += m.VelocityY
}

// meteorVelocity picks one of the eight non-zero directions in {-1,0,1}^2.
func (e *Engine) meteorVelocity() (vx, vy int) {
	for {
		vx, vy = e.rng.IntN(3)-1, e.rng.IntN(3)-1
		if vx != 0 || vy != 0 {
			return vx, vy
		}
	}
}

// resolveMeteorCollisions strips any player hit by an in-flight meteor. The
// meteor is spent; the player stays on the roster.
func resolveMeteorCollisions(s *models.WorldState) {
	if len(s.Meteors) == 0 {
		return
	}
	spent := make(map[*models.Meteor]bool)
	for _, p := range s.Players {
		for _, m := range s.Meteors {
			if spent[m] || !m.InFlight() || m.Cell() != p.Cell() {
				continue
			}
			spent[m] = true
			p.Score = 0
			p.Power = 0
			break
		}
	}
	if len(spent) == 0 {
		return
	}
	kept := make([]*models.Meteor, 0, len(s.Meteors)-len(spent))
	for _, m := range s.Meteors {
		if !spent[m] {
			kept = append(kept, m)
		}
	}
	s.Meteors = kept
}
