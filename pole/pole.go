package pole

// Pole is a bounded 1D line holding a fixed set of particles. Valid positions
// span [0, length]; a particle whose position leaves that range is removed
// and the simulation time of its removal is recorded, exactly once.
//
// A particle's index in the construction list is its permanent identity:
// removal flags and removal times are indexed by it, and a removed index
// never moves again.
type Pole struct {
	length int
	speed  int

	particles []Particle

	removed      []bool
	removedCount int
	removalTime  []int
}

// New builds a Pole of the given length with particles travelling at the
// given speed (position units per time unit). The particle list is copied;
// duplicate starting positions are accepted.
//
// Returns ErrNonPositiveLength, ErrNonPositiveSpeed or ErrNoParticles on
// invalid input. Complexity: O(n) time and memory.
func New(length, speed int, states []State) (*Pole, error) {
	if length <= 0 {
		return nil, ErrNonPositiveLength
	}
	if speed <= 0 {
		return nil, ErrNonPositiveSpeed
	}
	if len(states) == 0 {
		return nil, ErrNoParticles
	}

	pl := &Pole{
		length:      length,
		speed:       speed,
		particles:   make([]Particle, len(states)),
		removed:     make([]bool, len(states)),
		removalTime: make([]int, len(states)),
	}
	for i, s := range states {
		pl.particles[i] = Particle{Position: float64(s.Position), Direction: s.Direction}
		pl.removalTime[i] = Unset
	}

	return pl, nil
}

// Len reports the number of particles the pole was built with, removed or not.
func (pl *Pole) Len() int { return len(pl.particles) }

// Length reports the pole's upper position bound.
func (pl *Pole) Length() int { return pl.length }

// Speed reports the particles' speed in position units per time unit.
func (pl *Pole) Speed() int { return pl.speed }

// Particle returns a copy of particle i for inspection. The pole keeps
// exclusive ownership of the live particle state.
func (pl *Pole) Particle(i int) Particle { return pl.particles[i] }

// OutOfBounds reports whether particle i currently sits strictly below 0 or
// strictly above the pole length. Pure query, O(1).
func (pl *Pole) OutOfBounds(i int) bool {
	return pl.particles[i].Position < 0 || pl.particles[i].Position > float64(pl.length)
}

// Removed reports whether particle i has been removed from the pole. O(1).
func (pl *Pole) Removed(i int) bool { return pl.removed[i] }

// SamePosition reports whether every listed particle occupies the position of
// the first listed one. Vacuously true for an empty list. O(len(indices)).
func (pl *Pole) SamePosition(indices ...int) bool {
	for _, i := range indices {
		if pl.particles[i].Position != pl.particles[indices[0]].Position {
			return false
		}
	}

	return true
}

// SameDirection reports whether every listed particle travels in the
// direction of the first listed one. Vacuously true for an empty list.
func (pl *Pole) SameDirection(indices ...int) bool {
	for _, i := range indices {
		if pl.particles[i].Direction != pl.particles[indices[0]].Direction {
			return false
		}
	}

	return true
}

// Cleared reports whether every particle has been removed.
func (pl *Pole) Cleared() bool { return pl.removedCount == len(pl.particles) }

// RemovalTime reports when particle i was removed, or Unset while it is
// still on the pole.
func (pl *Pole) RemovalTime(i int) int { return pl.removalTime[i] }

// RemovalTimes returns a copy of all removal-time slots, indexed by particle.
func (pl *Pole) RemovalTimes() []int {
	out := make([]int, len(pl.removalTime))
	copy(out, pl.removalTime)

	return out
}

// ClearingTime reports the latest recorded removal time — the tick at which
// the pole became empty. It equals Unset until the first removal and is only
// the true clearing time once Cleared() holds.
func (pl *Pole) ClearingTime() int {
	latest := Unset
	for _, t := range pl.removalTime {
		if t > latest {
			latest = t
		}
	}

	return latest
}

// Move advances particle i by steps units along its direction. If the move
// lands the particle out of bounds and it has not been removed before, the
// particle joins the removed set and now is recorded as its removal time.
// A removal time is written at most once and never overwritten.
func (pl *Pole) Move(i int, steps float64, now int) {
	pl.particles[i].Advance(steps)
	if pl.OutOfBounds(i) && !pl.removed[i] {
		pl.removed[i] = true
		pl.removedCount++
		pl.removalTime[i] = now
	}
}

// Step advances the whole pole by one full time unit at simulation time now.
//
// Algorithm outline:
//  1. Perform speed/SubStep sub-steps (two per unit of speed).
//  2. Within a sub-step, scan particle indices left to right, skipping
//     removed ones.
//  3. At index i, grow a lookahead window over consecutive higher indices
//     while they share particle i's position. Each co-located trailing
//     particle moving against i reverses and immediately moves one SubStep
//     (which may remove it). The window stops at the end of the list, at the
//     first trailing particle no longer co-located, or at one already moving
//     with i — uniform runs pass through each other without interacting.
//  4. If any trailing particle reversed, particle i reverses too: everyone
//     meeting at one position with disagreeing directions bounces at once.
//  5. Move particle i one SubStep, then resume the scan past the group.
//
// The scan is forward-only: a collision partner settled earlier in the
// sub-step is not re-examined. This ordering decides which particles reverse
// versus pass through in chains of three or more co-located particles and is
// part of the pole's contract.
//
// Complexity: O(speed · n) time per call, O(1) extra memory.
func (pl *Pole) Step(now int) {
	substeps := int(float64(pl.speed) / SubStep)
	for s := 0; s < substeps; s++ {
		for i := 0; i < len(pl.particles); i++ {
			if pl.Removed(i) {
				continue
			}

			reversed := 0
			for j := i + 1; j < len(pl.particles) && pl.SamePosition(i, j); j = i + reversed + 1 {
				if pl.SameDirection(i, j) {
					break
				}
				reversed++
				pl.particles[j].Reverse()
				pl.Move(j, SubStep, now)
			}

			if reversed > 0 {
				pl.particles[i].Reverse()
			}
			pl.Move(i, SubStep, now)

			i += reversed
		}
	}
}
