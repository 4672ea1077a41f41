package pole

// Particle is a point mass travelling along a pole at constant speed.
// Position is signed and may leave the pole's bounds transiently; the owning
// Pole removes the particle as soon as a move lands it out of bounds.
type Particle struct {
	Position  float64
	Direction Direction
}

// Reverse flips the travel direction, Right↔Left.
// Applying it twice restores the original direction.
func (p *Particle) Reverse() {
	p.Direction = p.Direction.Opposite()
}

// Advance shifts the position by steps units along the current direction:
// added when moving Right, subtracted when moving Left. steps must be
// non-negative; Advance(0) is a no-op. Complexity: O(1).
func (p *Particle) Advance(steps float64) {
	if p.Direction == Right {
		p.Position += steps
	} else {
		p.Position -= steps
	}
}
