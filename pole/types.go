package pole

// Direction tells which way a particle travels along the pole.
//
//   - Right — toward increasing positions.
//   - Left  — toward decreasing positions.
type Direction int

const (
	// Right moves toward increasing positions; rendered as "R".
	Right Direction = iota

	// Left moves toward decreasing positions; rendered as "L".
	Left
)

// String renders the direction as the single letter used in sweep reports.
func (d Direction) String() string {
	if d == Right {
		return "R"
	}

	return "L"
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	if d == Right {
		return Left
	}

	return Right
}

// State describes one particle at construction time: an integer starting
// position on the pole and an initial travel direction.
type State struct {
	Position  int
	Direction Direction
}

// SubStep is the internal movement granularity: half of the position unit,
// so a pole performs two sub-steps per unit of speed within one time unit.
// Sub-stepping lets two particles approaching head-on meet at a shared
// position instead of overshooting each other between ticks.
const SubStep = 0.5

// Unset marks a removal-time slot whose particle is still on the pole.
const Unset = -1
