package pole_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/polesim/pole"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects invalid geometry and empty input.
func TestNew_Errors(t *testing.T) {
	one := []pole.State{{Position: 1, Direction: pole.Right}}
	cases := []struct {
		name   string
		length int
		speed  int
		states []pole.State
		err    error
	}{
		{"ZeroLength", 0, 1, one, pole.ErrNonPositiveLength},
		{"NegativeLength", -5, 1, one, pole.ErrNonPositiveLength},
		{"ZeroSpeed", 5, 0, one, pole.ErrNonPositiveSpeed},
		{"NegativeSpeed", 5, -1, one, pole.ErrNonPositiveSpeed},
		{"NoParticles", 5, 1, nil, pole.ErrNoParticles},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pole.New(tc.length, tc.speed, tc.states)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d, %d, %v) error = %v; want %v", tc.length, tc.speed, tc.states, err, tc.err)
			}
		})
	}
}

// TestNew_DuplicatePositions checks that duplicate starting positions are
// accepted.
func TestNew_DuplicatePositions(t *testing.T) {
	pl, err := pole.New(5, 1, []pole.State{
		{Position: 2, Direction: pole.Right},
		{Position: 2, Direction: pole.Left},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if pl.Len() != 2 {
		t.Errorf("Len() = %d; want 2", pl.Len())
	}
}

//----------------------------------------------------------------------------//
// Query Tests
//----------------------------------------------------------------------------//

// TestOutOfBounds checks the strict boundary semantics of [0, length].
func TestOutOfBounds(t *testing.T) {
	pl, err := pole.New(5, 1, []pole.State{
		{Position: -1, Direction: pole.Right},
		{Position: 0, Direction: pole.Right},
		{Position: 5, Direction: pole.Right},
		{Position: 6, Direction: pole.Right},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	wants := []bool{true, false, false, true}
	for i, want := range wants {
		if got := pl.OutOfBounds(i); got != want {
			t.Errorf("OutOfBounds(%d) = %v; want %v", i, got, want)
		}
	}
}

// TestSamePositionSameDirection checks the group queries used by the
// collision scan.
func TestSamePositionSameDirection(t *testing.T) {
	pl, err := pole.New(5, 1, []pole.State{
		{Position: 1, Direction: pole.Right},
		{Position: 5, Direction: pole.Right},
		{Position: 5, Direction: pole.Left},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if pl.SamePosition(0, 1) {
		t.Error("SamePosition(0,1) = true; want false")
	}
	if !pl.SamePosition(1, 2) {
		t.Error("SamePosition(1,2) = false; want true")
	}
	if !pl.SameDirection(0, 1) {
		t.Error("SameDirection(0,1) = false; want true")
	}
	if pl.SameDirection(1, 2) {
		t.Error("SameDirection(1,2) = true; want false")
	}
	if !pl.SamePosition() || !pl.SameDirection() {
		t.Error("empty index lists should be vacuously true")
	}
}

//----------------------------------------------------------------------------//
// Engine Suite
//----------------------------------------------------------------------------//

// PoleSuite exercises Move, Step and the removal bookkeeping.
type PoleSuite struct {
	suite.Suite
}

// TestMoveRecordsRemovalOnce verifies a removal time is written exactly once
// and never overwritten.
func (s *PoleSuite) TestMoveRecordsRemovalOnce() {
	pl, err := pole.New(5, 1, []pole.State{{Position: 5, Direction: pole.Right}})
	require.NoError(s.T(), err)

	pl.Move(0, pole.SubStep, 1)
	require.True(s.T(), pl.Removed(0))
	require.Equal(s.T(), 1, pl.RemovalTime(0))

	// A later move must not touch the recorded time.
	pl.Move(0, pole.SubStep, 7)
	require.Equal(s.T(), 1, pl.RemovalTime(0))
	require.True(s.T(), pl.Cleared())
}

// TestMoveInsideBounds verifies plain movement without removal.
func (s *PoleSuite) TestMoveInsideBounds() {
	pl, err := pole.New(5, 1, []pole.State{
		{Position: 2, Direction: pole.Right},
		{Position: 2, Direction: pole.Left},
	})
	require.NoError(s.T(), err)

	pl.Move(0, 1, 1)
	pl.Move(1, 1, 1)
	require.Equal(s.T(), 3.0, pl.Particle(0).Position)
	require.Equal(s.T(), 1.0, pl.Particle(1).Position)
	require.False(s.T(), pl.Removed(0))
	require.False(s.T(), pl.Removed(1))
	require.Equal(s.T(), pole.Unset, pl.RemovalTime(0))
}

// TestStepHeadOnBounce replays the canonical two-particle meeting: (1,R) and
// (2,L) on a length-5 pole collide within the first tick and both reverse in
// place.
func (s *PoleSuite) TestStepHeadOnBounce() {
	pl, err := pole.New(5, 1, []pole.State{
		{Position: 1, Direction: pole.Right},
		{Position: 2, Direction: pole.Left},
	})
	require.NoError(s.T(), err)

	pl.Step(1)
	require.Equal(s.T(), pole.Left, pl.Particle(0).Direction, "first particle should bounce back")
	require.Equal(s.T(), 1.0, pl.Particle(0).Position)
	require.Equal(s.T(), pole.Right, pl.Particle(1).Direction, "second particle should bounce back")
	require.Equal(s.T(), 2.0, pl.Particle(1).Position)

	pl.Step(2)
	require.False(s.T(), pl.Removed(0))
	require.False(s.T(), pl.Removed(1))

	pl.Step(3)
	require.True(s.T(), pl.Removed(0), "leftward particle drops off the low end at tick 3")
	require.Equal(s.T(), 3, pl.RemovalTime(0))
	require.False(s.T(), pl.Removed(1), "rightward particle is still on the pole")
}

// TestStepMeetAtMidpoint verifies two particles starting 2k apart and moving
// toward each other occupy the midpoint p+k once 2k/speed time units have
// elapsed, then bounce.
func (s *PoleSuite) TestStepMeetAtMidpoint() {
	// p = 1, k = 2: meet at 3 after 2 time units.
	pl, err := pole.New(10, 1, []pole.State{
		{Position: 1, Direction: pole.Right},
		{Position: 5, Direction: pole.Left},
	})
	require.NoError(s.T(), err)

	pl.Step(1)
	pl.Step(2)
	require.Equal(s.T(), 3.0, pl.Particle(0).Position)
	require.Equal(s.T(), 3.0, pl.Particle(1).Position)

	// The co-located group resolves on the next sub-step: both reverse.
	pl.Step(3)
	require.Equal(s.T(), pole.Left, pl.Particle(0).Direction)
	require.Equal(s.T(), pole.Right, pl.Particle(1).Direction)
}

// TestStepUniformNeverReverses checks that particles all moving the same way
// never trigger a reversal, whatever the spacing.
func (s *PoleSuite) TestStepUniformNeverReverses() {
	pl, err := pole.New(10, 1, []pole.State{
		{Position: 0, Direction: pole.Right},
		{Position: 1, Direction: pole.Right},
		{Position: 2, Direction: pole.Right},
		{Position: 7, Direction: pole.Right},
	})
	require.NoError(s.T(), err)

	for now := 1; now <= 12 && !pl.Cleared(); now++ {
		pl.Step(now)
		for i := 0; i < pl.Len(); i++ {
			require.Equal(s.T(), pole.Right, pl.Particle(i).Direction,
				"tick %d: particle %d reversed without a head-on partner", now, i)
		}
	}
	require.True(s.T(), pl.Cleared())
}

// TestStepThreeParticleChain exercises the forward-only window on a chain of
// three co-located particles: the leader reverses together with every
// opposing trailer.
func (s *PoleSuite) TestStepThreeParticleChain() {
	// 2→ ←3 ←4 on a length-6 pole: particle 0 meets 1 at 2.5 while 2 trails
	// half a unit behind; the pair bounces, then particle 2 catches the
	// reversed particle 1.
	pl, err := pole.New(6, 1, []pole.State{
		{Position: 2, Direction: pole.Right},
		{Position: 3, Direction: pole.Left},
		{Position: 4, Direction: pole.Left},
	})
	require.NoError(s.T(), err)

	pl.Step(1)
	require.Equal(s.T(), pole.Left, pl.Particle(0).Direction)
	require.Equal(s.T(), pole.Right, pl.Particle(1).Direction)
	require.Equal(s.T(), pole.Left, pl.Particle(2).Direction, "trailing particle has not met anyone yet")

	pl.Step(2)
	require.Equal(s.T(), pole.Left, pl.Particle(1).Direction, "middle particle bounced a second time")
	require.Equal(s.T(), pole.Right, pl.Particle(2).Direction)
}

// TestRemovedNeverMoves verifies a removed index is excluded from stepping.
func (s *PoleSuite) TestRemovedNeverMoves() {
	pl, err := pole.New(5, 1, []pole.State{
		{Position: 0, Direction: pole.Left},
		{Position: 3, Direction: pole.Right},
	})
	require.NoError(s.T(), err)

	pl.Step(1)
	require.True(s.T(), pl.Removed(0))
	frozen := pl.Particle(0).Position

	pl.Step(2)
	pl.Step(3)
	require.Equal(s.T(), frozen, pl.Particle(0).Position, "removed particle moved")
	require.Equal(s.T(), 1, pl.RemovalTime(0))
}

// TestClearingTime verifies the removal-time aggregate queries.
func (s *PoleSuite) TestClearingTime() {
	pl, err := pole.New(5, 1, []pole.State{
		{Position: 1, Direction: pole.Left},
		{Position: 4, Direction: pole.Right},
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), pole.Unset, pl.ClearingTime())

	now := 0
	for !pl.Cleared() {
		now++
		pl.Step(now)
	}

	times := pl.RemovalTimes()
	require.Len(s.T(), times, 2)
	require.Equal(s.T(), 2, times[0], "particle at 1 exits the low end during tick 2")
	require.Equal(s.T(), 2, times[1], "particle at 4 exits the high end during tick 2")
	require.Equal(s.T(), 2, pl.ClearingTime())
}

func TestPoleSuite(t *testing.T) {
	suite.Run(t, new(PoleSuite))
}
