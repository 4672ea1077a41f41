// Package pole implements the collision/removal engine of the simulation:
// point particles on a bounded 1D line, moved in half-unit sub-steps, with
// group bounces at shared positions and removal at the ends.
//
// 🚀 What is a pole?
//
//	A line of valid positions [0, length] holding a fixed, ordered set of
//	particles that all travel at the same constant speed. Each time unit the
//	pole advances in two sub-steps per unit of speed:
//	  • particles meeting at one position with disagreeing directions all
//	    reverse simultaneously and move apart (an elastic-style bounce)
//	  • particles already moving uniformly pass through each other
//	  • a particle whose move lands outside [0, length] is removed and the
//	    time of its removal recorded, exactly once
//
// ✨ Key properties:
//   - index identity — a particle is identified by its construction index;
//     removal flags and times are arrays over that index, immune to two
//     particles comparing equal by value
//   - removed is forever — a removed index never moves and never collides
//   - forward-only resolution — within a sub-step the scan runs left to
//     right and never revisits an already-settled collision partner; this
//     ordering is load-bearing for chains of three or more co-located
//     particles
//   - no mid-run failures — every in-simulation boundary condition (window
//     running past the last particle, positions leaving the pole) is an
//     ordinary, expected loop outcome
//
// Errors (construction only):
//   - ErrNonPositiveLength — length ≤ 0.
//   - ErrNonPositiveSpeed  — speed ≤ 0.
//   - ErrNoParticles       — empty particle list.
//
// Complexity:
//
//   - Step: O(speed·n) time, O(1) extra memory.
//   - All queries: O(1) or O(len(indices)).
//
// See package world for driving many poles at once.
package pole
