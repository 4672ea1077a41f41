package world

import (
	"sort"

	"github.com/katalvlaran/polesim/pole"
)

// SweepResult captures a fully drained direction sweep: one pole per
// direction permutation, all sharing the same sorted starting positions.
type SweepResult struct {
	// Positions are the starting positions the ensemble ran with, ascending.
	Positions []int

	// Permutations holds every direction assignment, in enumeration order;
	// Permutations[k] configured the pole whose times sit in RemovalTimes[k].
	Permutations [][]pole.Direction

	// RemovalTimes[k][i] is the tick particle i dropped off under
	// permutation k.
	RemovalTimes [][]int

	// Earliest and Latest are the extremal clearing times across all
	// permutations: the soonest and the latest tick at which some pole lost
	// its last particle.
	Earliest int
	Latest   int

	// EarliestPerms and LatestPerms list every permutation index achieving
	// the extremal values — ties keep the whole set, not a single winner.
	EarliestPerms []int
	LatestPerms   []int

	// FinalTime is the simulation time after the last pole cleared.
	FinalTime int
}

// Sweep runs the full direction ensemble for the given pole length, particle
// speed and starting positions: positions are sorted ascending, one pole is
// built per direction permutation, a World drives them all to clearance, and
// the extremal clearing times are extracted.
//
// The sweep is fully deterministic: identical inputs always produce an
// identical SweepResult. Construction errors from the pole and permutation
// layers propagate unchanged.
//
// Complexity: O(T·speed·n·2^n) time for T ticks, O(n·2^n) memory.
func Sweep(length, speed int, positions []int) (*SweepResult, error) {
	sorted := make([]int, len(positions))
	copy(sorted, positions)
	sort.Ints(sorted)

	perms, err := DirectionPermutations(len(sorted))
	if err != nil {
		return nil, err
	}

	poles := make([]*pole.Pole, len(perms))
	for k, dirs := range perms {
		states := make([]pole.State, len(sorted))
		for i, p := range sorted {
			states[i] = pole.State{Position: p, Direction: dirs[i]}
		}
		pl, err := pole.New(length, speed, states)
		if err != nil {
			return nil, err
		}
		poles[k] = pl
	}

	w, err := New(poles)
	if err != nil {
		return nil, err
	}

	res := &SweepResult{
		Positions:    sorted,
		Permutations: perms,
		RemovalTimes: make([][]int, len(poles)),
		Earliest:     pole.Unset,
		Latest:       pole.Unset,
		FinalTime:    w.Run(),
	}

	for k, pl := range poles {
		res.RemovalTimes[k] = pl.RemovalTimes()
		clearing := pl.ClearingTime()
		if res.Earliest == pole.Unset || clearing < res.Earliest {
			res.Earliest = clearing
		}
		if res.Latest == pole.Unset || clearing > res.Latest {
			res.Latest = clearing
		}
	}
	for k, pl := range poles {
		clearing := pl.ClearingTime()
		if clearing == res.Earliest {
			res.EarliestPerms = append(res.EarliestPerms, k)
		}
		if clearing == res.Latest {
			res.LatestPerms = append(res.LatestPerms, k)
		}
	}

	return res, nil
}
