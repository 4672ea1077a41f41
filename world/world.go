package world

import "github.com/katalvlaran/polesim/pole"

// World drives a fixed, ordered ensemble of independent poles through
// simulated time, one full time unit per tick. A pole whose particles have
// all been removed is recorded as finished (by its position in the original
// list) and never stepped again.
type World struct {
	poles []*pole.Pole

	finished      []bool
	finishedCount int

	now int
}

// New builds a World over the given poles. The slice is copied; pole order is
// preserved and is the order poles are stepped in every tick.
// Returns ErrNoPoles for an empty list.
func New(poles []*pole.Pole) (*World, error) {
	if len(poles) == 0 {
		return nil, ErrNoPoles
	}

	w := &World{
		poles:    make([]*pole.Pole, len(poles)),
		finished: make([]bool, len(poles)),
	}
	copy(w.poles, poles)

	return w, nil
}

// Now reports the current simulation time. It starts at 0 and grows by one
// per executed tick.
func (w *World) Now() int { return w.now }

// Len reports the number of poles in the ensemble.
func (w *World) Len() int { return len(w.poles) }

// Pole returns pole i for inspection. Mutating it outside Tick voids the
// simulation's determinism guarantees.
func (w *World) Pole(i int) *pole.Pole { return w.poles[i] }

// Finished reports whether pole i has been recorded as finished.
func (w *World) Finished(i int) bool { return w.finished[i] }

// FinishedCount reports how many poles have been recorded as finished.
func (w *World) FinishedCount() int { return w.finishedCount }

// Done reports whether every pole in the ensemble has finished.
func (w *World) Done() bool { return w.finishedCount == len(w.poles) }

// Tick advances simulated time by one unit: it increments the clock, steps
// every not-yet-finished pole in insertion order, then records any pole whose
// particles are now all removed. It reports whether at least one pole is
// still active, so a full run is a plain loop:
//
//	for w.Tick() {
//	}
//
// Ticking a finished World is a no-op. A caller may stop ticking at any
// point and still read consistent per-pole removal data for the ticks that
// actually ran.
func (w *World) Tick() bool {
	if w.Done() {
		return false
	}

	w.now++
	for i, pl := range w.poles {
		if w.finished[i] {
			continue
		}
		pl.Step(w.now)
		if pl.Cleared() {
			w.finished[i] = true
			w.finishedCount++
		}
	}

	return !w.Done()
}

// Run drains the World: it ticks until every pole has finished and reports
// the final simulation time. Guaranteed to terminate whenever every particle
// eventually leaves its pole. Complexity: O(T · Σ speed·n) over T ticks.
func (w *World) Run() int {
	for w.Tick() {
	}

	return w.now
}
