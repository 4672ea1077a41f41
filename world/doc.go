// Package world drives ensembles of poles through simulated time and sweeps
// every direction assignment to find the extremal clearing times.
//
// 🚀 What is a world?
//
//	An ordered set of independent poles advanced in lockstep, one time unit
//	per Tick. A pole that has lost all its particles is recorded as finished
//	under its original index and never stepped again. Ticking is an explicit
//	driver call, not a background process: stop calling Tick at any point and
//	the partial state — which poles finished, every recorded removal time —
//	remains consistent and readable.
//
// ✨ What is a sweep?
//
//	Sweep enumerates all 2^n assignments of Right/Left to n starting
//	positions (DirectionPermutations), runs one pole per assignment to
//	clearance, and reports:
//	  • Earliest — the minimum over poles of the pole's clearing time
//	  • Latest   — the maximum over poles of the pole's clearing time
//	  • the full tie sets of permutations achieving each extreme
//
// Determinism:
//
//	Single-threaded and step-synchronous by design: poles are stepped in
//	insertion order and own their particle state exclusively, so identical
//	inputs always reproduce identical results.
//
// Errors:
//   - ErrNoPoles          — World over an empty pole list.
//   - ErrNoPositions      — sweep of zero starting positions.
//   - ErrTooManyPositions — more positions than the 2^n ensemble can hold.
//
// Complexity:
//
//   - Tick:  O(Σ speed·n) over active poles.
//   - Sweep: O(T·speed·n·2^n) time for T ticks, O(n·2^n) memory.
package world
