// Package polesim simulates point particles sliding along a bounded
// one-dimensional pole, bouncing off each other and dropping off the ends —
// and sweeps every possible assignment of starting directions to find which
// one clears the pole soonest and which one keeps it busy longest.
//
// 🚀 What is polesim?
//
//	A small, deterministic simulation library organized in layers:
//		• pole/     — Particle & Pole primitives: sub-step movement,
//		  collision resolution for co-located groups, removal bookkeeping
//		• world/    — the ensemble driver: one Pole per direction
//		  permutation, a tick-at-a-time World, and extremal sweep results
//		• scenario/ — gcfg scenario files (length, speed, starting positions)
//
// ✨ Why choose polesim?
//
//   - Deterministic – identical inputs always produce identical results
//   - Inspectable – stop ticking at any point and read consistent state
//   - Fail-fast – invalid scenarios are rejected at construction, never mid-run
//   - Pure Go core – rendering and config live at the edges
//
// Quick ASCII example (length 5, two particles meeting head-on):
//
//	0   1   2   3   4   5
//	|---●→ ←●-----------|     tick 0: both approach
//	|--←●   ●→----------|     tick 1: co-located, both reverse
//	|←●---------●→------|     tick 2: moving apart
//
// Entry points: pole.New, world.New, world.Sweep, scenario.Read.
//
//	go get github.com/katalvlaran/polesim
package polesim
