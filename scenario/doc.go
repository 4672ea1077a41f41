// Package scenario loads sweep inputs from gcfg (INI-style) files.
//
// A scenario file names the pole geometry and the particle starting
// positions, one position per line:
//
//	[pole]
//	length = 214
//	speed = 1
//
//	[particles]
//	position = 11
//	position = 12
//	position = 7
//
// Read and Parse validate with the same preconditions the pole and world
// constructors enforce, so an invalid file fails before any simulation
// starts, with the layers' own sentinel errors.
package scenario
