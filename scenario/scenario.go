package scenario

import (
	"fmt"
	"io"

	"gopkg.in/gcfg.v1"

	"github.com/katalvlaran/polesim/pole"
	"github.com/katalvlaran/polesim/world"
)

// Scenario is a validated sweep input: the pole geometry plus the particle
// starting positions.
type Scenario struct {
	Length    int
	Speed     int
	Positions []int
}

// config mirrors the gcfg file layout:
//
//	[pole]
//	length = 214
//	speed = 1
//
//	[particles]
//	position = 11
//	position = 12
type config struct {
	Pole struct {
		Length int
		Speed  int
	}
	Particles struct {
		Position []int
	}
}

// Read loads and validates a scenario file from disk.
// Returns the underlying pole/world sentinel errors on invalid values.
func Read(path string) (*Scenario, error) {
	var cfg config
	if err := gcfg.ReadFileInto(&cfg, path); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}

	return fromConfig(&cfg)
}

// Parse reads a scenario from r; same validation as Read.
func Parse(r io.Reader) (*Scenario, error) {
	var cfg config
	if err := gcfg.ReadInto(&cfg, r); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}

	return fromConfig(&cfg)
}

func fromConfig(cfg *config) (*Scenario, error) {
	s := &Scenario{
		Length:    cfg.Pole.Length,
		Speed:     cfg.Pole.Speed,
		Positions: cfg.Particles.Position,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate applies the construction preconditions of the pole and world
// layers without building anything.
func (s *Scenario) Validate() error {
	if s.Length <= 0 {
		return pole.ErrNonPositiveLength
	}
	if s.Speed <= 0 {
		return pole.ErrNonPositiveSpeed
	}
	if len(s.Positions) == 0 {
		return world.ErrNoPositions
	}

	return nil
}

// Sweep runs the full direction ensemble described by the scenario.
func (s *Scenario) Sweep() (*world.SweepResult, error) {
	return world.Sweep(s.Length, s.Speed, s.Positions)
}
