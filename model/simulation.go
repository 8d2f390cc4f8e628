package model

import (
	"context"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Simulation owns the current generation and steps it through a fixed budget
type Simulation struct {
	dims        Dims
	pattern     Pattern
	current     Register
	generation  uint64
	generations uint64
}

// NewSimulation validates d and seeds generation 0 from p. seed only matters for Random.
func NewSimulation(d Dims, p Pattern, generations uint64, seed int64) (*Simulation, error) {
	if err := d.Validate(); err != nil {
		return nil, errors.Wrap(err, "[NewSimulation] invalid dimensions")
	}

	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	start, err := Seed(p, d, rng)
	if err != nil {
		return nil, errors.Wrap(err, "[NewSimulation] failed to seed grid")
	}

	return &Simulation{
		dims:        d,
		pattern:     p,
		current:     start,
		generations: generations,
	}, nil
}

// Dims returns the grid dimensions
func (s *Simulation) Dims() Dims { return s.dims }

// Pattern returns the starting pattern
func (s *Simulation) Pattern() Pattern { return s.pattern }

// Current returns the register for the current generation
func (s *Simulation) Current() Register { return s.current }

// Generation returns how many steps have been taken
func (s *Simulation) Generation() uint64 { return s.generation }

// Remaining returns how many generations are left in the budget
func (s *Simulation) Remaining() uint64 { return s.generations - s.generation }

// Done reports whether the generation budget is exhausted
func (s *Simulation) Done() bool { return s.generation >= s.generations }

// Step advances one generation, ignoring the budget
func (s *Simulation) Step() {
	next := Step(s.current, s.dims)
	s.current = next
	s.generation++
}

// Run renders and steps until the budget is exhausted. It stops early only
// when ctx is cancelled or the renderer fails.
func (s *Simulation) Run(ctx context.Context, r Renderer) error {
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "[Run] stopped at generation %d", s.generation)
		}
		if err := r.Render(s.generation, s.current, s.dims); err != nil {
			return errors.Wrapf(err, "[Run] failed to render generation %d", s.generation)
		}
		s.Step()
	}
	return nil
}
