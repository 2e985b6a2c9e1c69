package recorder

import (
	"fmt"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

// Step is one journaled row turned back into an engine action.
type Step struct {
	Record storage.MoveRecord
	Move   cubesim.Move
	Reset  bool
}

// Apply performs the step on c.
func (s Step) Apply(c cubesim.Cube) cubesim.Cube {
	if s.Reset {
		return cubesim.NewCube()
	}
	return cubesim.Apply(c, s.Move)
}

// Steps converts journaled rows into replayable steps.
func Steps(records []storage.MoveRecord) ([]Step, error) {
	steps := make([]Step, 0, len(records))
	for _, r := range records {
		if r.Kind == storage.KindReset {
			steps = append(steps, Step{Record: r, Reset: true})
			continue
		}

		moves, err := cubesim.ParseMove(r.Notation)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", r.MoveIndex, err)
		}
		for _, m := range moves {
			steps = append(steps, Step{Record: r, Move: m})
		}
	}
	return steps, nil
}

// Rebuild replays every row from a solved cube and returns the final cube.
func Rebuild(records []storage.MoveRecord) (cubesim.Cube, error) {
	steps, err := Steps(records)
	if err != nil {
		return cubesim.Cube{}, err
	}

	c := cubesim.NewCube()
	for _, s := range steps {
		c = s.Apply(c)
	}
	return c, nil
}
