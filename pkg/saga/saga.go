// Package saga executes an ordered list of steps where each step may carry a
// compensation. When a step fails, compensations of the already completed
// steps run in reverse order and the original error is returned. There is no
// rollback beyond the compensations the caller wires in.
package saga

import (
	"context"

	"github.com/samplefinder/backend/pkg/xcontext"
)

type Step struct {
	Name       string
	Action     func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

type Saga struct {
	steps []Step
}

func New(steps ...Step) *Saga {
	return &Saga{steps: steps}
}

func (s *Saga) Then(step Step) *Saga {
	s.steps = append(s.steps, step)
	return s
}

func (s *Saga) Execute(ctx context.Context) error {
	for i, step := range s.steps {
		err := step.Action(ctx)
		if err == nil {
			continue
		}

		xcontext.Logger(ctx).Errorf("Saga step %s failed: %v", step.Name, err)
		for j := i - 1; j >= 0; j-- {
			if s.steps[j].Compensate == nil {
				continue
			}

			if cerr := s.steps[j].Compensate(ctx); cerr != nil {
				// A failed compensation cannot be compensated itself. Log and
				// keep unwinding so earlier steps still get a chance.
				xcontext.Logger(ctx).Errorf(
					"Cannot compensate saga step %s: %v", s.steps[j].Name, cerr)
			}
		}

		return err
	}

	return nil
}
