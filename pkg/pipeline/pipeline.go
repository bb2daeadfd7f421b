package pipeline

import (
	"context"

	"github.com/pkg/errors"

	"github.com/askiada/go-rat/pkg/pipeline/model"
)

// Pipeline is a pipeline of steps.
type Pipeline[T any] struct {
	opts     []model.PipelineOption
	steps    []*model.Step[T]
	sink     *sink[T]
	names    map[string]struct{}
	finished bool
}

// New creates a new pipeline.
func New[T any](opts ...model.PipelineOption) (*Pipeline[T], error) {
	pipe := &Pipeline[T]{
		opts:  opts,
		names: make(map[string]struct{}),
	}

	for _, opt := range opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply pipeline option")
		}
	}

	return pipe, nil
}

// lastStep returns the details of the step the next one will be linked to.
func (p *Pipeline[T]) lastStep() *model.StepInfo {
	if len(p.steps) == 0 {
		return model.StartStep.Details
	}

	return p.steps[len(p.steps)-1].Details
}

// Steps returns the details of the steps in the order they run.
func (p *Pipeline[T]) Steps() []*model.StepInfo {
	res := make([]*model.StepInfo, len(p.steps))
	for i, step := range p.steps {
		res[i] = step.Details
	}

	return res
}

// Run passes input through every step and then to the sink, if any.
// It returns early on the first error.
func (p *Pipeline[T]) Run(ctx context.Context, input T) (T, error) {
	parent := model.StartStep.Details
	out := input

	for _, step := range p.steps {
		res, err := runStep(ctx, p, parent, step, out)
		if err != nil {
			return out, err
		}

		out = res
		parent = step.Details
	}

	if p.sink != nil {
		err := runSink(ctx, p, parent, p.sink, out)
		if err != nil {
			return out, err
		}
	}

	return out, nil
}

// Finish runs the Finish hook of every option. It is a no-op after the first call.
func (p *Pipeline[T]) Finish() error {
	if p.finished {
		return nil
	}
	p.finished = true

	for _, opt := range p.opts {
		err := opt.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish pipeline option")
		}
	}

	return nil
}
