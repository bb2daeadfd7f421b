package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-rat/pkg/pipeline/model"
)

func runStep[T any](ctx context.Context, p *Pipeline[T], parent *model.StepInfo, step *model.Step[T], input T) (T, error) {
	if err := ctx.Err(); err != nil {
		return input, errors.Wrap(err, step.Details.Name)
	}

	startFn := time.Now()
	out, err := step.Fn(ctx, input)
	if err != nil {
		return input, errors.Wrap(err, step.Details.Name)
	}
	endFn := time.Since(startFn)

	for _, opt := range p.opts {
		err := opt.OnStepOutput(parent, step.Details, endFn)
		if err != nil {
			return out, errors.Wrap(err, "unable to run step output function")
		}
	}

	return out, nil
}

func checkName[T any](p *Pipeline[T], name string) error {
	if p == nil {
		return ErrPipelineMustBeSet
	}
	if _, ok := p.names[name]; ok {
		return errors.Wrap(ErrDuplicateStep, name)
	}
	if name == model.StartStep.Details.Name || name == model.EndStep.Details.Name {
		return errors.Wrap(ErrDuplicateStep, name)
	}

	return nil
}

// AddStep appends a step to the pipeline. Steps run in the order they are added.
func AddStep[T any](p *Pipeline[T], name string, stepFn model.StepFn[T]) (*model.Step[T], error) {
	err := checkName(p, name)
	if err != nil {
		return nil, err
	}
	if stepFn == nil {
		return nil, ErrStepFnMustBeSet
	}
	if p.sink != nil {
		return nil, errors.Wrapf(ErrSinkAlreadySet, "unable to add step %s", name)
	}

	step := &model.Step[T]{
		Details: &model.StepInfo{
			Type: model.NormalStepType,
			Name: name,
		},
		Fn: stepFn,
	}

	parent := p.lastStep()
	for _, opt := range p.opts {
		err := opt.PrepareStep(parent, step.Details)
		if err != nil {
			return nil, errors.Wrap(err, "unable to run prepare step function")
		}
	}

	p.names[name] = struct{}{}
	p.steps = append(p.steps, step)

	return step, nil
}
