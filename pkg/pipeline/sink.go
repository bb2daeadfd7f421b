package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-rat/pkg/pipeline/model"
)

type sink[T any] struct {
	details *model.StepInfo
	fn      model.SinkFn[T]
}

func runSink[T any](ctx context.Context, p *Pipeline[T], parent *model.StepInfo, snk *sink[T], input T) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, snk.details.Name)
	}

	startFn := time.Now()
	err := snk.fn(ctx, input)
	if err != nil {
		return errors.Wrap(err, snk.details.Name)
	}
	endFn := time.Since(startFn)

	for _, opt := range p.opts {
		err := opt.OnSinkOutput(parent, snk.details, endFn)
		if err != nil {
			return errors.Wrap(err, "unable to run sink output function")
		}
	}

	return nil
}

// AddSink sets the step consuming the output of the last step. A pipeline has at most one sink
// and no step can be added after it.
func AddSink[T any](p *Pipeline[T], name string, sinkFn model.SinkFn[T]) error {
	err := checkName(p, name)
	if err != nil {
		return err
	}
	if sinkFn == nil {
		return ErrStepFnMustBeSet
	}
	if p.sink != nil {
		return errors.Wrapf(ErrSinkAlreadySet, "unable to add sink %s", name)
	}

	snk := &sink[T]{
		details: &model.StepInfo{
			Type: model.SinkStepType,
			Name: name,
		},
		fn: sinkFn,
	}

	parent := p.lastStep()
	for _, opt := range p.opts {
		err := opt.PrepareSink(parent, snk.details)
		if err != nil {
			return errors.Wrap(err, "unable to run prepare sink function")
		}
	}

	p.names[name] = struct{}{}
	p.sink = snk

	return nil
}
