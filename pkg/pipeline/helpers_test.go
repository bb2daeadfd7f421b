package pipeline_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/askiada/go-rat/pkg/pipeline/model"
)

// recorder is a pipeline option keeping track of the hooks it received.
type recorder struct {
	events  []string
	newErr  error
	stepErr error
}

func (r *recorder) New() error {
	r.events = append(r.events, "new")
	return r.newErr
}

func (r *recorder) PrepareStep(parentStep, step *model.StepInfo) error {
	r.events = append(r.events, fmt.Sprintf("prepare step %s->%s", parentStep.Name, step.Name))
	return nil
}

func (r *recorder) OnStepOutput(parentStep, step *model.StepInfo, _ time.Duration) error {
	r.events = append(r.events, fmt.Sprintf("output %s->%s", parentStep.Name, step.Name))
	return r.stepErr
}

func (r *recorder) PrepareSink(parentStep, step *model.StepInfo) error {
	r.events = append(r.events, fmt.Sprintf("prepare sink %s->%s", parentStep.Name, step.Name))
	return nil
}

func (r *recorder) OnSinkOutput(parentStep, step *model.StepInfo, _ time.Duration) error {
	r.events = append(r.events, fmt.Sprintf("sink %s->%s", parentStep.Name, step.Name))
	return nil
}

func (r *recorder) Finish() error {
	r.events = append(r.events, "finish")
	return nil
}

func appendFn(t *testing.T, suffix string) model.StepFn[string] {
	t.Helper()

	return func(_ context.Context, input string) (string, error) {
		return input + suffix, nil
	}
}
