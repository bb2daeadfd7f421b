package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-rat/pkg/pipeline/measure"
	"github.com/askiada/go-rat/pkg/pipeline/model"
)

type pipelineDrawer struct {
	Drawer
	m         measure.Measure
	startTime time.Time
	last      string
}

func (pd *pipelineDrawer) New() error {
	err := pd.AddStep(model.StartStep.Details.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add start step to drawer")
	}
	err = pd.AddStep(model.EndStep.Details.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add end step to drawer")
	}
	pd.last = model.StartStep.Details.Name

	return nil
}

func (pd *pipelineDrawer) addStep(parentStep, step *model.StepInfo) error {
	err := pd.AddStep(step.Name)
	if err != nil {
		return err
	}
	err = pd.AddLink(parentStep.Name, step.Name)
	if err != nil {
		return err
	}
	pd.last = step.Name

	return nil
}

func (pd *pipelineDrawer) PrepareStep(parentStep, step *model.StepInfo) error {
	return pd.addStep(parentStep, step)
}

func (pd *pipelineDrawer) PrepareSink(parentStep, step *model.StepInfo) error {
	return pd.addStep(parentStep, step)
}

func (pd *pipelineDrawer) Finish() error {
	err := pd.AddLink(pd.last, model.EndStep.Details.Name)
	if err != nil {
		return errors.Wrap(err, "unable to link end step")
	}

	if pd.m != nil {
		err := pd.SetTotalTime(model.EndStep.Details.Name, pd.startTime)
		if err != nil {
			return errors.Wrap(err, "unable to set total time")
		}
		err = pd.AddMeasure(pd.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err = pd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw pipeline")
	}

	return nil
}

func (pd *pipelineDrawer) OnStepOutput(_, _ *model.StepInfo, _ time.Duration) error {
	return nil
}

func (pd *pipelineDrawer) OnSinkOutput(_, _ *model.StepInfo, _ time.Duration) error {
	return nil
}

// PipelineDrawer draws the pipeline when it finishes. When measure is not nil, the
// drawing is annotated with the step durations it recorded.
func PipelineDrawer(drawer Drawer, measure measure.Measure) model.PipelineOption {
	return &pipelineDrawer{Drawer: drawer, m: measure, startTime: time.Now()}
}
