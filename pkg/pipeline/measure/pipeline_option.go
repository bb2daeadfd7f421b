package measure

import (
	"time"

	"github.com/askiada/go-rat/pkg/pipeline/model"
)

type pipelineMeasure struct {
	Measure
	startTime time.Time
}

func (pm *pipelineMeasure) New() error {
	pm.AddMetric(model.StartStep.Details.Name)
	pm.AddMetric(model.EndStep.Details.Name)

	return nil
}

func (pm *pipelineMeasure) PrepareStep(_, step *model.StepInfo) error {
	pm.AddMetric(step.Name)

	return nil
}

func (pm *pipelineMeasure) PrepareSink(_, step *model.StepInfo) error {
	pm.AddMetric(step.Name)

	return nil
}

func (pm *pipelineMeasure) OnStepOutput(_, step *model.StepInfo, computationDuration time.Duration) error {
	pm.GetMetric(step.Name).AddDuration(computationDuration)

	return nil
}

func (pm *pipelineMeasure) OnSinkOutput(_, step *model.StepInfo, computationDuration time.Duration) error {
	mt := pm.GetMetric(step.Name)
	mt.AddDuration(computationDuration)
	mt.SetTotalDuration(time.Since(pm.startTime))

	return nil
}

func (pm *pipelineMeasure) Finish() error {
	pm.GetMetric(model.EndStep.Details.Name).SetTotalDuration(time.Since(pm.startTime))

	return nil
}

// PipelineMeasure records the duration of every step of the pipeline into measure.
func PipelineMeasure(measure Measure) model.PipelineOption {
	return &pipelineMeasure{Measure: measure, startTime: time.Now()}
}
