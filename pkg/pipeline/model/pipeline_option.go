package model

import "time"

// PipelineOption defines the interface for pipeline options.
type PipelineOption interface {
	// New initialises the pipeline option.
	New() error

	pipelineStepOption
	pipelineSinkOption

	// Finish runs once the pipeline will not run again.
	Finish() error
}

// pipelineStepOption defines the interface for step options at the pipeline level.
type pipelineStepOption interface {
	// PrepareStep runs when the step is added to the pipeline.
	PrepareStep(parentStep, step *StepInfo) error
	// OnStepOutput runs everytime the step returns a value.
	OnStepOutput(parentStep, step *StepInfo, computationDuration time.Duration) error
}

// pipelineSinkOption defines the interface for sink options at the pipeline level.
type pipelineSinkOption interface {
	// PrepareSink runs when the sink is added to the pipeline.
	PrepareSink(parentStep, step *StepInfo) error
	// OnSinkOutput runs everytime the sink consumed a value.
	OnSinkOutput(parentStep, step *StepInfo, computationDuration time.Duration) error
}
