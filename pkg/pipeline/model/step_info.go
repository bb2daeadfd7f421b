package model

import "context"

type stepType string

const (
	RootStepType   stepType = "root"
	NormalStepType stepType = "step"
	SinkStepType   stepType = "sink"
)

// StepInfo describes a step to the pipeline options.
type StepInfo struct {
	Type stepType
	Name string
}

var (
	StartStep = &Step[any]{Details: &StepInfo{Type: RootStepType, Name: "start"}}
	EndStep   = &Step[any]{Details: &StepInfo{Type: RootStepType, Name: "end"}}
)

// StepFn transforms the value produced by the previous step.
type StepFn[T any] func(ctx context.Context, input T) (T, error)

// SinkFn consumes the value produced by the last step.
type SinkFn[T any] func(ctx context.Context, input T) error

type Step[T any] struct {
	Details *StepInfo
	Fn      StepFn[T]
}
