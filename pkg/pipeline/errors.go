package pipeline

import (
	"github.com/pkg/errors"
)

var (
	ErrPipelineMustBeSet = errors.New("p must be set")
	ErrStepFnMustBeSet   = errors.New("step function must be set")
	ErrDuplicateStep     = errors.New("step name already used")
	ErrSinkAlreadySet    = errors.New("sink already set")
)
