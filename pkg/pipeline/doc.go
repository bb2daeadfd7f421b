// Package pipeline provides a synchronous pipeline of named steps.
//
// Each step receives the value returned by the previous one and returns a new value. The steps run in the order they
// were added, on the calling goroutine, and an optional sink consumes the final value. This keeps the order of the
// transformations explicit while still letting pipeline options observe every step.
//
// Pipeline options (see the model package) are notified when steps are added and every time a step returns. The
// measure and drawer packages use these hooks to time the steps and to render the pipeline as a graph.
//
// The pipeline stops on the first error. The error is wrapped with the name of the step that returned it, and the
// remaining steps and the sink are not run.
package pipeline
