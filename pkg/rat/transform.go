package rat

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/go-rat/pkg/pipeline"
	"github.com/askiada/go-rat/pkg/pipeline/model"
)

// Stage names, in the order the stages run.
const (
	StageTabs   = "tabs"
	StageNumber = "number"
	StageEnds   = "ends"
)

const numberWidth = 6

// Stage is one rewrite of the text of an input.
type Stage struct {
	Name string
	Fn   func(text string) string
}

// showTabs replaces every TAB with ^I.
func showTabs(text string) string {
	return strings.ReplaceAll(text, "\t", "^I")
}

// numberLines prefixes each line with its ordinal. When nonBlank is set, empty lines
// are written as a bare newline but their ordinal is still used up.
func numberLines(nonBlank bool) func(string) string {
	return func(text string) string {
		var sb strings.Builder
		sb.Grow(len(text) + len(text)/4)

		for _, rec := range records(text) {
			if nonBlank && rec.Blank {
				sb.WriteByte('\n')

				continue
			}

			fmt.Fprintf(&sb, "%*d\t%s\n", numberWidth, rec.Ordinal, rec.Content)
		}

		return sb.String()
	}
}

// showEnds appends $ to each line.
func showEnds(text string) string {
	var sb strings.Builder
	sb.Grow(len(text) + len(text)/8)

	for _, line := range splitLines(text) {
		sb.WriteString(line)
		sb.WriteString("$\n")
	}

	return sb.String()
}

// Stages returns the stages selected by opts, in the order they must run.
func Stages(opts OptionSet) []Stage {
	var stages []Stage

	if opts.ShowTabs {
		stages = append(stages, Stage{Name: StageTabs, Fn: showTabs})
	}

	switch {
	case opts.NumberNonBlank:
		stages = append(stages, Stage{Name: StageNumber, Fn: numberLines(true)})
	case opts.Number:
		stages = append(stages, Stage{Name: StageNumber, Fn: numberLines(false)})
	}

	if opts.ShowEnds {
		stages = append(stages, Stage{Name: StageEnds, Fn: showEnds})
	}

	return stages
}

// Transform applies the stages selected by opts to text. Without any stage the text is
// returned unchanged.
func Transform(text string, opts OptionSet) string {
	for _, stage := range Stages(opts) {
		text = stage.Fn(text)
	}

	return text
}

// Transformer runs the stages of an OptionSet on a pipeline, so that pipeline options
// such as measure and drawer observe every stage.
type Transformer struct {
	pipe *pipeline.Pipeline[string]
}

func newTextPipeline(opts OptionSet, sink model.SinkFn[string], pipeOpts ...model.PipelineOption) (*pipeline.Pipeline[string], error) {
	pipe, err := pipeline.New[string](pipeOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create pipeline")
	}

	for _, stage := range Stages(opts) {
		fn := stage.Fn
		_, err := pipeline.AddStep(pipe, stage.Name, func(_ context.Context, text string) (string, error) {
			return fn(text), nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "unable to add stage %s", stage.Name)
		}
	}

	if sink != nil {
		err := pipeline.AddSink(pipe, "output", sink)
		if err != nil {
			return nil, errors.Wrap(err, "unable to add output")
		}
	}

	return pipe, nil
}

// NewTransformer builds the stages of opts on a new pipeline.
func NewTransformer(opts OptionSet, pipeOpts ...model.PipelineOption) (*Transformer, error) {
	pipe, err := newTextPipeline(opts, nil, pipeOpts...)
	if err != nil {
		return nil, err
	}

	return &Transformer{pipe: pipe}, nil
}

// Transform returns the same text as Transform(text, opts).
func (t *Transformer) Transform(ctx context.Context, text string) (string, error) {
	return t.pipe.Run(ctx, text)
}

// Close finishes the pipeline options.
func (t *Transformer) Close() error {
	return t.pipe.Finish()
}
