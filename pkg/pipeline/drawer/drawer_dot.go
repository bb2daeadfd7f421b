package drawer

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-rat/internal/store"
	"github.com/askiada/go-rat/pkg/pipeline/measure"
)

// DOTDrawer is a drawer that creates a Graphviz DOT file with the pipeline graph.
type DOTDrawer struct {
	graph       graph.Graph[string, string]
	store       store.CustomStore[string, string]
	dotFileName string
}

// NewDOTDrawer creates a new DOT drawer writing to dotFileName.
func NewDOTDrawer(dotFileName string) *DOTDrawer {
	str := store.NewOrderedStore[string, string]()

	return &DOTDrawer{
		dotFileName: dotFileName,
		store:       str,
		graph:       graph.NewWithStore(graph.StringHash, graph.Store[string, string](str), graph.Directed()),
	}
}

// AddStep adds a step to the pipeline graph.
func (d *DOTDrawer) AddStep(name string) error {
	err := d.graph.AddVertex(name)
	if err != nil {
		return errors.Wrapf(err, "unable to add vertex %s", name)
	}

	return nil
}

// AddLink adds a link between parent and children steps.
func (d *DOTDrawer) AddLink(parentName, childrenName string) error {
	err := d.graph.AddEdge(parentName, childrenName)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childrenName)
	}

	return nil
}

// Draw creates the DOT file with the pipeline graph.
func (d *DOTDrawer) Draw() error {
	file, err := os.Create(d.dotFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.dotFileName)
	}

	err = d.Render(file)
	if err != nil {
		_ = file.Close()

		return errors.Wrapf(err, "unable to create dot file %s", d.dotFileName)
	}

	return errors.Wrapf(file.Close(), "unable to close dot file %s", d.dotFileName)
}

// Render writes the pipeline graph in the DOT language.
func (d *DOTDrawer) Render(wrt io.Writer) error {
	return dot[string, string](d.graph, d.store, wrt)
}

// SetTotalTime sets the total time for the step.
func (d *DOTDrawer) SetTotalTime(stepName string, startTime time.Time) error {
	err := d.store.UpdateVertex(stepName, graph.VertexAttribute("xlabel", round(time.Since(startTime)).String()))
	if err != nil {
		return errors.Wrapf(err, "unable to set total time of %s", stepName)
	}

	return nil
}

const maxRGB = 240

// AddMeasure adds measure to drawer. Steps are labelled with their average duration and
// the edge leading to a step is coloured from blue (fastest step) to red (slowest step).
func (d *DOTDrawer) AddMeasure(msr measure.Measure) error {
	stepColours := make(map[time.Duration]string)
	sortedElapsed := []time.Duration{}

	for _, step := range msr.AllMetrics() {
		elapsed := step.AVGDuration()
		if elapsed == 0 {
			continue
		}

		if _, ok := stepColours[elapsed]; ok {
			continue
		}

		stepColours[elapsed] = ""
		sortedElapsed = append(sortedElapsed, elapsed)
	}

	if len(sortedElapsed) == 0 {
		return d.updateMetrics(msr, stepColours)
	}

	sort.Slice(sortedElapsed, func(i, j int) bool {
		return sortedElapsed[i] > sortedElapsed[j]
	})

	maxValue := sortedElapsed[0]
	minValue := sortedElapsed[len(sortedElapsed)-1]

	for curr := range stepColours {
		fraction := 1.0
		if maxValue > minValue {
			fraction = float64(curr-minValue) / float64(maxValue-minValue)
		}

		red := maxRGB * fraction
		blue := maxRGB - red

		colour, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
		if err != nil {
			return errors.Wrap(err, "unable to get colour")
		}

		stepColours[curr] = colour.ToHEX().String()
	}

	err := d.updateMetrics(msr, stepColours)
	if err != nil {
		return errors.Wrap(err, "unable to update metrics")
	}

	return nil
}

func (d *DOTDrawer) updateMetrics(msr measure.Measure, stepColours map[time.Duration]string) error {
	edges, err := d.graph.Edges()
	if err != nil {
		return errors.Wrap(err, "unable to list edges")
	}

	for name, step := range msr.AllMetrics() {
		stepAvg := step.AVGDuration()
		label := ""
		if stepAvg != 0 {
			label = fmt.Sprintf("avg: %s, calls: %d", stepAvg, step.GetTotal())
		}

		if step.GetTotalDuration() > 0 {
			if label != "" {
				label += ", "
			}
			label += "end: " + round(step.GetTotalDuration()).String()
		}

		if label != "" {
			err := d.store.UpdateVertex(name, graph.VertexAttribute("xlabel", label))
			if err != nil {
				return errors.Wrapf(err, "unable to update vertex %s", name)
			}
		}

		colour, ok := stepColours[stepAvg]
		if !ok || stepAvg == 0 {
			continue
		}

		for _, edge := range edges {
			if edge.Target != name {
				continue
			}

			err := d.graph.UpdateEdge(edge.Source, name,
				graph.EdgeAttribute("label", stepAvg.String()),
				graph.EdgeAttribute("fontcolor", "blue"),
				graph.EdgeAttribute("color", colour),
			)
			if err != nil {
				return errors.Wrap(err, "unable to update edge")
			}
		}
	}

	return nil
}

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Second:
		d = d.Round(time.Millisecond)
	case d > time.Millisecond:
		d = d.Round(time.Microsecond)
	}

	return d
}

var _ Drawer = (*DOTDrawer)(nil)
