package drawer

import (
	"fmt"
	"io"
	"sort"
	"text/template"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
)

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
{{- range $k, $v := .Attributes}}
	{{$k}}="{{$v}}";
{{- end}}
{{- range $s := .Statements}}
	"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}}weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}}{{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}}weight={{.SourceWeight}} ]{{end}};
{{- end}}
}
`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           interface{}
	Target           interface{}
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

// orderedStore lists vertices in a stable order.
type orderedStore[K comparable] interface {
	ListVertices() ([]K, error)
}

func dot[K comparable, T any](gra graph.Graph[K, T], str orderedStore[K], wrt io.Writer, options ...func(*description)) error {
	desc, err := generateDOT(gra, str, options...)
	if err != nil {
		return fmt.Errorf("failed to generate DOT description: %w", err)
	}

	return renderDOT(wrt, desc)
}

// GraphAttribute is a functional option for the [dot] function.
func GraphAttribute(key, value string) func(*description) {
	return func(d *description) {
		d.Attributes[key] = value
	}
}

func generateDOT[K comparable, T any](gra graph.Graph[K, T], str orderedStore[K], options ...func(*description)) (description, error) {
	desc := description{
		GraphType:    "graph",
		Attributes:   make(map[string]string),
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	for _, option := range options {
		option(&desc)
	}

	if gra.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	vertices, err := str.ListVertices()
	if err != nil {
		return desc, errors.Wrap(err, "unable to list vertices")
	}

	position := make(map[K]int, len(vertices))
	for i, vertex := range vertices {
		position[vertex] = i
	}

	for _, vertex := range vertices {
		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		htmlAttributes := make(map[string]string)
		sourceAttributes := make(map[string]string, len(sourceProperties.Attributes))

		for k, v := range sourceProperties.Attributes {
			if k == "xlabel" {
				htmlAttributes["label"] = fmt.Sprintf(`<%+v <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, vertex, v)

				continue
			}
			sourceAttributes[k] = v
		}

		desc.Statements = append(desc.Statements, statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceAttributes,
			HTMLAttributes:   htmlAttributes,
		})
	}

	edges, err := gra.Edges()
	if err != nil {
		return desc, errors.Wrap(err, "unable to list edges")
	}

	sort.SliceStable(edges, func(i, j int) bool {
		return position[edges[i].Source] < position[edges[j].Source]
	})

	for _, edge := range edges {
		desc.Statements = append(desc.Statements, statement{
			Source:         edge.Source,
			Target:         edge.Target,
			EdgeWeight:     edge.Properties.Weight,
			EdgeAttributes: edge.Properties.Attributes,
		})
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}
