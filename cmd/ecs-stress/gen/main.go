// Command gen writes the component and system types used by ecs-stress.
package main

import (
	"bytes"
	"flag"
	"os"
	"text/template"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/tools/imports"
)

type systemSpec struct {
	Index    int
	Requires []int
}

type templateData struct {
	Components []int
	Systems    []systemSpec
}

const source = `// Code generated by gen; DO NOT EDIT.

package main

import (
	"github.com/plus3/craftecs/ecs"
)

const (
	componentCount = {{len .Components}}
	systemCount    = {{len .Systems}}
)

var componentTypes = [componentCount]ecs.ComponentType{
{{- range .Components}}
	ecs.RegisterComponentType("stress.Component{{.}}"),
{{- end}}
}
{{range .Components}}
type Component{{.}} struct {
	ecs.Owned
	Value float64
	Ticks int
}

func (*Component{{.}}) ComponentType() ecs.ComponentType { return componentTypes[{{.}}] }
{{end}}
func newComponent(i int) ecs.Component {
	switch i {
{{- range .Components}}
	case {{.}}:
		return &Component{{.}}{}
{{- end}}
	}
	return nil
}
{{range .Systems}}
type System{{.Index}} struct {
	Frame *ecs.UpdateFrame
}

func (s *System{{.Index}}) RequiredComponents() []ecs.ComponentType {
	return []ecs.ComponentType{ {{- range $i, $c := .Requires}}{{if $i}}, {{end}}componentTypes[{{$c}}]{{end -}} }
}

func (s *System{{.Index}}) Update(entities []*ecs.Entity) {
	for _, e := range entities {
		if c, ok := ecs.Get[*Component{{index .Requires 0}}](e); ok {
			c.Value += s.Frame.DeltaTime
			c.Ticks++
		}
	}
}
{{end}}
func RegisterAllGeneratedSystems(scheduler *ecs.Scheduler) {
{{- range .Systems}}
	scheduler.Register(&System{{.Index}}{})
{{- end}}
}
`

// requirements picks the components system i runs on. They are spread so that
// every component is required by some system once systems >= components/2.
func requirements(i, components int) []int {
	first := i % components
	second := (i*3 + 1) % components
	if first == second {
		return []int{first}
	}
	return []int{first, second}
}

func generate(components, systems int) ([]byte, error) {
	if components < 1 {
		return nil, eris.Errorf("need at least one component, got %d", components)
	}

	data := templateData{}
	for i := 0; i < components; i++ {
		data.Components = append(data.Components, i)
	}
	for i := 0; i < systems; i++ {
		data.Systems = append(data.Systems, systemSpec{Index: i, Requires: requirements(i, components)})
	}

	tmpl, err := template.New("generated").Parse(source)
	if err != nil {
		return nil, eris.Wrap(err, "parse template")
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, eris.Wrap(err, "execute template")
	}

	formatted, err := imports.Process("generated.go", buf.Bytes(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "format generated source")
	}
	return formatted, nil
}

func main() {
	components := flag.Int("components", 16, "Number of component types to generate.")
	systems := flag.Int("systems", 8, "Number of systems to generate.")
	out := flag.String("out", "generated.go", "Output file.")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	src, err := generate(*components, *systems)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to generate")
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatal().Err(eris.Wrap(err, "write output")).Msg("failed to generate")
	}

	log.Info().
		Int("components", *components).
		Int("systems", *systems).
		Str("out", *out).
		Msg("generated stress types")
}
