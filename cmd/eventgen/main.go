// Command eventgen generates the resource models and event variants from
// schema/events.yaml.
package main

import (
	"bytes"
	"embed"
	"flag"
	"fmt"
	"go/format"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

func main() {
	schemaPath := flag.String("schema", "schema/events.yaml", "Path to the event schema")
	out := flag.String("out", ".", "Module root to write generated files under")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	s, err := loadSchema(*schemaPath)
	if err != nil {
		slog.Error("failed to load schema", "err", err)
		os.Exit(1)
	}

	files, err := render(s)
	if err != nil {
		slog.Error("failed to render", "err", err)
		os.Exit(1)
	}
	for name, src := range files {
		path := filepath.Join(*out, name)
		if err := os.WriteFile(path, src, 0o644); err != nil {
			slog.Error("failed to write", "path", path, "err", err)
			os.Exit(1)
		}
	}
	slog.Info("generated", "files", len(files), "families", len(s.Families))
}

type resourceFile struct {
	Family    string
	Resources []Resource
}

type eventView struct {
	Type    string
	GoName  string
	Payload string
	Object  string
	Sum     string
	SumVar  string
}

type eventFile struct {
	Family string
	Events []eventView
}

type methodsView struct {
	Name       string
	Object     string
	IDRequired bool
}

var funcs = template.FuncMap{
	"goName": goName,
	"goType": func(t string) string { return fieldTypes[t] },
	"model": func(name, object string, idRequired bool) methodsView {
		return methodsView{Name: name, Object: object, IDRequired: idRequired}
	},
}

// render returns the generated sources keyed by path relative to the module root.
func render(s *Schema) (map[string][]byte, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	objects := make(map[string]string)
	for _, f := range s.Families {
		for _, r := range f.Resources {
			objects[r.Name] = r.Object
		}
	}
	sumVars := make(map[string]string, len(s.Sums))
	for _, sum := range s.Sums {
		sumVars[sum.Name] = sum.Var
	}

	files := make(map[string][]byte, 2*len(s.Families))
	for _, f := range s.Families {
		src, err := execute(tmpl, "resource.go.tmpl", resourceFile{Family: f.Name, Resources: f.Resources})
		if err != nil {
			return nil, fmt.Errorf("family %s resources: %w", f.Name, err)
		}
		files[filepath.Join("pkg", "resource", "zz_generated_"+f.Name+".go")] = src

		view := eventFile{Family: f.Name}
		for _, e := range f.Events {
			view.Events = append(view.Events, eventView{
				Type:    e.Type,
				GoName:  goName(e.Type),
				Payload: e.Payload,
				Object:  objects[e.Payload],
				Sum:     e.Sum,
				SumVar:  sumVars[e.Sum],
			})
		}
		src, err = execute(tmpl, "event.go.tmpl", view)
		if err != nil {
			return nil, fmt.Errorf("family %s events: %w", f.Name, err)
		}
		files[filepath.Join("pkg", "event", "zz_generated_"+f.Name+".go")] = src
	}
	return files, nil
}

func execute(tmpl *template.Template, name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gofmt: %w", err)
	}
	return src, nil
}
