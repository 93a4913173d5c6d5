package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Schema is the top-level structure of schema/events.yaml.
type Schema struct {
	Families []Family `yaml:"families"`
	Sums     []Sum    `yaml:"sums"`
}

// Family groups the resources and events compiled in together.
type Family struct {
	Name      string     `yaml:"name"`
	Resources []Resource `yaml:"resources"`
	Events    []Event    `yaml:"events"`
}

// Resource describes one payload model.
type Resource struct {
	Name       string  `yaml:"name"`
	Object     string  `yaml:"object"`
	Deletable  bool    `yaml:"deletable"`
	IDOptional bool    `yaml:"id_optional"`
	Fields     []Field `yaml:"fields"`
}

// Field is one scalar, list or metadata member of a resource.
type Field struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Event binds an event type to its payload: a resource, or a hand-written
// object-tagged sum.
type Event struct {
	Type    string `yaml:"type"`
	Payload string `yaml:"payload"`
	Sum     string `yaml:"sum"`
}

// Sum names a hand-written object-tagged sum and the codec variable that decodes it.
type Sum struct {
	Name string `yaml:"name"`
	Var  string `yaml:"var"`
}

var (
	typePattern  = regexp.MustCompile(`^[a-z0-9_]+(\.[a-z0-9_]+)+$`)
	fieldPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	fieldTypes   = map[string]string{
		"string":   "*string",
		"int":      "*int64",
		"bool":     "*bool",
		"float":    "*float64",
		"metadata": "map[string]string",
		"strings":  "[]string",
	}
)

func loadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", path, err)
	}
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Schema) validate() error {
	var errs []string
	resources := make(map[string]string) // name -> family
	sums := make(map[string]bool, len(s.Sums))
	for _, sum := range s.Sums {
		sums[sum.Name] = true
	}

	hasCore := false
	for _, f := range s.Families {
		if f.Name == "core" {
			hasCore = true
		}
		for _, r := range f.Resources {
			if prev, ok := resources[r.Name]; ok {
				errs = append(errs, fmt.Sprintf("resource %s declared in %s and %s", r.Name, prev, f.Name))
			}
			resources[r.Name] = f.Name
			if r.Object == "" {
				errs = append(errs, fmt.Sprintf("resource %s: object is required", r.Name))
			}
			for _, fd := range r.Fields {
				if !fieldPattern.MatchString(fd.Name) {
					errs = append(errs, fmt.Sprintf("resource %s: bad field name %q", r.Name, fd.Name))
				}
				if _, ok := fieldTypes[fd.Type]; !ok {
					errs = append(errs, fmt.Sprintf("resource %s.%s: unknown type %q", r.Name, fd.Name, fd.Type))
				}
				if fd.Name == "id" || fd.Name == "object" {
					errs = append(errs, fmt.Sprintf("resource %s: %s is implicit", r.Name, fd.Name))
				}
			}
		}
	}
	if !hasCore {
		errs = append(errs, "family core is required")
	}

	types := make(map[string]bool)
	names := make(map[string]string)
	for _, f := range s.Families {
		for _, e := range f.Events {
			if !typePattern.MatchString(e.Type) {
				errs = append(errs, fmt.Sprintf("event %q: type must be dotted lowercase", e.Type))
			}
			if types[e.Type] {
				errs = append(errs, fmt.Sprintf("event %q declared twice", e.Type))
			}
			types[e.Type] = true
			if prev, ok := names[goName(e.Type)]; ok {
				errs = append(errs, fmt.Sprintf("events %q and %q share Go name %s", prev, e.Type, goName(e.Type)))
			}
			names[goName(e.Type)] = e.Type

			switch {
			case (e.Payload == "") == (e.Sum == ""):
				errs = append(errs, fmt.Sprintf("event %q: exactly one of payload/sum must be set", e.Type))
			case e.Sum != "" && !sums[e.Sum]:
				errs = append(errs, fmt.Sprintf("event %q: unknown sum %s", e.Type, e.Sum))
			case e.Payload != "":
				rf, ok := resources[e.Payload]
				if !ok {
					errs = append(errs, fmt.Sprintf("event %q: unknown payload %s", e.Type, e.Payload))
				} else if rf != "core" && rf != f.Name {
					errs = append(errs, fmt.Sprintf("event %q: payload %s lives in family %s", e.Type, e.Payload, rf))
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("schema validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

var initialisms = map[string]string{"id": "ID", "url": "URL", "ip": "IP", "sql": "SQL"}

// goName converts a dotted or snake_case name to an exported Go identifier.
func goName(s string) string {
	var b strings.Builder
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '.' || r == '_' }) {
		if up, ok := initialisms[part]; ok {
			b.WriteString(up)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return b.String()
}
