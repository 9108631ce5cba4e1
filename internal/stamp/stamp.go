// Package stamp expands SVG label templates into one file per dataset row.
package stamp

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/refsheet/internal/catalog"
)

var (
	ErrUnknownSet = errors.New("stamp: unknown set")
	ErrFieldCount = errors.New("stamp: value count does not match field count")
	ErrInvalidSet = errors.New("stamp: invalid set")
)

//go:embed sets.yaml
var defaultSetsYAML []byte

//go:embed all:templates
var templateFS embed.FS

// Entry is one dataset row.
type Entry struct {
	Name   string   `yaml:"name"`
	Values []string `yaml:"values"`
}

// Set describes a template family and the rows to expand it with.
type Set struct {
	Name    string   `yaml:"name"`
	Dir     string   `yaml:"dir"`
	Prefix  string   `yaml:"prefix"`
	Files   []string `yaml:"files"`
	Fields  []string `yaml:"fields"`
	Dataset []Entry  `yaml:"dataset"`
}

func (s Set) Validate() error {
	switch {
	case s.Name == "":
		return fmt.Errorf("%w: missing name", ErrInvalidSet)
	case s.Dir == "" || s.Prefix == "":
		return fmt.Errorf("%w: %s: dir and prefix are required", ErrInvalidSet, s.Name)
	case len(s.Files) == 0 || len(s.Fields) == 0:
		return fmt.Errorf("%w: %s: needs at least one file and one field", ErrInvalidSet, s.Name)
	}
	seen := make(map[string]bool, len(s.Dataset))
	for _, e := range s.Dataset {
		if e.Name == "" {
			return fmt.Errorf("%w: %s: dataset entry without a name", ErrInvalidSet, s.Name)
		}
		if seen[e.Name] {
			return fmt.Errorf("%w: %s: duplicate entry %q", ErrInvalidSet, s.Name, e.Name)
		}
		seen[e.Name] = true
		if len(e.Values) != len(s.Fields) {
			return fmt.Errorf("%w: %s/%s: %d values for %d fields",
				ErrFieldCount, s.Name, e.Name, len(e.Values), len(s.Fields))
		}
	}
	return nil
}

// TemplatePath is where the template for file lives, relative to the root.
func (s Set) TemplatePath(file string) string {
	return path.Join(s.Dir, ".templates", "template-"+file+".svg")
}

// OutputPath is where the expansion of entry for file is written.
func (s Set) OutputPath(file, entry string) string {
	return path.Join(s.Dir, file, s.Prefix+"-"+entry+".svg")
}

// LoadSets decodes a YAML list of sets. Order is preserved.
func LoadSets(data []byte) (*catalog.Catalog[Set], error) {
	var sets []Set
	if err := yaml.Unmarshal(data, &sets); err != nil {
		return nil, fmt.Errorf("stamp sets: %w", err)
	}
	c := catalog.New[Set]("stamp set", ErrUnknownSet)
	for _, s := range sets {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		c.Register(s.Name, s)
	}
	return c, nil
}

// DefaultSets returns the built-in sets.
func DefaultSets() *catalog.Catalog[Set] {
	c, err := LoadSets(defaultSetsYAML)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultTemplates holds a template for every file of the built-in sets,
// laid out as TemplatePath expects.
func DefaultTemplates() fs.FS {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Expand replaces each field, in order, with the NFC form of its value.
func Expand(template string, fields, values []string) (string, error) {
	if len(fields) != len(values) {
		return "", fmt.Errorf("%w: %d values for %d fields", ErrFieldCount, len(values), len(fields))
	}
	out := template
	for i, f := range fields {
		out = strings.ReplaceAll(out, f, norm.NFC.String(values[i]))
	}
	return out, nil
}

// WriteFunc receives a generated file and its path relative to the root.
type WriteFunc func(rel string, data []byte) error

// Generate expands every entry of s against every template file, reading
// templates from fsys. It returns the written paths in generation order.
func Generate(s Set, fsys fs.FS, write WriteFunc) ([]string, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	var written []string
	for _, file := range s.Files {
		tpl, err := fs.ReadFile(fsys, s.TemplatePath(file))
		if err != nil {
			return written, fmt.Errorf("stamp %s: template %s: %w", s.Name, file, err)
		}
		for _, e := range s.Dataset {
			doc, err := Expand(string(tpl), s.Fields, e.Values)
			if err != nil {
				return written, fmt.Errorf("stamp %s/%s: %w", s.Name, e.Name, err)
			}
			rel := s.OutputPath(file, e.Name)
			if err := write(rel, []byte(doc)); err != nil {
				return written, err
			}
			written = append(written, rel)
		}
	}
	return written, nil
}
