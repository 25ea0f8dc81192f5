// SPDX-License-Identifier: MIT

package template

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tracegrade/geometry"
	"github.com/katalvlaran/tracegrade/log"
)

// DefaultStrokeWidth is used when a stroke does not set strokeWidth.
const DefaultStrokeWidth = 4.0

var (
	// ErrNoStrokes indicates a template without any stroke.
	ErrNoStrokes = errors.New("template: no strokes defined")

	// ErrInvalidCanvas indicates a non-positive canvas passed to Fit.
	ErrInvalidCanvas = errors.New("template: canvas width and height must be positive")
)

// Template is an ordered list of reference strokes for one character.
type Template struct {
	Name    string
	Strokes []geometry.Stroke
}

// fileStroke is the on-disk form of one stroke.
type fileStroke struct {
	Name        string    `yaml:"name,omitempty"`
	Points      []float64 `yaml:"points,flow"`
	StrokeWidth float64   `yaml:"strokeWidth,omitempty"`
}

// fileTemplate is the on-disk form of a template.
type fileTemplate struct {
	Name    string       `yaml:"name"`
	Strokes []fileStroke `yaml:"strokes"`
	Shapes  []fileStroke `yaml:"shapes,omitempty"`
}

// Load reads and parses the template file at path.
func Load(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("template: Load(%s): %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return Template{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Trace.Printf("loaded template %q from %s (%d strokes)", t.Name, path, len(t.Strokes))

	return t, nil
}

// Parse decodes a template from YAML or JSON bytes.
func Parse(data []byte) (Template, error) {
	var f fileTemplate
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Template{}, fmt.Errorf("template: Parse: %w", err)
	}

	strokes := f.Strokes
	if len(strokes) == 0 {
		strokes = f.Shapes
	}
	if len(strokes) == 0 {
		return Template{}, fmt.Errorf("template %q: %w", f.Name, ErrNoStrokes)
	}

	t := Template{Name: f.Name, Strokes: make([]geometry.Stroke, 0, len(strokes))}
	for i, fs := range strokes {
		id := fs.Name
		if id == "" {
			id = fmt.Sprintf("stroke-%d", i)
		}
		pts, err := geometry.FromFlat(fs.Points)
		if err != nil {
			return Template{}, fmt.Errorf("template %q: stroke %q: %w", f.Name, id, err)
		}
		if len(pts) < 2 {
			log.Warning.Printf("template %q: stroke %q has no segment and is ignored when scoring", f.Name, id)
		}
		w := fs.StrokeWidth
		if w <= 0 {
			w = DefaultStrokeWidth
		}
		t.Strokes = append(t.Strokes, geometry.Stroke{ID: id, Points: pts, Width: w})
	}

	return t, nil
}

// Write encodes t as YAML in the format Parse reads.
func Write(w io.Writer, t Template) error {
	f := fileTemplate{Name: t.Name, Strokes: make([]fileStroke, len(t.Strokes))}
	for i, s := range t.Strokes {
		f.Strokes[i] = fileStroke{Name: s.ID, Points: geometry.Flatten(s.Points), StrokeWidth: s.Width}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("template: Write(%q): %w", t.Name, err)
	}

	return enc.Close()
}
