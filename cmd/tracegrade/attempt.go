package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tracegrade/geometry"
	"github.com/katalvlaran/tracegrade/log"
)

// attemptStroke is one recorded line in an attempt file.
type attemptStroke struct {
	ID          string    `json:"id,omitempty" yaml:"id"`
	Points      []float64 `json:"points" yaml:"points"`
	StrokeWidth float64   `json:"strokeWidth,omitempty" yaml:"strokeWidth"`
}

// loadAttempt reads a YAML or JSON list of strokes. Strokes without an id
// get a fresh UUID.
func loadAttempt(path string) ([]geometry.Stroke, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("attempt %s: %w", path, err)
	}
	return parseAttempt(data, path)
}

func parseAttempt(data []byte, name string) ([]geometry.Stroke, error) {
	var raw []attemptStroke
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("attempt %s: %w", name, err)
	}

	strokes := make([]geometry.Stroke, 0, len(raw))
	for i, r := range raw {
		pts, err := geometry.FromFlat(r.Points)
		if err != nil {
			return nil, fmt.Errorf("attempt %s: stroke %d: %w", name, i, err)
		}
		s := geometry.NewUserStroke(pts, r.StrokeWidth)
		if r.ID != "" {
			s.ID = r.ID
		}
		strokes = append(strokes, s)
	}
	log.Trace.Printf("attempt %s: %d strokes", name, len(strokes))

	return strokes, nil
}
