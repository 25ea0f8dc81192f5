// Package config reads tracegrade settings from a YAML file.
//
// Missing files and missing keys fall back to defaults. Unknown keys and
// out-of-range values are reported on log.Warning and replaced by defaults,
// so a bad settings file never stops scoring.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tracegrade/evaluate"
	"github.com/katalvlaran/tracegrade/heatmap"
	"github.com/katalvlaran/tracegrade/log"
	"github.com/katalvlaran/tracegrade/template"
)

// Settings holds every tunable of the scorer, the heatmap and canvas fitting.
type Settings struct {
	ThresholdExcellent float64 `yaml:"threshold_excellent"`
	ThresholdGood      float64 `yaml:"threshold_good"`
	GoodCredit         float64 `yaml:"good_credit"`
	Samples            int     `yaml:"samples"`
	Matching           string  `yaml:"matching"`
	DTWWindow          int     `yaml:"dtw_window"`
	DTWSlopePenalty    float64 `yaml:"dtw_slope_penalty"`

	WeightOverlap     float64 `yaml:"weight_overlap"`
	WeightStrokeOrder float64 `yaml:"weight_stroke_order"`
	WeightProportion  float64 `yaml:"weight_proportion"`

	AspectPenalty float64 `yaml:"aspect_penalty"`
	ScalePenalty  float64 `yaml:"scale_penalty"`

	CellSize     float64 `yaml:"cell_size"`
	MaxDeviation float64 `yaml:"max_deviation"`
	HeatmapMode  string  `yaml:"heatmap_mode"`

	CanvasWidth  int     `yaml:"canvas_width"`
	CanvasHeight int     `yaml:"canvas_height"`
	Padding      float64 `yaml:"padding"`
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		ThresholdExcellent: evaluate.DefaultThresholdExcellent,
		ThresholdGood:      evaluate.DefaultThresholdGood,
		GoodCredit:         evaluate.DefaultGoodCredit,
		Samples:            evaluate.DefaultSamples,
		Matching:           evaluate.MatchAverageDistance.String(),
		DTWWindow:          evaluate.DefaultDTWWindow,
		DTWSlopePenalty:    evaluate.DefaultDTWSlopePenalty,
		WeightOverlap:      evaluate.DefaultWeightOverlap,
		WeightStrokeOrder:  evaluate.DefaultWeightStrokeOrder,
		WeightProportion:   evaluate.DefaultWeightProportion,
		AspectPenalty:      evaluate.DefaultAspectPenaltyFactor,
		ScalePenalty:       evaluate.DefaultScalePenaltyFactor,
		CellSize:           heatmap.DefaultCellSize,
		MaxDeviation:       heatmap.DefaultMaxDeviation,
		HeatmapMode:        heatmap.ModeBoth.String(),
		CanvasWidth:        500,
		CanvasHeight:       500,
		Padding:            template.DefaultPadding,
	}
}

// Load reads settings from path. An empty path or a missing file yields the
// defaults; only other read errors are returned.
func Load(path string) (*Settings, error) {
	def := Default()
	if path == "" {
		return def, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Info.Printf("no settings file at %s, using defaults", path)
			return def, nil
		}
		return nil, fmt.Errorf("config: Load(%s): %w", path, err)
	}

	// Check for unrecognised keys
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		log.Warning.Printf("invalid settings file %s, using defaults: %v", path, err)
		return def, nil
	}
	known := knownKeys(Settings{})
	for key := range raw {
		if !known[key] {
			log.Warning.Printf("unrecognised setting key '%s' in %s", key, path)
		}
	}

	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		log.Warning.Printf("invalid settings file %s, using defaults: %v", path, err)
		return def, nil
	}
	s.validate(def)
	log.Trace.Printf("settings loaded from %s: %+v", path, *s)

	return s, nil
}

// Save writes s to path as YAML.
func Save(path string, s *Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("config: Save: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: Save(%s): %w", path, err)
	}

	return nil
}

// validate replaces every out-of-range value with its default.
func (s *Settings) validate(def *Settings) {
	bad := func(name string, got, want interface{}) {
		log.Warning.Printf("invalid %s value %v, using default %v", name, got, want)
	}

	if !finiteNonNeg(s.ThresholdExcellent) || !finiteNonNeg(s.ThresholdGood) || s.ThresholdExcellent > s.ThresholdGood {
		bad("threshold_excellent/threshold_good", [2]float64{s.ThresholdExcellent, s.ThresholdGood},
			[2]float64{def.ThresholdExcellent, def.ThresholdGood})
		s.ThresholdExcellent, s.ThresholdGood = def.ThresholdExcellent, def.ThresholdGood
	}
	if !finiteNonNeg(s.GoodCredit) || s.GoodCredit > 1 {
		bad("good_credit", s.GoodCredit, def.GoodCredit)
		s.GoodCredit = def.GoodCredit
	}
	if s.Samples < 2 {
		bad("samples", s.Samples, def.Samples)
		s.Samples = def.Samples
	}
	if _, ok := evaluate.ParseMatching(s.Matching); !ok {
		bad("matching", s.Matching, def.Matching)
		s.Matching = def.Matching
	}
	if s.DTWWindow < -1 {
		bad("dtw_window", s.DTWWindow, def.DTWWindow)
		s.DTWWindow = def.DTWWindow
	}
	if !finiteNonNeg(s.DTWSlopePenalty) {
		bad("dtw_slope_penalty", s.DTWSlopePenalty, def.DTWSlopePenalty)
		s.DTWSlopePenalty = def.DTWSlopePenalty
	}
	if !finiteNonNeg(s.WeightOverlap) || !finiteNonNeg(s.WeightStrokeOrder) || !finiteNonNeg(s.WeightProportion) ||
		s.WeightOverlap+s.WeightStrokeOrder+s.WeightProportion == 0 {
		bad("weights", [3]float64{s.WeightOverlap, s.WeightStrokeOrder, s.WeightProportion},
			[3]float64{def.WeightOverlap, def.WeightStrokeOrder, def.WeightProportion})
		s.WeightOverlap, s.WeightStrokeOrder, s.WeightProportion = def.WeightOverlap, def.WeightStrokeOrder, def.WeightProportion
	}
	if !finiteNonNeg(s.AspectPenalty) {
		bad("aspect_penalty", s.AspectPenalty, def.AspectPenalty)
		s.AspectPenalty = def.AspectPenalty
	}
	if !finiteNonNeg(s.ScalePenalty) {
		bad("scale_penalty", s.ScalePenalty, def.ScalePenalty)
		s.ScalePenalty = def.ScalePenalty
	}
	if !finiteNonNeg(s.CellSize) || s.CellSize == 0 {
		bad("cell_size", s.CellSize, def.CellSize)
		s.CellSize = def.CellSize
	}
	if !finiteNonNeg(s.MaxDeviation) || s.MaxDeviation == 0 {
		bad("max_deviation", s.MaxDeviation, def.MaxDeviation)
		s.MaxDeviation = def.MaxDeviation
	}
	if _, ok := heatmap.ParseMode(s.HeatmapMode); !ok {
		bad("heatmap_mode", s.HeatmapMode, def.HeatmapMode)
		s.HeatmapMode = def.HeatmapMode
	}
	if s.CanvasWidth <= 0 || s.CanvasHeight <= 0 {
		bad("canvas size", [2]int{s.CanvasWidth, s.CanvasHeight}, [2]int{def.CanvasWidth, def.CanvasHeight})
		s.CanvasWidth, s.CanvasHeight = def.CanvasWidth, def.CanvasHeight
	}
	if !finiteNonNeg(s.Padding) {
		bad("padding", s.Padding, def.Padding)
		s.Padding = def.Padding
	}
}

// EvaluateOptions converts the scorer settings to evaluate options.
// Settings are assumed validated (Load and Default guarantee it).
func (s *Settings) EvaluateOptions() []evaluate.Option {
	m, _ := evaluate.ParseMatching(s.Matching)

	return []evaluate.Option{
		evaluate.WithThresholds(s.ThresholdExcellent, s.ThresholdGood),
		evaluate.WithGoodCredit(s.GoodCredit),
		evaluate.WithSamples(s.Samples),
		evaluate.WithMatching(m),
		evaluate.WithDTW(s.DTWWindow, s.DTWSlopePenalty),
		evaluate.WithWeights(s.WeightOverlap, s.WeightStrokeOrder, s.WeightProportion),
		evaluate.WithPenaltyFactors(s.AspectPenalty, s.ScalePenalty),
	}
}

// HeatmapOptions converts the heatmap settings to heatmap options.
func (s *Settings) HeatmapOptions() []heatmap.Option {
	mode, _ := heatmap.ParseMode(s.HeatmapMode)

	return []heatmap.Option{
		heatmap.WithCellSize(s.CellSize),
		heatmap.WithMaxDeviation(s.MaxDeviation),
		heatmap.WithMode(mode),
	}
}

func finiteNonNeg(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

func knownKeys(v interface{}) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		if tag := t.Field(i).Tag.Get("yaml"); tag != "" {
			// Handle tags like "field,omitempty"
			name := strings.Split(tag, ",")[0]
			if name != "-" {
				keys[name] = true
			}
		}
	}
	return keys
}
