// Command tracegrade scores a traced letter against its template and prints
// the result as JSON.
//
//	tracegrade -glyph A -attempt drawing.json
//	tracegrade -template a.yaml -fit -heatmap -attempt one.json two.json
//	tracegrade -glyph 7 -export > seven.yaml
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/katalvlaran/tracegrade/config"
	"github.com/katalvlaran/tracegrade/evaluate"
	"github.com/katalvlaran/tracegrade/features"
	"github.com/katalvlaran/tracegrade/geometry"
	"github.com/katalvlaran/tracegrade/glyphs"
	"github.com/katalvlaran/tracegrade/heatmap"
	"github.com/katalvlaran/tracegrade/log"
	"github.com/katalvlaran/tracegrade/template"
)

// hotspotThreshold is the cell value from which the CLI reports a hotspot.
const hotspotThreshold = 0.5

// coverage counts heatmap cells the strokes passed through and how many of
// those reached hotspotThreshold.
type coverage struct {
	Covered int `json:"covered"`
	Hot     int `json:"hot"`
}

// result is the JSON document printed for one attempt.
type result struct {
	Template string            `json:"template"`
	Attempt  string            `json:"attempt"`
	Scale    float64           `json:"scale"`
	Report   evaluate.Report   `json:"report"`
	Coverage *coverage         `json:"coverage,omitempty"`
	Hotspots []heatmap.Region  `json:"hotspots,omitempty"`
	Heatmap  *heatmap.Data     `json:"heatmap,omitempty"`
	Features *features.Vector  `json:"features,omitempty"`
	Lines    map[string]string `json:"lines,omitempty"`
}

func main() {
	log.InitLog()
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Error.Println(err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("tracegrade", flag.ContinueOnError)
	glyph := fs.String("glyph", "", "built-in glyph (A-Z, 0-9)")
	templatePath := fs.String("template", "", "template file (YAML or JSON)")
	attemptPath := fs.String("attempt", "", "attempt file; more files may follow as arguments")
	configPath := fs.String("config", "", "settings file (YAML)")
	initConfig := fs.String("init-config", "", "write default settings to this file and exit")
	width := fs.Int("width", 0, "canvas width (overrides settings)")
	height := fs.Int("height", 0, "canvas height (overrides settings)")
	fit := fs.Bool("fit", false, "center and scale the template onto the canvas")
	withHeatmap := fs.Bool("heatmap", false, "include heatmap hotspots")
	fullHeatmap := fs.Bool("heatmap-cells", false, "include every heatmap cell")
	withFeatures := fs.Bool("features", false, "include the 28x28 feature grid")
	lines := fs.Bool("lines", false, "include per-line real-time feedback")
	export := fs.Bool("export", false, "print the template as YAML and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *initConfig != "" {
		return config.Save(*initConfig, config.Default())
	}

	settings, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *width > 0 {
		settings.CanvasWidth = *width
	}
	if *height > 0 {
		settings.CanvasHeight = *height
	}

	tmpl, err := loadTemplate(*glyph, *templatePath)
	if err != nil {
		return err
	}
	if *export {
		return template.Write(stdout, tmpl)
	}

	scale := 1.0
	if *fit {
		tmpl, scale, err = template.Fit(tmpl, float64(settings.CanvasWidth), float64(settings.CanvasHeight), settings.Padding)
		if err != nil {
			return err
		}
		log.Trace.Printf("template %q fitted with factor %.3f", tmpl.Name, scale)
	}

	paths := fs.Args()
	if *attemptPath != "" {
		paths = append([]string{*attemptPath}, paths...)
	}
	if len(paths) == 0 {
		return errors.New("no attempt file given (-attempt)")
	}
	attempts := make([][]geometry.Stroke, len(paths))
	for i, p := range paths {
		if attempts[i], err = loadAttempt(p); err != nil {
			return err
		}
	}

	ev := evaluate.New(append(settings.EvaluateOptions(), evaluate.WithScaleFactor(scale))...)

	// Many attempts: scores only, computed concurrently.
	if len(attempts) > 1 {
		scores, err := ev.ScoreBatch(context.Background(), tmpl.Strokes, attempts)
		if err != nil {
			var ae *evaluate.AttemptError
			if errors.As(err, &ae) {
				return fmt.Errorf("%s: %w", paths[ae.Index], ae.Err)
			}
			return err
		}
		out := make(map[string]evaluate.Score, len(paths))
		for i, p := range paths {
			out[p] = scores[i]
		}
		return writeJSON(stdout, out)
	}

	user := attempts[0]
	report, err := ev.Report(tmpl.Strokes, user)
	if err != nil {
		return fmt.Errorf("%s: %w", paths[0], err)
	}
	res := result{Template: tmpl.Name, Attempt: paths[0], Scale: scale, Report: report}

	if *withHeatmap || *fullHeatmap {
		data, err := heatmap.GenerateHeatmapData(tmpl.Strokes, user, settings.CanvasWidth, settings.CanvasHeight, settings.HeatmapOptions()...)
		if err != nil {
			return err
		}
		res.Coverage = &coverage{Covered: data.CoveredCells(), Hot: data.HotCells(hotspotThreshold)}
		res.Hotspots = data.Hotspots(hotspotThreshold, heatmap.Conn8)
		if *fullHeatmap {
			res.Heatmap = data
		}
	}
	if *withFeatures {
		if res.Features, err = features.Convert(user, features.DefaultGridSize); err != nil {
			return err
		}
	}
	if *lines {
		res.Lines = lineFeedback(ev, tmpl.Strokes, user)
	}

	return writeJSON(stdout, res)
}

// loadTemplate picks the built-in glyph or the template file.
func loadTemplate(glyph, path string) (template.Template, error) {
	switch {
	case glyph != "" && path != "":
		return template.Template{}, errors.New("use either -glyph or -template, not both")
	case glyph != "":
		if utf8.RuneCountInString(glyph) != 1 {
			return template.Template{}, fmt.Errorf("-glyph wants a single character, got %q", glyph)
		}
		r, _ := utf8.DecodeRuneInString(glyph)
		return glyphs.Get(r, glyphs.DefaultCell)
	case path != "":
		return template.Load(path)
	default:
		return template.Template{}, errors.New("no template given (-glyph or -template)")
	}
}

// lineFeedback replays every point of every line through a LineTracker, the
// way a live canvas would while the user draws.
func lineFeedback(ev *evaluate.Evaluator, tmpl, user []geometry.Stroke) map[string]string {
	lt := evaluate.NewLineTracker()
	for _, s := range user {
		for _, p := range s.Points {
			lt.Observe(s.ID, ev.Classify(p, tmpl))
		}
	}

	out := make(map[string]string)
	for id, a := range lt.Snapshot() {
		out[id] = a.String()
	}
	return out
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
