// SPDX-License-Identifier: MIT
//
// glyphs.go - built-in letter and digit templates on the 5×7 grid.
//
// Purpose:
//   - Provide a reference template for A..Z and 0..9 without any data file,
//     so the trainer and the command line tool work out of the box.
//   - Each glyph is a list of pen strokes in the conventional handwriting
//     order; each stroke is a polyline over grid nodes.
//
// Grid:
//   - Horizontal tokens L, LC, C, RC, R (leftmost → rightmost, columns 0..4).
//   - Vertical tokens T, PT, UM, M, PM, UB, B (topmost → bottommost, rows 0..6).
//   - A node (h, v) maps to (h·cell, v·cell); the glyph spans 4·cell × 6·cell.
//
// Determinism:
//   - Data is immutable; Get builds fresh slices on every call.

package glyphs

import (
	"errors"
	"fmt"
	"sort"
	"unicode"

	"github.com/katalvlaran/tracegrade/geometry"
	"github.com/katalvlaran/tracegrade/template"
)

// DefaultCell is the grid spacing used by the command line tool.
const DefaultCell = 20.0

// ErrUnknownGlyph indicates a rune without a built-in template.
var ErrUnknownGlyph = errors.New("glyphs: no built-in template")

// Horizontal grid positions.
const (
	L  = iota // Leftmost
	LC        // LeftCenter
	C         // Center
	RC        // RightCenter
	R         // Rightmost
)

// Vertical grid positions.
const (
	T  = iota // Topmost
	PT        // PreTop
	UM        // UpperMedium
	M         // Medium
	PM        // PreMedium
	UB        // UpperBottom
	B         // Bottommost
)

// node is one grid position.
type node struct{ h, v int }

// stroke is a polyline over grid nodes.
type stroke []node

// n is shorthand for a grid node.
func n(h, v int) node { return node{h, v} }

// oval is the closed outline shared by O, Q and 0.
var oval = stroke{n(LC, T), n(L, PT), n(L, UB), n(LC, B), n(RC, B), n(R, UB), n(R, PT), n(RC, T), n(LC, T)}

// bowl is the upper loop shared by P and R, drawn from the stem top.
var bowl = stroke{n(L, T), n(RC, T), n(R, PT), n(R, UM), n(RC, M), n(L, M)}

// specs lists every glyph; strokes are in drawing order.
var specs = map[rune][]stroke{
	'A': {{n(L, B), n(C, T)}, {n(C, T), n(R, B)}, {n(LC, M), n(RC, M)}},
	'B': {{n(L, T), n(L, B)}, bowl, {n(L, M), n(RC, M), n(R, PM), n(R, UB), n(RC, B), n(L, B)}},
	'C': {{n(R, PT), n(RC, T), n(LC, T), n(L, PT), n(L, UB), n(LC, B), n(RC, B), n(R, UB)}},
	'D': {{n(L, T), n(L, B)}, {n(L, T), n(RC, T), n(R, PT), n(R, UB), n(RC, B), n(L, B)}},
	'E': {{n(L, T), n(L, B)}, {n(L, T), n(R, T)}, {n(L, M), n(RC, M)}, {n(L, B), n(R, B)}},
	'F': {{n(L, T), n(L, B)}, {n(L, T), n(R, T)}, {n(L, M), n(RC, M)}},
	'G': {{n(R, PT), n(RC, T), n(LC, T), n(L, PT), n(L, UB), n(LC, B), n(RC, B), n(R, UB), n(R, M), n(C, M)}},
	'H': {{n(L, T), n(L, B)}, {n(R, T), n(R, B)}, {n(L, M), n(R, M)}},
	'I': {{n(C, T), n(C, B)}, {n(LC, T), n(RC, T)}, {n(LC, B), n(RC, B)}},
	'J': {{n(R, T), n(R, UB), n(RC, B), n(LC, B), n(L, UB)}},
	'K': {{n(L, T), n(L, B)}, {n(R, T), n(L, M), n(R, B)}},
	'L': {{n(L, T), n(L, B), n(R, B)}},
	'M': {{n(L, B), n(L, T), n(C, M), n(R, T), n(R, B)}},
	'N': {{n(L, B), n(L, T), n(R, B), n(R, T)}},
	'O': {oval},
	'P': {{n(L, T), n(L, B)}, bowl},
	'Q': {oval, {n(C, PM), n(R, B)}},
	'R': {{n(L, T), n(L, B)}, bowl, {n(C, M), n(R, B)}},
	'S': {{n(R, PT), n(RC, T), n(LC, T), n(L, PT), n(L, UM), n(LC, M), n(RC, M), n(R, PM), n(R, UB), n(RC, B), n(LC, B), n(L, UB)}},
	'T': {{n(L, T), n(R, T)}, {n(C, T), n(C, B)}},
	'U': {{n(L, T), n(L, UB), n(LC, B), n(RC, B), n(R, UB), n(R, T)}},
	'V': {{n(L, T), n(C, B), n(R, T)}},
	'W': {{n(L, T), n(LC, B), n(C, M), n(RC, B), n(R, T)}},
	'X': {{n(L, T), n(R, B)}, {n(R, T), n(L, B)}},
	'Y': {{n(L, T), n(C, M)}, {n(R, T), n(C, M), n(C, B)}},
	'Z': {{n(L, T), n(R, T), n(L, B), n(R, B)}},

	'0': {oval},
	'1': {{n(LC, PT), n(C, T), n(C, B)}, {n(LC, B), n(RC, B)}},
	'2': {{n(L, PT), n(LC, T), n(RC, T), n(R, PT), n(R, UM), n(L, B), n(R, B)}},
	'3': {{n(L, PT), n(LC, T), n(RC, T), n(R, PT), n(R, UM), n(RC, M), n(C, M)}, {n(RC, M), n(R, PM), n(R, UB), n(RC, B), n(LC, B), n(L, UB)}},
	'4': {{n(RC, B), n(RC, T), n(L, PM), n(R, PM)}},
	'5': {{n(R, T), n(L, T), n(L, M), n(RC, M), n(R, PM), n(R, UB), n(RC, B), n(LC, B), n(L, UB)}},
	'6': {{n(R, PT), n(RC, T), n(LC, T), n(L, PT), n(L, UB), n(LC, B), n(RC, B), n(R, UB), n(R, PM), n(RC, M), n(LC, M), n(L, PM)}},
	'7': {{n(L, T), n(R, T), n(LC, B)}},
	'8': {{n(C, M), n(RC, M), n(R, UM), n(R, PT), n(RC, T), n(LC, T), n(L, PT), n(L, UM), n(LC, M), n(RC, M), n(R, PM), n(R, UB), n(RC, B), n(LC, B), n(L, UB), n(L, PM), n(LC, M), n(C, M)}},
	'9': {{n(R, UM), n(RC, M), n(LC, M), n(L, UM), n(L, PT), n(LC, T), n(RC, T), n(R, PT), n(R, UB), n(RC, B), n(LC, B), n(L, UB)}},
}

// Get returns the built-in template for r with grid spacing cell (use
// DefaultCell when in doubt). Lower-case letters map to upper case.
// Stroke IDs are "<glyph>-<n>" counting from 1.
func Get(r rune, cell float64) (template.Template, error) {
	r = unicode.ToUpper(r)
	spec, ok := specs[r]
	if !ok {
		return template.Template{}, fmt.Errorf("glyphs: Get(%q): %w", r, ErrUnknownGlyph)
	}

	t := template.Template{Name: string(r), Strokes: make([]geometry.Stroke, len(spec))}
	for i, s := range spec {
		pts := make([]geometry.Point, len(s))
		for j, nd := range s {
			pts[j] = geometry.Point{X: float64(nd.h) * cell, Y: float64(nd.v) * cell}
		}
		t.Strokes[i] = geometry.Stroke{
			ID:     fmt.Sprintf("%c-%d", r, i+1),
			Points: pts,
			Width:  template.DefaultStrokeWidth,
		}
	}

	return t, nil
}

// Runes lists every built-in glyph in ascending order.
func Runes() []rune {
	out := make([]rune, 0, len(specs))
	for r := range specs {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
