// SPDX-License-Identifier: MIT

package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Sentinel errors for geometry operations.
var (
	// ErrOddCoordinates indicates a flat coordinate list whose length is odd,
	// i.e. an x without its y.
	ErrOddCoordinates = errors.New("geometry: flat coordinate list must have even length")
)

// Point is a position in the shared 2D coordinate space.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Stroke is one pen-down-to-pen-up motion. Points are ordered in drawing
// direction. ID and Width are caller metadata and never influence scoring.
type Stroke struct {
	ID     string
	Points []Point
	Width  float64
}

// NewUserStroke returns a stroke with a fresh random identifier, the way a
// capture layer tags every new line for per-line feedback.
func NewUserStroke(points []Point, width float64) Stroke {
	return Stroke{
		ID:     uuid.NewString(),
		Points: points,
		Width:  width,
	}
}

// Len returns the number of points of s.
func (s Stroke) Len() int {
	return len(s.Points)
}

// Usable reports whether s has at least one point.
func (s Stroke) Usable() bool {
	return len(s.Points) > 0
}

// HasSegment reports whether s has at least one segment (two or more points).
func (s Stroke) HasSegment() bool {
	return len(s.Points) >= 2
}

// Flat returns s as x0,y0,x1,y1,...
func (s Stroke) Flat() []float64 {
	return Flatten(s.Points)
}

// FromFlat converts x0,y0,x1,y1,... into points.
// Returns ErrOddCoordinates if len(coords) is odd. An empty list yields nil.
func FromFlat(coords []float64) ([]Point, error) {
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("FromFlat(len=%d): %w", len(coords), ErrOddCoordinates)
	}
	if len(coords) == 0 {
		return nil, nil
	}
	pts := make([]Point, len(coords)/2)
	for i := range pts {
		pts[i] = Point{X: coords[2*i], Y: coords[2*i+1]}
	}

	return pts, nil
}

// MustFromFlat is like FromFlat but panics on odd-length input.
// Intended for literals in tests and built-in data.
func MustFromFlat(coords []float64) []Point {
	pts, err := FromFlat(coords)
	if err != nil {
		panic(err)
	}

	return pts
}

// Flatten converts points into x0,y0,x1,y1,...
func Flatten(points []Point) []float64 {
	out := make([]float64, 0, 2*len(points))
	for _, p := range points {
		out = append(out, p.X, p.Y)
	}

	return out
}

// Box is an axis-aligned bounding box. The zero Box with Empty=true
// represents "no points".
type Box struct {
	MinX  float64 `json:"minX"`
	MinY  float64 `json:"minY"`
	MaxX  float64 `json:"maxX"`
	MaxY  float64 `json:"maxY"`
	Empty bool    `json:"empty,omitempty"`
}

// Width returns MaxX-MinX (0 for an empty box).
func (b Box) Width() float64 {
	if b.Empty {
		return 0
	}
	return b.MaxX - b.MinX
}

// Height returns MaxY-MinY (0 for an empty box).
func (b Box) Height() float64 {
	if b.Empty {
		return 0
	}
	return b.MaxY - b.MinY
}

// Diagonal returns the length of the box diagonal, used as the drawing scale.
func (b Box) Diagonal() float64 {
	return math.Hypot(b.Width(), b.Height())
}

// Center returns the midpoint of the box.
func (b Box) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// BoundingBox returns the box enclosing every point of every stroke.
// Strokes without points are ignored; if nothing remains, the result is Empty.
func BoundingBox(strokes []Stroke) Box {
	b := Box{Empty: true}
	for _, s := range strokes {
		for _, p := range s.Points {
			if b.Empty {
				b = Box{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
				continue
			}
			b.MinX = math.Min(b.MinX, p.X)
			b.MinY = math.Min(b.MinY, p.Y)
			b.MaxX = math.Max(b.MaxX, p.X)
			b.MaxY = math.Max(b.MaxY, p.Y)
		}
	}

	return b
}

// CountUsable returns how many strokes have at least one point.
func CountUsable(strokes []Stroke) int {
	n := 0
	for _, s := range strokes {
		if s.Usable() {
			n++
		}
	}
	return n
}

// CountSegmented returns how many strokes have at least one segment.
func CountSegmented(strokes []Stroke) int {
	n := 0
	for _, s := range strokes {
		if s.HasSegment() {
			n++
		}
	}
	return n
}
