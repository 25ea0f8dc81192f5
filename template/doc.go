// Package template loads reference letters and fits them onto a canvas.
//
// A template file is YAML (JSON is accepted as well, being a YAML subset):
//
//	name: A
//	strokes:
//	  - name: left
//	    points: [50, 140, 80, 20]
//	    strokeWidth: 4
//	  - name: right
//	    points: [80, 20, 110, 140]
//
// points is a flat x,y list. The legacy key "shapes" is read as an alias of
// "strokes". A stroke without a name is called "stroke-<index>"; a stroke
// without strokeWidth gets DefaultStrokeWidth.
//
// Errors:
//
//   - ErrNoStrokes: the file defines no strokes.
//   - geometry.ErrOddCoordinates (wrapped with the stroke name): a points list
//     of odd length.
//   - ErrInvalidCanvas: Fit was given a non-positive canvas.
package template
