package glyphs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tracegrade/evaluate"
	"github.com/katalvlaran/tracegrade/geometry"
	"github.com/katalvlaran/tracegrade/glyphs"
)

func TestRunes_Complete(t *testing.T) {
	rs := glyphs.Runes()
	assert.Len(t, rs, 36)
	assert.Equal(t, '0', rs[0])
	assert.Equal(t, 'Z', rs[len(rs)-1])
}

// TestGet_Shape keeps every glyph on the grid with usable strokes.
func TestGet_Shape(t *testing.T) {
	const cell = 10.0
	for _, r := range glyphs.Runes() {
		tp, err := glyphs.Get(r, cell)
		require.NoError(t, err, "%c", r)
		assert.Equal(t, string(r), tp.Name)
		require.NotEmpty(t, tp.Strokes)
		assert.Equal(t, len(tp.Strokes), geometry.CountSegmented(tp.Strokes), "%c", r)

		box := geometry.BoundingBox(tp.Strokes)
		assert.GreaterOrEqual(t, box.MinX, 0.0)
		assert.GreaterOrEqual(t, box.MinY, 0.0)
		assert.LessOrEqual(t, box.MaxX, 4*cell)
		assert.LessOrEqual(t, box.MaxY, 6*cell)
	}
}

func TestGet_LowerCaseAndUnknown(t *testing.T) {
	up, err := glyphs.Get('K', glyphs.DefaultCell)
	require.NoError(t, err)
	low, err := glyphs.Get('k', glyphs.DefaultCell)
	require.NoError(t, err)
	assert.Equal(t, up, low)
	assert.Equal(t, "K-2", up.Strokes[1].ID)

	_, err = glyphs.Get('?', glyphs.DefaultCell)
	assert.ErrorIs(t, err, glyphs.ErrUnknownGlyph)
}

// TestGet_Independent returns fresh slices.
func TestGet_Independent(t *testing.T) {
	a, _ := glyphs.Get('O', 1)
	a.Strokes[0].Points[0].X = 99
	b, _ := glyphs.Get('O', 1)
	assert.Equal(t, 1.0, b.Strokes[0].Points[0].X)
}

// TestGlyphs_SelfScore traces every glyph perfectly.
func TestGlyphs_SelfScore(t *testing.T) {
	ev := evaluate.New()
	for _, r := range glyphs.Runes() {
		tp, err := glyphs.Get(r, glyphs.DefaultCell)
		require.NoError(t, err)
		s, err := ev.Evaluate(tp.Strokes, tp.Strokes)
		require.NoError(t, err)
		assert.Equal(t, 100, s.Score, "%c", r)
	}
}

// TestGlyphs_WrongLetter scores a different letter lower.
func TestGlyphs_WrongLetter(t *testing.T) {
	a, _ := glyphs.Get('A', glyphs.DefaultCell)
	h, _ := glyphs.Get('H', glyphs.DefaultCell)
	s, err := evaluate.CalculateAccuracy(a.Strokes, h.Strokes)
	require.NoError(t, err)
	assert.Less(t, s.Score, 80)
	assert.Less(t, s.Overlap, 70)
}
