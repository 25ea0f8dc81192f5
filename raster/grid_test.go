// SPDX-License-Identifier: MIT

package raster_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tracegrade/raster"
)

// TestNewGrid_InvalidDimensions rejects empty shapes.
func TestNewGrid_InvalidDimensions(t *testing.T) {
	for _, shape := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := raster.NewGrid(shape[0], shape[1])
		assert.ErrorIs(t, err, raster.ErrInvalidDimensions, "shape %v", shape)
	}
}

// TestGrid_AtSet covers accessors, bounds and the numeric policy.
func TestGrid_AtSet(t *testing.T) {
	g, err := raster.NewGrid(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())

	require.NoError(t, g.Set(1, 2, 0.75))
	v, err := g.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.75, v)

	_, err = g.At(2, 0)
	assert.ErrorIs(t, err, raster.ErrOutOfRange)
	assert.ErrorIs(t, g.Set(0, -1, 1), raster.ErrOutOfRange)
	assert.ErrorIs(t, g.Set(0, 0, math.NaN()), raster.ErrNaNInf)
	assert.ErrorIs(t, g.Set(0, 0, math.Inf(-1)), raster.ErrNaNInf)
}

// TestGrid_SetMax keeps the larger value.
func TestGrid_SetMax(t *testing.T) {
	g, _ := raster.NewGrid(1, 1)
	require.NoError(t, g.SetMax(0, 0, 0.4))
	require.NoError(t, g.SetMax(0, 0, 0.2))
	v, _ := g.At(0, 0)
	assert.Equal(t, 0.4, v)
}

// TestGrid_Aggregates checks Max, Sum, CountAtLeast, Clone and To2D.
func TestGrid_Aggregates(t *testing.T) {
	g, _ := raster.NewGrid(2, 2)
	require.NoError(t, g.Apply(func(r, c int, _ float64) float64 { return float64(r*2 + c) }))
	assert.Equal(t, 3.0, g.Max())
	assert.Equal(t, 6.0, g.Sum())
	assert.Equal(t, 2, g.CountAtLeast(2))
	assert.Equal(t, [][]float64{{0, 1}, {2, 3}}, g.To2D())
	assert.Equal(t, "[0, 1]\n[2, 3]\n", g.String())

	c := g.Clone()
	require.NoError(t, c.Set(0, 0, 9))
	v, _ := g.At(0, 0)
	assert.Equal(t, 0.0, v, "clone must not alias")

	err := g.Apply(func(int, int, float64) float64 { return math.NaN() })
	assert.ErrorIs(t, err, raster.ErrNaNInf)
}
