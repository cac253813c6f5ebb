package mathx_test

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ophite/pkg/mathx"
)

func TestQuadraticRoots(t *testing.T) {
	t.Parallel()

	t.Run("two roots", func(t *testing.T) {
		t.Parallel()
		roots := mathx.QuadraticRoots(5, 8, -2)
		require.Len(t, roots, 2)
		assert.InDelta(t, 0.219803902, roots[0], 1e-9)
		assert.InDelta(t, -1.819803902, roots[1], 1e-9)
	})

	t.Run("double root", func(t *testing.T) {
		t.Parallel()
		roots := mathx.QuadraticRoots(1, -4, 4)
		require.Len(t, roots, 1)
		assert.InDelta(t, 2.0, roots[0], 1e-12)
	})

	t.Run("no real roots", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, mathx.QuadraticRoots(1, 0, 1))
	})

	t.Run("linear", func(t *testing.T) {
		t.Parallel()
		roots := mathx.QuadraticRoots(0, 2, -8)
		require.Len(t, roots, 1)
		assert.InDelta(t, 4.0, roots[0], 1e-12)
		assert.Empty(t, mathx.QuadraticRoots(0, 0, 3))
	})
}

func TestGPSDistance(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 11280.527224170, mathx.GPSDistance(10, 50, -10, -50, mathx.Kilometers), 1e-6)
	assert.InDelta(t, 6086.958314362, mathx.GPSDistance(10, 50, -10, -50, mathx.NauticalMiles), 1e-6)
	assert.InDelta(t, 7009.394650348, mathx.GPSDistance(10, 50, -10, -50, mathx.Miles), 1e-6)

	same := mathx.GPSDistance(50.0755, 14.4378, 50.0755, 14.4378, mathx.Kilometers)
	assert.False(t, math.IsNaN(same))
	assert.InDelta(t, 0, same, 1e-3)

	assert.Equal(t, "km", mathx.Kilometers.String())
	assert.Equal(t, "nmi", mathx.NauticalMiles.String())
	assert.Equal(t, "mi", mathx.Miles.String())
	assert.Equal(t, "Unit(9)", mathx.Unit(9).String())
}

func TestPointGeometry(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 56.568542494, mathx.PointDistance(image.Pt(10, 10), image.Pt(50, 50)), 1e-9)
	assert.InDelta(t, 0, mathx.PointDistance(image.Pt(3, 3), image.Pt(3, 3)), 0)

	p := mathx.DegreesToPoint(45, 20, image.Point{})
	assert.InDelta(t, 14.1421356, p.X, 1e-6)
	assert.InDelta(t, -14.1421356, p.Y, 1e-6)

	p = mathx.DegreesToPoint(0, 5, image.Pt(10, 10))
	assert.InDelta(t, 15, p.X, 1e-12)
	assert.InDelta(t, 10, p.Y, 1e-12)

	assert.InDelta(t, 135.0, mathx.AngleToDegrees(image.Pt(10, 10), image.Pt(25, 25)), 1e-12)
	assert.Equal(t, "(1.5,-2)", mathx.PointF{X: 1.5, Y: -2}.String())
}

func TestAngleConversions(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.213802833, mathx.ToRadians(12.25), 1e-9)
	assert.InDelta(t, 701.873299, mathx.ToDegrees(12.25), 1e-6)
	assert.InDelta(t, 12.25, mathx.ToDegrees(mathx.ToRadians(12.25)), 1e-12)
}

func TestParseUnit(t *testing.T) {
	t.Parallel()

	tests := map[string]mathx.Unit{
		"km":    mathx.Kilometers,
		"K":     mathx.Kilometers,
		"nmi":   mathx.NauticalMiles,
		"N":     mathx.NauticalMiles,
		"M":     mathx.NauticalMiles,
		"m":     mathx.NauticalMiles,
		" mi":   mathx.Miles,
		"Miles": mathx.Miles,
	}
	for in, want := range tests {
		got, err := mathx.ParseUnit(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		assert.Equal(t, want.String(), got.String())
	}

	_, err := mathx.ParseUnit("furlong")
	assert.ErrorIs(t, err, mathx.ErrUnknownUnit)
}
