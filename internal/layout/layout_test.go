package layout

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRadialFiveOnRadiusSix(t *testing.T) {
	ps := Radial(5, 6, Fixed(-2), Fixed(1))
	require.Len(t, ps, 5)

	wantDeg := []float32{0, 72, 144, 216, 288}
	for i, p := range ps {
		assert.Equal(t, i, p.Index)
		assert.InDelta(t, wantDeg[i], p.AngleDeg, 1e-4)
	}

	rad := 144 * math.Pi / 180
	assert.InDelta(t, math.Cos(rad)*6, ps[2].Position[0], 1e-5)
	assert.Equal(t, float32(-2), ps[2].Position[1])
	assert.InDelta(t, math.Sin(rad)*6, ps[2].Position[2], 1e-5)
}

func TestRadialStaysOnCircle(t *testing.T) {
	for _, n := range []int{1, 3, 7, 12} {
		for _, p := range Radial(n, 3, Fixed(0), Fixed(1)) {
			r := math.Hypot(float64(p.Position[0]), float64(p.Position[2]))
			assert.InDelta(t, 3, r, 1e-5)
		}
	}
}

func TestRadialEmpty(t *testing.T) {
	assert.Nil(t, Radial(0, 6, Fixed(0), Fixed(1)))
	assert.Nil(t, Radial(-3, 6, Fixed(0), Fixed(1)))
}

func TestRadialRandomHeightAndScale(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ps := Radial(5, 3, Random(Range{Min: -1, Max: 1}, rng), Random(Range{Min: 0.3, Max: 0.6}, rng))
	for _, p := range ps {
		assert.GreaterOrEqual(t, p.Position[1], float32(-1))
		assert.LessOrEqual(t, p.Position[1], float32(1))
		assert.GreaterOrEqual(t, p.Scale, float32(0.3))
		assert.LessOrEqual(t, p.Scale, float32(0.6))
	}
}

func TestRandomZeroWidthRangeIsFixed(t *testing.T) {
	f := Random(Range{Min: 2, Max: 2}, nil)
	assert.Equal(t, float32(2), f(0))
	assert.Equal(t, float32(2), f(9))
}
