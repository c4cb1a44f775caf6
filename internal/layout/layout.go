package layout

import (
	"github.com/chewxy/math32"

	"grain-scenes/internal/mathx"
)

// Placement is where one instance of a ring sits.
type Placement struct {
	Index    int
	AngleDeg float32
	Angle    float32 // radians
	Position [3]float32
	Scale    float32
}

// ValueFunc yields a per-index value (height or scale).
type ValueFunc func(i int) float32

// Range is a closed interval a per-instance value is drawn from.
type Range struct {
	Min float32 `yaml:"min"`
	Max float32 `yaml:"max"`
}

// Fixed returns the same value for every index.
func Fixed(v float32) ValueFunc {
	return func(int) float32 { return v }
}

// Random draws an independent value in r for every index. A zero-width range is constant.
func Random(r Range, rng mathx.Rand) ValueFunc {
	if r.Min == r.Max {
		return Fixed(r.Min)
	}
	return func(int) float32 { return mathx.RandomFloat(rng, r.Min, r.Max) }
}

// Radial spreads n instances evenly on a circle of the given radius in the XZ plane.
// Instance i sits at angle i*360/n, in ascending index order. y and scale are evaluated
// once per instance, in index order.
func Radial(n int, radius float32, y, scale ValueFunc) []Placement {
	if n <= 0 {
		return nil
	}
	step := float32(360) / float32(n)
	out := make([]Placement, 0, n)
	for i := 0; i < n; i++ {
		deg := float32(i) * step
		rad := mathx.ToRadians(deg)
		out = append(out, Placement{
			Index:    i,
			AngleDeg: deg,
			Angle:    rad,
			Position: [3]float32{math32.Cos(rad) * radius, y(i), math32.Sin(rad) * radius},
			Scale:    scale(i),
		})
	}
	return out
}
