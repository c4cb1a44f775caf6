package mathx

import "github.com/chewxy/math32"

// Rand is the random source used by the scene builders. *rand.Rand satisfies it.
type Rand interface {
	Float32() float32
}

// RandomFloat returns a value in [min, max).
func RandomFloat(rng Rand, min, max float32) float32 {
	return rng.Float32()*(max-min) + min
}

// RandomInt returns an integer in [min, max], both ends inclusive.
func RandomInt(rng Rand, min, max int) int {
	v := int(math32.Floor(rng.Float32()*float32(max-min+1) + float32(min)))
	// Float32 can round up to exactly 1 for large ranges.
	if v > max {
		v = max
	}
	return v
}

// Clamp limits v to [min, max].
func Clamp(v, min, max float32) float32 {
	return math32.Min(math32.Max(v, min), max)
}

// ToRadians converts degrees to radians.
func ToRadians(deg float32) float32 {
	return deg * math32.Pi / 180
}

// ToDegrees converts radians to degrees.
func ToDegrees(rad float32) float32 {
	return rad * 180 / math32.Pi
}

// Lerp moves a toward b by the fraction t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// OscillateBetween maps a sine of t onto [min, max]. freq scales t and offset shifts the phase.
func OscillateBetween(t, min, max, freq, offset float32) float32 {
	amplitude := max - min
	average := amplitude/2 + min
	return math32.Sin(t*freq+offset)*amplitude/2 + average
}
