package motion

import (
	"math"

	"grain-scenes/internal/mathx"
)

// EaseFactor is the fraction of the remaining distance the eased pointer covers each frame.
const EaseFactor = 0.1

const (
	bobAmplitude   = 0.5
	bobMouseInfl   = 0.2
	containerSwing = 20 // degrees of yaw at the screen edge
)

// Per-instance parameter ranges, drawn once at construction.
const (
	PhaseMin    = 0
	PhaseMax    = 100
	InvSpeedMin = 1000
	InvSpeedMax = 1500
	CoefXMin    = 0.5
	CoefXMax    = 1
)

// Vec2 is a normalized pointer coordinate in [-1, 1].
type Vec2 struct {
	X, Y float32
}

// Mouse holds the raw target written by input polling and the eased value read by animation.
type Mouse struct {
	Current Vec2
	Target  Vec2
}

// SetTargetFromScreen converts a pixel position into normalized coordinates (y up).
// A zero-sized viewport leaves the target untouched.
func (m *Mouse) SetTargetFromScreen(px, py, width, height float32) {
	if width <= 0 || height <= 0 {
		return
	}
	m.Target.X = px/width*2 - 1
	m.Target.Y = -(py/height)*2 + 1
}

// Ease moves Current toward Target. Call once per frame whether or not input arrived.
func (m *Mouse) Ease() {
	m.Current.X = mathx.Lerp(m.Current.X, m.Target.X, EaseFactor)
	m.Current.Y = mathx.Lerp(m.Current.Y, m.Target.Y, EaseFactor)
}

// Bob is the idle bobbing and pointer drift of one sphere. Fields are fixed after NewBob.
type Bob struct {
	InitX    float32
	InitY    float32
	Phase    float32
	InvSpeed float32
	CoefX    float32
}

// NewBob anchors a bob at (x, y) and draws its phase, speed and drift coefficient from rng.
func NewBob(x, y float32, rng mathx.Rand) Bob {
	return Bob{
		InitX:    x,
		InitY:    y,
		Phase:    mathx.RandomFloat(rng, PhaseMin, PhaseMax),
		InvSpeed: mathx.RandomFloat(rng, InvSpeedMin, InvSpeedMax),
		CoefX:    mathx.RandomFloat(rng, CoefXMin, CoefXMax),
	}
}

// Position returns the x and y for this frame. nowMillis is the frame time in milliseconds;
// it stays float64 so long sessions keep sub-millisecond resolution.
func (b Bob) Position(nowMillis float64, mouse Vec2) (x, y float32) {
	wave := float32(math.Sin(nowMillis/float64(b.InvSpeed) + float64(b.Phase)))
	y = b.InitY + wave*bobAmplitude + mouse.Y*bobMouseInfl
	x = b.InitX + mouse.X*b.CoefX
	return x, y
}

// Period is the idle oscillation period in milliseconds.
func (b Bob) Period() float64 {
	return 2 * math.Pi * float64(b.InvSpeed)
}

// ContainerYaw is the container's rotation around Y, in radians, for eased pointer x.
func ContainerYaw(mouseX float32) float32 {
	return mathx.ToRadians(containerSwing * mouseX)
}
