package motion

import (
	"math"
	"math/rand"
	"testing"

	"grain-scenes/internal/mathx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEaseConvergesWithoutOvershoot(t *testing.T) {
	for _, target := range []Vec2{{1, -1}, {0.37, -0.83}, {-1, 1}, {0, 0}} {
		m := Mouse{Target: target}
		prevDX := math.Abs(float64(target.X))
		prevDY := math.Abs(float64(target.Y))
		converged := false
		for i := 0; i < 200; i++ {
			m.Ease()
			dx := math.Abs(float64(target.X - m.Current.X))
			dy := math.Abs(float64(target.Y - m.Current.Y))
			require.LessOrEqual(t, dx, prevDX, "x moved away from target at step %d", i)
			require.LessOrEqual(t, dy, prevDY, "y moved away from target at step %d", i)
			if target.X >= 0 {
				require.LessOrEqual(t, m.Current.X, target.X)
			} else {
				require.GreaterOrEqual(t, m.Current.X, target.X)
			}
			prevDX, prevDY = dx, dy
			if dx < 1e-6 && dy < 1e-6 {
				converged = true
				break
			}
		}
		assert.True(t, converged, "target %+v not reached", target)
	}
}

func TestEaseRunsWithoutNewInput(t *testing.T) {
	m := Mouse{Target: Vec2{X: 1}}
	m.Ease()
	first := m.Current.X
	m.Ease()
	assert.Greater(t, m.Current.X, first)
	assert.InDelta(t, 0.19, m.Current.X, 1e-6)
}

func TestSetTargetFromScreen(t *testing.T) {
	var m Mouse
	m.SetTargetFromScreen(0, 0, 800, 600)
	assert.Equal(t, Vec2{X: -1, Y: 1}, m.Target)
	m.SetTargetFromScreen(800, 600, 800, 600)
	assert.Equal(t, Vec2{X: 1, Y: -1}, m.Target)
	m.SetTargetFromScreen(400, 300, 800, 600)
	assert.Equal(t, Vec2{X: 0, Y: 0}, m.Target)

	m.SetTargetFromScreen(10, 10, 0, 600)
	assert.Equal(t, Vec2{X: 0, Y: 0}, m.Target)
	assert.Equal(t, Vec2{}, m.Current, "input never touches the eased value")
}

func TestNewBobDrawsWithinRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		b := NewBob(1.5, -0.5, rng)
		assert.Equal(t, float32(1.5), b.InitX)
		assert.Equal(t, float32(-0.5), b.InitY)
		assert.GreaterOrEqual(t, b.Phase, float32(PhaseMin))
		assert.LessOrEqual(t, b.Phase, float32(PhaseMax))
		assert.GreaterOrEqual(t, b.InvSpeed, float32(InvSpeedMin))
		assert.LessOrEqual(t, b.InvSpeed, float32(InvSpeedMax))
		assert.GreaterOrEqual(t, b.CoefX, float32(CoefXMin))
		assert.LessOrEqual(t, b.CoefX, float32(CoefXMax))
	}
}

func TestBobFormula(t *testing.T) {
	b := Bob{InitX: 2, InitY: 1, Phase: 0.5, InvSpeed: 1200, CoefX: 0.75}
	now := 3456.0
	x, y := b.Position(now, Vec2{X: 0.4, Y: -0.6})

	wantY := 1 + math.Sin(now/1200+0.5)*0.5 + (-0.6)*0.2
	assert.InDelta(t, wantY, y, 1e-5)
	assert.InDelta(t, 2+0.4*0.75, x, 1e-6)
}

func TestBobIsPeriodic(t *testing.T) {
	b := NewBob(0, 0.3, rand.New(rand.NewSource(5)))
	mouse := Vec2{X: 0.1, Y: 0.25}
	for _, now := range []float64{0, 500, 12345.6, 1e6} {
		_, y0 := b.Position(now, mouse)
		_, y1 := b.Position(now+b.Period(), mouse)
		assert.InDelta(t, y0, y1, 1e-4, "now=%v", now)
	}
}

func TestDriftIsLinearInMouseX(t *testing.T) {
	b := Bob{InitX: -1.25, InitY: 0, Phase: 3, InvSpeed: 1100, CoefX: 0.6}
	x0, _ := b.Position(0, Vec2{X: 0})
	assert.Equal(t, b.InitX, x0)
	for _, mx := range []float32{-1, -0.5, 0.2, 1} {
		x, _ := b.Position(99, Vec2{X: mx})
		assert.InDelta(t, b.InitX+b.CoefX*mx, x, 1e-6)
	}
}

func TestContainerYaw(t *testing.T) {
	assert.InDelta(t, mathx.ToRadians(20), ContainerYaw(1), 1e-7)
	assert.InDelta(t, mathx.ToRadians(-20), ContainerYaw(-1), 1e-7)
	assert.Equal(t, float32(0), ContainerYaw(0))
}
