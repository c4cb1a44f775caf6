package orbit

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func assertEye(t *testing.T, want, got [3]float32) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-4, "axis %d of %v", i, got)
	}
}

func TestNewRoundTripsEye(t *testing.T) {
	for _, eye := range [][3]float32{{4, 1.5, 5.5}, {5, 5, 5}, {-3, 0, 2}} {
		c := New(eye, [3]float32{})
		assertEye(t, eye, c.Eye())
	}
}

func TestDragFullHeightIsFullTurn(t *testing.T) {
	c := New([3]float32{5, 0, 0}, [3]float32{})
	c.Drag(600, 0, 600)
	assertEye(t, [3]float32{5, 0, 0}, c.Eye())

	c.Drag(150, 0, 600)
	assertEye(t, [3]float32{0, 0, 5}, c.Eye())
}

func TestPitchIsClamped(t *testing.T) {
	c := New([3]float32{5, 0, 0}, [3]float32{})
	c.Drag(0, 10000, 600)
	assert.LessOrEqual(t, c.Pitch, float32(maxPitch))
	assert.Greater(t, c.Eye()[0], float32(0))
}

func TestAutoRotate(t *testing.T) {
	c := New([3]float32{5, 0, 0}, [3]float32{})
	c.AutoRotate = true
	c.Speed = math32.Pi / 2
	c.Update(1)
	assertEye(t, [3]float32{0, 0, 5}, c.Eye())
}

func TestDampingSpreadsDrag(t *testing.T) {
	c := New([3]float32{5, 0, 0}, [3]float32{})
	c.Damping = 0.1
	c.Drag(60, 0, 600)
	assert.Equal(t, float32(0), c.Yaw, "damped drags wait for Update")
	c.Update(1.0 / 60)
	first := c.Yaw
	assert.Greater(t, first, float32(0))
	for i := 0; i < 300; i++ {
		c.Update(1.0 / 60)
	}
	assert.InDelta(t, 2*math32.Pi*60/600, c.Yaw, 1e-3)
}

func TestZoom(t *testing.T) {
	c := New([3]float32{0, 0, 10}, [3]float32{})
	c.Zoom(1)
	assert.InDelta(t, 9.5, c.Distance, 1e-5)
	c.Zoom(1000)
	assert.Equal(t, float32(minDistance), c.Distance)
}
