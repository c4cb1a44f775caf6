// Package orbit is an orbit-style camera control: the eye circles a target, driven by
// pointer drags, the wheel and an optional auto-rotation.
package orbit

import (
	"github.com/chewxy/math32"

	"grain-scenes/internal/mathx"
)

const (
	minDistance = 0.5
	maxPitch    = 89 * math32.Pi / 180
	zoomStep    = 0.95
)

// Control holds the spherical eye position around Target.
type Control struct {
	Target     [3]float32
	Distance   float32
	Yaw        float32 // radians around +Y, measured from +X toward +Z
	Pitch      float32 // radians above the XZ plane
	AutoRotate bool
	Speed      float32 // auto-rotation, radians per second
	Damping    float32 // 0 applies drags at once, otherwise the fraction of velocity kept per frame is 1-Damping

	yawVel, pitchVel float32
}

// New builds a control whose eye starts at eye, looking at target.
func New(eye, target [3]float32) *Control {
	d := [3]float32{eye[0] - target[0], eye[1] - target[1], eye[2] - target[2]}
	dist := math32.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
	c := &Control{Target: target, Distance: dist}
	if dist > 0 {
		c.Pitch = math32.Asin(mathx.Clamp(d[1]/dist, -1, 1))
		c.Yaw = math32.Atan2(d[2], d[0])
	}
	return c
}

// Drag rotates by a pointer movement of (dx, dy) pixels. A drag across the full viewport
// height turns the eye a full circle.
func (c *Control) Drag(dx, dy, viewportHeight float32) {
	if viewportHeight <= 0 {
		return
	}
	dYaw := 2 * math32.Pi * dx / viewportHeight
	dPitch := 2 * math32.Pi * dy / viewportHeight
	if c.Damping > 0 {
		c.yawVel += dYaw
		c.pitchVel += dPitch
		return
	}
	c.rotate(dYaw, dPitch)
}

// Zoom moves the eye toward the target for positive wheel steps.
func (c *Control) Zoom(steps float32) {
	if steps == 0 {
		return
	}
	c.Distance *= math32.Pow(zoomStep, steps)
	if c.Distance < minDistance {
		c.Distance = minDistance
	}
}

// Update advances auto-rotation and damped velocity by dt seconds.
func (c *Control) Update(dt float32) {
	if c.AutoRotate {
		c.rotate(c.Speed*dt, 0)
	}
	if c.Damping > 0 {
		c.rotate(c.yawVel*c.Damping, c.pitchVel*c.Damping)
		c.yawVel *= 1 - c.Damping
		c.pitchVel *= 1 - c.Damping
	}
}

func (c *Control) rotate(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch = mathx.Clamp(c.Pitch+dPitch, -maxPitch, maxPitch)
}

// Eye returns the camera position.
func (c *Control) Eye() [3]float32 {
	cp := math32.Cos(c.Pitch)
	return [3]float32{
		c.Target[0] + c.Distance*cp*math32.Cos(c.Yaw),
		c.Target[1] + c.Distance*math32.Sin(c.Pitch),
		c.Target[2] + c.Distance*cp*math32.Sin(c.Yaw),
	}
}
