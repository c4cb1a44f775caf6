package transform

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], 1e-5, "component %d of %v", i, got)
	}
}

func TestIdentityMatrix(t *testing.T) {
	assert.True(t, Identity().Matrix().ApproxEqual(mgl32.Ident4()))
}

func TestNodeOffsetAppliesBeforeScale(t *testing.T) {
	// unit box translated up by 0.5, stretched to height 3: spans y in [0, 3] around its anchor.
	n := NewNode(mgl32.Vec3{6, -2, 0}, mgl32.Vec3{1, 3, 1})
	n.Offset = mgl32.Vec3{0, 0.5, 0}
	m := n.Matrix()

	bottom := m.Mul4x1(mgl32.Vec4{0, -0.5, 0, 1}).Vec3()
	top := m.Mul4x1(mgl32.Vec4{0, 0.5, 0, 1}).Vec3()
	assertVec3(t, mgl32.Vec3{6, -2, 0}, bottom)
	assertVec3(t, mgl32.Vec3{6, 1, 0}, top)
}

func TestGroupYawRotatesChildren(t *testing.T) {
	g := NewGroup()
	child := NewNode(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 1, 1})
	g.Add(child)
	g.Rotation[1] = mgl32.DegToRad(90)

	p := g.World(child).Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	// +90° around Y maps +X onto -Z.
	assertVec3(t, mgl32.Vec3{0, 0, -1}, p)
}

func TestGroupLeavesChildTransformUntouched(t *testing.T) {
	g := NewGroup()
	child := NewNode(mgl32.Vec3{2, 3, 4}, mgl32.Vec3{1, 1, 1})
	g.Add(child)
	g.Rotation[1] = 0.7
	_ = g.World(child)
	assert.Equal(t, mgl32.Vec3{2, 3, 4}, child.Position)
	assert.Len(t, g.Children, 1)
}
