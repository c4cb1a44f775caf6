package transform

import "github.com/go-gl/mathgl/mgl32"

// Transform is a position, XYZ Euler rotation (radians) and scale.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
}

// Identity returns a transform at the origin with unit scale.
func Identity() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

// At returns an unrotated transform at p with unit scale.
func At(p mgl32.Vec3) Transform {
	t := Identity()
	t.Position = p
	return t
}

// Matrix composes translate * rotX * rotY * rotZ * scale.
func (t Transform) Matrix() mgl32.Mat4 {
	m := mgl32.Translate3D(t.Position[0], t.Position[1], t.Position[2])
	m = m.Mul4(mgl32.HomogRotate3DX(t.Rotation[0]))
	m = m.Mul4(mgl32.HomogRotate3DY(t.Rotation[1]))
	m = m.Mul4(mgl32.HomogRotate3DZ(t.Rotation[2]))
	return m.Mul4(mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2]))
}

// Node is one drawable: its own transform plus a mesh-space offset applied before it.
// The offset lets shared geometry be re-anchored (e.g. a unit box resting on y=0).
type Node struct {
	Transform
	Offset mgl32.Vec3
}

// NewNode returns a node at p with the given scale and no offset.
func NewNode(p, scale mgl32.Vec3) *Node {
	return &Node{Transform: Transform{Position: p, Scale: scale}}
}

// Matrix is the node's local matrix including its mesh offset.
func (n *Node) Matrix() mgl32.Mat4 {
	m := n.Transform.Matrix()
	if n.Offset == (mgl32.Vec3{}) {
		return m
	}
	return m.Mul4(mgl32.Translate3D(n.Offset[0], n.Offset[1], n.Offset[2]))
}

// Group is a transform node holding children. Its transform is applied on top of each child's.
type Group struct {
	Transform
	Children []*Node
}

// NewGroup returns an empty group at the origin.
func NewGroup() *Group {
	return &Group{Transform: Identity()}
}

// Add appends a child. Children keep insertion order.
func (g *Group) Add(n *Node) {
	g.Children = append(g.Children, n)
}

// World returns the world matrix of child n, which need not be one of g's children.
func (g *Group) World(n *Node) mgl32.Mat4 {
	return g.Transform.Matrix().Mul4(n.Matrix())
}
