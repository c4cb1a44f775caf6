// Package instances turns a variant into positioned scene objects: bobbing spheres,
// columns on a ring, hand-placed singles and the model, with the container group that
// swings with the pointer.
package instances

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"grain-scenes/internal/layout"
	"grain-scenes/internal/mathx"
	"grain-scenes/internal/motion"
	"grain-scenes/internal/transform"
	"grain-scenes/internal/variant"
)

// Kind tells what built an instance.
type Kind string

const (
	KindSphere Kind = "sphere"
	KindColumn Kind = "column"
	KindSingle Kind = "single"
	KindModel  Kind = "model"
)

// Instance is one drawable. Shape is empty for the model.
type Instance struct {
	ID          uuid.UUID
	Kind        Kind
	Shape       string
	Node        *transform.Node
	Bob         *motion.Bob
	InContainer bool
}

// Update moves a bobbing instance for frame time nowMillis and eased pointer mouse.
// Only x and y change; everything else stays as placed.
func (in *Instance) Update(nowMillis float64, mouse motion.Vec2) {
	if in.Bob == nil {
		return
	}
	x, y := in.Bob.Position(nowMillis, mouse)
	in.Node.Position[0] = x
	in.Node.Position[1] = y
}

// World holds every instance and the container group.
type World struct {
	Container *transform.Group
	Instances []*Instance
	Model     *Instance // nil when the variant has no model
}

// Offsets re-anchor shared meshes; a unit box rests on y=0 like the cylinder.
var Offsets = map[string]mgl32.Vec3{
	variant.ShapeBox: {0, 0.5, 0},
}

// Build creates the world for v, drawing per-instance randomness from rng.
func Build(v *variant.Variant, rng mathx.Rand) *World {
	w := &World{Container: transform.NewGroup()}
	if v.Spheres != nil {
		w.addRing(v.Spheres, KindSphere, rng)
	}
	if v.Columns != nil {
		w.addRing(v.Columns, KindColumn, rng)
	}
	for _, s := range v.Singles {
		scale := mgl32.Vec3(s.Scale)
		if scale == (mgl32.Vec3{}) {
			scale = mgl32.Vec3{1, 1, 1}
		}
		w.add(&Instance{Kind: KindSingle, Shape: s.Shape, Node: newNode(s.Shape, mgl32.Vec3(s.Position), scale)})
	}
	if m := v.Model; m != nil {
		n := transform.NewNode(mgl32.Vec3(m.Offset), mgl32.Vec3{m.Scale, m.Scale, m.Scale})
		n.Rotation[1] = mathx.ToRadians(m.YawDeg)
		w.Model = &Instance{ID: uuid.New(), Kind: KindModel, Node: n, InContainer: m.InContainer}
	}
	return w
}

func (w *World) addRing(r *variant.Ring, kind Kind, rng mathx.Rand) {
	for _, p := range layout.Radial(r.Count, r.Radius, layout.Random(r.Y, rng), layout.Random(r.Scale, rng)) {
		scale := mgl32.Vec3{p.Scale, p.Scale, p.Scale}
		if r.Shape != variant.ShapeSphere {
			scale = mgl32.Vec3{1, p.Scale, 1}
		}
		in := &Instance{Kind: kind, Shape: r.Shape, Node: newNode(r.Shape, mgl32.Vec3(p.Position), scale), InContainer: r.InContainer}
		if r.Bob {
			b := motion.NewBob(p.Position[0], p.Position[1], rng)
			in.Bob = &b
		}
		w.add(in)
	}
}

func newNode(shape string, p, scale mgl32.Vec3) *transform.Node {
	n := transform.NewNode(p, scale)
	n.Offset = Offsets[shape]
	return n
}

func (w *World) add(in *Instance) {
	in.ID = uuid.New()
	w.Instances = append(w.Instances, in)
	if in.InContainer {
		w.Container.Add(in.Node)
	}
}

// Update advances every bobbing instance, then swings the container with the pointer.
func (w *World) Update(nowMillis float64, mouse motion.Vec2) {
	for _, in := range w.Instances {
		in.Update(nowMillis, mouse)
	}
	w.Container.Rotation[1] = motion.ContainerYaw(mouse.X)
}

// WorldMatrix returns the instance's matrix with the container applied when it belongs to it.
func (w *World) WorldMatrix(in *Instance) mgl32.Mat4 {
	if in.InContainer {
		return w.Container.World(in.Node)
	}
	return in.Node.Matrix()
}

// Find returns the instance with the given ID, including the model.
func (w *World) Find(id uuid.UUID) (*Instance, bool) {
	for _, in := range w.Instances {
		if in.ID == id {
			return in, true
		}
	}
	if w.Model != nil && w.Model.ID == id {
		return w.Model, true
	}
	return nil, false
}
