package primitives

import (
	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	sphereRadius   = 1
	sphereRings    = 32
	sphereSlices   = 32
	cylinderRadius = 0.2
	cylinderHeight = 1
	cylinderSlices = 32
)

// Registry maps shape names to meshes. Meshes are created on first use so GPU resources
// are allocated after the window/OpenGL context exists. Every shape is drawn with the one
// shared Material.
type Registry struct {
	meshes map[string]rl.Mesh
	mtl    *Material
}

// NewRegistry returns a registry drawing with mtl.
func NewRegistry(mtl *Material) *Registry {
	return &Registry{meshes: make(map[string]rl.Mesh), mtl: mtl}
}

// Material returns the shared material.
func (r *Registry) Material() *Material {
	return r.mtl
}

func (r *Registry) mesh(shape string) (rl.Mesh, bool) {
	if m, ok := r.meshes[shape]; ok {
		return m, true
	}
	var m rl.Mesh
	switch shape {
	case "sphere":
		m = rl.GenMeshSphere(sphereRadius, sphereRings, sphereSlices)
	case "cylinder":
		// base at y=0, top at y=height
		m = rl.GenMeshCylinder(cylinderRadius, cylinderHeight, cylinderSlices)
	case "box", "cube":
		m = rl.GenMeshCube(1, 1, 1)
	default:
		return rl.Mesh{}, false
	}
	r.meshes[shape] = m
	return m, true
}

// Draw draws one instance of shape with the world matrix m. Must be called between
// BeginMode3D and EndMode3D. Unknown shapes and an invalid material are skipped.
func (r *Registry) Draw(shape string, m mgl32.Mat4) {
	if !r.mtl.Valid() {
		return
	}
	mesh, ok := r.mesh(shape)
	if !ok {
		return
	}
	rl.DrawMesh(mesh, r.mtl.mtl, ToMatrix(m))
}

// Unload frees every generated mesh.
func (r *Registry) Unload() {
	for k, m := range r.meshes {
		rl.UnloadMesh(&m)
		delete(r.meshes, k)
	}
}

// ToMatrix converts a column-major mgl32 matrix to raylib's named-field layout.
func ToMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
