package primitives

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Model is a loaded mesh file drawn with the shared material instead of its own.
type Model struct {
	model  rl.Model
	meshes []rl.Mesh
}

// LoadModel uploads the file at path. Must run on the frame thread.
func LoadModel(path string) (*Model, error) {
	m := rl.LoadModel(path)
	if m.MeshCount == 0 || m.Meshes == nil {
		return nil, fmt.Errorf("primitives: %s: no meshes", path)
	}
	return &Model{model: m, meshes: unsafe.Slice(m.Meshes, m.MeshCount)}, nil
}

// DrawModel draws every mesh of mdl with world matrix w using r's material.
func (r *Registry) DrawModel(mdl *Model, w mgl32.Mat4) {
	if mdl == nil || !r.mtl.Valid() {
		return
	}
	mat := ToMatrix(w)
	for _, mesh := range mdl.meshes {
		rl.DrawMesh(mesh, r.mtl.mtl, mat)
	}
}

func (mdl *Model) Unload() {
	if mdl == nil {
		return
	}
	rl.UnloadModel(mdl.model)
	mdl.meshes = nil
}
