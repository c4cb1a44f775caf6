package primitives

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"grain-scenes/internal/shaders"
	"grain-scenes/internal/uniforms"
)

// Material is the shared grain shader plus the uniform set uploaded before each frame's draws.
type Material struct {
	mtl         rl.Material
	valid       bool
	transparent bool
	set         *uniforms.Set
	locs        map[string]int32
}

// LoadMaterial compiles program (see internal/shaders) and binds it to set.
func LoadMaterial(program string, set *uniforms.Set, transparent bool) (*Material, error) {
	vs, fs, err := shaders.Program(program)
	if err != nil {
		return nil, err
	}
	shader := rl.LoadShaderFromMemory(vs, fs)
	if !rl.IsShaderValid(shader) {
		return nil, fmt.Errorf("primitives: program %s failed to compile", program)
	}
	mtl := rl.LoadMaterialDefault()
	mtl.Shader = shader
	return &Material{
		mtl:         mtl,
		valid:       true,
		transparent: transparent,
		set:         set,
		locs:        make(map[string]int32),
	}, nil
}

func (m *Material) Valid() bool {
	return m != nil && m.valid
}

func (m *Material) Uniforms() *uniforms.Set {
	return m.set
}

func (m *Material) location(name string) int32 {
	if loc, ok := m.locs[name]; ok {
		return loc
	}
	loc := rl.GetShaderLocation(m.mtl.Shader, name)
	m.locs[name] = loc
	return loc
}

// Apply uploads every slot. Names the program does not declare are skipped. Booleans go up
// as floats.
func (m *Material) Apply() {
	if !m.Valid() {
		return
	}
	for _, s := range m.set.Slots() {
		loc := m.location(s.Name)
		if loc < 0 {
			continue
		}
		vals := append([]float32(nil), s.Values...)
		switch s.Kind {
		case uniforms.KindFloat, uniforms.KindBool:
			rl.SetShaderValue(m.mtl.Shader, loc, vals, rl.ShaderUniformFloat)
		case uniforms.KindVec2:
			rl.SetShaderValue(m.mtl.Shader, loc, vals, rl.ShaderUniformVec2)
		case uniforms.KindVec3, uniforms.KindColor:
			rl.SetShaderValueV(m.mtl.Shader, loc, vals, rl.ShaderUniformVec3, int32(s.Count()))
		}
	}
}

// SetViewPos uploads the camera position for programs with specular terms.
func (m *Material) SetViewPos(p [3]float32) {
	if !m.Valid() {
		return
	}
	if loc := m.location("viewPos"); loc >= 0 {
		v := []float32{p[0], p[1], p[2]}
		rl.SetShaderValue(m.mtl.Shader, loc, v, rl.ShaderUniformVec3)
	}
}

// Begin starts alpha blending for transparent materials; pair with End.
func (m *Material) Begin() {
	if m.Valid() && m.transparent {
		rl.BeginBlendMode(rl.BlendAlpha)
	}
}

func (m *Material) End() {
	if m.Valid() && m.transparent {
		rl.EndBlendMode()
	}
}

// Unload frees the shader.
func (m *Material) Unload() {
	if !m.Valid() {
		return
	}
	rl.UnloadShader(m.mtl.Shader)
	m.valid = false
}
