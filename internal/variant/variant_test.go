package variant

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"grain", "lightgrain", "sandbox"}, Names())
}

func TestAllVariantsLoad(t *testing.T) {
	for _, name := range Names() {
		v, err := Load(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, v.Name)
		_, err = v.BuildUniforms(1280, 720)
		require.NoError(t, err, name)
	}
}

func TestGrainKeepsSourceConstants(t *testing.T) {
	v, err := Load("grain")
	require.NoError(t, err)

	assert.Equal(t, float32(50), v.Camera.FOV)
	assert.Equal(t, [3]float32{4, 1.5, 5.5}, v.Camera.Position)

	require.NotNil(t, v.Spheres)
	assert.Equal(t, 5, v.Spheres.Count)
	assert.Equal(t, float32(3), v.Spheres.Radius)
	assert.True(t, v.Spheres.Bob)
	assert.Equal(t, float32(0.3), v.Spheres.Scale.Min)
	assert.Equal(t, float32(0.6), v.Spheres.Scale.Max)

	require.NotNil(t, v.Columns)
	assert.Equal(t, ShapeCylinder, v.Columns.Shape)
	assert.Equal(t, float32(6), v.Columns.Radius)
	assert.Equal(t, float32(-2), v.Columns.Y.Min)
	assert.True(t, v.Columns.InContainer)

	require.NotNil(t, v.Model)
	assert.Equal(t, float32(0.0025), v.Model.Scale)
	assert.Equal(t, float32(-90), v.Model.YawDeg)

	k, ok := v.KnobValue("uNoiseMax")
	require.True(t, ok)
	assert.Equal(t, float32(4), k.Value)
	k, ok = v.KnobValue("uAlpha")
	require.True(t, ok)
	assert.True(t, k.IsBool())

	require.Len(t, v.Panel, 2)
	assert.Equal(t, "Lights position X", v.Panel[0].Name)
	assert.Equal(t, "uLightPos[1].x", v.Panel[0].Fields[1].Target)
	assert.Equal(t, float32(20), v.Panel[1].Fields[0].Max)
}

func TestGrainUniforms(t *testing.T) {
	v, err := Load("grain")
	require.NoError(t, err)
	set, err := v.BuildUniforms(1280, 720)
	require.NoError(t, err)

	p0, ok := set.Vec3At("uLightPos", 0)
	require.True(t, ok)
	// The panel holds 0.7 but the uniform keeps its own start value until the slider moves.
	assert.Equal(t, [3]float32{0, 3, 1}, p0)

	coef, _ := set.Float("uNoiseCoef")
	assert.Equal(t, float32(3.3), coef)
	res := set.Slot("uResolution")
	require.NotNil(t, res)
	assert.Equal(t, []float32{32, 18}, res.Values)
	assert.Nil(t, set.Slot("uSpotPos"))
}

func TestLightGrainSpotLight(t *testing.T) {
	v, err := Load("lightgrain")
	require.NoError(t, err)
	assert.Equal(t, ShapeBox, v.Columns.Shape)
	assert.Empty(t, v.Panel)

	set, err := v.BuildUniforms(800, 600)
	require.NoError(t, err)
	col, ok := set.Vec3At("uSpotColor", 0)
	require.True(t, ok)
	assert.Equal(t, [3]float32{2, 0, 0}, col)
	max, _ := set.Float("uNoiseMax")
	assert.Equal(t, float32(22.09), max)
	assert.Equal(t, []float32{800, 600}, set.Slot("uResolution").Values)
}

func TestSandboxDropsRingsWithoutTouchingBase(t *testing.T) {
	v, err := Load("sandbox")
	require.NoError(t, err)
	assert.Nil(t, v.Spheres)
	assert.Nil(t, v.Columns)
	assert.Len(t, v.Singles, 2)
	assert.False(t, v.EaseMouse)
	assert.True(t, v.Stats)

	b, err := Base()
	require.NoError(t, err)
	assert.True(t, b.EaseMouse)
	assert.Empty(t, b.Singles)

	g, err := Load("grain")
	require.NoError(t, err)
	assert.NotNil(t, g.Spheres)
}

func TestUnknownVariant(t *testing.T) {
	_, err := Load("nope")
	assert.ErrorIs(t, err, ErrUnknownVariant)
	_, err = Load("base")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestLoadFileValidates(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("name: mine\nspheres:\n  shape: sphere\n  count: 8\n  radius: 2\n"), 0644))
	v, err := LoadFile(good)
	require.NoError(t, err)
	assert.Equal(t, "mine", v.Name)
	assert.Equal(t, 8, v.Spheres.Count)
	assert.Equal(t, float32(50), v.Camera.FOV, "unset fields come from base")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("name: bad\ncolumns:\n  shape: torus\n"), 0644))
	_, err = LoadFile(bad)
	assert.Error(t, err)

	inverted := filepath.Join(dir, "inverted.yaml")
	require.NoError(t, os.WriteFile(inverted, []byte("name: inv\npanel:\n  - folder: x\n    fields:\n      - {key: a, min: 2, max: 1, target: a}\n"), 0644))
	_, err = LoadFile(inverted)
	assert.Error(t, err)
}
