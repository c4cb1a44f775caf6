package tweak

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutSkipsClosedFolders(t *testing.T) {
	gui, _ := grainPanel(t)
	rows := gui.Layout(0, 0, 200, 20, 0.4)
	require.Len(t, rows, 4)
	assert.Equal(t, RowHeader, rows[0].Kind)
	assert.Equal(t, "light1X", rows[1].Field.Key)
	assert.Equal(t, Rect{X: 80, Y: 24, W: 116, H: 12}, rows[1].Control)
	assert.Equal(t, RowHeader, rows[3].Kind)
	assert.Equal(t, "Grain", rows[3].Folder.Name)
	assert.Equal(t, float32(60), rows[3].Bounds.Y)
}

func TestPressHeaderTogglesFolder(t *testing.T) {
	gui, _ := grainPanel(t)
	rows := gui.Layout(0, 0, 200, 20, 0.4)
	f, err := gui.Press(rows, 10, 65)
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.True(t, gui.Folders()[1].IsOpen())
	assert.Len(t, gui.Layout(0, 0, 200, 20, 0.4), 8)
}

func TestPressAndDragSlider(t *testing.T) {
	gui, set := grainPanel(t)
	rows := gui.Layout(0, 0, 200, 20, 0.4)

	f, err := gui.Press(rows, 10, 30)
	require.NoError(t, err)
	assert.Nil(t, f, "label area is inert")

	f, err = gui.Press(rows, 138, 30)
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, "light1X", f.Key)
	p, _ := set.Vec3At("uLightPos", 0)
	assert.InDelta(t, 0, p[0], 1e-5)

	require.NoError(t, gui.Drag(rows, f, 500))
	p, _ = set.Vec3At("uLightPos", 0)
	assert.InDelta(t, 10, p[0], 1e-5)
	q, _ := set.Vec3At("uLightPos", 1)
	assert.InDelta(t, 10, q[0], 1e-5, "second light untouched")
}

func TestPressCheckbox(t *testing.T) {
	gui, set := grainPanel(t)
	gui.Folders()[1].Open()
	rows := gui.Layout(0, 0, 200, 20, 0.4)
	require.Len(t, rows, 8)
	require.Equal(t, RowCheckbox, rows[7].Kind)

	_, err := gui.Press(rows, 85, 150)
	require.NoError(t, err)
	v, _ := set.Float("uAlpha")
	assert.Equal(t, float32(1), v)
}

func TestHitOutside(t *testing.T) {
	gui, _ := grainPanel(t)
	rows := gui.Layout(0, 0, 200, 20, 0.4)
	assert.Equal(t, -1, Hit(rows, 250, 10))
	f, err := gui.Press(rows, 250, 10)
	assert.NoError(t, err)
	assert.Nil(t, f)
}
