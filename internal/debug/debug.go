package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	statsFontSize   = 20
	statsPadding    = 12
	statsLineHeight = statsFontSize + 4
	// refresh text every N frames to limit allocations
	updateInterval = 30
)

// Debug holds the stats overlay (FPS and frame time) and the axes helper. Everything is
// off by default.
type Debug struct {
	ShowStats bool
	AxesSize  float32 // axis length in world units, 0 hides the helper

	frameCount uint32
	fpsText    string
	msText     string
}

func New() *Debug {
	return &Debug{}
}

// SetShowStats sets whether the stats overlay is drawn (top-left, green).
func (d *Debug) SetShowStats(show bool) {
	d.ShowStats = show
}

// DrawAxes draws X (red), Y (green) and Z (blue) from the origin. Call inside BeginMode3D.
func (d *Debug) DrawAxes() {
	if d.AxesSize <= 0 {
		return
	}
	o := rl.NewVector3(0, 0, 0)
	rl.DrawLine3D(o, rl.NewVector3(d.AxesSize, 0, 0), rl.Red)
	rl.DrawLine3D(o, rl.NewVector3(0, d.AxesSize, 0), rl.Green)
	rl.DrawLine3D(o, rl.NewVector3(0, 0, d.AxesSize), rl.Blue)
}

// Draw renders the stats overlay. Call after the scene in the 2D pass.
func (d *Debug) Draw() {
	if !d.ShowStats {
		return
	}
	d.frameCount++
	if d.frameCount%updateInterval == 0 || d.fpsText == "" {
		d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		d.msText = fmt.Sprintf("MS: %.1f", rl.GetFrameTime()*1000)
	}
	rl.DrawRectangle(statsPadding/2, statsPadding/2, 120, 2*statsLineHeight+statsPadding, rl.NewColor(0, 0, 34, 200))
	rl.DrawText(d.fpsText, statsPadding, statsPadding, statsFontSize, rl.Green)
	rl.DrawText(d.msText, statsPadding, statsPadding+statsLineHeight, statsFontSize, rl.Green)
}
