package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Config sizes and titles the window.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	TargetFPS  int32
}

// Run opens a resizable window and runs the frame loop. Each frame it calls update, then
// clears the screen to clear() and calls draw. setup runs once after the GL context exists
// and teardown before the window closes. ESC is left to the console; close via the window.
func Run(cfg Config, setup func(), update func(), clear func() rl.Color, draw func(), teardown func()) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	w, h := int32(cfg.Width), int32(cfg.Height)
	if cfg.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(w, h, cfg.Title)
	defer rl.CloseWindow()
	if cfg.Fullscreen {
		m := rl.GetCurrentMonitor()
		rl.SetWindowSize(rl.GetMonitorWidth(m), rl.GetMonitorHeight(m))
	}

	rl.SetExitKey(rl.KeyNull)
	fps := cfg.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	rl.SetTargetFPS(fps)

	if setup != nil {
		setup()
	}
	if teardown != nil {
		defer teardown()
	}
	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(clear())
		draw()
		rl.EndDrawing()
	}
}
