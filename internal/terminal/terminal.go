package terminal

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"grain-scenes/internal/commands"
	"grain-scenes/internal/logger"
)

const (
	BarHeight = 36
	prompt    = "> "
	fontSize  = 18
	padding   = 8
	// log lines drawn above the input bar when open
	maxLinesOnScreen = 12
	lineHeight       = fontSize + 4
)

var (
	barColor  = rl.NewColor(40, 40, 40, 255)
	lineColor = rl.NewColor(80, 80, 80, 255)
	logBg     = rl.NewColor(24, 24, 24, 230)
)

// Terminal is the console bar at the bottom of the screen, toggled with ESC. Submitted
// lines are echoed to the log and run through the command registry.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
}

// New returns a closed Terminal that logs lines and runs them through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen returns true when the console is visible and capturing keys.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Submit runs one console line as if typed.
func (t *Terminal) Submit(line string) {
	t.log.Log(prompt + line)
	args, ok := commands.Parse(line)
	if !ok {
		return
	}
	if args[0] == "help" {
		for _, h := range t.reg.Help() {
			t.log.Log("  " + h)
		}
		return
	}
	if err := t.reg.Execute(args); err != nil {
		t.log.Errorf("%v", err)
	}
}

// Update handles ESC and, when open, typing, paste, backspace and enter. Call once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.open = !t.open
	}
	if !t.open {
		return
	}
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		if pasted := rl.GetClipboardText(); pasted != "" {
			t.inputBuf += pasted
		}
	} else {
		for {
			c := rl.GetCharPressed()
			if c == 0 {
				break
			}
			t.inputBuf += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.inputBuf != "" {
		line := t.inputBuf
		t.inputBuf = ""
		t.Submit(line)
	}
}

// Draw draws the input bar and the most recent log lines above it when open.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	barY := int32(rl.GetScreenHeight()) - BarHeight

	logHeight := int32(maxLinesOnScreen * lineHeight)
	logY := barY - logHeight
	if logY < 0 {
		logHeight, logY = barY, 0
	}
	if logHeight > 0 {
		rl.DrawRectangle(0, logY, screenW, logHeight, logBg)
	}
	lines := t.log.Lines()
	start := 0
	if len(lines) > maxLinesOnScreen {
		start = len(lines) - maxLinesOnScreen
	}
	for i := start; i < len(lines); i++ {
		line := lines[i]
		if len(line) > 200 {
			line = line[:197] + "..."
		}
		y := logY + int32((i-start)*lineHeight) + padding
		rl.DrawText(line, padding, y, fontSize, rl.LightGray)
	}

	rl.DrawRectangle(0, barY, screenW, BarHeight, barColor)
	rl.DrawRectangle(0, barY, screenW, 1, lineColor)
	rl.DrawText(prompt+t.inputBuf+"|", padding, barY+padding, fontSize, rl.White)
}
