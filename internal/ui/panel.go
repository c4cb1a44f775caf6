package ui

import (
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"grain-scenes/internal/logger"
	"grain-scenes/internal/tweak"
)

const (
	panelRowHeight = 26
	panelLabelFrac = 0.4
	panelMargin    = 0
)

// Panel draws a tweak.GUI in the top-right corner and feeds pointer input back into it.
type Panel struct {
	Visible bool

	gui      *tweak.GUI
	engine   *Engine
	log      logger.Leveled
	rows     []tweak.Row
	dragging *tweak.Field
}

// NewPanel returns a visible panel over gui.
func NewPanel(gui *tweak.GUI, engine *Engine, log logger.Leveled) *Panel {
	if log == nil {
		log = logger.Nop()
	}
	return &Panel{Visible: true, gui: gui, engine: engine, log: log}
}

func (p *Panel) empty() bool {
	return p.gui == nil || len(p.gui.Folders()) == 0
}

func (p *Panel) layout() {
	width := float32(p.engine.Style("panel", "").Width)
	x := float32(rl.GetScreenWidth()) - width - panelMargin
	p.rows = p.gui.Layout(x, panelMargin, width, panelRowHeight, panelLabelFrac)
}

// Update handles the mouse. It reports whether the pointer is over the panel or dragging
// one of its sliders, so the caller can keep the orbit control from reacting.
func (p *Panel) Update() bool {
	if !p.Visible || p.empty() {
		p.dragging = nil
		return false
	}
	p.layout()
	mouse := rl.GetMousePosition()
	if p.dragging != nil {
		if !rl.IsMouseButtonDown(rl.MouseButtonLeft) {
			p.dragging = nil
			return true
		}
		if err := p.gui.Drag(p.rows, p.dragging, mouse.X); err != nil {
			p.log.Warnf("panel: %v", err)
		}
		return true
	}
	over := tweak.Hit(p.rows, mouse.X, mouse.Y) >= 0
	if over && rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		f, err := p.gui.Press(p.rows, mouse.X, mouse.Y)
		if err != nil {
			p.log.Warnf("panel: %v", err)
		}
		p.dragging = f
		p.layout()
	}
	return over
}

// Draw renders folders, sliders and checkboxes with the engine's stylesheet.
func (p *Panel) Draw() {
	if !p.Visible || p.empty() {
		return
	}
	if p.rows == nil {
		p.layout()
	}
	for _, r := range p.rows {
		b := r.Bounds
		switch r.Kind {
		case tweak.RowHeader:
			mark := "> "
			if r.Folder.IsOpen() {
				mark = "v "
			}
			p.engine.Draw(NewNode("folder", "", mark+r.Folder.Name).At(b.X, b.Y, b.W, b.H))
		case tweak.RowSlider:
			p.engine.Draw(NewNode("row", "", r.Field.Key).At(b.X, b.Y, b.W, b.H))
			p.drawSlider(r)
		case tweak.RowCheckbox:
			p.engine.Draw(NewNode("row", "", r.Field.Key).At(b.X, b.Y, b.W, b.H))
			p.drawCheckbox(r)
		}
	}
}

func (p *Panel) drawSlider(r tweak.Row) {
	c := r.Control
	track := p.engine.Style("track", "")
	rl.DrawRectangle(int32(c.X), int32(c.Y), int32(c.W), int32(c.H), track.Background)
	rl.DrawRectangle(int32(c.X), int32(c.Y), int32(c.W*r.Field.Fraction()), int32(c.H), track.Accent)
	label := strconv.FormatFloat(float64(r.Field.Value()), 'f', -1, 32)
	p.engine.Draw(NewNode("value", "", label).At(c.X, c.Y, c.W, c.H))
}

func (p *Panel) drawCheckbox(r tweak.Row) {
	c := r.Control
	box := p.engine.Style("checkbox", "")
	rl.DrawRectangle(int32(c.X), int32(c.Y), int32(c.W), int32(c.H), box.Background)
	if r.Field.Value() != 0 {
		inset := c.W / 4
		rl.DrawRectangle(int32(c.X+inset), int32(c.Y+inset), int32(c.W-2*inset), int32(c.H-2*inset), box.Accent)
	}
}
