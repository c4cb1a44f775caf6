package ui

import (
	_ "embed"
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"grain-scenes/internal/stylesheet"
)

const defaultFontSize = 16

//go:embed panel.css
var defaultCSS string

// Engine holds the stylesheet and draws nodes with raylib. Resolved styles are cached per
// class/id pair and recomputed only when the sheet changes.
type Engine struct {
	sheet *stylesheet.Stylesheet
	cache map[string]ComputedStyle
	font  rl.Font
}

// New creates an engine using the embedded panel stylesheet.
func New() *Engine {
	e := &Engine{}
	sheet, err := stylesheet.ParseString(defaultCSS)
	if err == nil {
		e.SetStylesheet(sheet)
	}
	return e
}

// LoadCSS replaces the stylesheet with the file at path.
func (e *Engine) LoadCSS(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	sheet, err := stylesheet.Parse(f)
	if err != nil {
		return err
	}
	e.SetStylesheet(sheet)
	return nil
}

// LoadFont loads a TTF/OTF for text. Must run after the window exists; on failure the
// engine keeps raylib's default font.
func (e *Engine) LoadFont(path string) error {
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		return os.ErrNotExist
	}
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
	}
	e.font = f
	return nil
}

// Text draws s at (x, y) with the loaded font, or the default one.
func (e *Engine) Text(s string, x, y, size int32, c rl.Color) {
	if e.font.Texture.ID != 0 {
		rl.DrawTextEx(e.font, s, rl.NewVector2(float32(x), float32(y)), float32(size), 1, c)
		return
	}
	rl.DrawText(s, x, y, size, c)
}

func (e *Engine) SetStylesheet(sheet *stylesheet.Stylesheet) {
	e.sheet = sheet
	e.cache = make(map[string]ComputedStyle)
}

// Style resolves the style of a node with the given class and id (either may be empty).
func (e *Engine) Style(class, id string) ComputedStyle {
	key := class + "#" + id
	if s, ok := e.cache[key]; ok {
		return s
	}
	var sels []string
	for _, c := range strings.Fields(class) {
		sels = append(sels, "."+c)
	}
	if id != "" {
		sels = append(sels, "#"+id)
	}
	s := ResolveProps(e.sheet.Lookup(sels...))
	if e.cache == nil {
		e.cache = make(map[string]ComputedStyle)
	}
	e.cache[key] = s
	return s
}

// Draw draws nodes in order: background, 1px border, then text.
func (e *Engine) Draw(nodes ...*Node) {
	for _, n := range nodes {
		style := e.Style(n.Class, n.ID)
		x, y := int32(n.Bounds.X), int32(n.Bounds.Y)
		w, h := int32(n.Bounds.Width), int32(n.Bounds.Height)
		if style.Background.A > 0 && w > 0 && h > 0 {
			rl.DrawRectangle(x, y, w, h, style.Background)
		}
		if style.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, style.Border)
		}
		if n.Text != "" {
			ty := y + (h-style.FontSize)/2
			if h == 0 {
				ty = y + style.Padding
			}
			e.Text(n.Text, x+style.Padding, ty, style.FontSize, style.Color)
		}
	}
}
