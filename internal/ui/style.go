package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"grain-scenes/internal/stylesheet"
)

// ComputedStyle holds resolved values used for drawing.
// LeftPct/TopPct: 0–100 for percentage positioning; -1 means use Left/Top as pixels.
type ComputedStyle struct {
	Background rl.Color
	Color      rl.Color
	Border     rl.Color
	HasBorder  bool
	Accent     rl.Color // slider fill, checkbox tick
	Width      int32
	Height     int32
	Left       int32
	Top        int32
	LeftPct    int32
	TopPct     int32
	Padding    int32
	FontSize   int32
}

// DefaultComputedStyle returns a minimal style (transparent background, white text, no border).
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Background: rl.NewColor(0, 0, 0, 0),
		Color:      rl.White,
		Border:     rl.Black,
		Accent:     rl.NewColor(47, 161, 214, 255),
		LeftPct:    -1,
		TopPct:     -1,
		Padding:    4,
		FontSize:   defaultFontSize,
	}
}

func toColor(s string) (rl.Color, bool) {
	c, ok := stylesheet.Color(s)
	if !ok {
		return rl.Color{}, false
	}
	return rl.NewColor(c[0], c[1], c[2], c[3]), true
}

// ResolveProps builds a ComputedStyle from a merged property map.
func ResolveProps(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	for k, v := range props {
		switch k {
		case "background", "background-color":
			if c, ok := toColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := toColor(v); ok {
				out.Color = c
			}
		case "border", "border-color":
			if c, ok := toColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "accent-color":
			if c, ok := toColor(v); ok {
				out.Accent = c
			}
		case "width":
			if n, ok := stylesheet.Px(v); ok {
				out.Width = n
			}
		case "height":
			if n, ok := stylesheet.Px(v); ok {
				out.Height = n
			}
		case "left":
			if pct, ok := stylesheet.Pct(v); ok {
				out.LeftPct = pct
			} else if n, ok := stylesheet.Px(v); ok {
				out.Left = n
			}
		case "top":
			if pct, ok := stylesheet.Pct(v); ok {
				out.TopPct = pct
			} else if n, ok := stylesheet.Px(v); ok {
				out.Top = n
			}
		case "padding":
			if n, ok := stylesheet.Px(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := stylesheet.Px(v); ok && n > 0 {
				out.FontSize = n
			}
		}
	}
	return out
}
