// Package background renders the full-screen backdrop image: a photo or a vertical
// gradient, optionally dusted with monochrome noise.
package background

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blend"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/noise"
	"github.com/anthonynsimon/bild/transform"

	"grain-scenes/internal/palette"
)

// Options describe one backdrop.
type Options struct {
	Width, Height int
	Color         string  // gradient top colour, "#rrggbb"
	Image         string  // optional file, resized to Width x Height
	Grain         float64 // noise opacity in [0, 1]
}

// fallbackBottom darkens the gradient toward the bottom edge.
const fallbackBottom = 0.7

// Compose builds the backdrop. A missing or unreadable image falls back to the gradient and
// is reported through the returned error alongside a usable image.
func Compose(o Options) (image.Image, error) {
	if o.Width <= 0 || o.Height <= 0 {
		return nil, fmt.Errorf("background: bad size %dx%d", o.Width, o.Height)
	}
	var (
		img     image.Image
		loadErr error
	)
	if o.Image != "" {
		src, err := imgio.Open(o.Image)
		if err != nil {
			loadErr = fmt.Errorf("background: %w", err)
		} else {
			img = transform.Resize(src, o.Width, o.Height, transform.Linear)
		}
	}
	if img == nil {
		top, ok := palette.Float3(o.Color)
		if !ok {
			top = [3]float32{1, 1, 1}
		}
		img = Gradient(o.Width, o.Height, top, [3]float32{top[0] * fallbackBottom, top[1] * fallbackBottom, top[2] * fallbackBottom})
	}
	if o.Grain > 0 {
		n := noise.Generate(o.Width, o.Height, &noise.Options{Monochrome: true, NoiseFn: noise.Uniform})
		img = blend.Opacity(img, n, o.Grain)
	}
	return img, loadErr
}

// Gradient fills a w x h image from top to bottom colour (components in [0, 1]).
func Gradient(w, h int, top, bottom [3]float32) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		t := float32(0)
		if h > 1 {
			t = float32(y) / float32(h-1)
		}
		c := color.RGBA{
			R: channel(top[0] + (bottom[0]-top[0])*t),
			G: channel(top[1] + (bottom[1]-top[1])*t),
			B: channel(top[2] + (bottom[2]-top[2])*t),
			A: 255,
		}
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
