// Package imaging decodes chapter images into terminal-sized pictures.
package imaging

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fwojciec/scrollstory"
)

// Compile-time interface verification.
var _ scrollstory.ImageLoader = (*Loader)(nil)

// Loader decodes images and fits them inside a bounding box, keeping the
// aspect ratio. Bounds are in pixels; a terminal row holds two pixel rows.
type Loader struct {
	width  int
	height int
}

// NewLoader returns a Loader fitting images inside width x height pixels.
func NewLoader(width, height int) *Loader {
	return &Loader{width: width, height: height}
}

// Load decodes the image at path. EXIF orientation is applied before fitting.
func (l *Loader) Load(ctx context.Context, path string) (*scrollstory.Picture, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return toPicture(imaging.Fit(img, l.width, l.height, imaging.Lanczos)), nil
}

// toPicture converts img to hex colors. Mostly transparent pixels are left
// blank so the paper shows through.
func toPicture(img *image.NRGBA) *scrollstory.Picture {
	b := img.Bounds()
	p := &scrollstory.Picture{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pixels: make([]scrollstory.Color, b.Dx()*b.Dy()),
	}
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			c := img.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			p.Pixels[y*p.Width+x] = hex(c)
		}
	}
	return p
}

func hex(c color.NRGBA) scrollstory.Color {
	if c.A < 0x80 {
		return ""
	}
	return scrollstory.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
