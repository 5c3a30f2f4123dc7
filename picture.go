package scrollstory

import "context"

// Picture is a downscaled image ready to be drawn as terminal cells.
type Picture struct {
	Width  int
	Height int     // In pixels; two pixel rows share one terminal row
	Pixels []Color // Row-major, len == Width*Height
}

// At returns the color at (x, y), or "" when out of bounds.
func (p *Picture) At(x, y int) Color {
	if p == nil || x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return ""
	}
	return p.Pixels[y*p.Width+x]
}

// Rows returns the number of terminal rows needed to draw the picture.
func (p *Picture) Rows() int {
	if p == nil {
		return 0
	}
	return (p.Height + 1) / 2
}

// ImageLoader decodes an image file into a Picture.
type ImageLoader interface {
	Load(ctx context.Context, path string) (*Picture, error)
}
