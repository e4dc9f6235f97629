package gridgraph

import (
	"image"
	"image/color"
)

// Grid is an in-memory PixelSink stored row-major.
type Grid struct {
	w, h int
	px   []Color
}

// NewGrid returns a w×h grid of black pixels.
// Returns ErrEmptyGrid if w or h is not positive.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid{w: w, h: h, px: make([]Color, w*h)}, nil
}

// FromRows copies rows[y][x] into a new Grid.
//
// Errors:
//   - ErrEmptyGrid if there are no rows or the first row is empty.
//   - ErrNonRectangular if rows differ in length.
func FromRows(rows [][]Color) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	g := &Grid{w: w, h: len(rows), px: make([]Color, 0, w*len(rows))}
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		g.px = append(g.px, row...)
	}

	return g, nil
}

// Fill returns a w×h grid with every pixel set to c.
func Fill(w, h int, c Color) (*Grid, error) {
	g, err := NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	for i := range g.px {
		g.px[i] = c
	}

	return g, nil
}

func (g *Grid) Width() int               { return g.w }
func (g *Grid) Height() int              { return g.h }
func (g *Grid) RGB(x, y int) Color       { return g.px[y*g.w+x] }
func (g *Grid) SetRGB(x, y int, c Color) { g.px[y*g.w+x] = c }

// imageSource reads an image.Image through its non-premultiplied RGBA model.
// Coordinates are relative to the image bounds' minimum point.
type imageSource struct {
	img  image.Image
	min  image.Point
	w, h int
}

// FromImage adapts img to a PixelSource. Alpha is dropped.
//
// Errors:
//   - ErrNilImage if img is nil.
//   - ErrEmptyGrid if img has empty bounds.
func FromImage(img image.Image) (PixelSource, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyGrid
	}

	return &imageSource{img: img, min: b.Min, w: b.Dx(), h: b.Dy()}, nil
}

func (s *imageSource) Width() int  { return s.w }
func (s *imageSource) Height() int { return s.h }

func (s *imageSource) RGB(x, y int) Color {
	c := color.NRGBAModel.Convert(s.img.At(s.min.X+x, s.min.Y+y)).(color.NRGBA)

	return Color{R: c.R, G: c.G, B: c.B}
}

// Canvas is a PixelSink backed by an opaque *image.RGBA, ready for encoding.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas returns a w×h canvas.
// Returns ErrEmptyGrid if w or h is not positive.
func NewCanvas(w, h int) (*Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}, nil
}

func (c *Canvas) Width() int  { return c.img.Rect.Dx() }
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

func (c *Canvas) RGB(x, y int) Color {
	p := c.img.RGBAAt(x, y)

	return Color{R: p.R, G: p.G, B: p.B}
}

func (c *Canvas) SetRGB(x, y int, col Color) {
	c.img.SetRGBA(x, y, color.RGBA{R: col.R, G: col.G, B: col.B, A: 0xff})
}

// Image returns the backing image. Writes through SetRGB remain visible.
func (c *Canvas) Image() *image.RGBA { return c.img }
