package gridgraph_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seamcut/gridgraph"
)

func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]gridgraph.Color
		err  error
	}{
		{"EmptyRows", [][]gridgraph.Color{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]gridgraph.Color{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]gridgraph.Color{{red, blue}, {red}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.FromRows(tc.rows)
			require.ErrorIs(t, err, tc.err)
		})
	}

	_, err := gridgraph.NewGrid(0, 3)
	require.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
	_, err = gridgraph.NewCanvas(3, -1)
	require.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

func TestGrid_ReadBack(t *testing.T) {
	g := rows(t,
		[]gridgraph.Color{red, blue, white},
		[]gridgraph.Color{black, white, red},
	)
	require.Equal(t, 3, g.Width())
	require.Equal(t, 2, g.Height())
	require.Equal(t, blue, g.RGB(1, 0))
	require.Equal(t, red, g.RGB(2, 1))

	g.SetRGB(0, 1, blue)
	require.Equal(t, blue, g.RGB(0, 1))
}

// TestFromImage_OffsetBounds reads an image whose bounds do not start at the origin.
func TestFromImage_OffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(2, 3, 5, 5))
	img.SetNRGBA(2, 3, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	img.SetNRGBA(4, 4, color.NRGBA{R: 200, G: 100, B: 50, A: 128})

	src, err := gridgraph.FromImage(img)
	require.NoError(t, err)
	require.Equal(t, 3, src.Width())
	require.Equal(t, 2, src.Height())
	require.Equal(t, gridgraph.Color{R: 10, G: 20, B: 30}, src.RGB(0, 0))
	// Non-premultiplied channels survive a translucent alpha.
	require.Equal(t, gridgraph.Color{R: 200, G: 100, B: 50}, src.RGB(2, 1))
}

func TestFromImage_Errors(t *testing.T) {
	_, err := gridgraph.FromImage(nil)
	require.ErrorIs(t, err, gridgraph.ErrNilImage)

	_, err = gridgraph.FromImage(image.NewRGBA(image.Rect(0, 0, 0, 4)))
	require.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

func TestCanvas(t *testing.T) {
	c, err := gridgraph.NewCanvas(2, 2)
	require.NoError(t, err)
	require.Equal(t, 2, c.Width())
	require.Equal(t, 2, c.Height())

	c.SetRGB(1, 0, gridgraph.Color{R: 1, G: 2, B: 3})
	require.Equal(t, gridgraph.Color{R: 1, G: 2, B: 3}, c.RGB(1, 0))
	require.Equal(t, color.RGBA{R: 1, G: 2, B: 3, A: 255}, c.Image().RGBAAt(1, 0))

	// The canvas reads back through FromImage unchanged.
	src, err := gridgraph.FromImage(c.Image())
	require.NoError(t, err)
	require.Equal(t, gridgraph.Color{R: 1, G: 2, B: 3}, src.RGB(1, 0))
}
