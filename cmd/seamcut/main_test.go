package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seamcut/gridgraph"
	"github.com/katalvlaran/seamcut/internal/config"
	"github.com/katalvlaran/seamcut/internal/imagefile"
)

func solid(t *testing.T, path string, w, h int, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	require.NoError(t, imagefile.Save(path, img))
}

func TestRun(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}

	for _, strategy := range []string{config.StrategySequential, config.StrategyConcurrent} {
		t.Run(strategy, func(t *testing.T) {
			dir := t.TempDir()
			src, dst, out := filepath.Join(dir, "src.png"), filepath.Join(dir, "dst.png"), filepath.Join(dir, "out.png")
			solid(t, src, 6, 4, red)
			solid(t, dst, 6, 4, blue)

			var logs bytes.Buffer
			err := run(context.Background(), []string{
				"-source", src, "-target", dst, "-out", out,
				"-source-seed", "0,0,0,3", "-sink-seed", "5,0,5,3",
				"-strategy", strategy, "-workers", "2",
			}, &logs)
			require.NoError(t, err)
			require.Contains(t, logs.String(), "run_id=")
			require.Contains(t, logs.String(), "Composite written")

			img, err := imagefile.Load(out)
			require.NoError(t, err)
			for y := 0; y < 4; y++ {
				require.Equal(t, color.RGBAModel.Convert(red), color.RGBAModel.Convert(img.At(0, y)))
				require.Equal(t, color.RGBAModel.Convert(blue), color.RGBAModel.Convert(img.At(5, y)))
			}
		})
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	src, dst := filepath.Join(dir, "src.png"), filepath.Join(dir, "dst.png")
	solid(t, src, 4, 4, color.RGBA{A: 255})
	solid(t, dst, 3, 4, color.RGBA{A: 255})

	err := run(context.Background(), []string{"-source", src}, &bytes.Buffer{})
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	err = run(context.Background(), []string{
		"-source", src, "-target", dst, "-out", filepath.Join(dir, "out.png"),
		"-source-seed", "0,0,0,0", "-sink-seed", "2,2,2,2",
	}, &bytes.Buffer{})
	require.ErrorIs(t, err, gridgraph.ErrDimensionMismatch)
	require.NoFileExists(t, filepath.Join(dir, "out.png"))
}
