// Package imagefile reads and writes the driver's PNG and JPEG files.
package imagefile

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ErrUnsupportedFormat indicates an output extension other than .png, .jpg or .jpeg.
var ErrUnsupportedFormat = errors.New("imagefile: unsupported image format")

// JPEGQuality is the quality used by Save for .jpg and .jpeg files.
const JPEGQuality = 95

// Load decodes one PNG or JPEG file; the format is sniffed from its content.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return img, nil
}

// LoadAll decodes every path concurrently and returns the images in order.
// The first failure cancels the rest.
func LoadAll(ctx context.Context, paths ...string) ([]image.Image, error) {
	imgs := make([]image.Image, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := Load(p)
			if err != nil {
				return err
			}
			imgs[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return imgs, nil
}

// Save encodes img by the extension of path and writes it. On an encoding
// error the partial file is removed.
func Save(path string, img image.Image) (err error) {
	var encode func(*os.File) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		encode = func(f *os.File) error { return png.Encode(f, img) }
	case ".jpg", ".jpeg":
		encode = func(f *os.File) error { return jpeg.Encode(f, img, &jpeg.Options{Quality: JPEGQuality}) }
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err = encode(f); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return nil
}
