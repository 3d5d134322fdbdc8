// Package binimg loads raster images and thresholds them into binary grids.
package binimg

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// DefaultCutoff is a midpoint luminance threshold suitable for clean
// black-on-white sources.
const DefaultCutoff uint8 = 128

// Load opens and decodes the image at path. The PNG, JPEG, GIF, TIFF and
// BMP decoders are registered via blank imports; any other format fails
// with the decode error.
func Load(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("binimg: opening %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("binimg: decoding %s: %w", path, err)
	}

	return img, nil
}

// Threshold converts img into a binary grid: a pixel is foreground when
// its 8-bit luminance is strictly below cutoff, so dark marks on a light
// background become true. The grid is rectangular with img's bounds;
// empty bounds yield nil, which the labeling core rejects as an empty
// grid.
func Threshold(img image.Image, cutoff uint8) [][]bool {
	bounds := img.Bounds()
	h, w := bounds.Dy(), bounds.Dx()
	if h == 0 || w == 0 {
		return nil
	}

	grid := make([][]bool, h)
	for y := 0; y < h; y++ {
		row := make([]bool, w)
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// ITU-R BT.601 luma on the 16-bit channel values, scaled to 8 bits.
			luma := (299*r + 587*g + 114*b) / 1000 >> 8
			row[x] = uint8(luma) < cutoff
		}
		grid[y] = row
	}

	return grid
}
