package binimg_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlabel/binimg"
	"github.com/katalvlaran/lvlabel/label"
)

// checkerboard builds a gray image with black pixels where mark is 1.
func checkerboard(mark [][]int) *image.Gray {
	h, w := len(mark), len(mark[0])
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(255)
			if mark[y][x] == 1 {
				v = 0
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}

	return img
}

func TestThreshold_DarkIsForeground(t *testing.T) {
	img := checkerboard([][]int{
		{1, 0, 1},
		{0, 1, 0},
	})

	grid := binimg.Threshold(img, binimg.DefaultCutoff)
	assert.Equal(t, [][]bool{
		{true, false, true},
		{false, true, false},
	}, grid)
}

func TestThreshold_CutoffBoundary(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.SetGray(0, 0, color.Gray{Y: 99})
	img.SetGray(1, 0, color.Gray{Y: 100})

	grid := binimg.Threshold(img, 100)
	assert.Equal(t, [][]bool{{true, false}}, grid, "foreground is strictly below the cutoff")
}

func TestThreshold_NonZeroOrigin(t *testing.T) {
	img := image.NewGray(image.Rect(3, 5, 5, 7))
	img.SetGray(3, 5, color.Gray{Y: 0})
	img.SetGray(4, 5, color.Gray{Y: 255})
	img.SetGray(3, 6, color.Gray{Y: 255})
	img.SetGray(4, 6, color.Gray{Y: 0})

	grid := binimg.Threshold(img, binimg.DefaultCutoff)
	assert.Equal(t, [][]bool{{true, false}, {false, true}}, grid)
}

func TestThreshold_EmptyBounds(t *testing.T) {
	assert.Nil(t, binimg.Threshold(image.NewGray(image.Rect(0, 0, 0, 0)), 128))
}

func TestLoad_RoundTripPNG(t *testing.T) {
	img := checkerboard([][]int{
		{1, 1, 0},
		{1, 0, 0},
	})
	path := filepath.Join(t.TempDir(), "mask.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	loaded, err := binimg.Load(path)
	require.NoError(t, err)

	grid := binimg.Threshold(loaded, binimg.DefaultCutoff)
	labels, err := label.FourNeighborhood(grid)
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{0, 0, -1},
		{0, -1, -1},
	}, labels)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := binimg.Load(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

func TestLoad_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := binimg.Load(path)
	assert.Error(t, err)
}
