package palette_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdresser/devtools/internal/palette"
)

// writePNG writes a test image where each pixel's color is chosen by pick.
func writePNG(
	t *testing.T,
	width, height int,
	pick func(x, y int) color.RGBA,
) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, pick(x, y))
		}
	}

	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, img))
	return path
}

func solidRed(x, y int) color.RGBA {
	return color.RGBA{R: 255, A: 255}
}

func TestExtractSolidColor(t *testing.T) {
	path := writePNG(t, 200, 200, solidRed)

	colors, err := palette.Extract(path, 5, 1)
	require.NoError(t, err)

	require.Len(t, colors, 1)
	assert.Equal(t, palette.Color{R: 255}, colors[0].Color)
	assert.Equal(t, 150*150, colors[0].Count)
}

func TestExtractOrdersByFrequency(t *testing.T) {
	// Two thirds red, one third blue. 150x150 input avoids any resampling
	// blend at the boundary.
	path := writePNG(t, 150, 150, func(x, y int) color.RGBA {
		if x < 100 {
			return color.RGBA{R: 255, A: 255}
		}
		return color.RGBA{B: 255, A: 255}
	})

	colors, err := palette.Extract(path, 5, 1)
	require.NoError(t, err)

	require.Len(t, colors, 2)
	assert.Equal(t, palette.Color{R: 255}, colors[0].Color)
	assert.Equal(t, palette.Color{B: 255}, colors[1].Color)
	assert.Greater(t, colors[0].Count, colors[1].Count)
}

func TestExtractLimitsColorCount(t *testing.T) {
	path := writePNG(t, 150, 150, func(x, y int) color.RGBA {
		switch {
		case x < 70:
			return color.RGBA{R: 255, A: 255}
		case x < 120:
			return color.RGBA{G: 255, A: 255}
		default:
			return color.RGBA{B: 255, A: 255}
		}
	})

	colors, err := palette.Extract(path, 2, 1)
	require.NoError(t, err)

	require.Len(t, colors, 2)
	assert.Equal(t, palette.Color{R: 255}, colors[0].Color)
	assert.Equal(t, palette.Color{G: 255}, colors[1].Color)
}

func TestExtractQualityStride(t *testing.T) {
	path := writePNG(t, 150, 150, solidRed)

	colors, err := palette.Extract(path, 5, 3)
	require.NoError(t, err)

	require.Len(t, colors, 1)
	assert.Equal(t, 150*150/3, colors[0].Count)
}

func TestExtractMissingFile(t *testing.T) {
	_, err := palette.Extract(
		filepath.Join(t.TempDir(), "nope.png"),
		5,
		1,
	)
	assert.Error(t, err)
}

func TestExtractNotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0644))

	_, err := palette.Extract(path, 5, 1)
	assert.Error(t, err)
}

func TestExtractRejectsBadArgs(t *testing.T) {
	path := writePNG(t, 10, 10, solidRed)

	_, err := palette.Extract(path, 0, 1)
	assert.Error(t, err)

	_, err = palette.Extract(path, 5, 0)
	assert.Error(t, err)
}
