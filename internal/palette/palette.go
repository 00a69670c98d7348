/*
* Extracts dominant colors from an image.
*
* The image is downsampled to a fixed small resolution so the frequency
* count stays bounded regardless of input size.
 */
package palette

import (
	"fmt"
	"image"
	"os"
	"slices"

	"golang.org/x/image/draw"

	// Register decoders; any format the decoders support is accepted.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Side length of the downsampled image used for counting.
const sampleSize = 150

// Color is an RGB triple. Value equality is identity.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return fmt.Sprintf("RGB(%d, %d, %d)", c.R, c.G, c.B)
}

// Dominant is a color and how often it was seen while sampling.
type Dominant struct {
	Color Color
	Count int
}

// Extract reads the image at path and returns its numColors most frequent
// colors, ordered by descending frequency. Ties are broken by scan order,
// so the result is deterministic. quality is the pixel sampling stride;
// 1 means every pixel.
func Extract(path string, numColors int, quality int) (_ []Dominant, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error processing image: %w", err)
		}
	}()

	if numColors < 1 {
		return nil, fmt.Errorf("number of colors must be positive, got %d",
			numColors)
	}
	if quality < 1 {
		return nil, fmt.Errorf("quality must be positive, got %d", quality)
	}

	img, err := loadImage(path)
	if err != nil {
		return nil, err
	}

	resized := downsample(img)
	return dominantColors(resized, numColors, quality), nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode image: %w", err)
	}

	logger().Debug("decoded image",
		"format", format,
		"bounds", img.Bounds(),
	)
	return img, nil
}

// downsample scales the image to sampleSize x sampleSize RGB, discarding
// alpha.
func downsample(img image.Image) *image.RGBA {
	resized := image.NewRGBA(image.Rect(0, 0, sampleSize, sampleSize))
	draw.ApproxBiLinear.Scale(
		resized,
		resized.Bounds(),
		img,
		img.Bounds(),
		draw.Src,
		nil,
	)

	return resized
}

// dominantColors counts exact colors over every quality-th pixel in raster
// order and keeps the numColors most frequent.
func dominantColors(img *image.RGBA, numColors int, quality int) []Dominant {
	counts := map[Color]int{}
	firstSeen := map[Color]int{}

	bounds := img.Bounds()
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if i%quality != 0 {
				i += 1
				continue
			}

			offset := img.PixOffset(x, y)
			color := Color{
				R: img.Pix[offset],
				G: img.Pix[offset+1],
				B: img.Pix[offset+2],
			}

			if _, seen := counts[color]; !seen {
				firstSeen[color] = i
			}
			counts[color] += 1

			i += 1
		}
	}

	ranked := make([]Dominant, 0, len(counts))
	for color, count := range counts {
		ranked = append(ranked, Dominant{Color: color, Count: count})
	}

	slices.SortFunc(ranked, func(a, b Dominant) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}

		// First color seen wins ties.
		return firstSeen[a.Color] - firstSeen[b.Color]
	})

	if numColors < len(ranked) {
		ranked = ranked[:numColors]
	}

	return ranked
}
