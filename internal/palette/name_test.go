package palette_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mdresser/devtools/internal/palette"
)

func TestName(t *testing.T) {
	cases := []struct {
		color    palette.Color
		expected string
	}{
		{palette.Color{255, 0, 0}, "Red"},       // hue 0
		{palette.Color{255, 128, 0}, "Orange"},  // hue ~30
		{palette.Color{255, 255, 0}, "Yellow"},  // hue 60
		{palette.Color{0, 255, 0}, "Green"},     // hue 120
		{palette.Color{0, 255, 255}, "Cyan"},    // hue 180
		{palette.Color{0, 0, 255}, "Blue"},      // hue 240
		{palette.Color{128, 0, 255}, "Magenta"}, // hue ~270
		{palette.Color{255, 0, 255}, "Magenta"}, // hue 300
		{palette.Color{255, 0, 64}, "Red"},      // hue ~345, wraps to Red
		{palette.Color{255, 255, 255}, "White"},
		{palette.Color{250, 250, 250}, "White"},
		{palette.Color{0, 0, 0}, "Black"},
		{palette.Color{10, 10, 10}, "Black"},
		{palette.Color{128, 128, 128}, "Gray"},
	}

	for _, tc := range cases {
		t.Run(tc.expected+" "+tc.color.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.color.Name())
		})
	}
}

// The hue bucket edges (15, 45, 75, 150, 210, 270, 330) fall between
// hues representable from 8-bit RGB, so each edge is pinned by the nearest
// representable color on either side.
func TestNameHueBoundaries(t *testing.T) {
	cases := []struct {
		color    palette.Color
		expected string
	}{
		{palette.Color{255, 63, 0}, "Red"},      // hue ~14.82
		{palette.Color{255, 64, 0}, "Orange"},   // hue ~15.06
		{palette.Color{255, 191, 0}, "Orange"},  // hue ~44.94
		{palette.Color{255, 192, 0}, "Yellow"},  // hue ~45.18
		{palette.Color{192, 255, 0}, "Yellow"},  // hue ~74.82
		{palette.Color{191, 255, 0}, "Green"},   // hue ~75.06
		{palette.Color{0, 255, 127}, "Green"},   // hue ~149.88
		{palette.Color{0, 255, 128}, "Cyan"},    // hue ~150.12
		{palette.Color{0, 128, 255}, "Cyan"},    // hue ~209.88
		{palette.Color{0, 127, 255}, "Blue"},    // hue ~210.12
		{palette.Color{127, 0, 255}, "Blue"},    // hue ~269.88
		{palette.Color{128, 0, 255}, "Magenta"}, // hue ~270.12
		{palette.Color{255, 0, 128}, "Magenta"}, // hue ~329.88
		{palette.Color{255, 0, 127}, "Red"},     // hue ~330.12
	}

	for _, tc := range cases {
		t.Run(tc.expected+" "+tc.color.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.color.Name())
		})
	}
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff0000", palette.Color{255, 0, 0}.Hex())
	assert.Equal(t, "#000000", palette.Color{}.Hex())
	assert.Equal(t, "#0a1b2c", palette.Color{10, 27, 44}.Hex())
}

func TestString(t *testing.T) {
	assert.Equal(t, "RGB(1, 2, 3)", palette.Color{1, 2, 3}.String())
}
