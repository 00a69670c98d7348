package palette

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Name classifies the color into a human-readable bucket.
//
// Near-gray colors (saturation < 0.1) are split into White, Black, and Gray
// by value; everything else is bucketed by hue. Classification is total:
// every color maps to exactly one name.
func (c Color) Name() string {
	h, s, v := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hsv()

	if s < 0.1 {
		switch {
		case v > 0.9:
			return "White"
		case v < 0.1:
			return "Black"
		default:
			return "Gray"
		}
	}

	switch {
	case h < 15 || h >= 345:
		return "Red"
	case h < 45:
		return "Orange"
	case h < 75:
		return "Yellow"
	case h < 150:
		return "Green"
	case h < 210:
		return "Cyan"
	case h < 270:
		return "Blue"
	case h < 330:
		return "Magenta"
	default:
		return "Red"
	}
}
