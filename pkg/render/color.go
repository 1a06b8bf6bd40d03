// pkg/render/color.go
package render

import (
	"image/color"

	"go-hex-strategy/internal/config"
)

// labelColor picks dark text on bright fills and light text on dark ones.
func labelColor(fill color.RGBA) color.RGBA {
	if (int(fill.R)+int(fill.G)+int(fill.B))/3 > 128 {
		return config.TextDarkColor
	}
	return config.TextLightColor
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
