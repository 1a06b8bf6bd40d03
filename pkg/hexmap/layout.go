// pkg/hexmap/layout.go
package hexmap

import "math"

// Layout ties board geometry to a window. The board center sits at the
// window center and the Y axis points down, like screen coordinates.
type Layout struct {
	TileSize float64
	Width    int
	Height   int
	Radius   int
}

// NewLayout builds a layout for the given settings and window size.
func NewLayout(settings BoardSettings, width, height int) Layout {
	return Layout{
		TileSize: settings.TileSize,
		Width:    width,
		Height:   height,
		Radius:   settings.BoardRadius,
	}
}

// PixelToHex конвертирует пиксельные координаты окна в ближайший гекс, без проверки границ доски
func PixelToHex(x, y float64, width, height int, hexSize float64) Hex {
	x -= float64(width) / 2
	y -= float64(height) / 2
	q := (Sqrt3/3*x - 1.0/3*y) / hexSize
	r := (2.0 / 3 * y) / hexSize
	return cubeRound(q, r, -q-r)
}

// Pick maps a cursor position to the hex under it. It reports false when the
// hex lies outside the board radius.
func Pick(x, y float64, width, height int, tileSize float64, boardRadius int) (Hex, bool) {
	hex := PixelToHex(x, y, width, height, tileSize)
	if !IsInBounds(hex, boardRadius) {
		return Hex{}, false
	}
	return hex, true
}

func (l Layout) Pick(x, y float64) (Hex, bool) {
	return Pick(x, y, l.Width, l.Height, l.TileSize, l.Radius)
}

// PickCursor is Pick for hosts that may have no cursor at all.
func (l Layout) PickCursor(x, y float64, hasCursor bool) (Hex, bool) {
	if !hasCursor {
		return Hex{}, false
	}
	return l.Pick(x, y)
}

// Center returns the window pixel center of hex.
func (l Layout) Center(hex Hex) (x, y float64) {
	x, y = hex.ToPixel(l.TileSize)
	x += float64(l.Width) / 2
	y += float64(l.Height) / 2
	return
}

// Corners returns the six pointy-top vertices of hex in window pixels.
func (l Layout) Corners(hex Hex) [6][2]float64 {
	var corners [6][2]float64
	cx, cy := l.Center(hex)
	for i := 0; i < 6; i++ {
		angle := math.Pi/3*float64(i) + math.Pi/6
		corners[i] = [2]float64{
			cx + l.TileSize*math.Cos(angle),
			cy + l.TileSize*math.Sin(angle),
		}
	}
	return corners
}
