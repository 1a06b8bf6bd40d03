// internal/game/frame.go
package game

import (
	"image/color"

	"go-hex-strategy/pkg/hexmap"
)

// Frame is everything the host needs to draw one tick. It fixes the data,
// not how it is drawn.
type Frame struct {
	TileSize   float64
	Tiles      []TileView
	Hover      HoverView
	Indicators []IndicatorView
	Pieces     []PieceView
}

type TileView struct {
	Coord    hexmap.Hex
	X, Y     float64
	Corners  [6][2]float64
	Resource hexmap.Resource
	Color    color.RGBA
}

type HoverView struct {
	Coord   hexmap.Hex
	X, Y    float64
	Corners [6][2]float64
	Visible bool
}

type IndicatorView struct {
	Coord hexmap.Hex
	X, Y  float64
}

type PieceView struct {
	ID       int
	Name     string
	Type     PieceType
	Sprite   string
	X, Y     float64
	Selected bool
}

// Frame snapshots the settled state for a window of the given size.
func (g *Game) Frame(width, height int) Frame {
	layout := g.Layout(width, height)
	f := Frame{TileSize: g.Settings.TileSize}

	coords := g.Board.Coords()
	f.Tiles = make([]TileView, 0, len(coords))
	for _, coord := range coords {
		tile := g.Board.Tiles[coord]
		x, y := layout.Center(coord)
		f.Tiles = append(f.Tiles, TileView{
			Coord:    coord,
			X:        x,
			Y:        y,
			Corners:  layout.Corners(coord),
			Resource: tile.Resource,
			Color:    shade(tile.Resource.Color(), tile.Shade),
		})
	}

	if hovered, ok := g.Hover.Position(); ok {
		x, y := layout.Center(hovered)
		f.Hover = HoverView{Coord: hovered, X: x, Y: y, Corners: layout.Corners(hovered), Visible: true}
	}

	for _, hex := range g.Selection.Indicators() {
		x, y := layout.Center(hex)
		f.Indicators = append(f.Indicators, IndicatorView{Coord: hex, X: x, Y: y})
	}

	for _, p := range g.Pieces {
		x, y := layout.Center(p.Coord)
		f.Pieces = append(f.Pieces, PieceView{
			ID:       p.ID,
			Name:     p.Name,
			Type:     p.Type,
			Sprite:   p.Type.Sprite(),
			X:        x,
			Y:        y,
			Selected: p.Selected,
		})
	}
	return f
}

// shade darkens c by up to 20% depending on the tile's noise value.
func shade(c color.RGBA, amount float64) color.RGBA {
	k := 0.8 + 0.2*amount
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}
