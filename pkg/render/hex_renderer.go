package render

import (
	"fmt"
	"image/color"

	"go-hex-strategy/internal/config"
	"go-hex-strategy/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HexRenderer draws a game.Frame. The board never changes after generation,
// so tiles are rendered once into mapImage and blitted every frame.
type HexRenderer struct {
	screenWidth  int
	screenHeight int
	whiteImg     *ebiten.Image
	fillVs       []ebiten.Vertex
	fillIs       []uint16
	strokeVs     []ebiten.Vertex
	strokeIs     []uint16
	fontFace     font.Face
	mapImage     *ebiten.Image // Поле для предрендеренной карты
	ShowCoords   bool
}

func NewHexRenderer(screenWidth, screenHeight int) *HexRenderer {
	whiteImg := ebiten.NewImage(1, 1)
	whiteImg.Fill(color.White)

	return &HexRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		whiteImg:     whiteImg,
		fillVs:       make([]ebiten.Vertex, 0, 18),
		fillIs:       make([]uint16, 0, 18),
		strokeVs:     make([]ebiten.Vertex, 0, 36),
		strokeIs:     make([]uint16, 0, 36),
		fontFace:     basicfont.Face7x13,
	}
}

// RenderMapImage создаёт предрендеренное изображение доски
func (r *HexRenderer) RenderMapImage(f game.Frame) {
	if r.mapImage == nil {
		r.mapImage = ebiten.NewImage(r.screenWidth, r.screenHeight)
	}
	r.mapImage.Clear()

	for _, tile := range f.Tiles {
		path := hexPath(tile.Corners)
		r.fillPath(r.mapImage, path, tile.Color)
		r.strokePath(r.mapImage, path, float32(config.StrokeWidth), config.TileStrokeColor)
		if r.ShowCoords {
			label := fmt.Sprintf("%d,%d", tile.Coord.Q, tile.Coord.R)
			r.drawLabel(r.mapImage, label, tile.X, tile.Y, labelColor(tile.Color))
		}
	}
}

// Invalidate forces the tile layer to be rebuilt on the next Draw.
func (r *HexRenderer) Invalidate() {
	if r.mapImage != nil {
		r.mapImage.Deallocate()
		r.mapImage = nil
	}
}

func (r *HexRenderer) Draw(screen *ebiten.Image, f game.Frame) {
	screen.Fill(config.BackgroundColor)

	if r.mapImage == nil {
		r.RenderMapImage(f)
	}
	// Рисуем предрендеренную карту одним вызовом
	screen.DrawImage(r.mapImage, nil)

	for _, ind := range f.Indicators {
		vector.DrawFilledCircle(screen, float32(ind.X), float32(ind.Y),
			float32(f.TileSize*config.IndicatorRadiusRatio), config.IndicatorColor, true)
	}

	if f.Hover.Visible {
		r.strokePath(screen, hexPath(f.Hover.Corners), config.HoverStrokeWidth, config.HoverColor)
	}

	for _, p := range f.Pieces {
		fill := config.PieceColor
		if p.Selected {
			fill = config.SelectedPieceColor
		}
		radius := float32(f.TileSize * config.PieceRadiusRatio)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), radius, fill, true)
		vector.StrokeCircle(screen, float32(p.X), float32(p.Y), radius, float32(config.StrokeWidth), DarkenColor(fill), true)
		r.drawLabel(screen, p.Type.String()[:1], p.X, p.Y, config.TextDarkColor)
		r.drawLabel(screen, p.Name, p.X, p.Y+f.TileSize*0.75, config.TextLightColor)
	}
}

// hexPath builds a closed path through the six corners of a hexagon.
func hexPath(corners [6][2]float64) *vector.Path {
	path := &vector.Path{}
	for i, c := range corners {
		if i == 0 {
			path.MoveTo(float32(c[0]), float32(c[1]))
		} else {
			path.LineTo(float32(c[0]), float32(c[1]))
		}
	}
	path.Close()
	return path
}

func (r *HexRenderer) fillPath(target *ebiten.Image, path *vector.Path, c color.RGBA) {
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paintVertices(r.fillVs, c)
	target.DrawTriangles(r.fillVs, r.fillIs, r.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *HexRenderer) strokePath(target *ebiten.Image, path *vector.Path, width float32, c color.RGBA) {
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: width,
	})
	paintVertices(r.strokeVs, c)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func paintVertices(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}

// drawLabel centers s on (x, y).
func (r *HexRenderer) drawLabel(target *ebiten.Image, s string, x, y float64, c color.Color) {
	bounds := text.BoundString(r.fontFace, s)
	text.Draw(target, s, r.fontFace, int(x)-bounds.Dx()/2, int(y)+config.LabelOffsetY, c)
}
