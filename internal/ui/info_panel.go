// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"go-hex-strategy/internal/config"
	"go-hex-strategy/internal/event"
	"go-hex-strategy/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 90
	panelWidth     = 320
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 18
)

var (
	panelBgColor     = color.RGBA{R: 25, G: 35, B: 45, A: 230}
	panelBorderColor = color.RGBA{R: 70, G: 130, B: 180, A: 255}
)

var _ event.Listener = (*InfoPanel)(nil)

// InfoPanel slides in from the bottom edge while a piece is selected.
type InfoPanel struct {
	IsVisible bool
	TargetID  int
	fontFace  font.Face
	game      *game.Game
	currentY  float64
	targetY   float64
}

// NewInfoPanel creates the panel and subscribes it to selection events.
func NewInfoPanel(face font.Face, g *game.Game) *InfoPanel {
	p := &InfoPanel{
		TargetID: -1,
		fontFace: face,
		game:     g,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
	g.Events.Subscribe(event.PieceSelected, p)
	g.Events.Subscribe(event.SelectionCleared, p)
	g.Events.Subscribe(event.PieceMoved, p)
	return p
}

func (p *InfoPanel) OnEvent(e event.Event) {
	data, ok := e.Data.(event.PieceEvent)
	if !ok {
		return
	}
	switch e.Type {
	case event.PieceSelected:
		p.TargetID = data.PieceID
		p.IsVisible = true
		p.targetY = config.ScreenHeight - panelHeight
	case event.SelectionCleared, event.PieceMoved:
		p.targetY = config.ScreenHeight
	}
}

func (p *InfoPanel) Update() {
	// Анимация панели
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	if math.Abs(diff) < animationSpeed {
		p.currentY = p.targetY
	} else if diff > 0 {
		p.currentY += animationSpeed
	} else {
		p.currentY -= animationSpeed
	}
	if p.currentY >= config.ScreenHeight {
		p.IsVisible = false
		p.TargetID = -1
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	rect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		panelMargin+panelWidth,
		int(p.currentY)+panelHeight-panelMargin,
	)
	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), panelBgColor, true)
	vector.StrokeRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), 2, panelBorderColor, true)

	piece := p.target()
	if piece == nil {
		return
	}
	x := rect.Min.X + 12
	y := rect.Min.Y + lineHeight
	text.Draw(screen, fmt.Sprintf("%s (%s)", piece.Name, piece.Type), p.fontFace, x, y, config.TextLightColor)
	y += lineHeight
	resource := "-"
	if r, ok := p.game.Board.ResourceAt(piece.Coord); ok {
		resource = r.String()
	}
	text.Draw(screen, fmt.Sprintf("At %s on %s", piece.Coord, resource), p.fontFace, x, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Range %d, %d reachable", piece.MoveRange, len(p.game.Selection.Indicators())), p.fontFace, x, y, config.TextLightColor)
}

func (p *InfoPanel) target() *game.GamePiece {
	for _, piece := range p.game.Pieces {
		if piece.ID == p.TargetID {
			return piece
		}
	}
	return nil
}
