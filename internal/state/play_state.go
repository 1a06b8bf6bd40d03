// internal/state/play_state.go
package state

import (
	"fmt"
	"log"

	"go-hex-strategy/internal/config"
	"go-hex-strategy/internal/game"
	"go-hex-strategy/internal/ui"
	"go-hex-strategy/pkg/render"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PlayState соответствует интерфейсу State
var _ State = (*PlayState)(nil)

// PlayState feeds ebiten input into the game once per tick and draws its frame.
type PlayState struct {
	sm       *StateMachine
	game     *game.Game
	renderer *render.HexRenderer
	panel    *ui.InfoPanel
	width    int
	height   int
	status   string
}

func NewPlayState(sm *StateMachine, g *game.Game) *PlayState {
	return &PlayState{
		sm:       sm,
		game:     g,
		renderer: render.NewHexRenderer(config.ScreenWidth, config.ScreenHeight),
		panel:    ui.NewInfoPanel(basicfont.Face7x13, g),
		width:    config.ScreenWidth,
		height:   config.ScreenHeight,
	}
}

func (s *PlayState) Enter() {
	// Ничего не делаем при входе
}

func (s *PlayState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.sm.Push(NewPauseState(s.sm, s))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		s.renderer.ShowCoords = !s.renderer.ShowCoords
		s.renderer.Invalidate()
	}

	t := s.game.Update(s.readInput())
	if t.Outcome != game.OutcomeNone {
		s.status = fmt.Sprintf("%s %s", t.Outcome, t.Piece)
	}
	s.panel.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.copyHover()
	}
}

// readInput samples the cursor and the left button edge. A cursor outside
// the window counts as no cursor.
func (s *PlayState) readInput() game.Input {
	x, y := ebiten.CursorPosition()
	return game.Input{
		CursorX:   float64(x),
		CursorY:   float64(y),
		HasCursor: x >= 0 && y >= 0 && x < s.width && y < s.height,
		Width:     s.width,
		Height:    s.height,
		Clicked:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}

func (s *PlayState) copyHover() {
	hex, ok := s.game.Hover.Position()
	if !ok {
		return
	}
	coord := fmt.Sprintf("%d,%d,%d", hex.Q, hex.R, hex.S)
	if err := clipboard.WriteAll(coord); err != nil {
		log.Printf("copy %s to clipboard: %v", coord, err)
		return
	}
	s.status = "copied " + coord
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.game.Frame(s.width, s.height))
	s.panel.Draw(screen)

	// Debug text
	hover := "-"
	if hex, ok := s.game.Hover.Position(); ok {
		hover = hex.String()
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Tick: %d  Hover: %s\n%s", s.game.Tick(), hover, s.status))
}

func (s *PlayState) Exit() {
	// Ничего не делаем при выходе
}
