// internal/game/game.go
package game

import (
	"errors"
	"fmt"
	"io"
	"log"

	"go-hex-strategy/internal/event"
	"go-hex-strategy/pkg/hexmap"

	petname "github.com/dustinkirkland/golang-petname"
)

var (
	ErrOffBoard      = errors.New("coordinate is off the board")
	ErrOccupied      = errors.New("coordinate is occupied")
	ErrNegativeRange = errors.New("move range must be >= 0")
)

// SettlerSpawn is where the opening Settler stands.
var SettlerSpawn = hexmap.NewCube(-1, -1, 2)

// Game is the explicit context every update step works on: settings, the
// board, the piece registry, hover and selection state.
type Game struct {
	Settings  hexmap.BoardSettings
	Board     *hexmap.Board
	Pieces    []*GamePiece
	Hover     *HoverTracker
	Selection *SelectionController
	Events    *event.Dispatcher

	logger *log.Logger
	namer  func() string
	tick   int
}

type Option func(*Game)

// WithLogger sets where transitions are logged. The default discards.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

func WithDispatcher(d *event.Dispatcher) Option {
	return func(g *Game) { g.Events = d }
}

// WithSelfBlocks sets whether the selected piece's own tile blocks its overlay.
func WithSelfBlocks(blocks bool) Option {
	return func(g *Game) { g.Selection.SelfBlocks = blocks }
}

// WithNamer replaces the generator used for pieces spawned without a name.
func WithNamer(namer func() string) Option {
	return func(g *Game) { g.namer = namer }
}

// NewGame validates settings and generates the board from rng.
func NewGame(settings hexmap.BoardSettings, rng hexmap.RandomSource, opts ...Option) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	g := &Game{
		Settings:  settings,
		Board:     hexmap.Generate(settings, rng),
		Hover:     &HoverTracker{},
		Selection: NewSelectionController(settings.BoardRadius),
		Events:    event.NewDispatcher(),
		logger:    log.New(io.Discard, "", 0),
		namer:     func() string { return petname.Generate(2, "-") },
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// SpawnPiece places a new piece. An empty name is replaced by a generated one.
func (g *Game) SpawnPiece(kind PieceType, coord hexmap.Hex, moveRange int, name string) (*GamePiece, error) {
	coord.MustBeValid()
	if moveRange < 0 {
		return nil, fmt.Errorf("spawn %s: %w (got %d)", kind, ErrNegativeRange, moveRange)
	}
	if !g.Board.Contains(coord) {
		return nil, fmt.Errorf("spawn %s at %v: %w", kind, coord, ErrOffBoard)
	}
	if _, taken := pieceAt(g.Pieces, coord); taken {
		return nil, fmt.Errorf("spawn %s at %v: %w", kind, coord, ErrOccupied)
	}
	if name == "" {
		name = g.namer()
	}

	p := &GamePiece{
		ID:        len(g.Pieces),
		Name:      name,
		Type:      kind,
		Coord:     coord,
		MoveRange: moveRange,
	}
	g.Pieces = append(g.Pieces, p)
	// A new piece may block part of the current overlay.
	g.Selection.Refresh(g.Pieces)
	g.logger.Printf("spawned %s", p)
	return p, nil
}

// SpawnSettler places the opening Settler.
func (g *Game) SpawnSettler() (*GamePiece, error) {
	return g.SpawnPiece(Settler, SettlerSpawn, DefaultMoveRange, "")
}

// Layout returns the pixel layout for a window of the given size.
func (g *Game) Layout(width, height int) hexmap.Layout {
	return hexmap.NewLayout(g.Settings, width, height)
}

// Update runs one tick: the hover is recomputed first, then a click (if
// any) is applied against that fresh hover.
func (g *Game) Update(in Input) Transition {
	g.tick++
	g.Hover.Update(g.Layout(in.Width, in.Height), in)
	if !in.Clicked {
		return Transition{}
	}
	hovered, ok := g.Hover.Position()
	t := g.Selection.HandleClick(g.Pieces, hovered, ok)
	g.publish(t)
	return t
}

// Tick is the number of updates run so far.
func (g *Game) Tick() int {
	return g.tick
}

func (g *Game) publish(t Transition) {
	var eventType event.EventType
	switch t.Outcome {
	case OutcomeSelected:
		eventType = event.PieceSelected
		g.logger.Printf("[T=%03d] selected %s", g.tick, t.Piece)
	case OutcomeDeselected:
		eventType = event.SelectionCleared
		g.logger.Printf("[T=%03d] cleared selection of %s", g.tick, t.Piece)
	case OutcomeMoved:
		eventType = event.PieceMoved
		g.logger.Printf("[T=%03d] moved %s %q %v -> %v", g.tick, t.Piece.Type, t.Piece.Name, t.From, t.To)
	default:
		return
	}
	g.Events.Dispatch(event.Event{
		Type: eventType,
		Data: event.PieceEvent{
			PieceID: t.Piece.ID,
			Name:    t.Piece.Name,
			From:    t.From,
			To:      t.To,
		},
	})
}
