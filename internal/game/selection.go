// internal/game/selection.go
package game

import (
	"sort"

	"go-hex-strategy/pkg/hexmap"

	"github.com/zyedidia/generic/mapset"
)

// Outcome says what a click did to the selection.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSelected
	OutcomeDeselected
	OutcomeMoved
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSelected:
		return "selected"
	case OutcomeDeselected:
		return "deselected"
	case OutcomeMoved:
		return "moved"
	default:
		return "none"
	}
}

// Transition is the result of one click. Piece is nil for OutcomeNone.
type Transition struct {
	Outcome Outcome
	Piece   *GamePiece
	From    hexmap.Hex
	To      hexmap.Hex
}

// SelectionController is the Idle / Selected(piece) state machine. It is
// the only writer of piece positions and of the Selected flag.
type SelectionController struct {
	boardRadius int
	// SelfBlocks makes the selected piece's own tile count as occupied, which
	// keeps the origin out of the move-range overlay.
	SelfBlocks bool

	selected   *GamePiece
	indicators mapset.Set[hexmap.Hex]
}

func NewSelectionController(boardRadius int) *SelectionController {
	return &SelectionController{
		boardRadius: boardRadius,
		SelfBlocks:  true,
		indicators:  mapset.New[hexmap.Hex](),
	}
}

// HandleClick applies a click on the hovered hex. ok == false means the
// click landed off the board and is ignored.
//
// While a piece is selected, a click on a legal destination moves it and
// returns to Idle. Any other click drops the current selection and then
// selects whatever piece stands on the clicked hex.
func (c *SelectionController) HandleClick(pieces []*GamePiece, hovered hexmap.Hex, ok bool) Transition {
	if !ok {
		return Transition{}
	}
	hovered.MustBeValid()

	if c.IsLegalMove(hovered) {
		p := c.selected
		from := p.Coord
		p.Coord = hovered
		c.Clear()
		return Transition{Outcome: OutcomeMoved, Piece: p, From: from, To: hovered}
	}

	prev := c.selected
	c.Clear()

	if p, found := pieceAt(pieces, hovered); found {
		c.selectPiece(pieces, p)
		return Transition{Outcome: OutcomeSelected, Piece: p, From: p.Coord, To: p.Coord}
	}
	if prev != nil {
		return Transition{Outcome: OutcomeDeselected, Piece: prev, From: prev.Coord, To: prev.Coord}
	}
	return Transition{}
}

func (c *SelectionController) selectPiece(pieces []*GamePiece, p *GamePiece) {
	for _, other := range pieces {
		other.Selected = false
	}
	p.Selected = true
	c.selected = p
	c.Refresh(pieces)
}

// Refresh recomputes the overlay for the current selection, e.g. after the
// piece set changed. The new set replaces the old one whole.
func (c *SelectionController) Refresh(pieces []*GamePiece) {
	if c.selected == nil {
		c.indicators = mapset.New[hexmap.Hex]()
		return
	}
	var except *GamePiece
	if !c.SelfBlocks {
		except = c.selected
	}
	occupied := occupiedBy(pieces, except)
	c.indicators = ComputeMoveRange(c.selected.Coord, c.selected.MoveRange, c.boardRadius, occupied)
}

// Clear returns to Idle.
func (c *SelectionController) Clear() {
	if c.selected != nil {
		c.selected.Selected = false
	}
	c.selected = nil
	c.indicators = mapset.New[hexmap.Hex]()
}

func (c *SelectionController) Selected() (*GamePiece, bool) {
	return c.selected, c.selected != nil
}

// IsLegalMove reports whether a click on hex would move the selected piece.
// The piece's own tile is never a move, even when the overlay contains it.
func (c *SelectionController) IsLegalMove(hex hexmap.Hex) bool {
	if c.selected == nil || hex == c.selected.Coord {
		return false
	}
	return c.indicators.Has(hex)
}

// Indicators returns the current overlay, row by row.
func (c *SelectionController) Indicators() []hexmap.Hex {
	result := make([]hexmap.Hex, 0, c.indicators.Size())
	c.indicators.Each(func(h hexmap.Hex) {
		result = append(result, h)
	})
	sort.Slice(result, func(i, j int) bool { return result[i].Less(result[j]) })
	return result
}
