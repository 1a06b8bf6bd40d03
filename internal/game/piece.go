// internal/game/piece.go
package game

import (
	"fmt"

	"go-hex-strategy/pkg/hexmap"
)

type PieceType int

const (
	Settler PieceType = iota
)

func (t PieceType) String() string {
	switch t {
	case Settler:
		return "Settler"
	default:
		return fmt.Sprintf("PieceType(%d)", int(t))
	}
}

// Sprite is the sprite identity the host draws for this type.
func (t PieceType) Sprite() string {
	switch t {
	case Settler:
		return "pieces/pawn.png"
	default:
		return ""
	}
}

// DefaultMoveRange is the range a piece gets when the scenario does not say otherwise.
const DefaultMoveRange = 1

// GamePiece is a movable unit on the board. Coord is the only field that
// changes during play, and only through a legal move.
type GamePiece struct {
	ID        int
	Name      string
	Type      PieceType
	Coord     hexmap.Hex
	MoveRange int
	Selected  bool
}

func (p *GamePiece) String() string {
	return fmt.Sprintf("%s %q at %v", p.Type, p.Name, p.Coord)
}

// pieceAt returns the first piece standing on hex.
func pieceAt(pieces []*GamePiece, hex hexmap.Hex) (*GamePiece, bool) {
	for _, p := range pieces {
		if p.Coord == hex {
			return p, true
		}
	}
	return nil, false
}
