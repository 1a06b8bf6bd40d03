// internal/game/moverange.go
package game

import (
	"fmt"

	"go-hex-strategy/pkg/hexmap"

	"github.com/zyedidia/generic/mapset"
)

// ComputeMoveRange returns every hex within moveRange of origin that is on a
// board of boardRadius and not in occupied. The origin itself is kept unless
// occupied says otherwise.
func ComputeMoveRange(origin hexmap.Hex, moveRange, boardRadius int, occupied mapset.Set[hexmap.Hex]) mapset.Set[hexmap.Hex] {
	origin.MustBeValid()
	if moveRange < 0 {
		panic(fmt.Sprintf("game: negative move range %d", moveRange))
	}

	result := mapset.New[hexmap.Hex]()
	for _, hex := range hexmap.Range(origin, moveRange) {
		if !hexmap.IsInBounds(hex, boardRadius) {
			continue
		}
		if occupied.Has(hex) {
			continue
		}
		result.Put(hex)
	}
	return result
}

// occupiedBy collects the coordinates of pieces, skipping except when it is non-nil.
func occupiedBy(pieces []*GamePiece, except *GamePiece) mapset.Set[hexmap.Hex] {
	occupied := mapset.New[hexmap.Hex]()
	for _, p := range pieces {
		if p == except {
			continue
		}
		occupied.Put(p.Coord)
	}
	return occupied
}
