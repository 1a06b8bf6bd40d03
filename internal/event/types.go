// internal/event/types.go
package event

import "go-hex-strategy/pkg/hexmap"

const (
	PieceSelected    EventType = "PieceSelected"    // Фигура выбрана
	SelectionCleared EventType = "SelectionCleared" // Выбор снят без хода
	PieceMoved       EventType = "PieceMoved"       // Фигура перемещена
)

// PieceEvent is the payload of every piece event. For PieceMoved, From and To
// differ; otherwise both hold the piece's current coordinate.
type PieceEvent struct {
	PieceID int
	Name    string
	From    hexmap.Hex
	To      hexmap.Hex
}
