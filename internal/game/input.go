// internal/game/input.go
package game

// Input is one raw input sample. Clicked is the edge of the primary button
// and is consumed exactly once, by the tick it is passed to.
type Input struct {
	CursorX, CursorY float64
	HasCursor        bool
	Width, Height    int
	Clicked          bool
}
