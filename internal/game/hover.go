// internal/game/hover.go
package game

import "go-hex-strategy/pkg/hexmap"

// HoverTracker holds the hex under the cursor as of the latest sample.
type HoverTracker struct {
	position hexmap.Hex
	ok       bool
}

// Update overwrites the hovered hex with the pick for this sample.
func (h *HoverTracker) Update(layout hexmap.Layout, in Input) {
	h.position, h.ok = layout.PickCursor(in.CursorX, in.CursorY, in.HasCursor)
}

// Position returns the hovered hex, or false when the cursor is off the board or absent.
func (h *HoverTracker) Position() (hexmap.Hex, bool) {
	return h.position, h.ok
}
