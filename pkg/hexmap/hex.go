// pkg/hexmap/hex.go
package hexmap

import (
	"fmt"

	"go-hex-strategy/pkg/utils"
)

// Hex представляет гекс в кубических координатах (Q, R, S), Q+R+S == 0.
type Hex struct {
	Q, R, S int
}

// NeighborDirections defines the 6 possible directions from a hex, starting from East and going counter-clockwise.
var NeighborDirections = []Hex{
	{Q: 1, R: 0, S: -1}, {Q: 1, R: -1, S: 0}, {Q: 0, R: -1, S: 1},
	{Q: -1, R: 0, S: 1}, {Q: -1, R: 1, S: 0}, {Q: 0, R: 1, S: -1},
}

// NewHex builds a hex from axial coordinates, deriving S.
func NewHex(q, r int) Hex {
	return Hex{Q: q, R: r, S: -q - r}
}

// NewCube builds a hex from all three cube coordinates. A triple that does not
// sum to zero is a caller bug and panics.
func NewCube(q, r, s int) Hex {
	h := Hex{Q: q, R: r, S: s}
	h.MustBeValid()
	return h
}

// Valid reports whether the zero-sum invariant holds.
func (h Hex) Valid() bool {
	return h.Q+h.R+h.S == 0
}

// MustBeValid panics when the zero-sum invariant is broken.
func (h Hex) MustBeValid() {
	if !h.Valid() {
		panic(fmt.Sprintf("hexmap: invalid cube coordinate %v (q+r+s=%d)", h, h.Q+h.R+h.S))
	}
}

func (h Hex) String() string {
	return fmt.Sprintf("(%d,%d,%d)", h.Q, h.R, h.S)
}

// ToPixel конвертирует гекс в пиксельные координаты относительно центра доски (pointy top, Y вниз)
func (h Hex) ToPixel(hexSize float64) (x, y float64) {
	x = hexSize * (Sqrt3*float64(h.Q) + Sqrt3/2*float64(h.R))
	y = hexSize * (3.0 / 2.0 * float64(h.R))
	return
}

// Neighbors возвращает всех шесть соседей гекса
func (h Hex) Neighbors() []Hex {
	result := make([]Hex, 0, len(NeighborDirections))
	for _, d := range NeighborDirections {
		result = append(result, h.Add(d))
	}
	return result
}

// Add возвращает сумму двух гексов
func (h Hex) Add(other Hex) Hex {
	return Hex{
		Q: h.Q + other.Q,
		R: h.R + other.R,
		S: h.S + other.S,
	}
}

// Subtract возвращает разность двух гексов
func (h Hex) Subtract(other Hex) Hex {
	return Hex{
		Q: h.Q - other.Q,
		R: h.R - other.R,
		S: h.S - other.S,
	}
}

// Length is the cube distance from the board center.
func (h Hex) Length() int {
	return utils.Max(utils.Abs(h.Q), utils.Max(utils.Abs(h.R), utils.Abs(h.S)))
}

// Distance вычисляет расстояние между гексами
func (h Hex) Distance(to Hex) int {
	return h.Subtract(to).Length()
}

// IsInBounds reports whether h lies within radius of the board center.
func IsInBounds(h Hex, radius int) bool {
	return h.Length() <= radius
}

// Less orders hexes row by row (R, then Q). Used wherever a stable listing is needed.
func (h Hex) Less(other Hex) bool {
	if h.R != other.R {
		return h.R < other.R
	}
	return h.Q < other.Q
}
