// pkg/hexmap/board.go
package hexmap

import (
	"sort"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// shadeFrequency scales tile-unit pixel positions before sampling noise.
const shadeFrequency = 0.35

// RandomSource is what board generation draws from. *rand.Rand and the
// game's PRNG service both satisfy it.
type RandomSource interface {
	Float64() float64
	Int63() int64
}

type Tile struct {
	Coord    Hex
	Resource Resource
	// Shade is a cosmetic brightness in [0,1] used only for drawing.
	Shade float64
}

// Board owns every tile of the playable area. It is filled once by Generate
// and never resized.
type Board struct {
	Tiles  map[Hex]Tile
	Radius int
	coords []Hex
}

// Generate builds the hexagonal board described by settings. Each tile draws
// exactly one sample from rng for its resource, in enumeration order.
func Generate(settings BoardSettings, rng RandomSource) *Board {
	radius := settings.BoardRadius
	noise := opensimplex.NewNormalized(rng.Int63())

	b := &Board{
		Tiles:  make(map[Hex]Tile, TileCount(radius)),
		Radius: radius,
	}

	// Генерация базовой карты
	for _, coord := range Range(Hex{}, radius) {
		x, y := coord.ToPixel(1)
		b.Tiles[coord] = Tile{
			Coord:    coord,
			Resource: DrawResource(rng.Float64(), settings),
			Shade:    noise.Eval2(x*shadeFrequency, y*shadeFrequency),
		}
		b.coords = append(b.coords, coord)
	}
	sort.Slice(b.coords, func(i, j int) bool { return b.coords[i].Less(b.coords[j]) })

	return b
}

func (b *Board) Contains(hex Hex) bool {
	_, exists := b.Tiles[hex]
	return exists
}

// ResourceAt returns the resource of the tile at hex, if there is one.
func (b *Board) ResourceAt(hex Hex) (Resource, bool) {
	tile, exists := b.Tiles[hex]
	return tile.Resource, exists
}

func (b *Board) Len() int {
	return len(b.Tiles)
}

// Coords lists every tile coordinate row by row. The slice is shared; do not modify it.
func (b *Board) Coords() []Hex {
	return b.coords
}
