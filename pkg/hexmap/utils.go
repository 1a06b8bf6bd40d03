// pkg/hexmap/utils.go
package hexmap

import (
	"math"

	"go-hex-strategy/pkg/utils"
)

// Константа √3 для вычислений
const Sqrt3 = 1.7320508075688772935274463415059

// cubeRound rounds fractional cube coordinates to the nearest hex. The
// component with the largest rounding error is rebuilt from the other two;
// on equal errors the later check (r, then s) wins.
func cubeRound(q, r, s float64) Hex {
	qf := math.Round(q)
	rf := math.Round(r)
	sf := math.Round(s)
	qd := math.Abs(qf - q)
	rd := math.Abs(rf - r)
	sd := math.Abs(sf - s)
	if qd > rd && qd > sd {
		qf = -rf - sf
	} else if rd > sd {
		rf = -qf - sf
	} else {
		sf = -qf - rf
	}
	return Hex{Q: int(qf), R: int(rf), S: int(sf)}
}

// Range returns every hex within radius of center, row-major by Q then R.
func Range(center Hex, radius int) []Hex {
	if radius < 0 {
		return nil
	}
	result := make([]Hex, 0, 3*radius*radius+3*radius+1)
	for q := -radius; q <= radius; q++ {
		r1 := utils.Max(-radius, -q-radius)
		r2 := utils.Min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			result = append(result, center.Add(NewHex(q, r)))
		}
	}
	return result
}

// TileCount is the number of hexes on a board of the given radius.
func TileCount(radius int) int {
	if radius < 0 {
		return 0
	}
	return 3*radius*radius + 3*radius + 1
}
