// pkg/hexmap/resource.go
package hexmap

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// Resource is the single deposit a tile carries. Purely descriptive for now:
// it only decides the tile color.
type Resource int

const (
	Gold Resource = iota
	Wheat
	Stone
	Wood
)

var (
	resourceNames   = [...]string{"Gold", "Wheat", "Stone", "Wood"}
	resourceSymbols = [...]string{"G", "W", "S", "T"}
)

func (r Resource) String() string {
	if r < Gold || r > Wood {
		return fmt.Sprintf("Resource(%d)", int(r))
	}
	return resourceNames[r]
}

// Symbol is the one-letter form used by the terminal dump. Wood is T (timber).
func (r Resource) Symbol() string {
	if r < Gold || r > Wood {
		return "?"
	}
	return resourceSymbols[r]
}

// Color returns the base fill color of a tile carrying r.
func (r Resource) Color() color.RGBA {
	switch r {
	case Gold:
		return color.RGBA{255, 204, 0, 255}
	case Wheat:
		return color.RGBA{255, 255, 102, 255}
	case Stone:
		return color.RGBA{102, 102, 153, 255}
	default:
		return color.RGBA{153, 102, 51, 255}
	}
}

// ErrInvalidSettings is wrapped by BoardSettings.Validate.
var ErrInvalidSettings = errors.New("invalid board settings")

const probabilityTolerance = 1e-6

// BoardSettings is built once at startup and only read afterwards.
type BoardSettings struct {
	TileSize    float64 `json:"tile_size"`
	BoardRadius int     `json:"board_radius"`
	GoldPr      float64 `json:"gold_pr"`
	WheatPr     float64 `json:"wheat_pr"`
	StonePr     float64 `json:"stone_pr"`
	WoodPr      float64 `json:"wood_pr"`
}

// DefaultBoardSettings returns the standard 40px, radius 5 board.
func DefaultBoardSettings() BoardSettings {
	return BoardSettings{
		TileSize:    40.0,
		BoardRadius: 5,
		GoldPr:      0.05,
		WheatPr:     0.4,
		StonePr:     0.2,
		WoodPr:      0.35,
	}
}

// Validate checks the tile size, radius and that the probabilities form a distribution.
func (s BoardSettings) Validate() error {
	if !(s.TileSize > 0) || math.IsInf(s.TileSize, 0) {
		return fmt.Errorf("%w: tile size must be positive, got %v", ErrInvalidSettings, s.TileSize)
	}
	if s.BoardRadius < 0 {
		return fmt.Errorf("%w: board radius must be >= 0, got %d", ErrInvalidSettings, s.BoardRadius)
	}
	probs := []float64{s.GoldPr, s.WheatPr, s.StonePr, s.WoodPr}
	sum := 0.0
	for i, p := range probs {
		if p < 0 || math.IsNaN(p) {
			return fmt.Errorf("%w: %s probability must be >= 0, got %v", ErrInvalidSettings, Resource(i), p)
		}
		sum += p
	}
	if math.Abs(sum-1.0) > probabilityTolerance {
		return fmt.Errorf("%w: resource probabilities sum to %v, want 1", ErrInvalidSettings, sum)
	}
	return nil
}

// DrawResource maps a uniform sample in [0,1) onto a resource using the
// cumulative thresholds gold, gold+wheat, gold+wheat+stone. The first
// threshold the sample falls under wins; everything above is Wood.
func DrawResource(sample float64, s BoardSettings) Resource {
	switch {
	case sample < s.GoldPr:
		return Gold
	case sample < s.GoldPr+s.WheatPr:
		return Wheat
	case sample < s.GoldPr+s.WheatPr+s.StonePr:
		return Stone
	default:
		return Wood
	}
}
