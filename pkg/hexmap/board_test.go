package hexmap

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestGenerate_TileCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for radius := 0; radius <= 7; radius++ {
		s := DefaultBoardSettings()
		s.BoardRadius = radius
		b := Generate(s, rng)
		want := 3*radius*radius + 3*radius + 1
		if b.Len() != want {
			t.Fatalf("radius %d: %d tiles, want %d", radius, b.Len(), want)
		}
		if len(b.Coords()) != want {
			t.Fatalf("radius %d: %d coords listed, want %d", radius, len(b.Coords()), want)
		}
		for h, tile := range b.Tiles {
			if !h.Valid() {
				t.Fatalf("tile %v breaks the invariant", h)
			}
			if !IsInBounds(h, radius) {
				t.Fatalf("tile %v outside radius %d", h, radius)
			}
			if tile.Coord != h {
				t.Fatalf("tile keyed %v carries coord %v", h, tile.Coord)
			}
			if tile.Shade < 0 || tile.Shade > 1 {
				t.Fatalf("tile %v shade %v outside [0,1]", h, tile.Shade)
			}
		}
	}
}

func TestGenerate_CoordsRowMajor(t *testing.T) {
	b := Generate(DefaultBoardSettings(), rand.New(rand.NewSource(3)))
	coords := b.Coords()
	for i := 1; i < len(coords); i++ {
		if !coords[i-1].Less(coords[i]) {
			t.Fatalf("coords out of order at %d: %v then %v", i, coords[i-1], coords[i])
		}
	}
}

func TestGenerate_SameSeedSameBoard(t *testing.T) {
	a := Generate(DefaultBoardSettings(), rand.New(rand.NewSource(99)))
	b := Generate(DefaultBoardSettings(), rand.New(rand.NewSource(99)))
	for h, tile := range a.Tiles {
		if b.Tiles[h] != tile {
			t.Fatalf("tile %v differs between identical seeds", h)
		}
	}
}

func TestBoard_ContainsAndResourceAt(t *testing.T) {
	b := Generate(DefaultBoardSettings(), rand.New(rand.NewSource(5)))
	if !b.Contains(NewHex(5, -5)) {
		t.Fatal("corner (5,-5) should be on a radius 5 board")
	}
	if b.Contains(NewHex(6, -1)) {
		t.Fatal("(6,-1) should be off a radius 5 board")
	}
	if _, ok := b.ResourceAt(NewHex(0, 6)); ok {
		t.Fatal("ResourceAt off board should report false")
	}
	if r, ok := b.ResourceAt(Hex{}); !ok || r < Gold || r > Wood {
		t.Fatalf("ResourceAt origin = %v, %v", r, ok)
	}
}

func TestDrawResource_Thresholds(t *testing.T) {
	s := DefaultBoardSettings()
	cases := []struct {
		sample float64
		want   Resource
	}{
		{0, Gold},
		{0.049, Gold},
		{0.05, Wheat},
		{0.449, Wheat},
		{0.45, Stone},
		{0.649, Stone},
		{0.65, Wood},
		{0.999, Wood},
	}
	for _, c := range cases {
		if got := DrawResource(c.sample, s); got != c.want {
			t.Fatalf("DrawResource(%v)=%v, want %v", c.sample, got, c.want)
		}
	}
}

func TestGenerate_ResourceDistribution(t *testing.T) {
	s := DefaultBoardSettings()
	s.BoardRadius = 12 // 469 tiles
	rng := rand.New(rand.NewSource(2024))
	counts := make(map[Resource]int)
	total := 0
	for i := 0; i < 300; i++ {
		b := Generate(s, rng)
		for _, tile := range b.Tiles {
			counts[tile.Resource]++
			total++
		}
	}
	want := map[Resource]float64{Gold: 0.05, Wheat: 0.4, Stone: 0.2, Wood: 0.35}
	for r, p := range want {
		got := float64(counts[r]) / float64(total)
		if math.Abs(got-p) > 0.01 {
			t.Fatalf("%v frequency %.4f, want %.2f ± 0.01 (n=%d)", r, got, p, total)
		}
	}
}

func TestBoardSettings_Validate(t *testing.T) {
	if err := DefaultBoardSettings().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	bad := []func(*BoardSettings){
		func(s *BoardSettings) { s.TileSize = 0 },
		func(s *BoardSettings) { s.TileSize = -3 },
		func(s *BoardSettings) { s.BoardRadius = -1 },
		func(s *BoardSettings) { s.GoldPr = 0.5 },
		func(s *BoardSettings) { s.WoodPr = -0.1; s.GoldPr = 0.5 },
	}
	for i, mutate := range bad {
		s := DefaultBoardSettings()
		mutate(&s)
		err := s.Validate()
		if !errors.Is(err, ErrInvalidSettings) {
			t.Fatalf("case %d: err=%v, want ErrInvalidSettings", i, err)
		}
	}
}

func TestResource_String(t *testing.T) {
	if Stone.String() != "Stone" || Wood.Symbol() != "T" {
		t.Fatalf("unexpected names %q %q", Stone.String(), Wood.Symbol())
	}
	if Resource(9).String() != "Resource(9)" {
		t.Fatalf("unknown resource printed as %q", Resource(9).String())
	}
}
