package hexmap

import "testing"

func TestNewHex_DerivesS(t *testing.T) {
	h := NewHex(2, -5)
	if h.S != 3 {
		t.Fatalf("S=%d, want 3", h.S)
	}
	if !h.Valid() {
		t.Fatal("NewHex must produce a valid coordinate")
	}
}

func TestNewCube_PanicsOnBrokenInvariant(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for q+r+s != 0")
		}
	}()
	NewCube(1, 1, 1)
}

func TestHex_AddKeepsZeroSum(t *testing.T) {
	for _, a := range Range(Hex{}, 3) {
		for _, b := range Range(Hex{}, 2) {
			sum := a.Add(b)
			if !sum.Valid() {
				t.Fatalf("%v + %v = %v breaks the invariant", a, b, sum)
			}
			if sum.Subtract(b) != a {
				t.Fatalf("(%v + %v) - %v != %v", a, b, b, a)
			}
		}
	}
}

func TestHex_UsableAsMapKey(t *testing.T) {
	m := map[Hex]int{NewHex(1, -1): 7}
	if m[NewCube(1, -1, 0)] != 7 {
		t.Fatal("structurally equal hexes must hash to the same key")
	}
}

func TestHex_NeighborsAreAtDistanceOne(t *testing.T) {
	origin := NewHex(-2, 4)
	n := origin.Neighbors()
	if len(n) != 6 {
		t.Fatalf("got %d neighbors, want 6", len(n))
	}
	seen := make(map[Hex]bool)
	for _, h := range n {
		if d := origin.Distance(h); d != 1 {
			t.Fatalf("neighbor %v at distance %d", h, d)
		}
		seen[h] = true
	}
	if len(seen) != 6 {
		t.Fatal("neighbors must be distinct")
	}
}

func TestHex_Distance(t *testing.T) {
	a := NewHex(0, 0)
	b := NewHex(3, -1)
	if d := a.Distance(b); d != 3 {
		t.Fatalf("distance=%d, want 3", d)
	}
	far := b
	for i := 0; i < 4; i++ {
		far = far.Add(NeighborDirections[4])
	}
	if d := b.Distance(far); d != 4 {
		t.Fatalf("distance along a direction=%d, want 4", d)
	}
}

func TestIsInBounds(t *testing.T) {
	cases := []struct {
		hex    Hex
		radius int
		want   bool
	}{
		{Hex{}, 0, true},
		{NewHex(1, 0), 0, false},
		{NewHex(5, -5), 5, true},
		{NewHex(5, 1), 5, false},
		{NewHex(-3, -3), 5, false},
		{NewHex(-3, -2), 5, true},
	}
	for _, c := range cases {
		if got := IsInBounds(c.hex, c.radius); got != c.want {
			t.Fatalf("IsInBounds(%v, %d)=%v, want %v", c.hex, c.radius, got, c.want)
		}
	}
}

func TestHex_ToPixel(t *testing.T) {
	x, y := NewHex(0, 0).ToPixel(40)
	if x != 0 || y != 0 {
		t.Fatalf("origin at (%v,%v), want (0,0)", x, y)
	}
	x, y = NewHex(0, 2).ToPixel(10)
	if y != 30 {
		t.Fatalf("y=%v, want 30 (y grows downward with r)", y)
	}
	if x < 17.320 || x > 17.321 {
		t.Fatalf("x=%v, want ~17.3205 (half a column per row)", x)
	}
	x, _ = NewHex(1, 2).ToPixel(10)
	if x < 34.641 || x > 34.642 {
		t.Fatalf("x=%v, want ~34.641", x)
	}
}
