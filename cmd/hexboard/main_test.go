package main

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"go-hex-strategy/internal/game"
	"go-hex-strategy/pkg/hexmap"

	"github.com/fatih/color"
)

func newBoardGame(t *testing.T, radius int) *game.Game {
	t.Helper()
	s := hexmap.DefaultBoardSettings()
	s.BoardRadius = radius
	g, err := game.NewGame(s, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func boardLines(out string) []string {
	var lines []string
	for _, l := range strings.Split(out, "\n") {
		if l == "" {
			break
		}
		lines = append(lines, l)
	}
	return lines
}

func TestRenderBoard_Shape(t *testing.T) {
	color.NoColor = true
	g := newBoardGame(t, 2)

	var buf bytes.Buffer
	renderBoard(&buf, g)
	lines := boardLines(buf.String())
	if len(lines) != 5 {
		t.Fatalf("got %d rows, want 5:\n%s", len(lines), buf.String())
	}
	for i, l := range lines {
		r := i - 2
		abs := r
		if abs < 0 {
			abs = -abs
		}
		if want := 5 - abs; strings.Count(l, "G")+strings.Count(l, "W")+strings.Count(l, "S")+strings.Count(l, "T") != want {
			t.Fatalf("row %d %q: want %d cells", r, l, want)
		}
		if !strings.HasPrefix(l, strings.Repeat(" ", 2*abs+1)) {
			t.Fatalf("row %d %q: missing indent", r, l)
		}
	}
	if !strings.Contains(buf.String(), "Gold:") {
		t.Fatalf("legend missing:\n%s", buf.String())
	}
}

func TestRenderBoard_SelectionOverlay(t *testing.T) {
	color.NoColor = true
	g := newBoardGame(t, 2)
	p, err := g.SpawnSettler()
	if err != nil {
		t.Fatalf("SpawnSettler: %v", err)
	}

	var buf bytes.Buffer
	renderBoard(&buf, g)
	if !strings.Contains(buf.String(), " @") || strings.Contains(buf.String(), "<") {
		t.Fatalf("idle board:\n%s", buf.String())
	}

	if tr := clickHex(g, p.Coord); tr.Outcome != game.OutcomeSelected {
		t.Fatalf("outcome=%v, want selected", tr.Outcome)
	}
	buf.Reset()
	renderBoard(&buf, g)
	out := buf.String()
	if !strings.Contains(out, "[@]") {
		t.Fatalf("selected piece not marked:\n%s", out)
	}
	// The settler sits on the board edge, so only four neighbors are in bounds.
	if n := strings.Count(out, "<"); n != 4 {
		t.Fatalf("got %d reachable hexes, want 4:\n%s", n, out)
	}
}

func TestParseHexList(t *testing.T) {
	got, err := parseHexList(" 1,-1 ; -2, 0;")
	if err != nil {
		t.Fatalf("parseHexList: %v", err)
	}
	if len(got) != 2 || got[0] != hexmap.NewHex(1, -1) || got[1] != hexmap.NewHex(-2, 0) {
		t.Fatalf("got %v", got)
	}
	if got, err := parseHexList(""); err != nil || len(got) != 0 {
		t.Fatalf("empty input: %v %v", got, err)
	}
	for _, bad := range []string{"1", "1,2,3", "a,1", "1,b"} {
		if _, err := parseHexList(bad); err == nil {
			t.Errorf("%q: expected an error", bad)
		}
	}
}
