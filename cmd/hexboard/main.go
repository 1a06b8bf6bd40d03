// cmd/hexboard/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go-hex-strategy/internal/config"
	"go-hex-strategy/internal/game"
	"go-hex-strategy/internal/utils"
	"go-hex-strategy/pkg/hexmap"
	mathutil "go-hex-strategy/pkg/utils"

	"github.com/fatih/color"
)

var resourceColors = map[hexmap.Resource]*color.Color{
	hexmap.Gold:  color.New(color.FgYellow, color.Bold),
	hexmap.Wheat: color.New(color.FgHiYellow),
	hexmap.Stone: color.New(color.FgWhite),
	hexmap.Wood:  color.New(color.FgRed),
}

var (
	pieceColor     = color.New(color.FgHiCyan, color.Bold)
	indicatorColor = color.New(color.FgHiGreen)
)

func main() {
	var configPath string
	var seed int64
	var radius int
	var pieces string
	var clicks string
	flag.StringVar(&configPath, "config", "", "board settings JSON file (defaults when empty)")
	flag.Int64Var(&seed, "seed", 42, "board RNG seed (0 = time based)")
	flag.IntVar(&radius, "radius", -1, "override board radius")
	flag.StringVar(&pieces, "pieces", "", "pieces as q,r;q,r;... (default: the opening settler)")
	flag.StringVar(&clicks, "click", "", "hexes to click in order, as q,r;q,r;...")
	flag.Parse()

	settings := hexmap.DefaultBoardSettings()
	if configPath != "" {
		var err error
		settings, err = config.LoadBoardSettings(configPath)
		if err != nil {
			fmt.Println("error:", err)
			os.Exit(1)
		}
	}
	if radius >= 0 {
		settings.BoardRadius = radius
	}

	prng := utils.NewPRNGService(seed)
	g, err := game.NewGame(settings, prng)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}

	if err := spawnPieces(g, pieces); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
	clickList, err := parseHexList(clicks)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
	for _, hex := range clickList {
		t := clickHex(g, hex)
		fmt.Printf("click %v: %s\n", hex, t.Outcome)
	}

	fmt.Printf("seed=%d radius=%d tiles=%d\n\n", prng.Seed(), settings.BoardRadius, g.Board.Len())
	renderBoard(os.Stdout, g)
}

func spawnPieces(g *game.Game, spec string) error {
	if spec == "" {
		_, err := g.SpawnSettler()
		return err
	}
	coords, err := parseHexList(spec)
	if err != nil {
		return err
	}
	for _, c := range coords {
		if _, err := g.SpawnPiece(game.Settler, c, game.DefaultMoveRange, ""); err != nil {
			return err
		}
	}
	return nil
}

// clickHex drives a click through the same pick path the window uses, on a
// virtual window large enough to hold the whole board.
func clickHex(g *game.Game, hex hexmap.Hex) game.Transition {
	w := int(g.Settings.TileSize*2*float64(2*g.Board.Radius+1)) + 1
	h := w
	x, y := g.Layout(w, h).Center(hex)
	return g.Update(game.Input{CursorX: x, CursorY: y, HasCursor: true, Width: w, Height: h, Clicked: true})
}

// renderBoard prints the board row by row. Every hex takes four columns and
// each row is indented by two columns per step away from the middle row.
//
//	 G  piece: @  selected: [@]  reachable: <G>
func renderBoard(w io.Writer, g *game.Game) {
	selected, _ := g.Selection.Selected()
	pieceAt := make(map[hexmap.Hex]*game.GamePiece, len(g.Pieces))
	for _, p := range g.Pieces {
		pieceAt[p.Coord] = p
	}

	radius := g.Board.Radius
	counts := make(map[hexmap.Resource]int)
	row := radius + 1 // sentinel: no row started yet
	var line strings.Builder
	for _, hex := range g.Board.Coords() {
		if hex.R != row {
			if line.Len() > 0 {
				fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
				line.Reset()
			}
			row = hex.R
			line.WriteString(strings.Repeat(" ", 2*mathutil.Abs(row)))
		}
		tile := g.Board.Tiles[hex]
		counts[tile.Resource]++
		line.WriteString(renderCell(g, tile, pieceAt[hex], selected))
		line.WriteString(" ")
	}
	if line.Len() > 0 {
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}

	fmt.Fprintln(w)
	for r := hexmap.Gold; r <= hexmap.Wood; r++ {
		fmt.Fprintf(w, "%s=%s:%d ", resourceColors[r].Sprint(r.Symbol()), r, counts[r])
	}
	fmt.Fprintln(w)
}

func renderCell(g *game.Game, tile hexmap.Tile, piece, selected *game.GamePiece) string {
	switch {
	case piece != nil && piece == selected:
		return pieceColor.Sprint("[@]")
	case piece != nil:
		return " " + pieceColor.Sprint("@") + " "
	case g.Selection.IsLegalMove(tile.Coord):
		return indicatorColor.Sprint("<") + resourceColors[tile.Resource].Sprint(tile.Resource.Symbol()) + indicatorColor.Sprint(">")
	default:
		return " " + resourceColors[tile.Resource].Sprint(tile.Resource.Symbol()) + " "
	}
}

// parseHexList parses "q,r;q,r" into hexes. Empty input is an empty list.
func parseHexList(s string) ([]hexmap.Hex, error) {
	var result []hexmap.Hex
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		hex, err := parseAxial(part)
		if err != nil {
			return nil, err
		}
		result = append(result, hex)
	}
	return result, nil
}

func parseAxial(s string) (hexmap.Hex, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 2 {
		return hexmap.Hex{}, fmt.Errorf("hex %q: want q,r", s)
	}
	q, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return hexmap.Hex{}, fmt.Errorf("hex %q: q: %w", s, err)
	}
	r, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return hexmap.Hex{}, fmt.Errorf("hex %q: r: %w", s, err)
	}
	return hexmap.NewHex(q, r), nil
}
