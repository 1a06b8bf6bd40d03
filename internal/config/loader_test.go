package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go-hex-strategy/pkg/hexmap"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadBoardSettings_PartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, `{"board_radius": 3, "tile_size": 25.5}`)
	s, err := LoadBoardSettings(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.BoardRadius != 3 || s.TileSize != 25.5 {
		t.Fatalf("got radius=%d size=%v, want 3 and 25.5", s.BoardRadius, s.TileSize)
	}
	def := hexmap.DefaultBoardSettings()
	if s.GoldPr != def.GoldPr || s.WoodPr != def.WoodPr {
		t.Fatalf("probabilities changed: %+v", s)
	}
}

func TestLoadBoardSettings_FullFile(t *testing.T) {
	path := writeFile(t, `{"tile_size": 30, "board_radius": 8,
		"gold_pr": 0.25, "wheat_pr": 0.25, "stone_pr": 0.25, "wood_pr": 0.25}`)
	s, err := LoadBoardSettings(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.StonePr != 0.25 || s.BoardRadius != 8 {
		t.Fatalf("got %+v", s)
	}
}

func TestLoadBoardSettings_Errors(t *testing.T) {
	if _, err := LoadBoardSettings(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file: err=%v, want ErrNotExist", err)
	}
	if _, err := LoadBoardSettings(writeFile(t, `{"tile_size": `)); err == nil {
		t.Fatal("truncated JSON should fail")
	}
	if _, err := LoadBoardSettings(writeFile(t, `{"gold_pr": 0.9}`)); !errors.Is(err, hexmap.ErrInvalidSettings) {
		t.Fatalf("bad probabilities: err=%v, want ErrInvalidSettings", err)
	}
}
