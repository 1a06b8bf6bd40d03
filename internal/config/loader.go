// internal/config/loader.go
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"go-hex-strategy/pkg/hexmap"
)

// LoadBoardSettings reads board settings from a JSON file. Fields missing
// from the file keep their default values; the result is validated.
func LoadBoardSettings(path string) (hexmap.BoardSettings, error) {
	settings := hexmap.DefaultBoardSettings()

	file, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("failed to read board settings file: %w", err)
	}
	if err := json.Unmarshal(file, &settings); err != nil {
		return settings, fmt.Errorf("failed to unmarshal board settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("board settings %s: %w", path, err)
	}
	return settings, nil
}
