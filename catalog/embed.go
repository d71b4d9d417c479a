// Package catalog exposes the static reference data the Palefò platform
// organizes content around: sentence categories, the five difficulty levels
// and the Haitian regions offered on contribution forms. The data ships
// embedded so CLIs and validators work without a network call.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
)

// Version is incremented whenever the embedded catalog changes incompatibly.
const Version = "v1"

//go:embed data/*.json
var dataFS embed.FS

// DifficultyLevel describes one rung of the 1-5 difficulty scale.
type DifficultyLevel struct {
	Level       int    `json:"level"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Categories returns the known sentence/phrase categories.
func Categories() ([]string, error) {
	var out []string
	if err := load("data/categories.json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DifficultyLevels returns the difficulty scale, ordered by level.
func DifficultyLevels() ([]DifficultyLevel, error) {
	var out []DifficultyLevel
	if err := load("data/difficulty.json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Regions returns the Haitian regions offered on contribution forms.
func Regions() ([]string, error) {
	var out []string
	if err := load("data/regions.json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// KnownCategory reports whether name is part of the embedded catalog.
// Unknown categories are not an error for the API itself; this exists for
// CLI flag validation and help text.
func KnownCategory(name string) bool {
	cats, err := Categories()
	if err != nil {
		return false
	}
	for _, c := range cats {
		if c == name {
			return true
		}
	}
	return false
}

func load(name string, v any) error {
	b, err := fs.ReadFile(dataFS, name)
	if err != nil {
		return fmt.Errorf("catalog: missing asset %s: %w", name, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("catalog: malformed asset %s: %w", name, err)
	}
	return nil
}
