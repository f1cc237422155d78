package leveldata

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadWorld reads and parses a world.json file.
func LoadWorld(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read world file: %w", err)
	}

	var w World
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("parse world file: %w", err)
	}
	return &w, nil
}

// SaveWorld writes the world to path, first copying any existing file to
// path+".bak" so a bad save never destroys the only copy.
func SaveWorld(path string, w *World) error {
	if existing, err := os.ReadFile(path); err == nil {
		if err := os.WriteFile(path+".bak", existing, 0o644); err != nil {
			return fmt.Errorf("write world backup: %w", err)
		}
	}

	data, err := json.MarshalIndent(w, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal world: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write world file: %w", err)
	}
	return nil
}

// EmptyWorld returns a minimal flat world with one spawn point, used
// when the server is started without a world file.
func EmptyWorld() *World {
	return &World{
		Name:        "empty",
		SpawnPoints: []SpawnPoint{{}},
	}
}
