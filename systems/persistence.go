package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedSettings is the player's local settings file.
type SavedSettings struct {
	PlayerName    string  `json:"playerName"`
	ServerAddress string  `json:"serverAddress"`
	Volume        float64 `json:"volume"`
	Fullscreen    bool    `json:"fullscreen"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the gdata store for settings.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "foodfight",
	})
	if err != nil {
		log.Printf("Warning: could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads saved settings; nil means none saved yet.
func LoadSettings() *SavedSettings {
	if gdataManager == nil {
		return nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: could not load settings: %v", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: could not parse saved settings: %v", err)
		return nil
	}
	return &settings
}

// SaveSettings writes settings to disk, best-effort.
func SaveSettings(s *SavedSettings) {
	if gdataManager == nil || s == nil {
		return
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: could not serialize settings: %v", err)
		return
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: could not save settings: %v", err)
	}
}
