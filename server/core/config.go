package core

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the server's runtime settings. Values come from the
// environment; the server binary layers flag overrides on top.
type Config struct {
	Port       uint   `env:"FOODFIGHT_PORT" envDefault:"7373"`
	TickRate   int    `env:"FOODFIGHT_TICKRATE" envDefault:"20"`
	Name       string `env:"FOODFIGHT_NAME" envDefault:"Food Fight Server"`
	Version    string `env:"FOODFIGHT_VERSION"` // empty accepts any client
	WorldPath  string `env:"FOODFIGHT_WORLD" envDefault:"world.json"`
	ItemsPath  string `env:"FOODFIGHT_ITEMS"` // empty uses the builtin table
	StatsDB    string `env:"FOODFIGHT_STATS_DB"`
	MaxPlayers int    `env:"FOODFIGHT_MAX_PLAYERS" envDefault:"16"`
}

// LoadConfig reads the server configuration from the environment.
func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}
