package config

import "github.com/yohamta/donburi/ecs"

// Render layers, back to front.
const (
	Default ecs.LayerID = iota
	HUD
)
