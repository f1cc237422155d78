package components

import "github.com/yohamta/donburi"

// PlayerData identifies a player entity. IsLocal marks the one player
// this client simulates and predicts; everything else is a remote
// replica driven by network state.
type PlayerData struct {
	ID      string
	Name    string
	IsLocal bool

	Kills  int
	Deaths int
}

var Player = donburi.NewComponentType[PlayerData]()
