package netcomponents

import (
	"github.com/yohamta/donburi"

	"github.com/carllapierre/foodfight/shared/netconfig"
)

// NetPlayerStateData is the server-authoritative slice of player state.
// Health here is the value that lasts; anything the client computes
// locally is advisory visual feedback.
type NetPlayerStateData struct {
	StateID      netconfig.StateID
	Health       int
	Yaw          float64
	Name         string
	Kills        int
	Deaths       int
	LastSequence uint32 // last input sequence processed by the server
	IsLocal      bool   // client-side only, not meaningful over the wire
}

var NetPlayerState = donburi.NewComponentType[NetPlayerStateData]()
