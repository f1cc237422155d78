package messages

import "github.com/carllapierre/foodfight/shared/netconfig"

// PlayerInput is sent from client to server each frame with the player's
// input state. Used for server-side movement processing and client-side
// prediction reconciliation.
type PlayerInput struct {
	Sequence  uint32 // incrementing ID for reconciliation
	Actions   map[netconfig.ActionID]bool
	Yaw       float64 // view direction, drives movement basis and throws
	Pitch     float64
	Timestamp int64 // client timestamp (Unix ms)
}

// NewPlayerInput creates a PlayerInput with an initialized action map.
func NewPlayerInput(seq uint32) PlayerInput {
	return PlayerInput{
		Sequence: seq,
		Actions:  make(map[netconfig.ActionID]bool),
	}
}
