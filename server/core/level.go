package core

import (
	"encoding/json"
	"log"

	"github.com/leap-fish/necs/router"

	"github.com/carllapierre/foodfight/shared/leveldata"
	"github.com/carllapierre/foodfight/shared/messages"
)

// LoadLevel reads the world file, falling back to an empty flat world
// so a missing file never prevents the server from starting.
func LoadLevel(path string) *leveldata.World {
	world, err := leveldata.LoadWorld(path)
	if err != nil {
		log.Printf("[server] world load failed (%v), starting with an empty world", err)
		return leveldata.EmptyWorld()
	}
	log.Printf("[server] loaded world %q: %d objects, %d spawners, %d portals",
		world.Name, len(world.Objects), len(world.Spawners), len(world.Portals))
	return world
}

// onWorldSave persists an edited world. The previous file is backed up
// first; the result goes back to the requesting client only.
func (s *Server) onWorldSave(client *router.NetworkClient, req messages.WorldSaveRequest) {
	s.mu.RLock()
	_, joined := s.sessions[client]
	s.mu.RUnlock()
	if !joined {
		return
	}

	var world leveldata.World
	if err := json.Unmarshal(req.WorldJSON, &world); err != nil {
		s.send(client, messages.WorldSaveResult{Reason: "invalid world data: " + err.Error()})
		return
	}

	if err := leveldata.SaveWorld(s.config.WorldPath, &world); err != nil {
		log.Printf("[server] world save failed: %v", err)
		s.send(client, messages.WorldSaveResult{Reason: err.Error()})
		return
	}

	s.mu.Lock()
	s.level = &world
	s.mu.Unlock()
	log.Printf("[server] world %q saved to %s", world.Name, s.config.WorldPath)
	s.send(client, messages.WorldSaveResult{OK: true})
}
