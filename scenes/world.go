package scenes

import (
	"log"

	"github.com/carllapierre/foodfight/shared/leveldata"
)

// worldFile is the client's local copy of the world data. The server
// announces the world name on join; both sides load the same file.
const worldFile = "world.json"

func loadClientWorld() *leveldata.World {
	world, err := leveldata.LoadWorld(worldFile)
	if err != nil {
		log.Printf("[client] world load failed (%v), using an empty world", err)
		return leveldata.EmptyWorld()
	}
	return world
}
