package components

import (
	"time"

	"github.com/yohamta/donburi"

	"github.com/carllapierre/foodfight/shared/gamemath"
)

// SpawnerData is a world item spawner. Picking the item up empties the
// spawner until the respawn delay passes.
type SpawnerData struct {
	ItemType  string
	Position  gamemath.Vec3
	Respawn   time.Duration
	Available bool
	EmptiedAt time.Time
}

var Spawner = donburi.NewComponentType[SpawnerData]()

// PortalData teleports players standing within Radius to Target.
type PortalData struct {
	Name     string
	Position gamemath.Vec3
	Target   gamemath.Vec3
	Radius   float64
}

var Portal = donburi.NewComponentType[PortalData]()
