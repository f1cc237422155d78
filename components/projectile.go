package components

import (
	"time"

	"github.com/yohamta/donburi"

	"github.com/carllapierre/foodfight/shared/gamemath"
	"github.com/carllapierre/foodfight/shared/netconfig"
)

// ProjectileData is a locally-thrown food item in flight. Position lives
// in the entity's TransformData; everything else is here.
type ProjectileData struct {
	ItemType  string
	Velocity  gamemath.Vec3
	Damage    int
	Scale     float64
	Gravity   float64
	CreatedAt time.Time
	State     netconfig.ProjectileState
	OwnerID   string
}

var Projectile = donburi.NewComponentType[ProjectileData]()

// NetProjectileData is a remote player's projectile, reconstructed from
// a network spawn event. It integrates the same trajectory but is only
// ever tested against the local player.
type NetProjectileData struct {
	ItemType  string
	Velocity  gamemath.Vec3
	Damage    int
	Scale     float64
	Gravity   float64
	CreatedAt time.Time
	State     netconfig.ProjectileState
	OwnerID   string
}

var NetProjectile = donburi.NewComponentType[NetProjectileData]()

// Active reports whether the projectile should still be simulated.
func (p *ProjectileData) Active() bool {
	return p.State == netconfig.ProjectileSpawned || p.State == netconfig.ProjectileFlying
}

// Active reports whether the projectile should still be simulated.
func (p *NetProjectileData) Active() bool {
	return p.State == netconfig.ProjectileSpawned || p.State == netconfig.ProjectileFlying
}
