package tags

import "github.com/yohamta/donburi"

var (
	Player        = donburi.NewTag().SetName("Player")
	Projectile    = donburi.NewTag().SetName("Projectile")
	NetProjectile = donburi.NewTag().SetName("NetProjectile")
	Splat         = donburi.NewTag().SetName("Splat")
	Spawner       = donburi.NewTag().SetName("Spawner")
	Portal        = donburi.NewTag().SetName("Portal")
)
