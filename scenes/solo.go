package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/carllapierre/foodfight/components"
	cfg "github.com/carllapierre/foodfight/config"
	"github.com/carllapierre/foodfight/registry"
	"github.com/carllapierre/foodfight/shared/gamemath"
	"github.com/carllapierre/foodfight/shared/netconfig"
	"github.com/carllapierre/foodfight/systems"
)

// SoloScene runs the full simulation offline: same systems, no network.
type SoloScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	audio        *systems.AudioPlayer
	sim          *systems.Simulation
	playerName   string
	once         sync.Once
	shouldGoBack bool
}

func NewSoloScene(sc SceneChanger, audio *systems.AudioPlayer, playerName string) *SoloScene {
	return &SoloScene{sceneChanger: sc, audio: audio, playerName: playerName}
}

func (ss *SoloScene) Update() {
	ss.once.Do(ss.configure)

	ss.ecsWorld.Update()

	if local := ss.sim.LocalPlayer(); local != nil {
		if components.Input.Get(local).JustPressed(netconfig.ActionPause) {
			ss.shouldGoBack = true
		}
	}

	if ss.shouldGoBack {
		ss.sim.Close()
		ss.sceneChanger.ChangeScene(NewMenuScene(ss.sceneChanger, ss.audio))
	}
}

func (ss *SoloScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ss.ecsWorld == nil {
		return
	}
	ss.ecsWorld.Draw(screen)
}

func (ss *SoloScene) configure() {
	ss.ecsWorld = ecs.NewECS(donburi.NewWorld())

	level := loadClientWorld()
	ss.sim = systems.NewSimulation(ss.ecsWorld, gamemath.RealClock(), registry.Default(), level, nil, ss.audio)
	ss.sim.SpawnLocalPlayer("1", ss.playerName)

	ss.ecsWorld.AddSystem(systems.NewInputSystem(nil, nil))
	ss.ecsWorld.AddRenderer(cfg.Default, ss.sim.DrawWorld)
	ss.ecsWorld.AddRenderer(cfg.HUD, ss.sim.DrawHUD)
}
