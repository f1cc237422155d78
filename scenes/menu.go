package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	cfg "github.com/carllapierre/foodfight/config"
	"github.com/carllapierre/foodfight/network"
	"github.com/carllapierre/foodfight/systems"
	"github.com/carllapierre/foodfight/ui"
)

// SceneChanger allows scenes to trigger transitions.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene is the connect screen: player name, server address, volume
// and the offline mode entry point.
type MenuScene struct {
	sceneChanger SceneChanger
	audio        *systems.AudioPlayer
	menuUI       *ui.ConnectUI
	netClient    *network.Client
	once         sync.Once

	playerName  string
	offlineName string // non-empty requests the solo scene
}

func NewMenuScene(sc SceneChanger, audio *systems.AudioPlayer) *MenuScene {
	return &MenuScene{sceneChanger: sc, audio: audio}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	ms.menuUI.Update()

	if ms.offlineName != "" {
		name := ms.offlineName
		ms.offlineName = ""
		if ms.netClient != nil {
			ms.netClient.Disconnect()
			ms.netClient = nil
		}
		ms.sceneChanger.ChangeScene(NewSoloScene(ms.sceneChanger, ms.audio, name))
		return
	}

	if ms.netClient == nil {
		return
	}

	switch ms.netClient.State() {
	case network.StateJoinedGame:
		ms.menuUI.SetStatus("Joined! Loading game...")
		client := ms.netClient
		ms.netClient = nil
		ms.sceneChanger.ChangeScene(NewNetworkedScene(ms.sceneChanger, client, ms.audio, ms.playerName))

	case network.StateError:
		errMsg := "Connection failed"
		if err := ms.netClient.LastError(); err != nil {
			errMsg = err.Error()
		}
		ms.menuUI.SetStatus(errMsg)
		ms.menuUI.SetConnecting(false)
		ms.netClient.Disconnect()
		ms.netClient = nil

	case network.StateConnecting:
		ms.menuUI.SetStatus("Connecting...")

	case network.StateConnected:
		ms.menuUI.SetStatus("Connected, joining game...")

	case network.StateDisconnected:
		ms.menuUI.SetStatus("Disconnected")
		ms.menuUI.SetConnecting(false)
		ms.netClient = nil
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	saved := systems.LoadSettings()
	name, address := "", cfg.Network.DefaultAddress
	if saved != nil {
		name = saved.PlayerName
		if saved.ServerAddress != "" {
			address = saved.ServerAddress
		}
		ms.audio.SetVolume(saved.Volume)
	}

	ms.menuUI = ui.NewConnectUI(name, address, ms.audio.Volume())

	ms.menuUI.OnConnect = func(name, address string) {
		ms.saveSettings(name, address)
		ms.onConnect(name, address)
	}
	ms.menuUI.OnPlayOffline = func(name string) {
		ms.saveSettings(name, address)
		ms.offlineName = name
	}
	ms.menuUI.OnVolume = func(delta float64) {
		v := ms.audio.Volume() + delta
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		ms.audio.SetVolume(v)
		ms.menuUI.SetVolume(v)
		ms.audio.Play("pickup")
	}
}

func (ms *MenuScene) onConnect(name, address string) {
	if ms.netClient != nil {
		ms.netClient.Disconnect()
	}

	ms.menuUI.SetStatus("Connecting...")
	ms.menuUI.SetConnecting(true)

	ms.playerName = name
	ms.netClient = network.NewClient()
	ms.netClient.Connect(address, cfg.Network.GameVersion, name)
}

func (ms *MenuScene) saveSettings(name, address string) {
	systems.SaveSettings(&systems.SavedSettings{
		PlayerName:    name,
		ServerAddress: address,
		Volume:        ms.audio.Volume(),
	})
}
