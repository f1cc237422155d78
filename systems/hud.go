package systems

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/carllapierre/foodfight/components"
	cfg "github.com/carllapierre/foodfight/config"
	"github.com/carllapierre/foodfight/fonts"
)

// DrawHUD renders the local player's health bar, hotbar, hit marker,
// scoreboard and death overlay.
func (s *Simulation) DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	local := s.LocalPlayer()
	if local == nil {
		return
	}

	drawHealthBar(screen, local)
	drawHotbar(screen, local)
	s.drawScoreboard(screen, e)
	drawHitMarker(screen, e)
	s.drawDeathOverlay(screen, e, local)
}

func drawHealthBar(screen *ebiten.Image, local *donburi.Entry) {
	hp := components.Health.Get(local)

	m := float32(cfg.UI.HealthBarMargin)
	w := float32(cfg.UI.HealthBarWidth)
	h := float32(cfg.UI.HealthBarHeight)

	bg := cfg.UI.HealthBarBgColor
	vector.DrawFilledRect(screen, m, m, w, h,
		color.RGBA{bg[0], bg[1], bg[2], bg[3]}, false)

	ratio := float32(0)
	if hp.Max > 0 {
		ratio = float32(hp.Current) / float32(hp.Max)
	}
	fg := cfg.UI.HealthBarFgColor
	if ratio < 0.3 {
		fg = cfg.UI.HealthBarLoColor
	}
	vector.DrawFilledRect(screen, m, m, w*ratio, h,
		color.RGBA{fg[0], fg[1], fg[2], fg[3]}, false)

	label := fmt.Sprintf("%d / %d", hp.Current, hp.Max)
	text.Draw(screen, label, fonts.Small.Get(), int(m)+4, int(m+h)-5, color.White)
}

func drawHotbar(screen *ebiten.Image, local *donburi.Entry) {
	inv := components.Inventory.Get(local)

	var parts []string
	for i, slot := range inv.Slots {
		name := "-"
		if slot.Count > 0 {
			name = fmt.Sprintf("%s x%d", slot.ItemType, slot.Count)
		}
		if i == inv.Active {
			name = "[" + name + "]"
		}
		parts = append(parts, name)
	}

	line := strings.Join(parts, "   ")
	y := screen.Bounds().Dy() - 14
	text.Draw(screen, line, fonts.Regular.Get(), int(cfg.UI.HealthBarMargin), y, color.White)
}

func (s *Simulation) drawScoreboard(screen *ebiten.Image, e *ecs.ECS) {
	type row struct {
		name          string
		kills, deaths int
	}
	var rows []row

	playerQuery.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		kills, deaths := player.Kills, player.Deaths
		if s.Net != nil && s.Net.Connected() {
			if id, ok := parseNetID(player.ID); ok {
				if v, found := s.Kills[id]; found {
					kills = v
				}
				if v, found := s.Deaths[id]; found {
					deaths = v
				}
			}
		}
		name := player.Name
		if name == "" {
			name = player.ID
		}
		rows = append(rows, row{name: name, kills: kills, deaths: deaths})
	})

	sort.Slice(rows, func(i, j int) bool { return rows[i].kills > rows[j].kills })

	x := screen.Bounds().Dx() - 180
	y := int(cfg.UI.HealthBarMargin) + 12
	for _, r := range rows {
		line := fmt.Sprintf("%-12s %d / %d", r.name, r.kills, r.deaths)
		text.Draw(screen, line, fonts.Small.Get(), x, y, color.White)
		y += 14
	}
}

func drawHitMarker(screen *ebiten.Image, e *ecs.ECS) {
	entry, ok := components.HitMarker.First(e.World)
	if !ok {
		return
	}
	m := components.HitMarker.Get(entry)
	if m.Alpha <= 0 {
		return
	}

	cx := float32(screen.Bounds().Dx()) / 2
	cy := float32(screen.Bounds().Dy()) / 2
	size := float32(6 + m.Streak*2)
	gap := float32(3)

	c := hitMarkerColor(m.Streak, m.Alpha)
	vector.StrokeLine(screen, cx-size, cy-size, cx-gap, cy-gap, 2, c, false)
	vector.StrokeLine(screen, cx+gap, cy+gap, cx+size, cy+size, 2, c, false)
	vector.StrokeLine(screen, cx+size, cy-size, cx+gap, cy-gap, 2, c, false)
	vector.StrokeLine(screen, cx-gap, cy+gap, cx-size, cy+size, 2, c, false)
}

func (s *Simulation) drawDeathOverlay(screen *ebiten.Image, e *ecs.ECS, local *donburi.Entry) {
	cs := components.CombatState.Get(local)
	if !cs.IsInDeathState {
		return
	}
	now := components.Now(e.World)

	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())

	// Fade the red tint in over the first part of the countdown.
	elapsed := now.Sub(cs.DeathStateStart)
	alpha := float32(1)
	if cfg.Effects.DeathOverlayFadeIn > 0 && elapsed < cfg.Effects.DeathOverlayFadeIn {
		alpha = float32(elapsed.Seconds() / cfg.Effects.DeathOverlayFadeIn.Seconds())
	}
	vector.DrawFilledRect(screen, 0, 0, w, h,
		color.RGBA{120, 0, 0, uint8(90 * alpha)}, false)

	remaining := cs.RespawnCountdown - elapsed
	if remaining < 0 {
		remaining = 0
	}
	msg := fmt.Sprintf("SPLATTED!  Respawning in %.1fs", remaining.Seconds())
	text.Draw(screen, msg, fonts.Title.Get(), int(w/2)-220, int(h/2), color.White)
}

func hitMarkerColor(streak int, alpha float32) color.RGBA {
	switch {
	case streak >= 3:
		return color.RGBA{255, 220, 60, uint8(255 * alpha)}
	case streak == 2:
		return color.RGBA{255, 140, 40, uint8(255 * alpha)}
	default:
		return color.RGBA{255, 255, 255, uint8(255 * alpha)}
	}
}
