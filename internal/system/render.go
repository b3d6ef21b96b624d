// internal/system/render.go
package system

import (
	"image/color"

	"go-tactical-defense/internal/config"
	"go-tactical-defense/internal/interfaces"
	"go-tactical-defense/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem draws the entities of the last published snapshot.
type RenderSystem struct {
	snap      interfaces.Snapshot
	ShowRange bool
	Selected  types.EntityID
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Render stores the latest snapshot; Draw paints it on the next frame.
func (s *RenderSystem) Render(snap interfaces.Snapshot) {
	s.snap = snap
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	snap := s.snap

	// target lines go under the entities
	for _, t := range snap.Towers {
		if t.TargetID == types.NoEntity {
			continue
		}
		vector.StrokeLine(screen, float32(t.X), float32(t.Y), float32(t.TargetX), float32(t.TargetY),
			1.0, config.LineColor, true)
	}

	for _, t := range snap.Towers {
		if s.ShowRange || t.ID == s.Selected {
			vector.StrokeCircle(screen, float32(t.X), float32(t.Y), float32(t.Range), 1.0, config.RangeColor, true)
		}
		vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y),
			config.TowerRadius+config.TowerStrokeWidth, config.TowerStrokeColor, true)
		vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y), config.TowerRadius, towerColor(t), true)
		for l := 1; l < t.Level; l++ {
			vector.DrawFilledCircle(screen, float32(t.X)-config.TowerRadius+float32(l*5), float32(t.Y)+config.TowerRadius+4,
				1.5, config.TextLightColor, true)
		}
	}

	for _, e := range snap.Enemies {
		c := config.EnemyColor
		if e.Flashing {
			c = config.DamageFlashColor
		}
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), config.EnemyRadius, c, true)
		s.drawHealthBar(screen, e)
	}

	for _, p := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), config.ProjectileRadius, config.ProjectileColor, true)
	}
}

func (s *RenderSystem) drawHealthBar(screen *ebiten.Image, e interfaces.EnemyView) {
	const w, h = 2 * config.EnemyRadius, 3
	x := float32(e.X) - w/2
	y := float32(e.Y) - config.EnemyRadius - 6
	vector.DrawFilledRect(screen, x, y, w, h, config.HealthBackColor, false)
	vector.DrawFilledRect(screen, x, y, w*float32(e.HealthFraction), h, config.HealthBarColor, false)
}

func towerColor(t interfaces.TowerView) color.Color {
	if int(t.Archetype) < len(config.TowerColors) {
		return config.TowerColors[t.Archetype]
	}
	return config.TowerStrokeColor
}
