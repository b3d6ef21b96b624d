package ui

import (
	"fmt"
	"image"
	"image/color"

	"go-tactical-defense/internal/config"
	"go-tactical-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
)

// TowerPalette is a column of buttons, one per archetype. The selected archetype
// is placed on the next map click.
type TowerPalette struct {
	buttons  []*Button
	arches   []defs.Archetype
	Selected defs.Archetype
	HasPick  bool
}

func NewTowerPalette(catalog *defs.Catalog, x, y int) *TowerPalette {
	p := &TowerPalette{}
	const w, h, gap = 130, 26, 6
	for n, a := range defs.Archetypes() {
		def, _ := catalog.Tower(a)
		rect := image.Rect(x, y+n*(h+gap), x+w, y+n*(h+gap)+h)
		b := NewButton(rect, fmt.Sprintf("%s (%.0f)", a, def.Cost))
		tc := config.TowerColors[a]
		b.BgColor = color.RGBA{tc.R / 3, tc.G / 3, tc.B / 3, 255}
		p.buttons = append(p.buttons, b)
		p.arches = append(p.arches, a)
	}
	return p
}

// HandleClick selects the archetype under the cursor. It reports whether the
// click landed on the palette.
func (p *TowerPalette) HandleClick(x, y int) bool {
	for n, b := range p.buttons {
		if b.Contains(x, y) {
			if p.HasPick && p.Selected == p.arches[n] {
				p.HasPick = false
			} else {
				p.Selected = p.arches[n]
				p.HasPick = true
			}
			return true
		}
	}
	return false
}

// Refresh greys out archetypes the player cannot afford.
func (p *TowerPalette) Refresh(catalog *defs.Catalog, money float64) {
	for n, b := range p.buttons {
		def, _ := catalog.Tower(p.arches[n])
		b.Disabled = def.Cost > money
	}
}

func (p *TowerPalette) Draw(screen *ebiten.Image, cursorX, cursorY int) {
	for n, b := range p.buttons {
		b.TextColor = color.White
		if p.HasPick && p.Selected == p.arches[n] {
			b.TextColor = config.ProjectileColor
		}
		b.Draw(screen, cursorX, cursorY)
	}
}
