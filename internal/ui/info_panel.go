// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"

	"go-tactical-defense/internal/config"
	"go-tactical-defense/internal/defs"
	"go-tactical-defense/internal/interfaces"
	"go-tactical-defense/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelHeight    = 110
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 18
)

// InfoPanel shows the selected tower and offers upgrade and sell actions.
type InfoPanel struct {
	IsVisible     bool
	TargetEntity  types.EntityID
	currentY      float64
	targetY       float64
	UpgradeButton *Button
	SellButton    *Button
	catalog       *defs.Catalog
	commands      interfaces.Commands
}

func NewInfoPanel(catalog *defs.Catalog, commands interfaces.Commands) *InfoPanel {
	return &InfoPanel{
		currentY:      config.ScreenHeight,
		targetY:       config.ScreenHeight,
		UpgradeButton: NewButton(image.Rectangle{}, "Upgrade"),
		SellButton:    NewButton(image.Rectangle{}, "Sell"),
		catalog:       catalog,
		commands:      commands,
	}
}

func (p *InfoPanel) SetTarget(id types.EntityID) {
	p.TargetEntity = id
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Update animates the panel and hides it when its tower no longer exists.
func (p *InfoPanel) Update(snap interfaces.Snapshot) {
	if p.TargetEntity != types.NoEntity && findTower(snap, p.TargetEntity) == nil {
		p.Hide()
	}
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}
		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
			p.TargetEntity = types.NoEntity
		}
	}
}

// HandleClick runs the button under (x, y). It reports whether the click was consumed.
func (p *InfoPanel) HandleClick(x, y int) bool {
	if !p.IsVisible || p.TargetEntity == types.NoEntity {
		return false
	}
	switch {
	case p.UpgradeButton.Contains(x, y):
		if err := p.commands.UpgradeTower(p.TargetEntity); err != nil {
			log.Printf("[UI] upgrade rejected: %v", err)
		}
		return true
	case p.SellButton.Contains(x, y):
		if _, err := p.commands.SellTower(p.TargetEntity); err != nil {
			log.Printf("[UI] sell rejected: %v", err)
		}
		p.Hide()
		return true
	}
	return y >= int(p.currentY)
}

func (p *InfoPanel) Draw(screen *ebiten.Image, snap interfaces.Snapshot, cursorX, cursorY int) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)
	x, y := float32(panelRect.Min.X), float32(panelRect.Min.Y)
	w, h := float32(panelRect.Dx()), float32(panelRect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{R: 25, G: 35, B: 45, A: 230}, true)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{R: 70, G: 130, B: 180, A: 255}, true)

	tower := findTower(snap, p.TargetEntity)
	if tower == nil {
		return
	}
	p.drawTowerInfo(screen, *tower, snap.Ledger.Money, panelRect.Min.X+15, panelRect.Min.Y+20)

	const btnWidth, btnHeight = 150, 34
	p.SellButton.Rect = image.Rect(panelRect.Max.X-btnWidth-20, panelRect.Max.Y-btnHeight-15,
		panelRect.Max.X-20, panelRect.Max.Y-15)
	p.UpgradeButton.Rect = p.SellButton.Rect.Sub(image.Pt(btnWidth+20, 0))
	p.UpgradeButton.Draw(screen, cursorX, cursorY)
	p.SellButton.Draw(screen, cursorX, cursorY)
}

func (p *InfoPanel) drawTowerInfo(screen *ebiten.Image, tower interfaces.TowerView, money float64, startX, startY int) {
	def, ok := p.catalog.Tower(tower.Archetype)
	if !ok {
		return
	}
	upgrade := def.UpgradeCost(tower.Level)
	p.UpgradeButton.Text = fmt.Sprintf("Upgrade (%.0f)", upgrade)
	p.UpgradeButton.Disabled = upgrade > money

	lines := []string{
		fmt.Sprintf("%s tower, level %d", tower.Archetype, tower.Level),
		fmt.Sprintf("Range: %.0f", tower.Range),
	}
	if tower.TargetID != types.NoEntity {
		lines = append(lines, fmt.Sprintf("Target: enemy %d", tower.TargetID))
	} else {
		lines = append(lines, "Target: none")
	}
	for n, line := range lines {
		text.Draw(screen, line, DefaultFace, startX, startY+n*lineHeight, config.TextLightColor)
	}
}

func findTower(snap interfaces.Snapshot, id types.EntityID) *interfaces.TowerView {
	for i := range snap.Towers {
		if snap.Towers[i].ID == id {
			return &snap.Towers[i]
		}
	}
	return nil
}
