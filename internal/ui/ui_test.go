package ui

import (
	"image"
	"testing"

	"go-tactical-defense/internal/component"
	"go-tactical-defense/internal/config"
	"go-tactical-defense/internal/defs"
	"go-tactical-defense/internal/interfaces"
	"go-tactical-defense/internal/types"
)

func TestToRoman(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, ""},
		{-4, ""},
		{1, "I"},
		{4, "IV"},
		{9, "IX"},
		{14, "XIV"},
		{40, "XL"},
		{1994, "MCMXCIV"},
	}
	for _, tt := range tests {
		if got := toRoman(tt.in); got != tt.want {
			t.Errorf("toRoman(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPhaseColor(t *testing.T) {
	if PhaseColor(component.PhaseIdle) != config.IdleStateColor {
		t.Errorf("Idle should use the idle color")
	}
	if PhaseColor(component.PhaseInProgress) != config.WaveStateColor {
		t.Errorf("InProgress should use the wave color")
	}
	if PhaseColor(component.PhaseGameOver) != config.GameOverColor {
		t.Errorf("GameOver should use the game over color")
	}
}

func TestButtonContains(t *testing.T) {
	b := NewButton(image.Rect(10, 10, 50, 30), "x")
	if !b.Contains(10, 10) || !b.Contains(49, 29) {
		t.Errorf("corner points should be inside")
	}
	if b.Contains(50, 30) || b.Contains(9, 20) {
		t.Errorf("points past the edge should be outside")
	}
}

func TestIndicatorHitTest(t *testing.T) {
	i := NewStateIndicator(100, 100, 10)
	if !i.IsClicked(105, 105) || i.IsClicked(111, 100) {
		t.Errorf("unexpected indicator hit test")
	}
}

func TestTowerPaletteSelection(t *testing.T) {
	cat, err := defs.NewCatalog(config.Default())
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	p := NewTowerPalette(cat, 0, 0)

	// Second button is the cannon.
	if !p.HandleClick(5, 32+5) {
		t.Fatalf("click on the palette not consumed")
	}
	if !p.HasPick || p.Selected != defs.ArchetypeCannon {
		t.Fatalf("expected cannon selected, got %v %v", p.HasPick, p.Selected)
	}
	p.HandleClick(5, 32+5)
	if p.HasPick {
		t.Fatalf("clicking the selected archetype again should clear the pick")
	}
	if p.HandleClick(500, 500) {
		t.Fatalf("click outside the palette consumed")
	}

	p.Refresh(cat, 110)
	if p.buttons[0].Disabled || !p.buttons[2].Disabled {
		t.Fatalf("affordability not reflected")
	}
}

type commandSpy struct {
	upgraded, sold []types.EntityID
}

func (c *commandSpy) PlaceTower(defs.Archetype, float64, float64) (types.EntityID, error) {
	return types.NoEntity, nil
}
func (c *commandSpy) UpgradeTower(id types.EntityID) error {
	c.upgraded = append(c.upgraded, id)
	return nil
}
func (c *commandSpy) SellTower(id types.EntityID) (float64, error) {
	c.sold = append(c.sold, id)
	return 0, nil
}
func (c *commandSpy) StartNextWave() error { return nil }

func TestInfoPanelButtonsIssueCommands(t *testing.T) {
	cat, _ := defs.NewCatalog(config.Default())
	spy := &commandSpy{}
	p := NewInfoPanel(cat, spy)
	p.SetTarget(7)
	p.UpgradeButton.Rect = image.Rect(0, 0, 10, 10)
	p.SellButton.Rect = image.Rect(20, 0, 30, 10)

	p.HandleClick(5, 5)
	p.HandleClick(25, 5)

	if len(spy.upgraded) != 1 || spy.upgraded[0] != 7 {
		t.Fatalf("upgrade not issued: %v", spy.upgraded)
	}
	if len(spy.sold) != 1 || spy.sold[0] != 7 {
		t.Fatalf("sell not issued: %v", spy.sold)
	}

	p.Update(interfaces.Snapshot{})
	if p.targetY != config.ScreenHeight {
		t.Fatalf("panel should hide once the tower is gone")
	}
}
