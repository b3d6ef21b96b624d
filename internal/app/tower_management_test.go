package app

import (
	"errors"
	"math"
	"testing"

	"go-tactical-defense/internal/component"
	"go-tactical-defense/internal/config"
	"go-tactical-defense/internal/defs"
	"go-tactical-defense/internal/event"
)

func TestPlacementNearPathRejectedRegardlessOfMoney(t *testing.T) {
	tuning := slowTuning()
	tuning.Economy.StartingMoney = 1e6
	g, _, rec := newGame(t, tuning)

	tests := []struct {
		name string
		x, y float64
	}{
		{"on the path", 500, 100},
		{"inside clearance", 500, 125},
		{"on the clearance edge", 500, 130},
		{"near the entry", -20, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.PlaceTower(defs.ArchetypeBasic, tt.x, tt.y)
			if !errors.Is(err, ErrInvalidPlacement) {
				t.Fatalf("expected ErrInvalidPlacement, got %v", err)
			}
		})
	}

	if g.Ledger().Money != 1e6 || len(g.ECS.Towers) != 0 || rec.Count(event.TowerPlaced) != 0 {
		t.Fatalf("rejected placement changed state")
	}
}

func TestPlacementRespectsTowerSpacing(t *testing.T) {
	g, _, _ := newGame(t, slowTuning())
	if _, err := g.PlaceTower(defs.ArchetypeBasic, 100, 200); err != nil {
		t.Fatalf("first tower: %v", err)
	}
	if _, err := g.PlaceTower(defs.ArchetypeBasic, 120, 200); !errors.Is(err, ErrInvalidPlacement) {
		t.Fatalf("expected ErrInvalidPlacement for an overlapping tower, got %v", err)
	}
	if _, err := g.PlaceTower(defs.ArchetypeBasic, 140, 200); err != nil {
		t.Fatalf("spaced tower rejected: %v", err)
	}
}

func TestPlacementRequiresFunds(t *testing.T) {
	tuning := slowTuning()
	tuning.Economy.StartingMoney = 100
	g, _, _ := newGame(t, tuning)
	if _, err := g.PlaceTower(defs.ArchetypeSniper, 100, 200); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if g.Ledger().Money != 100 {
		t.Fatalf("money changed on rejected placement")
	}
	if _, err := g.PlaceTower(defs.Archetype(99), 100, 200); !errors.Is(err, ErrUnknownTower) {
		t.Fatalf("expected ErrUnknownTower, got %v", err)
	}
}

func TestPlacementAllowedDuringWave(t *testing.T) {
	g, _, _ := newGame(t, slowTuning())
	g.StartNextWave()
	if _, err := g.PlaceTower(defs.ArchetypeBasic, 300, 200); err != nil {
		t.Fatalf("placement during a wave: %v", err)
	}
}

func TestUpgradeAndSell(t *testing.T) {
	g, _, rec := newGame(t, slowTuning())
	id, err := g.PlaceTower(defs.ArchetypeBasic, 100, 200)
	if err != nil {
		t.Fatalf("PlaceTower: %v", err)
	}
	combat := g.ECS.Combats[id]
	if combat.LastFiredAt != component.NeverFired {
		t.Fatalf("new tower should never have fired")
	}

	if err := g.UpgradeTower(id); err != nil {
		t.Fatalf("UpgradeTower: %v", err)
	}
	tower := g.ECS.Towers[id]
	if tower.Level != 2 || tower.UpgradeSpent != 37.5 {
		t.Fatalf("unexpected tower after upgrade %+v", tower)
	}
	if math.Abs(combat.Damage-15) > 1e-9 || math.Abs(combat.Range-144) > 1e-9 || math.Abs(combat.FireInterval-0.4) > 1e-9 {
		t.Fatalf("unexpected upgraded stats %+v", combat)
	}
	if g.Ledger().Money != 150-50-37.5 {
		t.Fatalf("unexpected money %v", g.Ledger().Money)
	}

	// Level 2 -> 3 costs 75, more than the 62.5 left.
	if err := g.UpgradeTower(id); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if tower.Level != 2 {
		t.Fatalf("failed upgrade changed the level")
	}

	refund, err := g.SellTower(id)
	if err != nil {
		t.Fatalf("SellTower: %v", err)
	}
	if refund != 25+18.75 {
		t.Fatalf("expected refund 43.75, got %v", refund)
	}
	if _, ok := g.ECS.Towers[id]; ok {
		t.Fatalf("sold tower still present")
	}
	if g.Ledger().Money != 62.5+43.75 {
		t.Fatalf("unexpected money after sale %v", g.Ledger().Money)
	}
	if _, err := g.SellTower(id); !errors.Is(err, ErrUnknownTower) {
		t.Fatalf("selling twice: %v", err)
	}
	if err := g.UpgradeTower(id); !errors.Is(err, ErrUnknownTower) {
		t.Fatalf("upgrading a sold tower: %v", err)
	}
	if rec.Count(event.TowerUpgraded) != 1 || rec.Count(event.TowerSold) != 1 {
		t.Fatalf("missing tower events")
	}
}

func TestSoldTowerProjectilesKeepFlying(t *testing.T) {
	g, _, _ := newGame(t, slowTuning())
	id, _ := g.PlaceTower(defs.ArchetypeBasic, 100, 140)
	g.StartNextWave()
	g.Tick(step)
	if len(g.ECS.Projectiles) != 1 {
		t.Fatalf("expected one projectile in flight, got %d", len(g.ECS.Projectiles))
	}
	if _, err := g.SellTower(id); err != nil {
		t.Fatalf("SellTower: %v", err)
	}

	for i := 0; i < 60 && len(g.ECS.Projectiles) > 0; i++ {
		g.Tick(step)
	}
	damaged := false
	for _, enemy := range g.ECS.LiveEnemies() {
		if h := g.ECS.Healths[enemy]; h.Value < h.Max {
			damaged = true
		}
	}
	if !damaged {
		t.Fatalf("projectile of a sold tower should still land")
	}
}

func TestDefaultCatalogTowerCosts(t *testing.T) {
	g, _, _ := newGame(t, config.Default())
	for _, tt := range []struct {
		arch defs.Archetype
		cost float64
	}{
		{defs.ArchetypeBasic, 50}, {defs.ArchetypeCannon, 100}, {defs.ArchetypeSniper, 150}, {defs.ArchetypeLaser, 120},
	} {
		def, ok := g.Catalog.Tower(tt.arch)
		if !ok || def.Cost != tt.cost {
			t.Errorf("%s: cost %v, want %v", tt.arch, def.Cost, tt.cost)
		}
	}
}
