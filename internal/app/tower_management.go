// internal/app/tower_management.go
package app

import (
	"fmt"
	"log"

	"go-tactical-defense/internal/component"
	"go-tactical-defense/internal/defs"
	"go-tactical-defense/internal/event"
	"go-tactical-defense/internal/types"
	"go-tactical-defense/pkg/pathnet"
)

// PlaceTower builds a tower of archetype arch at (x, y). Placement must keep
// clear of every path segment and every other tower, and the ledger must cover
// the cost. A rejected placement changes nothing.
func (g *Game) PlaceTower(arch defs.Archetype, x, y float64) (types.EntityID, error) {
	if g.Phase() == component.PhaseGameOver {
		return types.NoEntity, ErrGameOver
	}
	def, ok := g.Catalog.Tower(arch)
	if !ok {
		return types.NoEntity, fmt.Errorf("archetype %d: %w", arch, ErrUnknownTower)
	}
	if err := g.canPlaceTower(x, y); err != nil {
		return types.NoEntity, err
	}
	if !g.EconomySystem.Spend(def.Cost) {
		return types.NoEntity, fmt.Errorf("%s costs %.0f, have %.0f: %w",
			arch, def.Cost, g.ECS.Ledger.Money, ErrInsufficientFunds)
	}

	id := g.ECS.AddTower(
		component.Position{X: x, Y: y},
		component.Tower{Archetype: arch, Level: 1},
		component.Combat{
			Damage:       def.Damage,
			Range:        def.Range,
			FireInterval: def.FireInterval,
			LastFiredAt:  component.NeverFired,
		},
	)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerData{TowerID: id, Archetype: arch, Level: 1, Amount: def.Cost},
	})
	return id, nil
}

// CanPlaceTower reports whether (x, y) satisfies the clearance rules, ignoring money.
func (g *Game) CanPlaceTower(x, y float64) bool {
	return g.canPlaceTower(x, y) == nil
}

func (g *Game) canPlaceTower(x, y float64) error {
	rules := g.Catalog.Placement()
	pt := pathnet.Point{X: x, Y: y}

	if d := g.Catalog.Network.DistanceTo(pt); d <= rules.MinPathClearance {
		return fmt.Errorf("(%.0f, %.0f) is %.1f from the path: %w", x, y, d, ErrInvalidPlacement)
	}
	for _, id := range g.ECS.TowerIDs() {
		if d := g.ECS.Positions[id].Point().Dist(pt); d <= rules.MinTowerSpacing {
			return fmt.Errorf("(%.0f, %.0f) is %.1f from tower %d: %w", x, y, d, id, ErrInvalidPlacement)
		}
	}
	return nil
}

// UpgradeCost returns the price of the tower's next level.
func (g *Game) UpgradeCost(id types.EntityID) (float64, error) {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return 0, fmt.Errorf("tower %d: %w", id, ErrUnknownTower)
	}
	def, _ := g.Catalog.Tower(tower.Archetype)
	return def.UpgradeCost(tower.Level), nil
}

// UpgradeTower raises the tower one level if the ledger covers the cost.
func (g *Game) UpgradeTower(id types.EntityID) error {
	if g.Phase() == component.PhaseGameOver {
		return ErrGameOver
	}
	cost, err := g.UpgradeCost(id)
	if err != nil {
		return err
	}
	if !g.EconomySystem.Spend(cost) {
		return fmt.Errorf("upgrade of tower %d costs %.0f: %w", id, cost, ErrInsufficientFunds)
	}

	tower := g.ECS.Towers[id]
	combat := g.ECS.Combats[id]
	combat.Damage *= defs.UpgradeDamageMultiplier
	combat.Range *= defs.UpgradeRangeMultiplier
	combat.FireInterval *= defs.UpgradeIntervalMultiplier
	tower.Level++
	tower.UpgradeSpent += cost

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerUpgraded,
		Data: event.TowerData{TowerID: id, Archetype: tower.Archetype, Level: tower.Level, Amount: cost},
	})
	return nil
}

// SellTower removes the tower and refunds part of what was paid for it.
// Projectiles it already fired keep flying.
func (g *Game) SellTower(id types.EntityID) (float64, error) {
	if g.Phase() == component.PhaseGameOver {
		return 0, ErrGameOver
	}
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return 0, fmt.Errorf("tower %d: %w", id, ErrUnknownTower)
	}
	def, _ := g.Catalog.Tower(tower.Archetype)
	refund := def.SellValue(tower.UpgradeSpent)

	g.ECS.RemoveTower(id)
	g.ECS.Compact()
	g.EconomySystem.Credit(refund)
	log.Printf("[Game] sold %s tower %d for %.0f", tower.Archetype, id, refund)

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerSold,
		Data: event.TowerData{TowerID: id, Archetype: tower.Archetype, Level: tower.Level, Amount: refund},
	})
	return refund, nil
}
