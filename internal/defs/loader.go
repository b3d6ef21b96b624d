// internal/defs/loader.go
package defs

import (
	"fmt"

	"go-tactical-defense/internal/config"
	"go-tactical-defense/pkg/pathnet"
)

// Catalog is the per-session library of tower and wave definitions.
type Catalog struct {
	towers          [archetypeCount]TowerDefinition
	waves           config.WaveTuning
	economy         config.EconomyTuning
	placement       config.PlacementTuning
	projectileSpeed float64
	Network         *pathnet.Network
}

// NewCatalog resolves a tuning into archetype records and a path network.
func NewCatalog(t config.Tuning) (*Catalog, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}

	c := &Catalog{
		waves:           t.Waves,
		economy:         t.Economy,
		placement:       t.Placement,
		projectileSpeed: t.ProjectileSpeed,
	}
	for _, a := range Archetypes() {
		s := t.Towers[a.String()]
		c.towers[a] = TowerDefinition{
			Archetype:    a,
			Damage:       s.Damage,
			Range:        s.Range,
			FireInterval: s.FireInterval,
			Cost:         s.Cost,
		}
	}

	paths := make([]pathnet.Path, 0, len(t.Paths))
	for i, pd := range t.Paths {
		pts := make([]pathnet.Point, len(pd))
		for j, p := range pd {
			pts[j] = pathnet.Point{X: p.X, Y: p.Y}
		}
		p, err := pathnet.NewPath(pts...)
		if err != nil {
			return nil, fmt.Errorf("failed to build path %d: %w", i, err)
		}
		paths = append(paths, p)
	}
	net, err := pathnet.NewNetwork(paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to build path network: %w", err)
	}
	c.Network = net
	return c, nil
}

// LoadCatalog reads a YAML tuning file and builds a catalog from it.
func LoadCatalog(path string) (*Catalog, error) {
	t, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return NewCatalog(t)
}

// Tower returns the definition of an archetype.
func (c *Catalog) Tower(a Archetype) (TowerDefinition, bool) {
	if !a.Valid() {
		return TowerDefinition{}, false
	}
	return c.towers[a], true
}

// Wave resolves the enemy stat line for a wave index. Negative indices are clamped to 0.
func (c *Catalog) Wave(index int) WaveDefinition {
	if index < 0 {
		index = 0
	}
	w := c.waves
	return WaveDefinition{
		Number:     index,
		Count:      w.BaseCount + index*w.CountPerWave,
		Health:     w.BaseHealth + float64(index)*w.HealthPerWave,
		Speed:      w.BaseSpeed + float64(index)*w.SpeedPerWave,
		Bounty:     w.BaseBounty + index,
		LeakDamage: w.LeakDamage,
	}
}

// SpacingDistance is the gap between consecutive spawn points on a path.
func (c *Catalog) SpacingDistance() float64 {
	return c.waves.SpacingDistance
}

// SpawnInterval is the delay between roster releases; 0 releases the whole roster at once.
func (c *Catalog) SpawnInterval() float64 {
	return c.waves.SpawnInterval
}

// Economy returns the ledger tuning.
func (c *Catalog) Economy() config.EconomyTuning {
	return c.economy
}

// CompletionBonus returns the money and score awarded for clearing a wave.
func (c *Catalog) CompletionBonus(index int) int {
	return c.economy.BaseBonus + index*c.economy.BonusPerWave
}

// Placement returns the tower placement clearances.
func (c *Catalog) Placement() config.PlacementTuning {
	return c.placement
}

// ProjectileSpeed is shared by every projectile regardless of tower type.
func (c *Catalog) ProjectileSpeed() float64 {
	return c.projectileSpeed
}
