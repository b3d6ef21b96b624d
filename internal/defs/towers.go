// internal/defs/towers.go
package defs

import "fmt"

// Archetype is one of the fixed tower configurations.
type Archetype int

const (
	ArchetypeBasic Archetype = iota
	ArchetypeCannon
	ArchetypeSniper
	ArchetypeLaser
	archetypeCount
)

// Upgrade multipliers. Upgrades scale the current stats, they never replace them.
const (
	UpgradeDamageMultiplier   = 1.5
	UpgradeRangeMultiplier    = 1.2
	UpgradeIntervalMultiplier = 0.8
	UpgradeCostFactor         = 0.75
	SellRefundFactor          = 0.5
)

var archetypeNames = [...]string{"basic", "cannon", "sniper", "laser"}

// Archetypes returns every archetype in declaration order.
func Archetypes() []Archetype {
	out := make([]Archetype, 0, archetypeCount)
	for a := ArchetypeBasic; a < archetypeCount; a++ {
		out = append(out, a)
	}
	return out
}

// String returns the lowercase archetype name used in tuning files.
func (a Archetype) String() string {
	if !a.Valid() {
		return fmt.Sprintf("archetype(%d)", int(a))
	}
	return archetypeNames[a]
}

// Valid reports whether a names a known archetype.
func (a Archetype) Valid() bool {
	return a >= ArchetypeBasic && a < archetypeCount
}

// ParseArchetype maps a tuning-file name back to its archetype.
func ParseArchetype(name string) (Archetype, error) {
	for i, n := range archetypeNames {
		if n == name {
			return Archetype(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tower archetype %q", name)
}

// TowerDefinition holds the static base stats of an archetype.
type TowerDefinition struct {
	Archetype    Archetype
	Damage       float64
	Range        float64
	FireInterval float64 // seconds
	Cost         float64
}

// UpgradeCost returns the price of raising a tower of this archetype from level to level+1.
func (d TowerDefinition) UpgradeCost(level int) float64 {
	return UpgradeCostFactor * d.Cost * float64(level)
}

// SellValue returns the refund for a tower that has had upgradeSpent paid into upgrades.
func (d TowerDefinition) SellValue(upgradeSpent float64) float64 {
	return SellRefundFactor*d.Cost + SellRefundFactor*upgradeSpent
}
