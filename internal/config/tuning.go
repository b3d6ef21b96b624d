// internal/config/tuning.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PointDef is a waypoint in a tuning file.
type PointDef struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// TowerStats is the base stat record of one tower archetype.
type TowerStats struct {
	Damage       float64 `yaml:"damage"`
	Range        float64 `yaml:"range"`
	FireInterval float64 `yaml:"fireInterval"` // seconds between shots
	Cost         float64 `yaml:"cost"`
}

// EconomyTuning controls the ledger.
type EconomyTuning struct {
	StartingMoney float64 `yaml:"startingMoney"`
	StartingLives int     `yaml:"startingLives"`
	BaseBonus     int     `yaml:"baseBonus"`
	BonusPerWave  int     `yaml:"bonusPerWave"`
	LevelEvery    int     `yaml:"levelEvery"` // completed waves per level step
}

// WaveTuning controls roster generation.
type WaveTuning struct {
	BaseCount       int     `yaml:"baseCount"`
	CountPerWave    int     `yaml:"countPerWave"`
	BaseHealth      float64 `yaml:"baseHealth"`
	HealthPerWave   float64 `yaml:"healthPerWave"`
	BaseSpeed       float64 `yaml:"baseSpeed"`
	SpeedPerWave    float64 `yaml:"speedPerWave"`
	BaseBounty      int     `yaml:"baseBounty"`
	LeakDamage      int     `yaml:"leakDamage"`
	SpacingDistance float64 `yaml:"spacingDistance"`
	SpawnInterval   float64 `yaml:"spawnInterval"` // seconds between roster releases, 0 = all at once
}

// PlacementTuning holds tower placement clearances.
type PlacementTuning struct {
	MinPathClearance float64 `yaml:"minPathClearance"`
	MinTowerSpacing  float64 `yaml:"minTowerSpacing"`
}

// Tuning is the complete gameplay configuration of one session.
type Tuning struct {
	Economy         EconomyTuning         `yaml:"economy"`
	Waves           WaveTuning            `yaml:"waves"`
	Placement       PlacementTuning       `yaml:"placement"`
	ProjectileSpeed float64               `yaml:"projectileSpeed"`
	Towers          map[string]TowerStats `yaml:"towers"`
	Paths           [][]PointDef          `yaml:"paths"`
}

// Default returns the built-in tuning.
func Default() Tuning {
	return Tuning{
		Economy: EconomyTuning{
			StartingMoney: 150,
			StartingLives: 10,
			BaseBonus:     20,
			BonusPerWave:  5,
			LevelEvery:    5,
		},
		Waves: WaveTuning{
			BaseCount:       6,
			CountPerWave:    2,
			BaseHealth:      30,
			HealthPerWave:   20,
			BaseSpeed:       40,
			SpeedPerWave:    2,
			BaseBounty:      5,
			LeakDamage:      2,
			SpacingDistance: 30,
		},
		Placement: PlacementTuning{
			MinPathClearance: 30,
			MinTowerSpacing:  28,
		},
		ProjectileSpeed: 300,
		Towers: map[string]TowerStats{
			"basic":  {Damage: 10, Range: 120, FireInterval: 0.5, Cost: 50},
			"cannon": {Damage: 25, Range: 100, FireInterval: 1.2, Cost: 100},
			"sniper": {Damage: 50, Range: 250, FireInterval: 2.0, Cost: 150},
			"laser":  {Damage: 4, Range: 90, FireInterval: 0.1, Cost: 120},
		},
		Paths: [][]PointDef{
			{{0, 200}, {400, 200}, {400, 600}, {800, 600}, {800, 300}, {1200, 300}},
			{{0, 800}, {600, 800}, {600, 450}, {1000, 450}, {1000, 750}, {1200, 750}},
		},
	}
}

// towerOverlay is a tower stat record as written in a file: absent keys stay nil.
type towerOverlay struct {
	Damage       *float64 `yaml:"damage"`
	Range        *float64 `yaml:"range"`
	FireInterval *float64 `yaml:"fireInterval"`
	Cost         *float64 `yaml:"cost"`
}

func (o towerOverlay) applyTo(s TowerStats) TowerStats {
	if o.Damage != nil {
		s.Damage = *o.Damage
	}
	if o.Range != nil {
		s.Range = *o.Range
	}
	if o.FireInterval != nil {
		s.FireInterval = *o.FireInterval
	}
	if o.Cost != nil {
		s.Cost = *o.Cost
	}
	return s
}

// Load reads a YAML tuning file. Keys missing from the file keep their default
// values, down to single fields of a tower record.
func Load(path string) (Tuning, error) {
	t := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file %s: %w", path, err)
	}

	towers := t.Towers
	t.Towers = nil
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Default(), fmt.Errorf("failed to parse tuning YAML from %s: %w", path, err)
	}
	var overlay struct {
		Towers map[string]towerOverlay `yaml:"towers"`
	}
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return Default(), fmt.Errorf("failed to parse tower stats from %s: %w", path, err)
	}
	for name, o := range overlay.Towers {
		towers[name] = o.applyTo(towers[name])
	}
	t.Towers = towers

	if err := t.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid tuning in %s: %w", path, err)
	}
	return t, nil
}

// Validate checks ranges that the simulation relies on.
func (t Tuning) Validate() error {
	if t.Economy.StartingMoney < 0 {
		return fmt.Errorf("economy.startingMoney cannot be negative, got %v", t.Economy.StartingMoney)
	}
	if t.Economy.StartingLives < 1 {
		return fmt.Errorf("economy.startingLives must be at least 1, got %d", t.Economy.StartingLives)
	}
	if t.Economy.LevelEvery < 1 {
		return fmt.Errorf("economy.levelEvery must be at least 1, got %d", t.Economy.LevelEvery)
	}
	if t.Waves.BaseCount < 0 || t.Waves.CountPerWave < 0 {
		return fmt.Errorf("waves: counts cannot be negative")
	}
	if t.Waves.BaseHealth <= 0 {
		return fmt.Errorf("waves.baseHealth must be positive, got %v", t.Waves.BaseHealth)
	}
	if t.Waves.BaseSpeed <= 0 || t.Waves.SpeedPerWave < 0 {
		return fmt.Errorf("waves: speed must be positive and non-decreasing")
	}
	if t.Waves.HealthPerWave < 0 {
		return fmt.Errorf("waves.healthPerWave cannot be negative, got %v", t.Waves.HealthPerWave)
	}
	if t.Waves.BaseBounty < 0 {
		return fmt.Errorf("waves.baseBounty cannot be negative, got %d", t.Waves.BaseBounty)
	}
	if t.Waves.LeakDamage < 1 {
		return fmt.Errorf("waves.leakDamage must be at least 1, got %d", t.Waves.LeakDamage)
	}
	if t.Waves.SpawnInterval < 0 {
		return fmt.Errorf("waves.spawnInterval cannot be negative, got %v", t.Waves.SpawnInterval)
	}
	if t.ProjectileSpeed <= 0 {
		return fmt.Errorf("projectileSpeed must be positive, got %v", t.ProjectileSpeed)
	}
	for _, name := range []string{"basic", "cannon", "sniper", "laser"} {
		s, ok := t.Towers[name]
		if !ok {
			return fmt.Errorf("towers: missing archetype %q", name)
		}
		if s.Damage <= 0 || s.Range <= 0 || s.FireInterval <= 0 || s.Cost < 0 {
			return fmt.Errorf("towers.%s: damage, range and fireInterval must be positive", name)
		}
	}
	if len(t.Paths) == 0 {
		return fmt.Errorf("at least one path is required")
	}
	for i, p := range t.Paths {
		if len(p) < 2 {
			return fmt.Errorf("paths[%d]: need at least 2 waypoints, got %d", i, len(p))
		}
	}
	return nil
}
