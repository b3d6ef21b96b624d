package event

import (
	"go-tactical-defense/internal/component"
	"go-tactical-defense/internal/defs"
	"go-tactical-defense/internal/types"
)

const (
	EnemyKilled     EventType = "EnemyKilled"     // Data: EnemyKilledData
	EnemyLeaked     EventType = "EnemyLeaked"     // Data: EnemyLeakedData
	ProjectileFired EventType = "ProjectileFired" // Data: ProjectileFiredData
	ProjectileLost  EventType = "ProjectileLost"  // Data: types.EntityID of the projectile
	TowerPlaced     EventType = "TowerPlaced"     // Data: TowerData
	TowerUpgraded   EventType = "TowerUpgraded"   // Data: TowerData
	TowerSold       EventType = "TowerSold"       // Data: TowerData
	WaveStarted     EventType = "WaveStarted"     // Data: WaveData
	WaveCompleted   EventType = "WaveCompleted"   // Data: WaveData
	PhaseChanged    EventType = "PhaseChanged"    // Data: PhaseChangedData
	LevelUp         EventType = "LevelUp"         // Data: int, the new level
	GameOver        EventType = "GameOver"        // Data: int, the final score
)

type EnemyKilledData struct {
	EnemyID types.EntityID
	Bounty  int
}

type EnemyLeakedData struct {
	EnemyID types.EntityID
	Damage  int
}

type ProjectileFiredData struct {
	ProjectileID types.EntityID
	TowerID      types.EntityID
	TargetID     types.EntityID
}

type TowerData struct {
	TowerID   types.EntityID
	Archetype defs.Archetype
	Level     int
	Amount    float64 // money spent or refunded
}

type WaveData struct {
	Wave  int
	Count int // roster size for WaveStarted, bonus for WaveCompleted
}

type PhaseChangedData struct {
	From, To component.Phase
}
