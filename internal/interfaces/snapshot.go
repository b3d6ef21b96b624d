// internal/interfaces/snapshot.go
package interfaces

import (
	"go-tactical-defense/internal/component"
	"go-tactical-defense/internal/defs"
	"go-tactical-defense/internal/types"
)

// EnemyView is the read-only render state of one enemy.
type EnemyView struct {
	ID             types.EntityID
	X, Y           float64
	HealthFraction float64
	Flashing       bool
}

// TowerView is the read-only render state of one tower.
type TowerView struct {
	ID        types.EntityID
	X, Y      float64
	Archetype defs.Archetype
	Level     int
	Range     float64
	TargetID  types.EntityID
	// Target position, valid only when TargetID is not NoEntity.
	TargetX, TargetY float64
}

// ProjectileView is the read-only render state of one projectile.
type ProjectileView struct {
	ID   types.EntityID
	X, Y float64
}

// Snapshot is an immutable copy of the simulation taken after a tick.
// Renderers only ever see snapshots, never the live arenas.
type Snapshot struct {
	Time        float64
	Phase       component.Phase
	Wave        int
	Pending     int
	Ledger      component.Ledger
	Enemies     []EnemyView
	Towers      []TowerView
	Projectiles []ProjectileView
}
