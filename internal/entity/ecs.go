// internal/entity/ecs.go
package entity

import (
	"go-tactical-defense/internal/component"
	"go-tactical-defense/internal/types"
)

// ECS holds every entity of one session in flat arenas keyed by EntityID.
// Cross-entity references are stored as IDs and resolved against these maps each tick.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Paths       map[types.EntityID]*component.Path
	Healths     map[types.EntityID]*component.Health
	Enemies     map[types.EntityID]*component.Enemy
	Towers      map[types.EntityID]*component.Tower
	Combats     map[types.EntityID]*component.Combat
	Projectiles map[types.EntityID]*component.Projectile
	Flashes     map[types.EntityID]*component.DamageFlash

	// Insertion order of each arena. Entries whose entity is gone are skipped
	// by the iterators and dropped by Compact.
	EnemyOrder      []types.EntityID
	TowerOrder      []types.EntityID
	ProjectileOrder []types.EntityID

	Wave      *component.Wave
	GameState *component.GameState
	Ledger    *component.Ledger
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Paths:       make(map[types.EntityID]*component.Path),
		Healths:     make(map[types.EntityID]*component.Health),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Towers:      make(map[types.EntityID]*component.Tower),
		Combats:     make(map[types.EntityID]*component.Combat),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Flashes:     make(map[types.EntityID]*component.DamageFlash),
		GameState:   &component.GameState{Phase: component.PhaseIdle},
		Ledger:      &component.Ledger{},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddEnemy materializes a roster entry as a live enemy.
func (ecs *ECS) AddEnemy(e component.SpawnEntry, wave int) types.EntityID {
	id := ecs.NewEntity()
	pos := e.Position
	ecs.Positions[id] = &pos
	ecs.Velocities[id] = &component.Velocity{Speed: e.Speed}
	ecs.Paths[id] = &component.Path{PathIndex: e.PathIndex}
	ecs.Healths[id] = &component.Health{Value: e.Health, Max: e.Health}
	ecs.Enemies[id] = &component.Enemy{
		Roster:     e.Roster,
		Wave:       wave,
		Bounty:     e.Bounty,
		LeakDamage: e.LeakDamage,
	}
	ecs.EnemyOrder = append(ecs.EnemyOrder, id)
	return id
}

// AddTower registers a tower with its firing stats.
func (ecs *ECS) AddTower(pos component.Position, tower component.Tower, combat component.Combat) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &pos
	ecs.Towers[id] = &tower
	ecs.Combats[id] = &combat
	ecs.TowerOrder = append(ecs.TowerOrder, id)
	return id
}

// AddProjectile registers an active projectile.
func (ecs *ECS) AddProjectile(pos component.Position, proj component.Projectile) types.EntityID {
	id := ecs.NewEntity()
	proj.Active = true
	ecs.Positions[id] = &pos
	ecs.Projectiles[id] = &proj
	ecs.ProjectileOrder = append(ecs.ProjectileOrder, id)
	return id
}

// RemoveEnemy deletes an enemy from every arena. Removing an unknown ID is a no-op.
func (ecs *ECS) RemoveEnemy(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Enemies, id)
	delete(ecs.Flashes, id)
}

// RemoveTower deletes a tower from every arena.
func (ecs *ECS) RemoveTower(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Towers, id)
	delete(ecs.Combats, id)
}

// RemoveProjectile deletes a projectile from every arena.
func (ecs *ECS) RemoveProjectile(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Projectiles, id)
}

// IsLiveEnemy reports whether id resolves to an enemy that is still alive.
func (ecs *ECS) IsLiveEnemy(id types.EntityID) bool {
	if _, ok := ecs.Enemies[id]; !ok {
		return false
	}
	h, ok := ecs.Healths[id]
	return ok && h.Value > 0
}

// LiveEnemies returns live enemy IDs in roster (spawn) order.
func (ecs *ECS) LiveEnemies() []types.EntityID {
	out := make([]types.EntityID, 0, len(ecs.Enemies))
	for _, id := range ecs.EnemyOrder {
		if ecs.IsLiveEnemy(id) {
			out = append(out, id)
		}
	}
	return out
}

// TowerIDs returns existing tower IDs in placement order.
func (ecs *ECS) TowerIDs() []types.EntityID {
	out := make([]types.EntityID, 0, len(ecs.Towers))
	for _, id := range ecs.TowerOrder {
		if _, ok := ecs.Towers[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// ProjectileIDs returns existing projectile IDs in firing order.
func (ecs *ECS) ProjectileIDs() []types.EntityID {
	out := make([]types.EntityID, 0, len(ecs.Projectiles))
	for _, id := range ecs.ProjectileOrder {
		if _, ok := ecs.Projectiles[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// Compact drops removed IDs from the order slices.
func (ecs *ECS) Compact() {
	ecs.EnemyOrder = compact(ecs.EnemyOrder, func(id types.EntityID) bool {
		_, ok := ecs.Enemies[id]
		return ok
	})
	ecs.TowerOrder = compact(ecs.TowerOrder, func(id types.EntityID) bool {
		_, ok := ecs.Towers[id]
		return ok
	})
	ecs.ProjectileOrder = compact(ecs.ProjectileOrder, func(id types.EntityID) bool {
		_, ok := ecs.Projectiles[id]
		return ok
	})
}

func compact(ids []types.EntityID, keep func(types.EntityID) bool) []types.EntityID {
	out := ids[:0]
	for _, id := range ids {
		if keep(id) {
			out = append(out, id)
		}
	}
	return out
}
