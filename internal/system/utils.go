package system

import (
	"go-tactical-defense/internal/component"
	"go-tactical-defense/internal/entity"
	"go-tactical-defense/internal/types"
)

// DamageFlashDuration is how long an enemy renders in the hit color.
const DamageFlashDuration = 0.15

// ApplyDamage deals damage to an entity. Health is clamped at zero; the return value
// reports whether this hit took the entity from alive to dead.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage float64) bool {
	health, hasHealth := ecs.Healths[entityID]
	if !hasHealth || health.Value <= 0 || damage <= 0 {
		return false
	}

	health.Value -= damage
	if health.Value < 0 {
		health.Value = 0
	}

	if _, isEnemy := ecs.Enemies[entityID]; isEnemy {
		ecs.Flashes[entityID] = &component.DamageFlash{
			Timer:    DamageFlashDuration,
			Duration: DamageFlashDuration,
		}
	}
	return health.Value == 0
}
