// internal/system/projectile.go
package system

import (
	"math"

	"go-tactical-defense/internal/component"
	"go-tactical-defense/internal/entity"
	"go-tactical-defense/internal/event"
	"go-tactical-defense/internal/types"
)

// ProjectileSystem moves projectiles toward their targets and resolves hits.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// Update homes every active projectile on its target's current position and
// resolves hits. Inactive projectiles are purged at the end.
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.ProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		if !proj.Active {
			continue
		}
		pos := s.ecs.Positions[id]
		if pos == nil {
			proj.Active = false
			continue
		}

		// target gone: fizzle without damage
		if !s.ecs.IsLiveEnemy(proj.TargetID) {
			proj.Active = false
			s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileLost, Data: id})
			continue
		}

		targetPos := *s.ecs.Positions[proj.TargetID]
		proj.TargetPos = targetPos

		dx := targetPos.X - pos.X
		dy := targetPos.Y - pos.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		step := proj.Speed * deltaTime

		if dist <= step {
			pos.X = targetPos.X
			pos.Y = targetPos.Y
			s.hitTarget(proj)
			continue
		}
		pos.X += (dx / dist) * step
		pos.Y += (dy / dist) * step
	}

	s.purge()
}

func (s *ProjectileSystem) hitTarget(proj *component.Projectile) {
	proj.Active = false
	if !ApplyDamage(s.ecs, proj.TargetID, proj.Damage) {
		return
	}

	bounty := 0
	if enemy, ok := s.ecs.Enemies[proj.TargetID]; ok {
		bounty = enemy.Bounty
	}
	s.ecs.RemoveEnemy(proj.TargetID)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyKilledData{EnemyID: proj.TargetID, Bounty: bounty},
	})
}

func (s *ProjectileSystem) purge() {
	var dead []types.EntityID
	for _, id := range s.ecs.ProjectileIDs() {
		if !s.ecs.Projectiles[id].Active {
			dead = append(dead, id)
		}
	}
	for _, id := range dead {
		s.ecs.RemoveProjectile(id)
	}
	s.ecs.Compact()
}
