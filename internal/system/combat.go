package system

import (
	"go-tactical-defense/internal/component"
	"go-tactical-defense/internal/entity"
	"go-tactical-defense/internal/event"
	"go-tactical-defense/internal/types"
)

// CombatSystem picks targets for towers and fires projectiles.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	projectileSpeed float64
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, projectileSpeed float64) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		projectileSpeed: projectileSpeed,
	}
}

// Update runs target acquisition and firing for every tower at simulation time now.
// Enemy positions must already be advanced for this tick.
func (s *CombatSystem) Update(now float64) {
	for _, id := range s.ecs.TowerIDs() {
		tower := s.ecs.Towers[id]
		combat, hasCombat := s.ecs.Combats[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasCombat || !hasPos {
			continue
		}

		tower.TargetID = types.NoEntity
		inRange := s.EnemiesInRange(id)
		if len(inRange) == 0 {
			continue
		}
		targetID := inRange[0]
		tower.TargetID = targetID

		if combat.Ready(now) {
			s.createProjectile(id, targetID, *pos, combat.Damage)
			combat.LastFiredAt = now
		}
	}
}

// EnemiesInRange returns every live enemy inside the tower's circle, in roster
// order. The first one is the tower's target.
func (s *CombatSystem) EnemiesInRange(towerID types.EntityID) []types.EntityID {
	combat, ok := s.ecs.Combats[towerID]
	pos, hasPos := s.ecs.Positions[towerID]
	if !ok || !hasPos {
		return nil
	}
	r2 := combat.Range * combat.Range
	var out []types.EntityID
	for _, enemyID := range s.ecs.LiveEnemies() {
		ep, ok := s.ecs.Positions[enemyID]
		if !ok {
			continue
		}
		dx := ep.X - pos.X
		dy := ep.Y - pos.Y
		if dx*dx+dy*dy <= r2 {
			out = append(out, enemyID)
		}
	}
	return out
}

func (s *CombatSystem) createProjectile(towerID, enemyID types.EntityID, from component.Position, damage float64) {
	target := *s.ecs.Positions[enemyID]
	projID := s.ecs.AddProjectile(from, component.Projectile{
		SourceID:  towerID,
		TargetID:  enemyID,
		TargetPos: target,
		Speed:     s.projectileSpeed,
		Damage:    damage,
	})
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ProjectileFired,
		Data: event.ProjectileFiredData{ProjectileID: projID, TowerID: towerID, TargetID: enemyID},
	})
}
