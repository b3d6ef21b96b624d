// internal/system/movement.go
package system

import (
	"log"
	"math"

	"go-tactical-defense/internal/entity"
	"go-tactical-defense/internal/event"
	"go-tactical-defense/internal/types"
	"go-tactical-defense/pkg/pathnet"
)

// MovementSystem walks enemies along their paths and reports leaks.
type MovementSystem struct {
	ecs             *entity.ECS
	network         *pathnet.Network
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, network *pathnet.Network, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, network: network, eventDispatcher: eventDispatcher}
}

// Update advances every live enemy by speed*deltaTime. Dead enemies are removed
// first so they never move or leak.
func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.EnemyOrder {
		if _, ok := s.ecs.Enemies[id]; ok && !s.ecs.IsLiveEnemy(id) {
			s.ecs.RemoveEnemy(id)
		}
	}

	for _, id := range s.ecs.LiveEnemies() {
		s.advance(id, deltaTime)
	}
	s.ecs.Compact()
}

func (s *MovementSystem) advance(id types.EntityID, deltaTime float64) {
	pos := s.ecs.Positions[id]
	vel := s.ecs.Velocities[id]
	follower := s.ecs.Paths[id]
	if pos == nil || vel == nil || follower == nil {
		return
	}

	path, ok := s.network.Path(follower.PathIndex)
	if !ok {
		log.Printf("[Movement] enemy %d has unknown path %d, removing", id, follower.PathIndex)
		s.ecs.RemoveEnemy(id)
		return
	}

	target, ok := path.Waypoint(follower.Cursor)
	if !ok {
		s.leak(id)
		return
	}

	dx := target.X - pos.X
	dy := target.Y - pos.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	moveDistance := vel.Speed * deltaTime

	if dist <= moveDistance {
		pos.X = target.X
		pos.Y = target.Y
		follower.Cursor++
		if follower.Cursor > path.LastIndex() {
			s.leak(id)
		}
		return
	}

	pos.X += (dx / dist) * moveDistance
	pos.Y += (dy / dist) * moveDistance
}

func (s *MovementSystem) leak(id types.EntityID) {
	enemy := s.ecs.Enemies[id]
	damage := 0
	if enemy != nil {
		damage = enemy.LeakDamage
	}
	s.ecs.RemoveEnemy(id)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyLeaked,
		Data: event.EnemyLeakedData{EnemyID: id, Damage: damage},
	})
}
