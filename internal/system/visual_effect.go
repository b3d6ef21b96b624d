// internal/system/visual_effect.go
package system

import (
	"go-tactical-defense/internal/entity"
)

// VisualEffectSystem decays damage flashes.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update counts down hit flashes and drops expired ones or ones whose enemy is gone.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.Flashes {
		flash.Timer -= deltaTime
		if _, alive := s.ecs.Enemies[id]; flash.Timer <= 0 || !alive {
			delete(s.ecs.Flashes, id)
		}
	}
}
