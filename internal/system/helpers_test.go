package system

import (
	"testing"

	"go-tactical-defense/internal/component"
	"go-tactical-defense/internal/config"
	"go-tactical-defense/internal/defs"
	"go-tactical-defense/internal/entity"
	"go-tactical-defense/internal/event"
	"go-tactical-defense/internal/types"
)

// straightTuning is a single horizontal path from (0,100) to (1000,100).
func straightTuning() config.Tuning {
	t := config.Default()
	t.Paths = [][]config.PointDef{{{X: 0, Y: 100}, {X: 1000, Y: 100}}}
	return t
}

func newCatalog(t *testing.T, tuning config.Tuning) *defs.Catalog {
	t.Helper()
	cat, err := defs.NewCatalog(tuning)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return cat
}

type fixture struct {
	ecs      *entity.ECS
	events   *event.Dispatcher
	recorder *event.Recorder
	catalog  *defs.Catalog
}

func newFixture(t *testing.T, tuning config.Tuning) *fixture {
	t.Helper()
	f := &fixture{
		ecs:      entity.NewECS(),
		events:   event.NewDispatcher(),
		recorder: &event.Recorder{},
		catalog:  newCatalog(t, tuning),
	}
	f.events.SubscribeAll(f.recorder)
	return f
}

func (f *fixture) enemy(x, y, health, speed float64, roster int) types.EntityID {
	return f.ecs.AddEnemy(component.SpawnEntry{
		Position:   component.Position{X: x, Y: y},
		Health:     health,
		Speed:      speed,
		Bounty:     7,
		LeakDamage: 3,
		Roster:     roster,
	}, 1)
}

func (f *fixture) tower(x, y, damage, rng, interval float64) types.EntityID {
	return f.ecs.AddTower(
		component.Position{X: x, Y: y},
		component.Tower{Archetype: defs.ArchetypeBasic, Level: 1},
		component.Combat{Damage: damage, Range: rng, FireInterval: interval, LastFiredAt: component.NeverFired},
	)
}
