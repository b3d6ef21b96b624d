package system

import (
	"testing"

	"go-tactical-defense/internal/event"
	"go-tactical-defense/internal/types"
)

func TestCombatTargetsFirstInRosterOrder(t *testing.T) {
	f := newFixture(t, straightTuning())
	cs := NewCombatSystem(f.ecs, f.events, 300)
	tower := f.tower(100, 140, 10, 120, 0.5)
	// The later roster entry is closer but the earlier one wins.
	first := f.enemy(20, 100, 50, 10, 0)
	f.enemy(100, 100, 50, 10, 1)

	cs.Update(0.1)

	if got := f.ecs.Towers[tower].TargetID; got != first {
		t.Fatalf("expected target %d, got %d", first, got)
	}
	fired := f.recorder.OfType(event.ProjectileFired)
	if len(fired) != 1 {
		t.Fatalf("expected 1 shot, got %d", len(fired))
	}
	d := fired[0].Data.(event.ProjectileFiredData)
	proj := f.ecs.Projectiles[d.ProjectileID]
	if proj.TargetID != first || proj.Damage != 10 || proj.Speed != 300 || !proj.Active {
		t.Fatalf("unexpected projectile %+v", proj)
	}
	pos := f.ecs.Positions[d.ProjectileID]
	if pos.X != 100 || pos.Y != 140 {
		t.Fatalf("projectile should start at the tower, got (%v,%v)", pos.X, pos.Y)
	}
}

func TestCombatRespectsFireInterval(t *testing.T) {
	f := newFixture(t, straightTuning())
	cs := NewCombatSystem(f.ecs, f.events, 300)
	f.tower(100, 140, 10, 120, 0.5)
	f.enemy(100, 100, 1000, 10, 0)

	for _, now := range []float64{0.1, 0.3, 0.59, 0.6, 0.8, 1.1} {
		cs.Update(now)
	}
	// Shots at 0.1, 0.6 and 1.1.
	if n := f.recorder.Count(event.ProjectileFired); n != 3 {
		t.Fatalf("expected 3 shots, got %d", n)
	}
}

func TestCombatRangeIsInclusive(t *testing.T) {
	f := newFixture(t, straightTuning())
	cs := NewCombatSystem(f.ecs, f.events, 300)
	tower := f.tower(0, 0, 10, 50, 1)
	edge := f.enemy(30, 40, 10, 0, 0) // exactly 50 away

	cs.Update(1)

	if got := f.ecs.Towers[tower].TargetID; got != edge {
		t.Fatalf("enemy on the range circle should be targeted, got %d", got)
	}
}

func TestCombatClearsTargetWhenNoneInRange(t *testing.T) {
	f := newFixture(t, straightTuning())
	cs := NewCombatSystem(f.ecs, f.events, 300)
	tower := f.tower(0, 0, 10, 50, 1)
	far := f.enemy(500, 0, 10, 0, 0)
	f.ecs.Towers[tower].TargetID = far

	cs.Update(1)

	if got := f.ecs.Towers[tower].TargetID; got != types.NoEntity {
		t.Fatalf("expected no target, got %d", got)
	}
	if n := f.recorder.Count(event.ProjectileFired); n != 0 {
		t.Fatalf("fired %d shots with nothing in range", n)
	}
}

func TestCombatIgnoresDeadEnemies(t *testing.T) {
	f := newFixture(t, straightTuning())
	cs := NewCombatSystem(f.ecs, f.events, 300)
	tower := f.tower(0, 0, 10, 100, 1)
	dead := f.enemy(10, 0, 10, 0, 0)
	alive := f.enemy(20, 0, 10, 0, 1)
	f.ecs.Healths[dead].Value = 0

	cs.Update(1)

	if got := f.ecs.Towers[tower].TargetID; got != alive {
		t.Fatalf("expected live target %d, got %d", alive, got)
	}
	if in := cs.EnemiesInRange(tower); len(in) != 1 || in[0] != alive {
		t.Fatalf("EnemiesInRange = %v", in)
	}
}
