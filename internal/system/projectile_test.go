package system

import (
	"testing"

	"go-tactical-defense/internal/component"
	"go-tactical-defense/internal/event"
)

func TestProjectileHomesOnMovingTarget(t *testing.T) {
	f := newFixture(t, straightTuning())
	ps := NewProjectileSystem(f.ecs, f.events)
	enemy := f.enemy(0, 100, 50, 0, 0)
	id := f.ecs.AddProjectile(component.Position{X: 0, Y: 0}, component.Projectile{TargetID: enemy, Speed: 10, Damage: 5})

	ps.Update(1)
	if pos := f.ecs.Positions[id]; pos.X != 0 || pos.Y != 10 {
		t.Fatalf("expected (0,10), got (%v,%v)", pos.X, pos.Y)
	}

	f.ecs.Positions[enemy].X = 90
	ps.Update(1)
	proj := f.ecs.Projectiles[id]
	if proj.TargetPos.X != 90 {
		t.Fatalf("target position not refreshed: %+v", proj.TargetPos)
	}
	if pos := f.ecs.Positions[id]; pos.X <= 0 {
		t.Fatalf("projectile did not turn toward the target, x=%v", pos.X)
	}
}

func TestProjectileHitDamagesAndKills(t *testing.T) {
	f := newFixture(t, straightTuning())
	ps := NewProjectileSystem(f.ecs, f.events)
	enemy := f.enemy(0, 5, 15, 0, 0)
	f.ecs.AddProjectile(component.Position{X: 0, Y: 0}, component.Projectile{TargetID: enemy, Speed: 100, Damage: 10})

	ps.Update(0.1)
	if h := f.ecs.Healths[enemy].Value; h != 5 {
		t.Fatalf("expected health 5, got %v", h)
	}
	if _, flashing := f.ecs.Flashes[enemy]; !flashing {
		t.Fatalf("hit should start a damage flash")
	}
	if len(f.ecs.Projectiles) != 0 {
		t.Fatalf("spent projectile not purged")
	}

	f.ecs.AddProjectile(component.Position{X: 0, Y: 0}, component.Projectile{TargetID: enemy, Speed: 100, Damage: 10})
	ps.Update(0.1)

	if _, ok := f.ecs.Enemies[enemy]; ok {
		t.Fatalf("killed enemy still present")
	}
	kills := f.recorder.OfType(event.EnemyKilled)
	if len(kills) != 1 {
		t.Fatalf("expected 1 kill, got %d", len(kills))
	}
	if d := kills[0].Data.(event.EnemyKilledData); d.EnemyID != enemy || d.Bounty != 7 {
		t.Fatalf("unexpected kill payload %+v", d)
	}
}

func TestProjectileLostTargetDealsNoDamage(t *testing.T) {
	f := newFixture(t, straightTuning())
	ps := NewProjectileSystem(f.ecs, f.events)
	gone := f.enemy(0, 5, 15, 0, 0)
	other := f.enemy(0, 5, 15, 0, 1)
	f.ecs.AddProjectile(component.Position{X: 0, Y: 0}, component.Projectile{TargetID: gone, Speed: 100, Damage: 10})
	f.ecs.RemoveEnemy(gone)

	ps.Update(0.1)

	if h := f.ecs.Healths[other].Value; h != 15 {
		t.Fatalf("bystander took damage, health %v", h)
	}
	if n := f.recorder.Count(event.ProjectileLost); n != 1 {
		t.Fatalf("expected 1 lost projectile, got %d", n)
	}
	if len(f.ecs.Projectiles) != 0 {
		t.Fatalf("lost projectile not purged")
	}
}

func TestOverkillDoesNotDoubleCount(t *testing.T) {
	f := newFixture(t, straightTuning())
	ps := NewProjectileSystem(f.ecs, f.events)
	enemy := f.enemy(0, 1, 10, 0, 0)
	for i := 0; i < 3; i++ {
		f.ecs.AddProjectile(component.Position{X: 0, Y: 0}, component.Projectile{TargetID: enemy, Speed: 100, Damage: 10})
	}

	ps.Update(0.1)

	if n := f.recorder.Count(event.EnemyKilled); n != 1 {
		t.Fatalf("expected exactly 1 kill, got %d", n)
	}
	if n := f.recorder.Count(event.ProjectileLost); n != 2 {
		t.Fatalf("expected 2 lost projectiles, got %d", n)
	}
}

func TestApplyDamageClampsAtZero(t *testing.T) {
	f := newFixture(t, straightTuning())
	enemy := f.enemy(0, 0, 5, 0, 0)

	if !ApplyDamage(f.ecs, enemy, 50) {
		t.Fatalf("lethal hit not reported")
	}
	if h := f.ecs.Healths[enemy].Value; h != 0 {
		t.Fatalf("health not clamped, got %v", h)
	}
	if ApplyDamage(f.ecs, enemy, 5) {
		t.Fatalf("a dead enemy cannot die twice")
	}
}
