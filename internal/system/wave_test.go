package system

import (
	"math"
	"reflect"
	"testing"

	"go-tactical-defense/internal/config"
	"go-tactical-defense/internal/event"
)

func TestGenerateWaveFirstWave(t *testing.T) {
	cat := newCatalog(t, config.Default())
	roster := GenerateWave(cat, 1)

	if len(roster) != 8 {
		t.Fatalf("expected 8 enemies, got %d", len(roster))
	}
	for i, e := range roster {
		if e.Health != 50 || e.Speed != 42 || e.Bounty != 6 || e.LeakDamage != 2 {
			t.Fatalf("entry %d has stats %+v", i, e)
		}
		if e.PathIndex != i%2 {
			t.Fatalf("entry %d on path %d, expected round robin", i, e.PathIndex)
		}
		if e.Roster != i {
			t.Fatalf("entry %d has roster index %d", i, e.Roster)
		}
	}

	tests := []struct {
		i    int
		x, y float64
	}{
		{0, 0, 200},
		{1, -30, 800},
		{2, -60, 200},
		{7, -210, 800},
	}
	for _, tt := range tests {
		p := roster[tt.i].Position
		if math.Abs(p.X-tt.x) > 1e-9 || math.Abs(p.Y-tt.y) > 1e-9 {
			t.Errorf("entry %d spawns at (%v,%v), want (%v,%v)", tt.i, p.X, p.Y, tt.x, tt.y)
		}
	}
}

func TestGenerateWaveIsDeterministic(t *testing.T) {
	cat := newCatalog(t, config.Default())
	for _, wave := range []int{0, 1, 5, 17} {
		a := GenerateWave(cat, wave)
		b := GenerateWave(cat, wave)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("wave %d rosters differ", wave)
		}
	}
}

func TestGenerateWaveClampsNegativeIndex(t *testing.T) {
	cat := newCatalog(t, config.Default())
	if !reflect.DeepEqual(GenerateWave(cat, -3), GenerateWave(cat, 0)) {
		t.Fatalf("negative wave index should behave like wave 0")
	}
	if n := len(GenerateWave(cat, 0)); n != 6 {
		t.Fatalf("wave 0 should have the base count, got %d", n)
	}
}

func TestStartWaveReleasesWholeRosterWithoutInterval(t *testing.T) {
	f := newFixture(t, config.Default())
	ws := NewWaveSystem(f.ecs, f.catalog, f.events)

	ws.StartWave(1)

	if got := len(f.ecs.LiveEnemies()); got != 8 {
		t.Fatalf("expected 8 live enemies, got %d", got)
	}
	if ws.PendingCount() != 0 {
		t.Fatalf("roster should be fully released")
	}
	started := f.recorder.OfType(event.WaveStarted)
	if len(started) != 1 || started[0].Data.(event.WaveData).Count != 8 {
		t.Fatalf("unexpected WaveStarted events %+v", started)
	}
}

func TestWaveReleasesOnInterval(t *testing.T) {
	tuning := config.Default()
	tuning.Waves.SpawnInterval = 1
	f := newFixture(t, tuning)
	ws := NewWaveSystem(f.ecs, f.catalog, f.events)

	ws.StartWave(1)
	if n := len(f.ecs.Enemies); n != 0 {
		t.Fatalf("nothing should spawn before the first interval, got %d", n)
	}
	for i := 0; i < 3; i++ {
		ws.Update(1)
	}
	if n := len(f.ecs.Enemies); n != 3 {
		t.Fatalf("expected 3 released, got %d", n)
	}
	if ws.PendingCount() != 5 {
		t.Fatalf("expected 5 pending, got %d", ws.PendingCount())
	}
}
