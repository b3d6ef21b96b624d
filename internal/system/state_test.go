package system

import (
	"testing"

	"go-tactical-defense/internal/component"
	"go-tactical-defense/internal/config"
	"go-tactical-defense/internal/event"
)

type scoreSpy struct {
	calls  int
	scores []int
}

func (s *scoreSpy) ReportFinalScore(score int) {
	s.calls++
	s.scores = append(s.scores, score)
}

type stateFixture struct {
	*fixture
	economy *EconomySystem
	waves   *WaveSystem
	state   *StateSystem
	spy     *scoreSpy
}

func newStateFixture(t *testing.T, tuning config.Tuning) *stateFixture {
	f := newFixture(t, tuning)
	sf := &stateFixture{fixture: f, spy: &scoreSpy{}}
	sf.economy = NewEconomySystem(f.ecs, f.events)
	sf.economy.Reset(f.catalog.Economy())
	sf.waves = NewWaveSystem(f.ecs, f.catalog, f.events)
	sf.state = NewStateSystem(f.ecs, f.catalog, sf.waves, sf.economy, sf.spy, f.events)
	return sf
}

func (sf *stateFixture) clearField() {
	for _, id := range sf.ecs.LiveEnemies() {
		sf.ecs.RemoveEnemy(id)
	}
	sf.ecs.Compact()
}

func TestStartNextWaveOnlyFromIdle(t *testing.T) {
	sf := newStateFixture(t, config.Default())

	if !sf.state.StartNextWave() {
		t.Fatalf("first wave should start from Idle")
	}
	if sf.ecs.GameState.Wave != 1 || sf.state.Current() != component.PhaseInProgress {
		t.Fatalf("unexpected state %+v", sf.ecs.GameState)
	}
	if sf.state.StartNextWave() {
		t.Fatalf("second wave started while one is in progress")
	}
	if sf.ecs.GameState.Wave != 1 {
		t.Fatalf("wave number changed on a rejected start")
	}
}

func TestWaveCompletionAwardsBonus(t *testing.T) {
	sf := newStateFixture(t, config.Default())
	sf.state.StartNextWave()
	sf.clearField()

	sf.state.Evaluate()

	ledger := sf.ecs.Ledger
	if ledger.Money != 150+25 || ledger.Score != 25 {
		t.Fatalf("expected bonus 25, ledger %+v", ledger)
	}
	if sf.state.Current() != component.PhaseIdle {
		t.Fatalf("expected Idle after completion, got %s", sf.state.Current())
	}

	var phases []component.Phase
	for _, e := range sf.recorder.OfType(event.PhaseChanged) {
		phases = append(phases, e.Data.(event.PhaseChangedData).To)
	}
	want := []component.Phase{component.PhaseInProgress, component.PhaseCompleted, component.PhaseIdle}
	if len(phases) != len(want) {
		t.Fatalf("phases %v, want %v", phases, want)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Fatalf("phases %v, want %v", phases, want)
		}
	}
}

func TestLevelRisesEveryFifthWave(t *testing.T) {
	sf := newStateFixture(t, config.Default())
	for i := 0; i < 10; i++ {
		sf.state.StartNextWave()
		sf.clearField()
		sf.state.Evaluate()
	}
	if got := sf.ecs.Ledger.Level; got != 3 {
		t.Fatalf("expected level 3 after 10 waves, got %d", got)
	}
	if n := sf.recorder.Count(event.LevelUp); n != 2 {
		t.Fatalf("expected 2 level ups, got %d", n)
	}
}

func TestGameOverReportsScoreOnce(t *testing.T) {
	sf := newStateFixture(t, config.Default())
	sf.state.StartNextWave()
	sf.ecs.Ledger.Score = 42

	for i := 0; i < 5; i++ {
		sf.events.Dispatch(event.Event{Type: event.EnemyLeaked, Data: event.EnemyLeakedData{Damage: 4}})
		sf.economy.Reconcile()
		sf.state.Evaluate()
	}

	if sf.ecs.Ledger.Lives != 0 {
		t.Fatalf("lives should floor at 0, got %d", sf.ecs.Ledger.Lives)
	}
	if sf.state.Current() != component.PhaseGameOver {
		t.Fatalf("expected GameOver, got %s", sf.state.Current())
	}
	if sf.spy.calls != 1 || sf.spy.scores[0] != 42 {
		t.Fatalf("expected one report of 42, got %v", sf.spy.scores)
	}
	if sf.state.StartNextWave() {
		t.Fatalf("no wave may start after GameOver")
	}
}

func TestEconomyReconcile(t *testing.T) {
	sf := newStateFixture(t, config.Default())
	sf.events.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{Bounty: 6}})
	sf.events.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{Bounty: 6}})
	sf.events.Dispatch(event.Event{Type: event.EnemyLeaked, Data: event.EnemyLeakedData{Damage: 2}})

	if sf.ecs.Ledger.Money != 150 {
		t.Fatalf("ledger must not change before Reconcile")
	}
	sf.economy.Reconcile()

	l := sf.ecs.Ledger
	if l.Money != 162 || l.Score != 12 || l.Lives != 8 {
		t.Fatalf("unexpected ledger %+v", l)
	}
	if !sf.economy.Spend(162) || sf.economy.Spend(0.5) {
		t.Fatalf("Spend must succeed exactly up to the balance")
	}
}
