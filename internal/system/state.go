// internal/system/state.go
package system

import (
	"log"

	"go-tactical-defense/internal/component"
	"go-tactical-defense/internal/defs"
	"go-tactical-defense/internal/entity"
	"go-tactical-defense/internal/event"
	"go-tactical-defense/internal/interfaces"
)

// StateSystem drives the wave lifecycle: Idle -> InProgress -> Completed -> Idle,
// with GameOver as the terminal state.
type StateSystem struct {
	ecs             *entity.ECS
	catalog         *defs.Catalog
	waves           *WaveSystem
	economy         *EconomySystem
	reporter        interfaces.ScoreReporter
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, catalog *defs.Catalog, waves *WaveSystem, economy *EconomySystem,
	reporter interfaces.ScoreReporter, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		ecs:             ecs,
		catalog:         catalog,
		waves:           waves,
		economy:         economy,
		reporter:        reporter,
		eventDispatcher: eventDispatcher,
	}
}

func (s *StateSystem) Current() component.Phase {
	return s.ecs.GameState.Phase
}

// StartNextWave moves Idle to InProgress with the next wave's roster.
// It reports false when the current phase does not allow a new wave.
func (s *StateSystem) StartNextWave() bool {
	if s.Current() != component.PhaseIdle {
		return false
	}
	s.ecs.GameState.Wave++
	s.setPhase(component.PhaseInProgress)
	s.waves.StartWave(s.ecs.GameState.Wave)
	return true
}

// Evaluate checks defeat and wave completion after the ledger has been reconciled.
func (s *StateSystem) Evaluate() {
	if s.Current() != component.PhaseInProgress {
		return
	}

	if s.ecs.Ledger.Lives <= 0 {
		s.gameOver()
		return
	}

	if len(s.ecs.LiveEnemies()) > 0 || s.waves.PendingCount() > 0 {
		return
	}
	s.completeWave()
}

func (s *StateSystem) completeWave() {
	state := s.ecs.GameState
	s.setPhase(component.PhaseCompleted)

	bonus := s.catalog.CompletionBonus(state.Wave)
	s.economy.AwardBonus(bonus)
	state.WavesCompleted++
	log.Printf("[State] wave %d completed, bonus %d", state.Wave, bonus)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveCompleted,
		Data: event.WaveData{Wave: state.Wave, Count: bonus},
	})

	every := s.catalog.Economy().LevelEvery
	if every > 0 && state.WavesCompleted%every == 0 {
		s.ecs.Ledger.Level++
		s.eventDispatcher.Dispatch(event.Event{Type: event.LevelUp, Data: s.ecs.Ledger.Level})
	}

	s.ecs.Wave = nil
	s.setPhase(component.PhaseIdle)
}

func (s *StateSystem) gameOver() {
	s.setPhase(component.PhaseGameOver)
	state := s.ecs.GameState
	if state.ScoreReported {
		return
	}
	state.ScoreReported = true
	score := s.ecs.Ledger.Score
	log.Printf("[State] game over on wave %d, final score %d", state.Wave, score)
	if s.reporter != nil {
		s.reporter.ReportFinalScore(score)
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: score})
}

func (s *StateSystem) setPhase(to component.Phase) {
	from := s.ecs.GameState.Phase
	if from == to {
		return
	}
	s.ecs.GameState.Phase = to
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.PhaseChanged,
		Data: event.PhaseChangedData{From: from, To: to},
	})
}
