package state

import (
	"testing"

	"go-tactical-defense/internal/component"
	"go-tactical-defense/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
)

type screenSpy struct {
	log   *[]string
	name  string
	snap  interfaces.Snapshot
	ended int
}

func (s *screenSpy) Enter()                    { *s.log = append(*s.log, "enter "+s.name) }
func (s *screenSpy) Update(deltaTime float64)  { *s.log = append(*s.log, "update "+s.name) }
func (s *screenSpy) Draw(screen *ebiten.Image) {}
func (s *screenSpy) Exit()                     { *s.log = append(*s.log, "exit "+s.name) }

type sessionSpy struct {
	screenSpy
}

func (s *sessionSpy) Snapshot() interfaces.Snapshot { return s.snap }
func (s *sessionSpy) End()                          { s.ended++ }

func TestSetStateCallsExitThenEnter(t *testing.T) {
	var log []string
	sm := NewStateMachine(nil)
	sm.SetState(&screenSpy{log: &log, name: "menu"})
	sm.SetState(&screenSpy{log: &log, name: "game"})

	want := []string{"enter menu", "exit menu", "enter game"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}
}

func TestGameOverMovesToFinalScreen(t *testing.T) {
	var log []string
	var got interfaces.Snapshot
	final := &screenSpy{log: &log, name: "over"}
	sm := NewStateMachine(func(snap interfaces.Snapshot) State {
		got = snap
		return final
	})
	session := &sessionSpy{screenSpy{log: &log, name: "game"}}
	session.snap.Phase = component.PhaseInProgress
	sm.SetState(session)

	sm.Update(0.1)
	if sm.Current() != session {
		t.Fatal("running session should stay on screen")
	}
	if phase, ok := sm.Phase(); !ok || phase != component.PhaseInProgress {
		t.Fatalf("Phase() = %v, %v", phase, ok)
	}

	session.snap.Phase = component.PhaseGameOver
	session.snap.Ledger.Score = 42
	sm.Update(0.1)
	if sm.Current() != final {
		t.Fatal("expected game-over screen")
	}
	if session.ended != 1 {
		t.Errorf("End called %d times, want 1", session.ended)
	}
	if got.Ledger.Score != 42 {
		t.Errorf("final snapshot score = %d, want 42", got.Ledger.Score)
	}
	if _, ok := sm.Phase(); ok {
		t.Error("game-over screen does not run a session")
	}
}

func TestGameOverWithoutHandlerKeepsScreen(t *testing.T) {
	var log []string
	sm := NewStateMachine(nil)
	session := &sessionSpy{screenSpy{log: &log, name: "game"}}
	session.snap.Phase = component.PhaseGameOver
	sm.SetState(session)
	sm.Update(0.1)
	if sm.Current() != session || session.ended != 0 {
		t.Fatal("machine without a handler must not leave the session")
	}
}
