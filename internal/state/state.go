// internal/state/state.go
package state

import (
	"go-tactical-defense/internal/component"
	"go-tactical-defense/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
)

// State is one screen of the front end.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// SessionState is a screen that runs a simulation session.
type SessionState interface {
	State
	Snapshot() interfaces.Snapshot
	// End releases the session once it is over.
	End()
}

// StateMachine switches screens. After each update it checks the phase of a
// running session and, once the session is lost, moves to the game-over screen.
type StateMachine struct {
	current    State
	onGameOver func(final interfaces.Snapshot) State
}

// NewStateMachine creates a machine with no screen. onGameOver builds the
// screen shown after a lost session; nil keeps the session screen up.
func NewStateMachine(onGameOver func(final interfaces.Snapshot) State) *StateMachine {
	return &StateMachine{onGameOver: onGameOver}
}

func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

func (sm *StateMachine) Current() State {
	return sm.current
}

// Phase reports the phase of the running session, or false when the current
// screen does not run one.
func (sm *StateMachine) Phase() (component.Phase, bool) {
	ss, ok := sm.current.(SessionState)
	if !ok {
		return component.PhaseIdle, false
	}
	return ss.Snapshot().Phase, true
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current == nil {
		return
	}
	sm.current.Update(deltaTime)

	ss, ok := sm.current.(SessionState)
	if !ok || sm.onGameOver == nil {
		return
	}
	if final := ss.Snapshot(); final.Phase == component.PhaseGameOver {
		ss.End()
		sm.SetState(sm.onGameOver(final))
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
