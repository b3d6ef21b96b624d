package component

// Phase is the wave lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseInProgress
	PhaseCompleted
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseInProgress:
		return "InProgress"
	case PhaseCompleted:
		return "Completed"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState is the data of the wave state machine.
type GameState struct {
	Phase          Phase
	Wave           int // index of the current or last started wave, 0 before the first
	WavesCompleted int
	ScoreReported  bool
}

// Ledger holds money, lives, score and the informational level counter.
type Ledger struct {
	Money float64
	Lives int
	Score int
	Level int
}
