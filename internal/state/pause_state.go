// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-tactical-defense/internal/config"
	"go-tactical-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the session and draws it dimmed underneath.
type PauseState struct {
	stateMachine *StateMachine
	game         *GameState
}

func NewPauseState(sm *StateMachine, gs *GameState) *PauseState {
	return &PauseState{stateMachine: sm, game: gs}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.game.pauseButton.IsClicked(x, y)
	}
	if unpause {
		s.game.resume()
		s.stateMachine.SetState(s.game)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)

	const pauseText = "PAUSED"
	bounds := text.BoundString(ui.DefaultFace, pauseText)
	text.Draw(screen, pauseText, ui.DefaultFace,
		(config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
