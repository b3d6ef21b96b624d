// internal/state/game_over_state.go
package state

import (
	"fmt"
	"image/color"
	"time"

	"go-tactical-defense/internal/config"
	"go-tactical-defense/internal/interfaces"
	"go-tactical-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*GameOverState)(nil)

// GameOverState shows the final ledger and the high score table. R restarts.
type GameOverState struct {
	sm      *StateMachine
	session *Session
	final   interfaces.Snapshot
}

func NewGameOverState(sm *StateMachine, session *Session, final interfaces.Snapshot) *GameOverState {
	return &GameOverState{sm: sm, session: session, final: final}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.sm.SetState(NewGameState(s.sm, s.session))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	vector.DrawFilledRect(screen, config.ScreenWidth/2-220, 120, 440, 560, color.RGBA{25, 35, 45, 230}, false)

	cx := config.ScreenWidth/2 - 200
	y := 160
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Score: %d", s.final.Ledger.Score),
		fmt.Sprintf("Reached wave: %d", s.final.Wave),
		fmt.Sprintf("Level: %d", s.final.Ledger.Level),
		"",
		"High scores",
	}
	if s.session.Scores != nil {
		for n, r := range s.session.Scores.HighScores() {
			at := time.Unix(r.At, 0).Format("2006-01-02 15:04")
			lines = append(lines, fmt.Sprintf("%2d. %6d  %s", n+1, r.Score, at))
		}
	}
	lines = append(lines, "", "Press R to play again")

	for _, line := range lines {
		text.Draw(screen, line, ui.DefaultFace, cx, y, config.TextLightColor)
		y += 22
	}
}

func (s *GameOverState) Exit() {}
