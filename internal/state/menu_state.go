// internal/state/menu_state.go
package state

import (
	"fmt"

	"go-tactical-defense/internal/config"
	"go-tactical-defense/internal/defs"
	"go-tactical-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// MenuState is the title screen.
type MenuState struct {
	sm      *StateMachine
	session *Session
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.session))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	lines := []string{"TACTICAL DEFENSE", "", "Press Space to start", ""}
	for _, a := range defs.Archetypes() {
		def, _ := m.session.Catalog.Tower(a)
		lines = append(lines, fmt.Sprintf("%d  %-7s cost %3.0f  dmg %3.0f  range %3.0f",
			int(a)+1, a, def.Cost, def.Damage, def.Range))
	}
	lines = append(lines, "",
		"Space/Enter  start wave     P  pause",
		"F  speed     R  ranges      M  mute",
		"U  upgrade   S  sell        right click  cancel")
	if m.session.Scores != nil {
		lines = append(lines, "", fmt.Sprintf("Best: %d", m.session.Scores.Best()))
	}

	y := config.ScreenHeight/2 - len(lines)*11
	for _, line := range lines {
		text.Draw(screen, line, ui.DefaultFace, config.ScreenWidth/2-170, y, config.TextLightColor)
		y += 22
	}
}

func (m *MenuState) Exit() {}
