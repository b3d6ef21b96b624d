// internal/state/game_state.go
package state

import (
	"fmt"
	"log"
	"time"

	game "go-tactical-defense/internal/app"
	"go-tactical-defense/internal/audio"
	"go-tactical-defense/internal/config"
	"go-tactical-defense/internal/defs"
	"go-tactical-defense/internal/interfaces"
	"go-tactical-defense/internal/score"
	"go-tactical-defense/internal/system"
	"go-tactical-defense/internal/types"
	"go-tactical-defense/internal/ui"
	"go-tactical-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Session holds what outlives a single game: the definitions, the score table and sound.
type Session struct {
	Catalog *defs.Catalog
	Scores  *score.Store
	Sound   *audio.SoundManager
}

// GameState runs one session with the HUD and mouse/keyboard input.
type GameState struct {
	sm              *StateMachine
	session         *Session
	game            *game.Game
	background      *render.PathRenderer
	renderSystem    *system.RenderSystem
	indicator       *ui.StateIndicator
	speedButton     *ui.SpeedButton
	pauseButton     *ui.PauseButton
	waveIndicator   *ui.WaveIndicator
	ledgerIndicator *ui.LedgerIndicator
	palette         *ui.TowerPalette
	infoPanel       *ui.InfoPanel
	snap            interfaces.Snapshot
	lastClickTime   time.Time
}

var _ SessionState = (*GameState)(nil)

func NewGameState(sm *StateMachine, session *Session) *GameState {
	var reporter interfaces.ScoreReporter
	if session.Scores != nil {
		reporter = session.Scores
	}
	gameLogic := game.NewGame(session.Catalog, reporter)
	if session.Sound != nil {
		session.Sound.Attach(gameLogic.EventDispatcher)
	}

	mapColors := render.MapColors{
		BackgroundColor: config.BackgroundColor,
		PathColor:       config.PathColor,
		PathEdgeColor:   config.PathEdgeColor,
		EntryColor:      config.EntryColor,
		ExitColor:       config.ExitColor,
		LabelColor:      config.TextDarkColor,
		PathWidth:       config.PathWidth,
		EdgeWidth:       float32(config.StrokeWidth),
	}
	background := render.NewPathRenderer(session.Catalog.Network, mapColors, ui.DefaultFace,
		config.ScreenWidth, config.ScreenHeight)

	pauseButtonX := float32(config.ScreenWidth - config.IndicatorOffsetX - 90)
	indicatorX := float32(config.ScreenWidth - config.IndicatorOffsetX)
	speedButtonX := (pauseButtonX+indicatorX)/2 + 2

	gs := &GameState{
		sm:           sm,
		session:      session,
		game:         gameLogic,
		background:   background,
		renderSystem: system.NewRenderSystem(),
		indicator: ui.NewStateIndicator(indicatorX, float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius)),
		speedButton: ui.NewSpeedButton(speedButtonX, float32(config.SpeedButtonY),
			float32(config.SpeedButtonSize)/2, config.SpeedButtonColors),
		pauseButton: ui.NewPauseButton(pauseButtonX, float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius), config.IdleStateColor, config.WaveStateColor),
		waveIndicator:   ui.NewWaveIndicator(config.ScreenWidth/2, 30),
		ledgerIndicator: ui.NewLedgerIndicator(15, 15, session.Catalog.Economy().StartingLives),
		palette:         ui.NewTowerPalette(session.Catalog, 15, 170),
		infoPanel:       ui.NewInfoPanel(session.Catalog, gameLogic),
	}
	gs.snap = gameLogic.Snapshot()
	return gs
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.pause()
		return
	}
	g.handleKeys()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if time.Since(g.lastClickTime) >= config.ClickCooldown*time.Millisecond || !g.isClickOnButtons(x, y) {
			g.handleLeftClick(x, y)
		}
		g.lastClickTime = time.Now()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.palette.HasPick = false
		g.infoPanel.Hide()
	}

	g.game.Update(deltaTime)
	g.snap = g.game.Snapshot()
	g.renderSystem.Render(g.snap)
	g.palette.Refresh(g.session.Catalog, g.snap.Ledger.Money)
	g.infoPanel.Update(g.snap)

}

func (g *GameState) handleKeys() {
	for n, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4} {
		if inpututil.IsKeyJustPressed(key) {
			g.palette.Selected = defs.Archetype(n)
			g.palette.HasPick = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.startWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.renderSystem.ShowRange = !g.renderSystem.ShowRange
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.game.Clock.CycleSpeed()
		g.speedButton.SetState(g.game.Clock.SpeedIndex())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.session.Sound != nil {
		g.session.Sound.ToggleMute()
	}
	target := g.infoPanel.TargetEntity
	if target == types.NoEntity {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		if err := g.game.UpgradeTower(target); err != nil {
			log.Printf("[Game] upgrade rejected: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if _, err := g.game.SellTower(target); err != nil {
			log.Printf("[Game] sell rejected: %v", err)
		}
		g.infoPanel.Hide()
	}
}

func (g *GameState) isClickOnButtons(x, y int) bool {
	return g.indicator.IsClicked(x, y) || g.speedButton.IsClicked(x, y) || g.pauseButton.IsClicked(x, y)
}

func (g *GameState) handleLeftClick(x, y int) {
	switch {
	case g.indicator.IsClicked(x, y):
		g.indicator.HandleClick()
		g.startWave()
		return
	case g.speedButton.IsClicked(x, y):
		g.game.Clock.CycleSpeed()
		g.speedButton.SetState(g.game.Clock.SpeedIndex())
		return
	case g.pauseButton.IsClicked(x, y):
		g.pause()
		return
	case g.palette.HandleClick(x, y):
		return
	case g.infoPanel.HandleClick(x, y):
		return
	}

	if id, ok := g.game.TowerAt(float64(x), float64(y), config.TowerRadius+2); ok {
		g.infoPanel.SetTarget(id)
		g.renderSystem.Selected = id
		return
	}
	g.infoPanel.Hide()
	g.renderSystem.Selected = types.NoEntity

	if !g.palette.HasPick {
		return
	}
	if _, err := g.game.PlaceTower(g.palette.Selected, float64(x), float64(y)); err != nil {
		log.Printf("[Game] placement rejected: %v", err)
	}
}

func (g *GameState) startWave() {
	if err := g.game.StartNextWave(); err != nil {
		log.Printf("[Game] %v", err)
	}
}

func (g *GameState) pause() {
	g.game.Clock.TogglePause()
	g.pauseButton.SetPaused(true)
	g.sm.SetState(NewPauseState(g.sm, g))
}

// resume is called by PauseState when it hands control back.
func (g *GameState) resume() {
	if g.game.Clock.Paused() {
		g.game.Clock.TogglePause()
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.background.Draw(screen)
	g.renderSystem.Draw(screen)

	if g.palette.HasPick {
		x, y := ebiten.CursorPosition()
		g.drawPlacementGhost(screen, x, y)
	}

	cx, cy := ebiten.CursorPosition()
	g.indicator.Draw(screen, g.snap.Phase)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)
	g.waveIndicator.Draw(screen, g.snap.Wave, g.session.Catalog.Economy().LevelEvery)
	g.ledgerIndicator.Draw(screen, g.snap.Ledger)
	g.palette.Draw(screen, cx, cy)
	g.infoPanel.Draw(screen, g.snap, cx, cy)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  enemies: %d  pending: %d  x%.0f",
		g.snap.Phase, len(g.snap.Enemies), g.snap.Pending, g.game.Clock.Speed()), 15, config.ScreenHeight-20)
}

// drawPlacementGhost previews the picked archetype under the cursor, tinted
// by whether the spot passes the clearance rules.
func (g *GameState) drawPlacementGhost(screen *ebiten.Image, x, y int) {
	def, ok := g.session.Catalog.Tower(g.palette.Selected)
	if !ok {
		return
	}
	fx, fy := float32(x), float32(y)
	ghost := config.TowerColors[g.palette.Selected]
	if !g.game.CanPlaceTower(float64(x), float64(y)) || def.Cost > g.snap.Ledger.Money {
		ghost = config.WaveStateColor
	}
	ghost.A = 120
	vector.DrawFilledCircle(screen, fx, fy, float32(def.Range), config.RangeColor, true)
	vector.DrawFilledCircle(screen, fx, fy, config.TowerRadius, ghost, true)
}

func (g *GameState) Exit() {}

func (g *GameState) Snapshot() interfaces.Snapshot {
	return g.snap
}

// End detaches sound from the finished session.
func (g *GameState) End() {
	if g.session.Sound != nil {
		g.session.Sound.Detach(g.game.EventDispatcher)
	}
}

// NewMachine builds the screen machine for a session: lost games go to the
// game-over screen.
func NewMachine(session *Session) *StateMachine {
	var sm *StateMachine
	sm = NewStateMachine(func(final interfaces.Snapshot) State {
		return NewGameOverState(sm, session, final)
	})
	return sm
}
