// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-tactical-defense/internal/component"
	"go-tactical-defense/internal/defs"
	"go-tactical-defense/internal/entity"
	"go-tactical-defense/internal/event"
	"go-tactical-defense/internal/interfaces"
	"go-tactical-defense/internal/system"
	"go-tactical-defense/internal/types"
)

// Game holds one simulation session. It owns every entity and is driven
// synchronously through Tick or Update.
type Game struct {
	Catalog            *defs.Catalog
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	Clock              *Clock
	MovementSystem     *system.MovementSystem
	WaveSystem         *system.WaveSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	EconomySystem      *system.EconomySystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem
}

var _ interfaces.Commands = (*Game)(nil)

// NewGame initializes a new session. reporter may be nil.
func NewGame(catalog *defs.Catalog, reporter interfaces.ScoreReporter) *Game {
	if catalog == nil {
		panic("catalog cannot be nil")
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Catalog:         catalog,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Clock:           NewClock(),
	}
	g.MovementSystem = system.NewMovementSystem(ecs, catalog.Network, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, catalog, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher, catalog.ProjectileSpeed())
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher)
	g.EconomySystem = system.NewEconomySystem(ecs, eventDispatcher)
	g.StateSystem = system.NewStateSystem(ecs, catalog, g.WaveSystem, g.EconomySystem, reporter, eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)

	g.EconomySystem.Reset(catalog.Economy())
	eventDispatcher.Subscribe(event.GameOver, &gameOverListener{game: g})
	return g
}

// gameOverListener stops the clock once the session is lost.
type gameOverListener struct {
	game *Game
}

func (l *gameOverListener) OnEvent(e event.Event) {
	if e.Type == event.GameOver {
		l.game.Clock.Stop()
	}
}

// Update feeds one wall-clock frame through the clock and runs the resulting fixed steps.
func (g *Game) Update(frameDelta float64) {
	steps := g.Clock.Advance(frameDelta)
	for i := 0; i < steps; i++ {
		g.Tick(g.Clock.Step())
	}
}

// Tick advances the simulation by dt seconds. Phases run in a fixed order:
// release, movement, targeting and firing, projectiles, ledger, wave state.
// In GameOver, or once the clock is stopped, Tick does nothing.
func (g *Game) Tick(dt float64) {
	if dt <= 0 || g.Clock.Stopped() || g.Phase() == component.PhaseGameOver {
		return
	}
	g.ECS.GameTime += dt

	g.WaveSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.CombatSystem.Update(g.ECS.GameTime)
	g.ProjectileSystem.Update(dt)
	g.EconomySystem.Reconcile()
	g.StateSystem.Evaluate()
	g.VisualEffectSystem.Update(dt)
}

// StartNextWave begins the next wave. Allowed only between waves.
func (g *Game) StartNextWave() error {
	switch g.Phase() {
	case component.PhaseGameOver:
		return ErrGameOver
	case component.PhaseIdle:
	default:
		return fmt.Errorf("cannot start wave %d: %w", g.ECS.GameState.Wave+1, ErrWaveInProgress)
	}
	if !g.StateSystem.StartNextWave() {
		return ErrWaveInProgress
	}
	return nil
}

func (g *Game) Phase() component.Phase {
	return g.ECS.GameState.Phase
}

func (g *Game) Ledger() component.Ledger {
	return *g.ECS.Ledger
}

// Stop ends the session; further ticks are ignored.
func (g *Game) Stop() {
	log.Println("[Game] stopped")
	g.Clock.Stop()
}

// Publish hands the current snapshot to a renderer.
func (g *Game) Publish(r interfaces.Renderer) {
	r.Render(g.Snapshot())
}

// Snapshot copies the render-relevant state. Entities appear in spawn order.
func (g *Game) Snapshot() interfaces.Snapshot {
	ecs := g.ECS
	snap := interfaces.Snapshot{
		Time:    ecs.GameTime,
		Phase:   ecs.GameState.Phase,
		Wave:    ecs.GameState.Wave,
		Pending: g.WaveSystem.PendingCount(),
		Ledger:  *ecs.Ledger,
	}

	for _, id := range ecs.LiveEnemies() {
		pos := ecs.Positions[id]
		_, flashing := ecs.Flashes[id]
		snap.Enemies = append(snap.Enemies, interfaces.EnemyView{
			ID:             id,
			X:              pos.X,
			Y:              pos.Y,
			HealthFraction: ecs.Healths[id].Fraction(),
			Flashing:       flashing,
		})
	}

	for _, id := range ecs.TowerIDs() {
		tower := ecs.Towers[id]
		pos := ecs.Positions[id]
		view := interfaces.TowerView{
			ID:        id,
			X:         pos.X,
			Y:         pos.Y,
			Archetype: tower.Archetype,
			Level:     tower.Level,
			Range:     ecs.Combats[id].Range,
		}
		if ecs.IsLiveEnemy(tower.TargetID) {
			target := ecs.Positions[tower.TargetID]
			view.TargetID = tower.TargetID
			view.TargetX, view.TargetY = target.X, target.Y
		}
		snap.Towers = append(snap.Towers, view)
	}

	for _, id := range ecs.ProjectileIDs() {
		pos := ecs.Positions[id]
		snap.Projectiles = append(snap.Projectiles, interfaces.ProjectileView{ID: id, X: pos.X, Y: pos.Y})
	}
	return snap
}

// LiveEnemyCount is the number of enemies currently on the field.
func (g *Game) LiveEnemyCount() int {
	return len(g.ECS.LiveEnemies())
}

// TowerAt returns the tower whose body covers (x, y).
func (g *Game) TowerAt(x, y float64, radius float64) (types.EntityID, bool) {
	for _, id := range g.ECS.TowerIDs() {
		pos := g.ECS.Positions[id]
		dx, dy := pos.X-x, pos.Y-y
		if dx*dx+dy*dy <= radius*radius {
			return id, true
		}
	}
	return types.NoEntity, false
}
