package interfaces

import (
	"go-tactical-defense/internal/defs"
	"go-tactical-defense/internal/types"
)

// Renderer draws snapshots. The simulation never waits on it.
type Renderer interface {
	Render(snap Snapshot)
}

// ScoreReporter receives the final score once per session.
type ScoreReporter interface {
	ReportFinalScore(score int)
}

// Commands are the player actions a front end may issue to a session.
type Commands interface {
	PlaceTower(arch defs.Archetype, x, y float64) (types.EntityID, error)
	UpgradeTower(id types.EntityID) error
	SellTower(id types.EntityID) (float64, error)
	StartNextWave() error
}
