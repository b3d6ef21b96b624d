// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-tactical-defense/internal/component"
	"go-tactical-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator shows the wave phase; clicking it starts the next wave.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// PhaseColor maps a phase to its indicator color.
func PhaseColor(p component.Phase) color.RGBA {
	switch p {
	case component.PhaseInProgress, component.PhaseCompleted:
		return config.WaveStateColor
	case component.PhaseGameOver:
		return config.GameOverColor
	default:
		return config.IdleStateColor
	}
}

func (i *StateIndicator) Draw(screen *ebiten.Image, phase component.Phase) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, r, PhaseColor(phase), true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}

// IsClicked reports whether (x, y) falls inside the indicator.
func (i *StateIndicator) IsClicked(x, y int) bool {
	dx := float32(x) - i.X
	dy := float32(y) - i.Y
	return dx*dx+dy*dy <= i.Radius*i.Radius
}

func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
