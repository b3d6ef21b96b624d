// internal/ui/ledger_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"go-tactical-defense/internal/component"
	"go-tactical-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	LivesCols          = 5
	LivesCircleRadius  = 6.0
	LivesCircleSpacing = 3.0
)

// LedgerIndicator draws lives as a grid of circles with money, score and level beside it.
type LedgerIndicator struct {
	X, Y     float32
	MaxLives int
}

func NewLedgerIndicator(x, y float32, maxLives int) *LedgerIndicator {
	return &LedgerIndicator{X: x, Y: y, MaxLives: maxLives}
}

func (i *LedgerIndicator) Draw(screen *ebiten.Image, ledger component.Ledger) {
	half := i.MaxLives / 2
	for j := 0; j < i.MaxLives; j++ {
		row := j / LivesCols
		col := j % LivesCols
		x := i.X + float32(col)*(LivesCircleRadius*2+LivesCircleSpacing) + LivesCircleRadius
		y := i.Y + float32(row)*(LivesCircleRadius*2+LivesCircleSpacing) + LivesCircleRadius

		var c color.Color = color.Black
		if j < ledger.Lives {
			c = config.HealthBarColor
			if ledger.Lives <= half {
				c = config.WaveStateColor
			}
		}
		vector.DrawFilledCircle(screen, x, y, LivesCircleRadius, c, true)
		vector.StrokeCircle(screen, x, y, LivesCircleRadius, 1, color.White, true)
	}

	rows := (i.MaxLives + LivesCols - 1) / LivesCols
	ty := int(i.Y) + rows*int(LivesCircleRadius*2+LivesCircleSpacing) + 14
	lines := []string{
		fmt.Sprintf("Lives: %d/%d", ledger.Lives, i.MaxLives),
		fmt.Sprintf("Money: %.0f", ledger.Money),
		fmt.Sprintf("Score: %d", ledger.Score),
		fmt.Sprintf("Level: %d", ledger.Level),
	}
	for n, line := range lines {
		text.Draw(screen, line, DefaultFace, int(i.X), ty+n*16, config.TextLightColor)
	}
}
