// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-tactical-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedButton cycles the simulation speed multiplier.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.Color
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	c := b.StateColors[b.CurrentState%len(b.StateColors)]
	height := size * 1.2
	width := size
	offset := width * 0.8

	render.FillPolygon(screen, [][2]float32{
		{b.X - width, b.Y - height/2}, {b.X, b.Y}, {b.X - width, b.Y + height/2},
	}, c)
	render.FillPolygon(screen, [][2]float32{
		{b.X - width + offset, b.Y - height/2}, {b.X + offset, b.Y}, {b.X - width + offset, b.Y + height/2},
	}, c)
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

// SetState syncs the button with the clock's speed index.
func (b *SpeedButton) SetState(index int) {
	b.CurrentState = index
	b.LastClickTime = time.Now()
}
