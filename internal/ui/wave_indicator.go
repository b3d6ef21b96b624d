package ui

import (
	"image/color"
	"strings"

	"go-tactical-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// WaveIndicator shows the current wave number in Roman numerals.
type WaveIndicator struct {
	X, Y         int
	Color        color.Color
	OutlineColor color.Color
}

func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Color:        config.IdleStateColor,
		OutlineColor: color.White,
	}
}

// toRoman converts a positive integer to Roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber, levelEvery int) {
	if waveNumber <= 0 {
		return
	}
	label := toRoman(waveNumber)

	c := i.Color
	if levelEvery > 0 && waveNumber%levelEvery == 0 {
		c = config.WaveStateColor
	}

	bounds := text.BoundString(DefaultFace, label)
	x := i.X - bounds.Dx()/2
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, DefaultFace, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, DefaultFace, x, i.Y, c)
}
