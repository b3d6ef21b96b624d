// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace is the HUD font.
var DefaultFace font.Face = basicfont.Face7x13

// Button is a clickable rectangle with a label.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.Color
	BgColor    color.Color
	HoverColor color.Color
	Disabled   bool
}

func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  color.White,
		BgColor:    color.RGBA{60, 70, 80, 255},
		HoverColor: color.RGBA{90, 100, 110, 255},
	}
}

// Contains reports whether the point lies inside the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

func (b *Button) Draw(screen *ebiten.Image, cursorX, cursorY int) {
	bg := b.BgColor
	if b.Disabled {
		bg = color.RGBA{40, 40, 40, 255}
	} else if b.Contains(cursorX, cursorY) {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 1, color.RGBA{150, 150, 150, 255}, true)

	bounds := text.BoundString(DefaultFace, b.Text)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, DefaultFace, tx, ty, b.TextColor)
}
