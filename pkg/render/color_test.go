package render

import (
	"image/color"
	"testing"
)

func TestDarkenColorKeepsAlpha(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 50, 77})
	if got != (color.RGBA{100, 50, 25, 77}) {
		t.Fatalf("DarkenColor = %v", got)
	}
}

func TestLightenColorSaturates(t *testing.T) {
	got := LightenColor(color.RGBA{250, 10, 0, 255}, 40)
	if got != (color.RGBA{255, 50, 40, 255}) {
		t.Fatalf("LightenColor = %v", got)
	}
}
