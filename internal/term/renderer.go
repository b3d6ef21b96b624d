// internal/term/renderer.go
package term

import (
	"fmt"
	"math"

	"go-tactical-defense/internal/component"
	"go-tactical-defense/internal/interfaces"
	"go-tactical-defense/pkg/pathnet"

	"github.com/gdamore/tcell/v2"
)

// Rows reserved at the bottom for the status and help lines.
const statusRows = 2

var (
	pathStyle       = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	enemyStyle      = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	flashStyle      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	projectileStyle = tcell.StyleDefault.Foreground(tcell.ColorGold)
	cursorStyle     = tcell.StyleDefault.Reverse(true)
	statusStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite)

	towerGlyphs = [...]rune{'B', 'C', 'S', 'L'}
	towerStyles = [...]tcell.Style{
		tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true),
		tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
		tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true),
	}
)

// Renderer draws snapshots onto a terminal, scaling world coordinates to cells.
type Renderer struct {
	screen         tcell.Screen
	network        *pathnet.Network
	worldW, worldH float64
	CursorX        int
	CursorY        int
	Message        string
	width, height  int
	last           interfaces.Snapshot
}

var _ interfaces.Renderer = (*Renderer)(nil)

func NewRenderer(screen tcell.Screen, network *pathnet.Network, worldW, worldH float64) *Renderer {
	r := &Renderer{screen: screen, network: network, worldW: worldW, worldH: worldH}
	r.Resize()
	r.CursorX, r.CursorY = r.width/2, r.height/2
	return r
}

// Resize picks up the current terminal size and keeps the cursor on the field.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.width, r.height = max(1, w), max(1, h-statusRows)
	r.MoveCursor(0, 0)
}

func (r *Renderer) MoveCursor(dx, dy int) {
	r.CursorX = min(max(r.CursorX+dx, 0), r.width-1)
	r.CursorY = min(max(r.CursorY+dy, 0), r.height-1)
}

// CellOf maps a world position to a cell of the field area.
func (r *Renderer) CellOf(x, y float64) (int, int) {
	cx := int(x / r.worldW * float64(r.width))
	cy := int(y / r.worldH * float64(r.height))
	return cx, cy
}

// WorldOf returns the world position at the center of a cell.
func (r *Renderer) WorldOf(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * r.worldW / float64(r.width),
		(float64(cy) + 0.5) * r.worldH / float64(r.height)
}

// CursorWorld is the world position under the cursor.
func (r *Renderer) CursorWorld() (float64, float64) {
	return r.WorldOf(r.CursorX, r.CursorY)
}

// Last returns the most recently rendered snapshot.
func (r *Renderer) Last() interfaces.Snapshot {
	return r.last
}

func (r *Renderer) Render(snap interfaces.Snapshot) {
	r.last = snap
	r.screen.Clear()

	r.drawPaths()
	for _, t := range snap.Towers {
		glyph, style := '?', statusStyle
		if int(t.Archetype) < len(towerGlyphs) {
			glyph, style = towerGlyphs[t.Archetype], towerStyles[t.Archetype]
		}
		r.put(t.X, t.Y, glyph, style)
	}
	for _, e := range snap.Enemies {
		style := enemyStyle
		if e.Flashing {
			style = flashStyle
		}
		r.put(e.X, e.Y, enemyGlyph(e.HealthFraction), style)
	}
	for _, p := range snap.Projectiles {
		r.put(p.X, p.Y, '*', projectileStyle)
	}

	prim, _, _, _ := r.screen.GetContent(r.CursorX, r.CursorY)
	r.screen.SetContent(r.CursorX, r.CursorY, prim, nil, cursorStyle)

	r.drawStatus(snap)
	r.screen.Show()
}

func (r *Renderer) drawPaths() {
	if r.network == nil {
		return
	}
	cellW := r.worldW / float64(r.width)
	for _, path := range r.network.Paths() {
		for _, seg := range path.Segments() {
			length := seg.B.Sub(seg.A).Len()
			steps := int(math.Ceil(length/cellW*2)) + 1
			for i := 0; i <= steps; i++ {
				pt := seg.A.Add(seg.B.Sub(seg.A).Scale(float64(i) / float64(steps)))
				r.put(pt.X, pt.Y, '·', pathStyle)
			}
		}
	}
}

func (r *Renderer) drawStatus(snap interfaces.Snapshot) {
	status := fmt.Sprintf(" %s  wave %d  $%.0f  lives %d  score %d  lvl %d  enemies %d/%d pending",
		snap.Phase, snap.Wave, snap.Ledger.Money, snap.Ledger.Lives, snap.Ledger.Score,
		snap.Ledger.Level, len(snap.Enemies), snap.Pending)
	if snap.Phase == component.PhaseGameOver {
		status += "  GAME OVER (r restart, q quit)"
	}
	r.text(0, r.height, status, statusStyle)
	help := " 1-4 build  u upgrade  x sell  space wave  p pause  f speed  q quit"
	if r.Message != "" {
		help = " " + r.Message
	}
	r.text(0, r.height+1, help, statusStyle.Dim(true))
}

func (r *Renderer) put(x, y float64, ch rune, style tcell.Style) {
	cx, cy := r.CellOf(x, y)
	if cx < 0 || cy < 0 || cx >= r.width || cy >= r.height {
		return
	}
	r.screen.SetContent(cx, cy, ch, nil, style)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func enemyGlyph(health float64) rune {
	switch {
	case health > 0.66:
		return 'E'
	case health > 0.33:
		return 'e'
	default:
		return '.'
	}
}
