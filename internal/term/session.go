// internal/term/session.go
package term

import (
	"log"
	"time"

	game "go-tactical-defense/internal/app"
	"go-tactical-defense/internal/audio"
	"go-tactical-defense/internal/config"
	"go-tactical-defense/internal/defs"
	"go-tactical-defense/internal/interfaces"
	"go-tactical-defense/internal/types"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// Session runs a game in a terminal: one goroutine polls input, the loop
// owns the simulation and draws on every tick.
type Session struct {
	screen   tcell.Screen
	catalog  *defs.Catalog
	reporter interfaces.ScoreReporter
	sound    *audio.SoundManager
	Game     *game.Game
	Renderer *Renderer
}

// NewSession starts a fresh game. reporter and sound may be nil.
func NewSession(screen tcell.Screen, catalog *defs.Catalog, reporter interfaces.ScoreReporter, sound *audio.SoundManager) *Session {
	s := &Session{
		screen:   screen,
		catalog:  catalog,
		reporter: reporter,
		sound:    sound,
		Renderer: NewRenderer(screen, catalog.Network, config.ScreenWidth, config.ScreenHeight),
	}
	s.restart()
	return s
}

func (s *Session) restart() {
	if s.Game != nil && s.sound != nil {
		s.sound.Detach(s.Game.EventDispatcher)
	}
	s.Game = game.NewGame(s.catalog, s.reporter)
	if s.sound != nil {
		s.sound.Attach(s.Game.EventDispatcher)
	}
	s.Renderer.Message = ""
}

// HandleEvent applies one input event. It returns false when the player quits.
func (s *Session) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
		s.Renderer.Resize()
	case *tcell.EventKey:
		return s.handleKey(ev)
	}
	return true
}

func (s *Session) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		s.Renderer.MoveCursor(0, -1)
	case tcell.KeyDown:
		s.Renderer.MoveCursor(0, 1)
	case tcell.KeyLeft:
		s.Renderer.MoveCursor(-1, 0)
	case tcell.KeyRight:
		s.Renderer.MoveCursor(1, 0)
	case tcell.KeyEnter:
		s.report(s.Game.StartNextWave())
	case tcell.KeyRune:
		return s.handleRune(ev.Rune())
	}
	return true
}

func (s *Session) handleRune(ch rune) bool {
	switch ch {
	case 'q':
		return false
	case ' ':
		s.report(s.Game.StartNextWave())
	case '1', '2', '3', '4':
		x, y := s.Renderer.CursorWorld()
		_, err := s.Game.PlaceTower(defs.Archetype(ch-'1'), x, y)
		s.report(err)
	case 'u':
		if id, ok := s.towerUnderCursor(); ok {
			s.report(s.Game.UpgradeTower(id))
		}
	case 'x':
		if id, ok := s.towerUnderCursor(); ok {
			_, err := s.Game.SellTower(id)
			s.report(err)
		}
	case 'p':
		s.Game.Clock.TogglePause()
	case 'f':
		s.Game.Clock.CycleSpeed()
	case 'm':
		if s.sound != nil {
			s.sound.ToggleMute()
		}
	case 'r':
		if s.Game.Clock.Stopped() {
			s.restart()
		}
	case 'h', 'a':
		s.Renderer.MoveCursor(-1, 0)
	case 'l', 'd':
		s.Renderer.MoveCursor(1, 0)
	case 'k', 'w':
		s.Renderer.MoveCursor(0, -1)
	case 'j', 's':
		s.Renderer.MoveCursor(0, 1)
	}
	return true
}

// towerUnderCursor looks for a tower in the cursor's cell.
func (s *Session) towerUnderCursor() (types.EntityID, bool) {
	for _, t := range s.Renderer.Last().Towers {
		cx, cy := s.Renderer.CellOf(t.X, t.Y)
		if cx == s.Renderer.CursorX && cy == s.Renderer.CursorY {
			return t.ID, true
		}
	}
	return types.NoEntity, false
}

func (s *Session) report(err error) {
	if err == nil {
		s.Renderer.Message = ""
		return
	}
	s.Renderer.Message = err.Error()
	log.Printf("[Term] %v", err)
}

// Frame advances the game by one wall-clock frame and draws it.
func (s *Session) Frame(frameDelta float64) {
	s.Game.Update(frameDelta)
	s.Game.Publish(s.Renderer)
}

// Run drives the session until the player quits.
func (s *Session) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	s.Frame(0)
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !s.HandleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			s.Frame(now.Sub(last).Seconds())
			last = now
		}
	}
}
