// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"go-tactical-defense/internal/audio"
	"go-tactical-defense/internal/config"
	"go-tactical-defense/internal/defs"
	"go-tactical-defense/internal/score"
	"go-tactical-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

// Update passes the raw frame delta down; the session clock clamps and scales it.
func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func loadCatalog(path string) *defs.Catalog {
	if path != "" {
		catalog, err := defs.LoadCatalog(path)
		if err == nil {
			log.Printf("[Main] tuning loaded from %s", path)
			return catalog
		}
		log.Printf("[Main] %v; falling back to built-in tuning", err)
	}
	catalog, err := defs.NewCatalog(config.Default())
	if err != nil {
		log.Fatalf("[Main] built-in tuning is invalid: %v", err)
	}
	return catalog
}

func main() {
	configPath := flag.String("config", "", "path to a YAML tuning file")
	skipMenu := flag.Bool("play", false, "start straight into a game")
	volume := flag.Float64("volume", 0.5, "sound volume, 0 disables audio")
	flag.Parse()

	session := &state.Session{
		Catalog: loadCatalog(*configPath),
		Scores:  score.Open(config.AppName, config.HighScoreLimit),
	}
	if *volume > 0 {
		sound := audio.NewSoundManager(*volume)
		if err := sound.Initialize(); err != nil {
			log.Printf("[Main] audio disabled: %v", err)
		} else {
			session.Sound = sound
			defer sound.Cleanup()
		}
	}

	sm := state.NewMachine(session)
	if *skipMenu {
		sm.SetState(state.NewGameState(sm, session))
	} else {
		sm.SetState(state.NewMenuState(sm, session))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tactical Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
