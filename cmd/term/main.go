// cmd/term/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go-tactical-defense/internal/audio"
	"go-tactical-defense/internal/config"
	"go-tactical-defense/internal/defs"
	"go-tactical-defense/internal/score"
	"go-tactical-defense/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML tuning file")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	volume := flag.Float64("volume", 0.5, "sound volume, 0 disables audio")
	flag.Parse()

	// The terminal is the display; logs must not scribble over it.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	tuning := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v; using built-in tuning\n", err)
		}
		tuning = loaded
	}
	catalog, err := defs.NewCatalog(tuning)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build catalog: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	var sound *audio.SoundManager
	if *volume > 0 {
		sound = audio.NewSoundManager(*volume)
		if err := sound.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("[Main] audio disabled: %v", err)
			sound = nil
		} else {
			defer sound.Cleanup()
		}
	}

	scores := score.Open(config.AppName, config.HighScoreLimit)
	term.NewSession(screen, catalog, scores, sound).Run()
}
