package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"arcade/asteroids"
	"arcade/audio"
	"arcade/audio/speaker"
	"arcade/pong"
	"arcade/tui"
)

func main() {
	game := flag.String("game", "asteroids", "Cabinet to play: asteroids or pong")
	mute := flag.Bool("mute", false, "Disable sound")
	seed := flag.Uint64("seed", 0, "Asteroids RNG seed (0 = random)")
	logFile := flag.String("log", "", "Write log output to this file")
	flag.Parse()

	// The screen owns stdout, so logging goes to a file or nowhere
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	var sfx audio.Sink = audio.Nop{}
	if !*mute {
		spk, err := speaker.Open()
		if err != nil {
			// Non-fatal, the cabinet plays silently
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer spk.Close()
			sfx = spk
		}
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

	var app *tui.App
	switch *game {
	case "asteroids":
		app = tui.NewAsteroidsApp(screen, asteroids.NewGame(asteroids.Config{Sound: sfx, Seed: *seed}))
	case "pong":
		app = tui.NewPongApp(screen, pong.NewGame(pong.Config{Sound: sfx}))
	default:
		screen.Fini()
		fmt.Fprintf(os.Stderr, "unknown game %q\n", *game)
		os.Exit(2)
	}
	log.Printf("playing %s", *game)
	app.Run()
}
