package main

import (
	"context"
	"flag"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/sound"
	"snake/internal/storage"
	"snake/internal/ui/terminal"

	"github.com/gdamore/tcell/v2"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	presetName := flag.String("preset", string(domain.PresetModern), "game preset: modern or classic")
	dataDir := flag.String("data", "", "directory for the best score, defaults to the user config dir")
	seed := flag.Int64("seed", 0, "apple placement seed, 0 uses the clock")
	mute := flag.Bool("mute", false, "disable sound")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	preset, err := domain.ParsePreset(*presetName)
	if err != nil {
		log.Fatalf("Bad -preset: %v", err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()

	// The screen belongs to tcell from here on.
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			screen.Fini()
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	application, err := app.NewApp(app.Options{
		Preset: preset,
		Store:  storage.Open(*dataDir),
		Rand:   rand.New(rand.NewSource(*seed)),
	})
	if err != nil {
		screen.Fini()
		log.Fatalf("Failed to create app: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	player := sound.NewPlayer()
	if !*mute {
		if err := player.Init(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	defer player.Close()
	go player.Listen(ctx, application.Events())

	log.Printf("Starting %s game in terminal, seed %d", preset, *seed)
	if err := terminal.NewRunner(application, screen).Run(ctx); err != nil {
		log.Printf("Terminal error: %v", err)
	}
}
