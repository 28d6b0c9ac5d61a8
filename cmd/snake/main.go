package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/render"
	"snake/internal/sound"
	"snake/internal/storage"
	"snake/internal/ui/graphics"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	presetName := flag.String("preset", string(domain.PresetModern), "game preset: modern or classic")
	themeName := flag.String("theme", "", "color theme, defaults to the preset's")
	dataDir := flag.String("data", "", "directory for the best score, defaults to the user config dir")
	width := flag.Int("width", graphics.DefaultWidth, "window width")
	height := flag.Int("height", graphics.DefaultHeight, "window height")
	seed := flag.Int64("seed", 0, "apple placement seed, 0 uses the clock")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	preset, err := domain.ParsePreset(*presetName)
	if err != nil {
		log.Fatalf("Bad -preset: %v", err)
	}
	var theme render.Theme
	if *themeName != "" {
		if theme, err = render.ParseTheme(*themeName); err != nil {
			log.Fatalf("Bad -theme: %v", err)
		}
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	application, err := app.NewApp(app.Options{
		Preset:        preset,
		Theme:         theme,
		Store:         storage.Open(*dataDir),
		Rand:          rand.New(rand.NewSource(*seed)),
		SurfaceWidth:  *width,
		SurfaceHeight: *height,
	})
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	player := sound.NewPlayer()
	if !*mute {
		if err := player.Init(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	defer player.Close()
	go player.Listen(ctx, application.Events())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Shutting down...")
		cancel()
		player.Close()
		os.Exit(0)
	}()

	log.Printf("Starting %s game, seed %d", preset, *seed)
	engine := graphics.NewEngine(application, *width, *height)
	if err := engine.Run(); err != nil {
		log.Fatalf("UI error: %v", err)
	}
}
