// Package sound plays short synthesized cues for game events.
package sound

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"snake/internal/app"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type note struct {
	freq float64
	dur  time.Duration
}

var (
	eatCue      = []note{{880, 50 * time.Millisecond}}
	newBestCue  = []note{{660, 60 * time.Millisecond}, {880, 60 * time.Millisecond}, {1320, 90 * time.Millisecond}}
	gameOverCue = []note{{440, 120 * time.Millisecond}, {330, 120 * time.Millisecond}, {220, 200 * time.Millisecond}}
)

// Player is safe to use when audio is unavailable: every cue is then a no-op.
type Player struct {
	mu          sync.Mutex
	initialized bool
}

func NewPlayer() *Player {
	return &Player{}
}

// Init opens the audio device. A failure leaves the player silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.initialized = true
	return nil
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

func (p *Player) Eat()      { p.play(eatCue) }
func (p *Player) NewBest()  { p.play(newBestCue) }
func (p *Player) GameOver() { p.play(gameOverCue) }

func (p *Player) play(cue []note) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, err := melody(cue)
	if err != nil {
		log.Printf("Failed to build sound: %v", err)
		return
	}
	speaker.Play(s)
}

// Listen plays the cue for each game event until ctx is done or events is
// closed.
func (p *Player) Listen(ctx context.Context, events <-chan app.AppEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			switch event.Type {
			case app.AppEventAte:
				p.Eat()
			case app.AppEventGameOver:
				if !event.Result.NewBest {
					p.GameOver()
				}
			case app.AppEventNewBest:
				p.NewBest()
			}
		}
	}
}

func melody(cue []note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(cue))
	for _, n := range cue {
		sine, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.0fHz: %w", n.freq, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), sine))
	}
	return beep.Seq(parts...), nil
}
