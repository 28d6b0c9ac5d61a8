package domain

import (
	"math/rand"
	"sync"
	"time"
)

// GameState is the single owner of a game in progress. Every exported
// method takes the lock, so input handlers and the tick loop may run on
// different goroutines. Readers that need more than Status should work on a
// Copy.
type GameState struct {
	Config            *GameConfig
	Field             *Field
	Snake             *Snake
	Direction         Direction
	PendingDirections []Direction
	Apple             Coord
	IsRunning         bool
	IsGameOver        bool
	Score             int
	BestScore         int

	store ScoreStore
	rng   Rand

	mu sync.RWMutex
}

// Status is the part of the state a driver polls every frame.
type Status struct {
	Score      int
	BestScore  int
	IsRunning  bool
	IsGameOver bool
}

type nopStore struct{}

func (nopStore) Load() (int, bool) { return 0, false }
func (nopStore) Save(int) error    { return nil }

// snapshotRand backs copies, which are only read.
type snapshotRand struct{}

func (snapshotRand) Intn(int) int { return 0 }

// NewGameState seeds a new game. store and rng may be nil: without a store
// the best score starts at zero and is never persisted, without rng a
// time-seeded source is used.
func NewGameState(config *GameConfig, store ScoreStore, rng Rand) *GameState {
	if store == nil {
		store = nopStore{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	best, ok := store.Load()
	if !ok || best < 0 {
		best = 0
	}

	gs := &GameState{
		BestScore: best,
		store:     store,
		rng:       rng,
	}
	gs.resetUnlocked(config)
	return gs
}

// Reset starts over with config (or the current config when nil). The best
// score survives.
func (gs *GameState) Reset(config *GameConfig) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if config == nil {
		config = gs.Config
	}
	gs.resetUnlocked(config)
}

func (gs *GameState) resetUnlocked(config *GameConfig) {
	gs.Config = config.Copy()
	gs.Field = config.Field()

	tail := Coord{X: config.Columns / 3, Y: config.Rows / 2}
	gs.Snake = NewSnake(tail, config.InitialSnakeLength)
	gs.Direction = DirectionRight
	gs.PendingDirections = gs.PendingDirections[:0]
	gs.Apple, _ = SpawnApple(gs.Snake.Points, gs.Config, gs.rng)
	gs.IsRunning = false
	gs.IsGameOver = false
	gs.Score = 0
}

// EnqueueDirection buffers a turn for a later tick. A turn that reverses
// the last buffered direction (or the current one when nothing is
// buffered) is dropped, as is a repeat of the last buffered turn. The
// result reports whether dir was queued.
func (gs *GameState) EnqueueDirection(dir Direction) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if !dir.Valid() {
		return false
	}

	ref := gs.Direction
	if n := len(gs.PendingDirections); n > 0 {
		ref = gs.PendingDirections[n-1]
		if ref == dir {
			return false
		}
	}
	if ref.IsOpposite(dir) {
		return false
	}

	gs.PendingDirections = append(gs.PendingDirections, dir)
	return true
}

// Start resumes play. A finished game is reset first.
func (gs *GameState) Start() {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.IsGameOver {
		gs.resetUnlocked(gs.Config)
	}
	gs.IsRunning = true
}

func (gs *GameState) Pause() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.IsRunning = false
}

func (gs *GameState) Status() Status {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return Status{
		Score:      gs.Score,
		BestScore:  gs.BestScore,
		IsRunning:  gs.IsRunning,
		IsGameOver: gs.IsGameOver,
	}
}

// Copy returns a detached snapshot for rendering. The copy has no store
// and shares snapshotRand, so stepping it never touches the live state.
func (gs *GameState) Copy() *GameState {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	pending := make([]Direction, len(gs.PendingDirections))
	copy(pending, gs.PendingDirections)

	return &GameState{
		Config:            gs.Config.Copy(),
		Field:             NewField(gs.Field.Width, gs.Field.Height),
		Snake:             gs.Snake.Copy(),
		Direction:         gs.Direction,
		PendingDirections: pending,
		Apple:             gs.Apple,
		IsRunning:         gs.IsRunning,
		IsGameOver:        gs.IsGameOver,
		Score:             gs.Score,
		BestScore:         gs.BestScore,
		store:             nopStore{},
		rng:               snapshotRand{},
	}
}
