package domain

// MaxAppleAttempts bounds the rejection sampling in SpawnApple.
const MaxAppleAttempts = 1000

// Rand is the subset of *math/rand.Rand the core needs.
type Rand interface {
	Intn(n int) int
}

// SpawnApple samples random cells until one is not in occupied. After
// MaxAppleAttempts samples it gives up and returns the last one anyway; ok
// reports whether the returned cell is actually free. On a nearly full
// board the apple can therefore land on the snake.
func SpawnApple(occupied []Coord, config *GameConfig, rng Rand) (apple Coord, ok bool) {
	taken := make(map[Coord]bool, len(occupied))
	for _, c := range occupied {
		taken[c] = true
	}

	for attempts := 0; attempts < MaxAppleAttempts; attempts++ {
		apple = Coord{
			X: rng.Intn(config.Columns),
			Y: rng.Intn(config.Rows),
		}
		if !taken[apple] {
			return apple, true
		}
	}
	return apple, false
}
