package domain

type Collision int

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
)

func (c Collision) String() string {
	switch c {
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	}
	return "none"
}

// StepResult describes what a single tick did.
type StepResult struct {
	Moved     bool
	Ate       bool
	Collision Collision
	// NewBest is set when the game ended with a score above the previous best.
	NewBest bool
	// BoardFull is set when no free cell was found for the next apple and it
	// was placed on the snake.
	BoardFull bool
}

func (r StepResult) GameOver() bool {
	return r.Collision != CollisionNone
}

// Step advances the game by one tick. It does nothing while the game is
// paused or over. A colliding tick ends the game without moving the snake.
func (gs *GameState) Step() StepResult {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	var result StepResult
	if gs.IsGameOver || !gs.IsRunning {
		return result
	}

	if len(gs.PendingDirections) > 0 {
		next := gs.PendingDirections[0]
		gs.PendingDirections = gs.PendingDirections[1:]
		if !gs.Direction.IsOpposite(next) {
			gs.Direction = next
		}
	}

	newHead := gs.Field.Move(gs.Snake.Head(), gs.Direction)

	if !gs.Field.Contains(newHead) {
		result.Collision = CollisionWall
		result.NewBest = gs.endGameUnlocked()
		return result
	}
	if gs.Snake.Contains(newHead) {
		result.Collision = CollisionSelf
		result.NewBest = gs.endGameUnlocked()
		return result
	}

	ate := newHead.Equals(gs.Apple)
	gs.Snake.Advance(newHead, ate)
	result.Moved = true

	if ate {
		gs.Score++
		result.Ate = true

		apple, ok := SpawnApple(gs.Snake.Points, gs.Config, gs.rng)
		gs.Apple = apple
		result.BoardFull = !ok
	}

	return result
}

// endGameUnlocked stops the game and records a new best score. The store
// error is dropped: losing the best score is not worth ending the session.
func (gs *GameState) endGameUnlocked() bool {
	gs.IsGameOver = true
	gs.IsRunning = false

	if gs.Score <= gs.BestScore {
		return false
	}
	gs.BestScore = gs.Score
	_ = gs.store.Save(gs.BestScore)
	return true
}
