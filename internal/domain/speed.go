package domain

import "time"

// speedStepMs is how much faster each speed level ticks.
const speedStepMs = 6

// SpeedForScore returns the tick interval in milliseconds for score. It
// never increases with score and never drops below MinSpeedMs.
func SpeedForScore(config *GameConfig, score int) int {
	steps := score / config.SpeedupEvery
	return max(config.MinSpeedMs, config.BaseSpeedMs-steps*speedStepMs)
}

func TickInterval(config *GameConfig, score int) time.Duration {
	return time.Duration(SpeedForScore(config, score)) * time.Millisecond
}
