package domain

// ScoreStore persists the best score between sessions. The core treats it
// as best effort: a failed Load means "no best score yet" and a failed
// Save is dropped.
type ScoreStore interface {
	Load() (score int, ok bool)
	Save(score int) error
}
