package storage

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// BestScoreKey is the slot the best score lives in.
const BestScoreKey = "snake_best"

// BestScoreStore keeps the best score as a decimal string slot. It
// satisfies domain.ScoreStore.
type BestScoreStore struct {
	kv KV

	warnOnce sync.Once
}

func NewBestScoreStore(kv KV) *BestScoreStore {
	return &BestScoreStore{kv: kv}
}

// Load returns false when the slot is missing, unreadable or does not hold
// a non-negative integer.
func (s *BestScoreStore) Load() (int, bool) {
	raw, err := s.kv.Get(BestScoreKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.warn(err)
		}
		return 0, false
	}

	score, err := strconv.Atoi(raw)
	if err != nil || score < 0 {
		log.Printf("Ignoring stored best score %q", raw)
		return 0, false
	}
	return score, true
}

func (s *BestScoreStore) Save(score int) error {
	if err := s.kv.Set(BestScoreKey, strconv.Itoa(score)); err != nil {
		s.warn(err)
		return err
	}
	return nil
}

func (s *BestScoreStore) warn(err error) {
	s.warnOnce.Do(func() {
		log.Printf("Best score storage unavailable: %v", err)
	})
}

// DefaultDir is where slots are kept when no directory is configured.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "snake"), nil
}

// Open returns a file-backed store in dir, or in DefaultDir when dir is
// empty. If neither is usable the store falls back to memory so the game
// still runs, just without remembering the best score.
func Open(dir string) *BestScoreStore {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			log.Printf("No config dir, best score will not persist: %v", err)
			return NewBestScoreStore(NewMemoryKV())
		}
		dir = d
	}

	kv, err := NewFileKV(dir)
	if err != nil {
		log.Printf("Best score will not persist: %v", err)
		return NewBestScoreStore(NewMemoryKV())
	}
	return NewBestScoreStore(kv)
}
