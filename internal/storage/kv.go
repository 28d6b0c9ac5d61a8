// Package storage keeps small string slots between runs, the way a browser
// keeps localStorage entries, and builds the best-score store on top.
package storage

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("slot not found")

// KV is a flat set of named string slots.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

type MemoryKV struct {
	mu    sync.RWMutex
	slots map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{slots: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.slots[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = value
	return nil
}
