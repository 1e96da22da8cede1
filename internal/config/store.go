package config

import "sync"

// Store guards the shared runtime configuration with a multiple-readers /
// single-writer discipline. Go's sync.RWMutex blocks new readers once a
// writer is waiting, so writers cannot starve; that is the fairness policy
// this core commits to.
type Store struct {
	mu  sync.RWMutex
	cfg *Config
}

func NewStore(cfg *Config) *Store {
	return &Store{cfg: cfg}
}

// Snapshot returns a copy of the current configuration. Callers get a value,
// not a reference, so they can't observe concurrent writes mid-read.
func (s *Store) Snapshot() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return *s.cfg
}

// Replace swaps the whole configuration, used by the file watcher.
func (s *Store) Replace(cfg *Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
}

// Update applies fn under the write lock.
func (s *Store) Update(fn func(*Config)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.cfg)
}
