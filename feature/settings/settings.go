package settings

import (
	"sync/atomic"

	"chest-sorter/core/reconcile"
	"chest-sorter/core/sorter"
)

// Settings is one immutable version of the sorter settings. Every change
// produces a new value, so an in-flight sort keeps the version it started with.
type Settings struct {
	Mode             reconcile.Mode `json:"mode"`
	Verbose          bool           `json:"verbose"`
	SortWithoutSneak bool           `json:"sort_without_sneak"`
}

// FromConfig builds the startup settings.
func FromConfig(cfg sorter.Config) Settings {
	return Settings{
		Mode:             cfg.ParsedMode(),
		Verbose:          cfg.Verbose,
		SortWithoutSneak: cfg.SortWithoutSneak,
	}
}

// Sort returns the per-invocation engine configuration.
func (s Settings) Sort() reconcile.Config {
	return reconcile.Config{Mode: s.Mode}
}

// Store holds the current settings version.
type Store struct {
	cur atomic.Pointer[Settings]
}

// NewStore creates a store seeded with initial.
func NewStore(initial Settings) *Store {
	s := &Store{}
	s.cur.Store(&initial)
	return s
}

// Current returns the active settings.
func (s *Store) Current() Settings {
	return *s.cur.Load()
}

// Verbose reports the active verbosity flag.
func (s *Store) Verbose() bool {
	return s.cur.Load().Verbose
}

// Update applies fn to the current version and swaps in the result.
func (s *Store) Update(fn func(Settings) Settings) Settings {
	for {
		old := s.cur.Load()
		next := fn(*old)
		if s.cur.CompareAndSwap(old, &next) {
			return next
		}
	}
}
