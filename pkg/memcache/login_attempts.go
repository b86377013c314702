// pkg/memcache/login_attempts.go
package mem

import (
	"sync"
	"time"
)

type LoginAttemptStore interface {
	// Hit records an attempt for key and reports how many attempts fall
	// inside the window, the new one included.
	Hit(key string, window time.Duration) int

	// Count reads without recording.
	Count(key string, window time.Duration) int

	Reset(key string)
}

type LoginAttempts struct {
	mu   sync.Mutex
	data map[string][]time.Time
	now  func() time.Time
}

func NewLoginAttempts() *LoginAttempts {
	return &LoginAttempts{
		data: make(map[string][]time.Time),
		now:  time.Now,
	}
}

func (s *LoginAttempts) Hit(key string, window time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	kept := s.prune(key, now.Add(-window))
	kept = append(kept, now)
	s.data[key] = kept
	return len(kept)
}

func (s *LoginAttempts) Count(key string, window time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.prune(key, s.now().Add(-window))
	if len(kept) == 0 {
		delete(s.data, key) // cleanup expired
		return 0
	}
	s.data[key] = kept
	return len(kept)
}

func (s *LoginAttempts) Reset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

// Sweep drops every key with no attempt inside window and reports how many
// keys were removed.
func (s *LoginAttempts) Sweep(window time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-window)
	removed := 0
	for key := range s.data {
		if kept := s.prune(key, cutoff); len(kept) == 0 {
			delete(s.data, key)
			removed++
		} else {
			s.data[key] = kept
		}
	}
	return removed
}

// prune must be called with mu held.
func (s *LoginAttempts) prune(key string, cutoff time.Time) []time.Time {
	stamps := s.data[key]
	kept := stamps[:0]
	for _, t := range stamps {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}
