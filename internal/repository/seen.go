package repository

import (
	"sync"
	"time"
)

// SeenMessages remembers message ids for a while so webhook retries from
// Messenger do not run the same command twice.
type SeenMessages struct {
	mu       sync.Mutex
	entries  map[string]time.Time
	ttl      time.Duration
	now      func() time.Time
	stopChan chan struct{}
	stopOnce sync.Once
}

// SeenConfig holds configuration for SeenMessages
type SeenConfig struct {
	TTL     time.Duration // How long an id is remembered (default 10m)
	Cleanup time.Duration // Cleanup interval (default 1m)
}

// NewSeenMessages creates the set and starts its cleanup goroutine
func NewSeenMessages(cfg SeenConfig) *SeenMessages {
	if cfg.TTL == 0 {
		cfg.TTL = 10 * time.Minute
	}
	if cfg.Cleanup == 0 {
		cfg.Cleanup = time.Minute
	}

	s := &SeenMessages{
		entries:  make(map[string]time.Time),
		ttl:      cfg.TTL,
		now:      time.Now,
		stopChan: make(chan struct{}),
	}

	go s.cleanupLoop(cfg.Cleanup)

	return s
}

// Stop stops the cleanup goroutine
func (s *SeenMessages) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
}

func (s *SeenMessages) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopChan:
			return
		}
	}
}

func (s *SeenMessages) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, expiresAt := range s.entries {
		if expiresAt.Before(now) {
			delete(s.entries, id)
		}
	}
}

// FirstSeen records id and reports whether it was new. Empty ids are
// always treated as new.
func (s *SeenMessages) FirstSeen(id string) bool {
	if id == "" {
		return true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if expiresAt, ok := s.entries[id]; ok && expiresAt.After(now) {
		return false
	}
	s.entries[id] = now.Add(s.ttl)
	return true
}

// Len returns the number of remembered ids
func (s *SeenMessages) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
