package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeenMessages_FirstSeen(t *testing.T) {
	t.Parallel()
	s := NewSeenMessages(SeenConfig{TTL: time.Minute, Cleanup: time.Hour})
	defer s.Stop()

	assert.True(t, s.FirstSeen("mid.1"))
	assert.False(t, s.FirstSeen("mid.1"))
	assert.True(t, s.FirstSeen("mid.2"))
	assert.True(t, s.FirstSeen(""))
	assert.True(t, s.FirstSeen(""))
}

func TestSeenMessages_ExpiredIDIsNewAgain(t *testing.T) {
	t.Parallel()
	s := NewSeenMessages(SeenConfig{TTL: time.Minute, Cleanup: time.Hour})
	defer s.Stop()

	now := time.Now()
	s.now = func() time.Time { return now }
	assert.True(t, s.FirstSeen("mid.1"))

	s.now = func() time.Time { return now.Add(2 * time.Minute) }
	assert.True(t, s.FirstSeen("mid.1"))
}

func TestSeenMessages_CleanupRemovesExpired(t *testing.T) {
	t.Parallel()
	s := NewSeenMessages(SeenConfig{TTL: time.Minute, Cleanup: time.Hour})
	defer s.Stop()

	now := time.Now()
	s.now = func() time.Time { return now }
	s.FirstSeen("old")

	s.now = func() time.Time { return now.Add(time.Hour) }
	s.cleanup()

	assert.Equal(t, 0, s.Len())
}
