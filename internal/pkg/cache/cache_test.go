package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStore_SetGet(t *testing.T) {
	t.Parallel()

	s := NewStore(0)
	defer s.Close()

	s.Set("k", 42, time.Minute)

	v, ok := s.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestStore_Expiry(t *testing.T) {
	t.Parallel()

	s := NewStore(0)
	defer s.Close()

	s.Set("k", "v", time.Nanosecond)
	time.Sleep(5 * time.Millisecond)

	_, ok := s.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestStore_NonPositiveTTLIgnored(t *testing.T) {
	t.Parallel()

	s := NewStore(0)
	defer s.Close()

	s.Set("k", "v", 0)
	_, ok := s.Get("k")
	assert.False(t, ok)
}

func TestStore_Flush(t *testing.T) {
	t.Parallel()

	s := NewStore(0)
	defer s.Close()

	s.Set("a", 1, time.Minute)
	s.Set("b", 2, time.Minute)
	s.Flush()

	assert.Equal(t, 0, s.Len())
}

func TestStore_Janitor(t *testing.T) {
	t.Parallel()

	s := NewStore(10 * time.Millisecond)
	defer s.Close()

	s.Set("k", "v", time.Nanosecond)

	assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 10*time.Millisecond)
}
