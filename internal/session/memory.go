package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry[T any] struct {
	v    T
	seen time.Time
}

// MemoryStore keeps values in a map. With a TTL set, an entry not written
// for longer than the TTL counts as missing and is dropped on a later write.
type MemoryStore[T any] struct {
	mu        sync.RWMutex
	m         map[string]entry[T]
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{m: map[string]entry[T]{}, now: time.Now}
}

// WithTTL sets the idle lifetime of an entry. Zero keeps entries forever.
func (s *MemoryStore[T]) WithTTL(ttl time.Duration) *MemoryStore[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ttl = ttl
	return s
}

func (s *MemoryStore[T]) Get(_ context.Context, id string) (T, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.lookup(id, s.now())
	return e.v, ok, nil
}

func (s *MemoryStore[T]) Put(_ context.Context, id string, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.m[id] = entry[T]{v: v, seen: now}
	s.sweep(now)
	return nil
}

func (s *MemoryStore[T]) Update(_ context.Context, id string, fn func(T, bool) (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	cur, ok := s.lookup(id, now)
	next, err := fn(cur.v, ok)
	if err != nil {
		return cur.v, err
	}
	s.m[id] = entry[T]{v: next, seen: now}
	s.sweep(now)
	return next, nil
}

func (s *MemoryStore[T]) NewID() string {
	return uuid.NewString()
}

// Len reports how many entries are held, expired ones not yet swept included.
func (s *MemoryStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

func (s *MemoryStore[T]) expired(e entry[T], now time.Time) bool {
	return s.ttl > 0 && now.Sub(e.seen) > s.ttl
}

// lookup must be called with s.mu held.
func (s *MemoryStore[T]) lookup(id string, now time.Time) (entry[T], bool) {
	e, ok := s.m[id]
	if !ok || s.expired(e, now) {
		return entry[T]{}, false
	}
	return e, true
}

// sweep drops expired entries, at most once per TTL. s.mu must be held for
// writing.
func (s *MemoryStore[T]) sweep(now time.Time) {
	if s.ttl <= 0 || now.Sub(s.lastSweep) < s.ttl {
		return
	}
	s.lastSweep = now
	for id, e := range s.m {
		if s.expired(e, now) {
			delete(s.m, id)
		}
	}
}
