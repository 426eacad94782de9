package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value   []byte
	expires time.Time
}

// Memory is an in-process cache. Entries expire after the TTL, a TTL of 0
// keeps them forever.
type Memory struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time

	// nextSweep is the earliest time Set removes expired entries again
	nextSweep time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}

	if !e.expires.IsZero() && !m.now().Before(e.expires) {
		delete(m.entries, key)
		return nil, false
	}

	return e.value, true
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweep(now)

	e := entry{value: value}
	if m.ttl > 0 {
		e.expires = now.Add(m.ttl)
	}
	m.entries[key] = e

	return nil
}

// sweep removes all expired entries. It runs at most once per TTL so that
// the cost of walking the map is spread over many calls to Set.
//
// The caller must hold m.mu.
func (m *Memory) sweep(now time.Time) {
	if m.ttl <= 0 || now.Before(m.nextSweep) {
		return
	}

	for key, e := range m.entries {
		if !now.Before(e.expires) {
			delete(m.entries, key)
		}
	}
	m.nextSweep = now.Add(m.ttl)
}

// Len returns the number of entries. Expired entries are counted until
// they are read or removed by the next sweep in Set.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
