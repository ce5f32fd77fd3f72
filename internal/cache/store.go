package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/arodena/focusfeed/internal/timeframe"
)

// Key is a tree-structured cache key, e.g. {"user", "stats", "42", "this-week"}.
// Invalidation works on segment prefixes, so wiping {"user", "stats", "42"}
// removes every cached timeframe for that user at once.
type Key []string

// keySeparator cannot appear in key segments produced by this codebase
// (user IDs, period tags, date keys), so joined keys stay unambiguous.
const keySeparator = "\x1f"

func (key Key) String() string {
	return strings.Join(key, keySeparator)
}

type entry struct {
	value     any
	expiresAt time.Time
}

// Store is an in-process TTL cache for computed dashboard payloads. All
// methods are safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	clock   timeframe.Clock
}

func NewStore(ttl time.Duration, clock timeframe.Clock) *Store {
	if clock == nil {
		clock = timeframe.SystemClock{}
	}
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		clock:   clock,
	}
}

func (store *Store) Get(key Key) (any, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()

	cached, ok := store.entries[key.String()]
	if !ok {
		return nil, false
	}
	if store.clock.Now().After(cached.expiresAt) {
		delete(store.entries, key.String())
		return nil, false
	}
	return cached.value, true
}

func (store *Store) Set(key Key, value any) {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.entries[key.String()] = entry{
		value:     value,
		expiresAt: store.clock.Now().Add(store.ttl),
	}
}

// InvalidatePrefix removes every entry whose key starts with the given
// segments and reports how many were dropped.
func (store *Store) InvalidatePrefix(prefix Key) int {
	store.mu.Lock()
	defer store.mu.Unlock()

	joined := prefix.String()
	removed := 0
	for stored := range store.entries {
		if stored == joined || strings.HasPrefix(stored, joined+keySeparator) {
			delete(store.entries, stored)
			removed++
		}
	}
	return removed
}
