// Package cache stores computed payoff results so that repeated requests
// for unchanged debts do not run the simulation again.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Cache stores values by key.
type Cache interface {
	// Get returns the value for key. The second return value is false on a
	// cache miss, including when the cache is unavailable.
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte) error
}

// Store is the cache used by the API. It is replaced on startup.
var Store Cache = Noop{}

// Key builds a cache key from the parts. Parts are JSON encoded, so any
// change in the inputs results in a different key.
func Key(namespace string, parts ...any) (string, error) {
	h := sha256.New()
	for _, p := range parts {
		b, err := json.Marshal(p)
		if err != nil {
			return "", fmt.Errorf("cache key: %w", err)
		}
		h.Write(b)
		h.Write([]byte{0})
	}

	return fmt.Sprintf("pockets:%s:%s", namespace, hex.EncodeToString(h.Sum(nil))), nil
}

// Noop never stores anything.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, bool) { return nil, false }

func (Noop) Set(context.Context, string, []byte) error { return nil }
