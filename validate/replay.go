// Licensed to SolID under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. SolID licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package validate

import (
	"crypto/sha256"
	"sync"
	"time"
)

// ReplayCache tracks tokens that have already been validated once, so a
// captured token cannot be replayed after its first successful use.
type ReplayCache interface {
	// Contains reports whether hash has already been stored.
	Contains(hash [sha256.Size]byte) bool
	// Add stores hash, expiring it at expiresAt. A zero expiresAt means
	// the entry never expires on its own.
	Add(hash [sha256.Size]byte, expiresAt time.Time)
}

// MemoryReplayCache is an in-memory ReplayCache suitable for a single
// process. Lookups ignore expired entries, but nothing is removed until
// DeleteExpired is called.
type MemoryReplayCache struct {
	mu      sync.RWMutex
	entries map[[sha256.Size]byte]time.Time
}

// NewMemoryReplayCache returns an empty MemoryReplayCache.
func NewMemoryReplayCache() *MemoryReplayCache {
	return &MemoryReplayCache{entries: make(map[[sha256.Size]byte]time.Time)}
}

// Contains reports whether hash is present and not expired.
func (c *MemoryReplayCache) Contains(hash [sha256.Size]byte) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	expiresAt, exists := c.entries[hash]
	if !exists {
		return false
	}
	if !expiresAt.IsZero() && time.Now().After(expiresAt) {
		return false
	}

	return true
}

// Add stores hash with the given expiry.
func (c *MemoryReplayCache) Add(hash [sha256.Size]byte, expiresAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[hash] = expiresAt
}

// DeleteExpired removes every entry whose expiry has passed and returns
// how many were removed.
func (c *MemoryReplayCache) DeleteExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	removed := 0
	for hash, expiresAt := range c.entries {
		if !expiresAt.IsZero() && now.After(expiresAt) {
			delete(c.entries, hash)
			removed++
		}
	}

	return removed
}

// HashToken computes the replay-cache key for a raw token string.
func HashToken(token string) [sha256.Size]byte {
	return sha256.Sum256([]byte(token))
}
