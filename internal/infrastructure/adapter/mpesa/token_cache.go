package mpesa

import (
	"sync"
	"time"
)

// Token is a cached partner bearer token with its computed expiry
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

// TokenCache stores the partner bearer token between requests. It is an
// explicit injectable dependency so tests can substitute a deterministic or
// expiring fake. Redundant refreshes by near-simultaneous callers are
// allowed; the cache only has to be safe, not single-flighted.
type TokenCache interface {
	// Get returns the cached token, or false when nothing is cached
	Get() (Token, bool)
	// Set replaces the cached token
	Set(token Token)
}

// MemoryTokenCache is the process-local in-memory cache used in production
type MemoryTokenCache struct {
	mu    sync.Mutex
	token *Token
}

// NewMemoryTokenCache creates an empty in-memory token cache
func NewMemoryTokenCache() *MemoryTokenCache {
	return &MemoryTokenCache{}
}

// Get returns the cached token if one has been set
func (c *MemoryTokenCache) Get() (Token, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token == nil {
		return Token{}, false
	}
	return *c.token, true
}

// Set replaces the cached token
func (c *MemoryTokenCache) Set(token Token) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = &token
}
