package mpesa

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryTokenCache(t *testing.T) {
	t.Run("Empty cache reports no token", func(t *testing.T) {
		cache := NewMemoryTokenCache()

		token, ok := cache.Get()

		assert.False(t, ok)
		assert.Empty(t, token.AccessToken)
	})

	t.Run("Set then Get round-trips the token", func(t *testing.T) {
		cache := NewMemoryTokenCache()
		expiresAt := time.Date(2025, 6, 15, 11, 0, 0, 0, time.UTC)

		cache.Set(Token{AccessToken: "abc123", ExpiresAt: expiresAt})

		token, ok := cache.Get()
		assert.True(t, ok)
		assert.Equal(t, "abc123", token.AccessToken)
		assert.Equal(t, expiresAt, token.ExpiresAt)
	})

	t.Run("Set replaces the previous token", func(t *testing.T) {
		cache := NewMemoryTokenCache()

		cache.Set(Token{AccessToken: "first"})
		cache.Set(Token{AccessToken: "second"})

		token, ok := cache.Get()
		assert.True(t, ok)
		assert.Equal(t, "second", token.AccessToken)
	})

	t.Run("Concurrent access is safe", func(t *testing.T) {
		cache := NewMemoryTokenCache()

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				cache.Set(Token{AccessToken: "tok"})
			}()
			go func() {
				defer wg.Done()
				cache.Get()
			}()
		}
		wg.Wait()

		token, ok := cache.Get()
		assert.True(t, ok)
		assert.Equal(t, "tok", token.AccessToken)
	})
}
