package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/kharcha/internal/model"
)

func TestResponseCache(t *testing.T) {
	t.Run("basic operations", func(t *testing.T) {
		cache := newResponseCache(5 * time.Minute)

		_, found := cache.get("non-existent")
		assert.False(t, found)

		cands := []model.Candidate{{Amount: 400, Item: "gift", Category: model.CategoryShopping}}
		cache.set("gift for sonu 400", cands)

		got, found := cache.get("GIFT  for sonu 400")
		assert.True(t, found)
		assert.Equal(t, cands, got)
		assert.Equal(t, 1, cache.size())

		cache.clear()
		assert.Equal(t, 0, cache.size())
	})

	t.Run("expiration", func(t *testing.T) {
		cache := newResponseCache(50 * time.Millisecond)
		cache.set("tea 10", []model.Candidate{{Amount: 10}})

		_, found := cache.get("tea 10")
		assert.True(t, found)

		time.Sleep(100 * time.Millisecond)

		_, found = cache.get("tea 10")
		assert.False(t, found)
	})
}

func TestRateLimiter(t *testing.T) {
	t.Run("burst up to capacity", func(t *testing.T) {
		rl := newRateLimiter(3)
		assert.True(t, rl.tryAcquire())
		assert.True(t, rl.tryAcquire())
		assert.True(t, rl.tryAcquire())
		assert.False(t, rl.tryAcquire())
	})

	t.Run("wait honors context", func(t *testing.T) {
		rl := newRateLimiter(1)
		require.True(t, rl.tryAcquire())

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		assert.Error(t, rl.wait(ctx))
	})

	t.Run("default rate", func(t *testing.T) {
		rl := newRateLimiter(0)
		require.NoError(t, rl.wait(context.Background()))
	})
}
