package llm

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/Veraticus/kharcha/internal/model"
)

// responseCache stores parsed fallback results keyed by normalized input.
type responseCache struct {
	store *gocache.Cache
}

// newResponseCache creates a new cache with the specified TTL.
func newResponseCache(ttl time.Duration) *responseCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &responseCache{store: gocache.New(ttl, 2*ttl)}
}

func cacheKey(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// get returns a copy of the cached candidates for text.
func (c *responseCache) get(text string) ([]model.Candidate, bool) {
	v, found := c.store.Get(cacheKey(text))
	if !found {
		return nil, false
	}
	cached, ok := v.([]model.Candidate)
	if !ok {
		return nil, false
	}
	return append([]model.Candidate(nil), cached...), true
}

func (c *responseCache) set(text string, candidates []model.Candidate) {
	c.store.SetDefault(cacheKey(text), append([]model.Candidate(nil), candidates...))
}

func (c *responseCache) size() int {
	return c.store.ItemCount()
}

func (c *responseCache) clear() {
	c.store.Flush()
}
