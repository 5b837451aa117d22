package spotify

import (
	"context"
	"sync"

	"github.com/riskibarqy/music-league/internal/platform/resilience"
)

// tokenCache holds the current access token. Concurrent refreshes share one
// upstream request.
type tokenCache struct {
	mu     sync.RWMutex
	token  string
	flight resilience.Group[string]
	fetch  func(ctx context.Context) (string, error)
}

func newTokenCache(fetch func(ctx context.Context) (string, error)) *tokenCache {
	return &tokenCache{fetch: fetch}
}

func (c *tokenCache) Get(ctx context.Context) (string, error) {
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		return token, nil
	}

	// the refresh is shared, so it must outlive a waiter that gives up
	fetchCtx := context.WithoutCancel(ctx)
	ch := c.flight.DoChan("access_token", func() (string, error) {
		fresh, err := c.fetch(fetchCtx)
		if err != nil {
			return "", err
		}
		c.mu.Lock()
		c.token = fresh
		c.mu.Unlock()
		return fresh, nil
	})

	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Invalidate drops stale, unless another caller already replaced it.
func (c *tokenCache) Invalidate(stale string) {
	c.mu.Lock()
	if c.token == stale {
		c.token = ""
	}
	c.mu.Unlock()
}
