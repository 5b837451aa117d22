package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/music-league/internal/platform/resilience"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Store is an in-process TTL cache. A zero or negative ttl keeps entries
// until they are deleted. Concurrent loads of the same key are coalesced.
type Store[V any] struct {
	mu       sync.RWMutex
	entries  map[string]entry[V]
	inflight map[string]int
	// epoch advances on every delete; loads started under an older epoch
	// do not write their result back.
	epoch  uint64
	ttl    time.Duration
	flight resilience.Group[V]
	now    func() time.Time
}

func NewStore[V any](ttl time.Duration) *Store[V] {
	return &Store[V]{
		entries:  make(map[string]entry[V]),
		inflight: make(map[string]int),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *Store[V]) Get(_ context.Context, key string) (V, bool) {
	var zero V
	if key == "" {
		return zero, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return zero, false
	}
	if s.ttl > 0 && !e.expiresAt.After(s.now()) {
		s.mu.Lock()
		if current, still := s.entries[key]; still && current.expiresAt.Equal(e.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return zero, false
	}

	return e.value, true
}

func (s *Store[V]) Set(_ context.Context, key string, value V) {
	if key == "" {
		return
	}

	expiresAt := time.Time{}
	if s.ttl > 0 {
		expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[key] = entry[V]{value: value, expiresAt: expiresAt}
	s.mu.Unlock()
}

func (s *Store[V]) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	delete(s.entries, key)
	s.epoch++
	s.mu.Unlock()
	s.flight.Forget(key)
}

func (s *Store[V]) DeletePrefix(_ context.Context, prefix string) {
	if prefix == "" {
		return
	}

	s.mu.Lock()
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
	loading := make([]string, 0, len(s.inflight))
	for key := range s.inflight {
		if strings.HasPrefix(key, prefix) {
			loading = append(loading, key)
		}
	}
	s.epoch++
	s.mu.Unlock()

	for _, key := range loading {
		s.flight.Forget(key)
	}
}

func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// GetOrLoad returns the cached value for key or calls loader once for all
// concurrent callers. Loader errors are not cached.
//
// The loader runs without the caller's cancellation so one waiter giving up
// cannot fail the others; a cancelled caller returns ctx.Err() immediately.
func (s *Store[V]) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (V, error)) (V, error) {
	var zero V
	if loader == nil {
		return zero, errors.New("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := s.flight.DoChan(key, func() (V, error) {
		if cached, ok := s.Get(loadCtx, key); ok {
			return cached, nil
		}

		epoch := s.beginLoad(key)
		defer s.endLoad(key)

		loaded, loadErr := loader(loadCtx)
		if loadErr != nil {
			return zero, loadErr
		}
		s.setIfCurrent(key, loaded, epoch)
		return loaded, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

func (s *Store[V]) beginLoad(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight[key]++
	return s.epoch
}

func (s *Store[V]) endLoad(key string) {
	s.mu.Lock()
	if s.inflight[key] <= 1 {
		delete(s.inflight, key)
	} else {
		s.inflight[key]--
	}
	s.mu.Unlock()
}

func (s *Store[V]) setIfCurrent(key string, value V, epoch uint64) {
	expiresAt := time.Time{}
	if s.ttl > 0 {
		expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	if s.epoch == epoch {
		s.entries[key] = entry[V]{value: value, expiresAt: expiresAt}
	}
	s.mu.Unlock()
}
