package resilience

import "golang.org/x/sync/singleflight"

// Group deduplicates concurrent calls for the same key and returns typed
// results.
type Group[T any] struct {
	group singleflight.Group
}

// Result is what DoChan delivers once the shared call finishes.
type Result[T any] struct {
	Val    T
	Err    error
	Shared bool
}

func (g *Group[T]) Do(key string, fn func() (T, error)) (T, error, bool) {
	value, err, shared := g.group.Do(key, func() (any, error) {
		return fn()
	})
	typed, _ := value.(T)
	return typed, err, shared
}

// DoChan is Do without blocking the caller, so a waiter can stop waiting
// on its own context while the call continues for everyone else.
func (g *Group[T]) DoChan(key string, fn func() (T, error)) <-chan Result[T] {
	out := make(chan Result[T], 1)
	ch := g.group.DoChan(key, func() (any, error) {
		return fn()
	})
	go func() {
		res := <-ch
		typed, _ := res.Val.(T)
		out <- Result[T]{Val: typed, Err: res.Err, Shared: res.Shared}
	}()
	return out
}

// Forget drops an in-flight key so the next Do starts a fresh call.
func (g *Group[T]) Forget(key string) {
	g.group.Forget(key)
}
