package memory

import (
	"context"
	"sync"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/repository"
)

// collection is an ordered, id-keyed slice of values. Every write is pushed to
// the mirror under the collection's key while the write lock is still held, so
// the mirror never sees an older snapshot after a newer one.
type collection[T any] struct {
	mu     sync.RWMutex
	key    string
	items  []T
	idOf   func(T) int64
	clone  func(T) T
	mirror repository.Mirror
	log    logger.Logger
}

func newCollection[T any](key string, idOf func(T) int64, clone func(T) T, mirror repository.Mirror, log logger.Logger) *collection[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &collection[T]{key: key, idOf: idOf, clone: clone, mirror: mirror, log: log}
}

func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	for i, v := range c.items {
		out[i] = c.clone(v)
	}
	return out
}

func (c *collection[T]) filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0)
	for _, v := range c.items {
		if keep(v) {
			out = append(out, c.clone(v))
		}
	}
	return out
}

func (c *collection[T]) get(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexOf(id); i >= 0 {
		return c.clone(c.items[i]), true
	}
	var zero T
	return zero, false
}

func (c *collection[T]) indexOf(id int64) int {
	for i, v := range c.items {
		if c.idOf(v) == id {
			return i
		}
	}
	return -1
}

// upsert replaces the item with the same id in place, or inserts a new one at
// the front (prepend) or the back.
func (c *collection[T]) upsert(ctx context.Context, v T, prepend bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v = c.clone(v)
	switch i := c.indexOf(c.idOf(v)); {
	case i >= 0:
		c.items[i] = v
	case prepend:
		c.items = append([]T{v}, c.items...)
	default:
		c.items = append(c.items, v)
	}
	c.persistLocked(ctx)
}

// updateAll applies fn to every item; it reports how many items fn changed.
func (c *collection[T]) updateAll(ctx context.Context, fn func(*T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	changed := 0
	for i := range c.items {
		if fn(&c.items[i]) {
			changed++
		}
	}
	if changed > 0 {
		c.persistLocked(ctx)
	}
	return changed
}

func (c *collection[T]) remove(ctx context.Context, id int64) bool {
	return c.removeWhere(ctx, func(v T) bool { return c.idOf(v) == id }) > 0
}

func (c *collection[T]) removeWhere(ctx context.Context, drop func(T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0:0]
	for _, v := range c.items {
		if !drop(v) {
			kept = append(kept, v)
		}
	}
	removed := len(c.items) - len(kept)
	c.items = kept
	if removed > 0 {
		c.persistLocked(ctx)
	}
	return removed
}

func (c *collection[T]) replaceAll(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]T, len(items))
	for i, v := range items {
		c.items[i] = c.clone(v)
	}
}

func (c *collection[T]) persist(ctx context.Context) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	c.persistLocked(ctx)
}

func (c *collection[T]) persistLocked(ctx context.Context) {
	if c.mirror == nil || c.key == "" {
		return
	}
	if err := c.mirror.Save(ctx, c.key, c.items); err != nil {
		c.log.Errorf("Error writing to mirror key %q: %v", c.key, err)
	}
}

func (c *collection[T]) load(ctx context.Context) (bool, error) {
	if c.mirror == nil || c.key == "" {
		return false, nil
	}
	var items []T
	found, err := c.mirror.Load(ctx, c.key, &items)
	if err != nil || !found {
		return false, err
	}
	c.replaceAll(items)
	return true, nil
}
