// Package collection keeps the shop's records in memory and mirrors every
// change to a key/value repository as one JSON blob per collection.
//
// Each collection serialises writers with a mutex held across the in-memory
// change and the persistence write. A change becomes visible only after the
// write succeeds, so a failed write leaves the previous state in place.
package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	portsrepo "github.com/SscSPs/printshop_pos/internal/core/ports/repositories"
)

// corruptSuffix names the key an undecodable blob is copied to before it can be overwritten.
const corruptSuffix = ".corrupt"

type collection[T any] struct {
	mu    sync.RWMutex
	key   string
	kv    portsrepo.KeyValueRepositoryFacade
	items []T
	clone func(T) T
}

// loadCollection reads key from kv. A missing key yields an empty collection and
// so does a blob that cannot be decoded; the latter is logged and backed up.
func loadCollection[T any](ctx context.Context, kv portsrepo.KeyValueRepositoryFacade, key string, clone func(T) T, logger *slog.Logger) (*collection[T], bool, error) {
	c := &collection[T]{key: key, kv: kv, items: []T{}, clone: clone}

	blob, found, err := kv.Load(ctx, key)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if !found {
		return c, false, nil
	}

	var items []T
	if err := json.Unmarshal(blob, &items); err != nil {
		logger.Warn("Persisted collection could not be decoded, starting empty",
			slog.String("key", key),
			slog.Int("bytes", len(blob)),
			slog.String("error", err.Error()))
		if berr := kv.Save(ctx, key+corruptSuffix, blob); berr != nil {
			logger.Error("Failed to back up undecodable collection",
				slog.String("key", key),
				slog.String("error", berr.Error()))
		}
		return c, false, nil
	}
	if items != nil {
		c.items = items
	}
	return c, true, nil
}

// snapshot returns deep copies of all items in stored order.
func (c *collection[T]) snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	for i, it := range c.items {
		out[i] = c.clone(it)
	}
	return out
}

// find returns a copy of the first item matching pred.
func (c *collection[T]) find(pred func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if pred(it) {
			return c.clone(it), true
		}
	}
	var zero T
	return zero, false
}

// commit replaces the items with next after persisting them.
// Callers must hold c.mu for writing and must not have modified c.items.
func (c *collection[T]) commit(ctx context.Context, next []T) error {
	blob, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.key, err)
	}
	if err := c.kv.Save(ctx, c.key, blob); err != nil {
		return fmt.Errorf("failed to persist %s: %w", c.key, err)
	}
	c.items = next
	return nil
}

func (c *collection[T]) prepend(ctx context.Context, item T) error {
	_, err := c.prependUnless(ctx, item, func(T) bool { return false })
	return err
}

// prependUnless stores item at the head unless a stored item matches taken.
// The check and the write happen under one lock; stored is false when taken matched.
func (c *collection[T]) prependUnless(ctx context.Context, item T, taken func(T) bool) (stored bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if taken(it) {
			return false, nil
		}
	}
	next := make([]T, 0, len(c.items)+1)
	next = append(next, c.clone(item))
	next = append(next, c.items...)
	if err := c.commit(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

func (c *collection[T]) appendItem(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := make([]T, 0, len(c.items)+1)
	next = append(next, c.items...)
	next = append(next, c.clone(item))
	return c.commit(ctx, next)
}

// update applies mutate to a copy of the first item matching pred and commits it.
// found is false when nothing matches; nothing is written in that case.
func (c *collection[T]) update(ctx context.Context, pred func(T) bool, mutate func(*T)) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	for i, it := range c.items {
		if !pred(it) {
			continue
		}
		changed := c.clone(it)
		mutate(&changed)
		next := make([]T, len(c.items))
		copy(next, c.items)
		next[i] = changed
		if err := c.commit(ctx, next); err != nil {
			return zero, true, err
		}
		return c.clone(changed), true, nil
	}
	return zero, false, nil
}

func (c *collection[T]) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
