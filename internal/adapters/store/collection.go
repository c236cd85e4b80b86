// Package store is the session entity cache: one read-through collection per
// entity kind, replaced wholesale on refetch. There is no per-record locking;
// replacement is atomic at the reference-swap level and the single-operator
// session has no concurrent writers to the same slot.
package store

import (
	"context"
	"sync"

	"github.com/olgudulger/emlakfe/internal/core/port"
)

// FetchFunc loads the full collection from the backend.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Collection is the per-kind cache. It implements port.CollectionPort and
// port.OptimisticPort.
type Collection[T any] struct {
	name   string
	fetch  FetchFunc[T]
	logger port.LoggerPort

	mu     sync.RWMutex
	items  []T
	loaded bool
}

func NewCollection[T any](name string, fetch FetchFunc[T], logger port.LoggerPort) *Collection[T] {
	return &Collection[T]{
		name:   name,
		fetch:  fetch,
		logger: logger.WithFields(port.Fields{"component": "store", "collection": name}),
	}
}

// GetAll returns the cached collection, fetching it on first use or after an
// invalidation. Callers must treat the returned slice as read-only.
func (c *Collection[T]) GetAll(ctx context.Context) ([]T, error) {
	c.mu.RLock()
	if c.loaded {
		items := c.items
		c.mu.RUnlock()
		return items, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return c.items, nil
	}

	items, err := c.fetch(ctx)
	if err != nil {
		c.logger.Error("Failed to fetch collection", err, nil)
		return nil, err
	}
	c.items = items
	c.loaded = true
	c.logger.Debug("Collection fetched", port.Fields{"count": len(items)})
	return items, nil
}

// Invalidate drops the cached copy so the next GetAll refetches.
func (c *Collection[T]) Invalidate() {
	c.mu.Lock()
	c.items = nil
	c.loaded = false
	c.mu.Unlock()
	c.logger.Debug("Collection invalidated", nil)
}

// Peek returns the cached collection without triggering a fetch.
func (c *Collection[T]) Peek() ([]T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items, c.loaded
}

// Replace swaps in a new collection wholesale.
func (c *Collection[T]) Replace(items []T) {
	c.mu.Lock()
	c.items = items
	c.loaded = true
	c.mu.Unlock()
}
