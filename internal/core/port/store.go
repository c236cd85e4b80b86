package port

import "context"

// CollectionPort is a per-kind read-through cache of one entity collection.
// GetAll returns the session-cached collection, fetching it through the
// backend on first use; Invalidate forces the next GetAll to refetch.
type CollectionPort[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	Invalidate()
}

// Invalidator is the write-side view of a collection: successful writes only
// need to drop the cached copy, never to read it.
type Invalidator interface {
	Invalidate()
}

// OptimisticPort adds the speculative-update surface used by the optimistic
// apply helper: peek at the cached collection, swap in a speculative copy,
// and either invalidate on commit or swap the snapshot back on failure.
type OptimisticPort[T any] interface {
	CollectionPort[T]
	Peek() ([]T, bool)
	Replace(items []T)
}
