package usecase

import "github.com/olgudulger/emlakfe/internal/core/port"

// applyOptimistic runs a write as a small transaction over the cached
// collection: snapshot the current copy, swap in the speculative state
// produced by mutate, then commit. On failure the snapshot is restored; on
// success the collection is invalidated so the next read fetches the
// authoritative state.
func applyOptimistic[T any](store port.OptimisticPort[T], mutate func([]T) []T, commit func() error) error {
	snapshot, loaded := store.Peek()
	if loaded {
		speculative := make([]T, len(snapshot))
		copy(speculative, snapshot)
		store.Replace(mutate(speculative))
	}

	if err := commit(); err != nil {
		if loaded {
			store.Replace(snapshot)
		}
		return err
	}

	store.Invalidate()
	return nil
}
