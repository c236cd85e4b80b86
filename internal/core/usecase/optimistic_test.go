package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olgudulger/emlakfe/internal/core/domain"
)

func TestUpdatePropertyStatusOptimisticApply(t *testing.T) {
	api := &fakePropertyAPI{byID: map[int64]domain.Property{
		1: {ID: 1, Status: domain.StatusForSale},
	}}
	store := &fakeCollection[domain.Property]{
		items:  []domain.Property{{ID: 1, Status: domain.StatusForSale}, {ID: 2, Status: domain.StatusForRent}},
		loaded: true,
	}

	uc := NewUpdatePropertyStatusUseCase(api, store)
	err := uc.Execute(context.Background(), 1, domain.StatusReserved)
	require.NoError(t, err)

	// the speculative copy was applied before the backend call
	require.NotEmpty(t, store.replaced)
	assert.Equal(t, domain.StatusReserved, store.replaced[0][0].Status)
	assert.Equal(t, domain.StatusForRent, store.replaced[0][1].Status)

	// committed: cache dropped so the next read refetches
	assert.Equal(t, 1, store.invalidated)
	require.Len(t, api.statusUpdates, 1)
	assert.Equal(t, domain.StatusReserved, api.statusUpdates[0].status)
}

func TestUpdatePropertyStatusRestoresOnFailure(t *testing.T) {
	api := &fakePropertyAPI{statusErr: errors.New("rejected")}
	original := []domain.Property{{ID: 1, Status: domain.StatusForSale}}
	store := &fakeCollection[domain.Property]{items: original, loaded: true}

	uc := NewUpdatePropertyStatusUseCase(api, store)
	err := uc.Execute(context.Background(), 1, domain.StatusSold)
	require.Error(t, err)

	// second Replace restores the snapshot
	require.Len(t, store.replaced, 2)
	assert.Equal(t, domain.StatusForSale, store.replaced[1][0].Status)
	assert.Zero(t, store.invalidated)
}

func TestApplyOptimisticSkipsSpeculationWhenNotLoaded(t *testing.T) {
	store := &fakeCollection[domain.Property]{loaded: false}

	err := applyOptimistic[domain.Property](store,
		func(items []domain.Property) []domain.Property { return items },
		func() error { return nil },
	)
	require.NoError(t, err)

	assert.Empty(t, store.replaced)
	assert.Equal(t, 1, store.invalidated)
}

func TestToggleUserLockFlipsLockout(t *testing.T) {
	api := &fakeUserAPI{}
	store := &fakeCollection[domain.User]{
		items:  []domain.User{{ID: "a"}},
		loaded: true,
	}

	uc := NewToggleUserLockUseCase(api, store)
	require.NoError(t, uc.Execute(context.Background(), "a", true))

	require.NotEmpty(t, store.replaced)
	locked := store.replaced[0][0]
	require.NotNil(t, locked.LockoutEnd)
	assert.False(t, locked.IsActive())
	assert.Equal(t, []string{"a"}, api.locks)
}
