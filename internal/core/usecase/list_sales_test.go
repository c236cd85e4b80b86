package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olgudulger/emlakfe/internal/core/domain"
)

func TestListSalesKeepsBackendOrder(t *testing.T) {
	now := time.Now()
	// deliberately not sorted by date: order on the page must match the
	// order the backend served, not the sale dates
	sales := &fakeCollection[domain.Sale]{items: []domain.Sale{
		{ID: 1, SaleDate: now.AddDate(0, 0, -3)},
		{ID: 2, SaleDate: now.AddDate(0, 0, -1)},
		{ID: 3, SaleDate: now.AddDate(0, 0, -2)},
	}}
	uc := NewListSalesUseCase(sales)

	result, err := uc.Execute(context.Background(), domain.SaleFilters{})
	require.NoError(t, err)
	require.Len(t, result.Data, 3)

	ids := []int64{result.Data[0].ID, result.Data[1].ID, result.Data[2].ID}
	assert.Equal(t, []int64{1, 2, 3}, ids)
}

func TestListSalesFiltersByDateRange(t *testing.T) {
	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	sales := &fakeCollection[domain.Sale]{items: []domain.Sale{
		{ID: 1, SaleDate: base},
		{ID: 2, SaleDate: base.AddDate(0, 0, 10)},
		{ID: 3, SaleDate: base.AddDate(0, 1, 0)},
	}}
	uc := NewListSalesUseCase(sales)

	from := base.AddDate(0, 0, 5)
	to := base.AddDate(0, 0, 20)
	result, err := uc.Execute(context.Background(), domain.SaleFilters{DateFrom: &from, DateTo: &to})
	require.NoError(t, err)

	require.Len(t, result.Data, 1)
	assert.Equal(t, int64(2), result.Data[0].ID)
}
