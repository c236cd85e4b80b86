package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olgudulger/emlakfe/internal/core/domain"
)

func sampleProperties() []domain.Property {
	return []domain.Property{
		{ID: 1, Title: "Merkez arsa", PropertyType: domain.TypeLand, Status: domain.StatusSold,
			CustomerID: 10, ProvinceID: 42,
			TypeSpecific: &domain.LandAttributes{TotalPrice: 500_000}},
		{ID: 2, Title: "İstanbul daire", PropertyType: domain.TypeApartment, Status: domain.StatusForSale,
			CustomerID: 11, ProvinceID: 34,
			TypeSpecific: &domain.ApartmentAttributes{TotalPrice: 2_000_000}},
		{ID: 3, Title: "Rezervli tarla", PropertyType: domain.TypeField, Status: domain.StatusReserved,
			CustomerID: 10, ProvinceID: 42,
			TypeSpecific: &domain.FieldAttributes{TotalPrice: 750_000}},
	}
}

func TestListPropertiesOrdersByStatusPriority(t *testing.T) {
	props := &fakeCollection[domain.Property]{items: sampleProperties()}
	customers := &fakeCollection[domain.Customer]{}

	uc := NewListPropertiesUseCase(props, customers)
	result, err := uc.Execute(context.Background(), domain.PropertyFilters{})
	require.NoError(t, err)

	require.Len(t, result.Data, 3)
	// reserved first, active second, completed last
	assert.Equal(t, int64(3), result.Data[0].ID)
	assert.Equal(t, int64(2), result.Data[1].ID)
	assert.Equal(t, int64(1), result.Data[2].ID)
}

func TestListPropertiesSearchIncludesOwnerName(t *testing.T) {
	props := &fakeCollection[domain.Property]{items: sampleProperties()}
	customers := &fakeCollection[domain.Customer]{items: []domain.Customer{
		{ID: 10, FullName: "Ahmet Yılmaz"},
		{ID: 11, FullName: "Ayşe Demir"},
	}}

	uc := NewListPropertiesUseCase(props, customers)
	result, err := uc.Execute(context.Background(), domain.PropertyFilters{Search: "yılmaz"})
	require.NoError(t, err)

	require.Equal(t, 2, result.Total)
	for _, p := range result.Data {
		assert.Equal(t, int64(10), p.CustomerID)
	}
}

func TestListPropertiesFilters(t *testing.T) {
	props := &fakeCollection[domain.Property]{items: sampleProperties()}
	uc := NewListPropertiesUseCase(props, &fakeCollection[domain.Customer]{})

	land := domain.TypeLand
	byType, err := uc.Execute(context.Background(), domain.PropertyFilters{PropertyType: &land})
	require.NoError(t, err)
	require.Equal(t, 1, byType.Total)
	assert.Equal(t, int64(1), byType.Data[0].ID)

	province := int64(42)
	byProvince, err := uc.Execute(context.Background(), domain.PropertyFilters{ProvinceID: &province})
	require.NoError(t, err)
	assert.Equal(t, 2, byProvince.Total)

	minPrice := 700_000.0
	byPrice, err := uc.Execute(context.Background(), domain.PropertyFilters{MinPrice: &minPrice})
	require.NoError(t, err)
	assert.Equal(t, 2, byPrice.Total)
}

func TestListPropertiesCollectionErrorYieldsEmptyPage(t *testing.T) {
	props := &fakeCollection[domain.Property]{err: errors.New("fetch failed")}
	uc := NewListPropertiesUseCase(props, &fakeCollection[domain.Customer]{})

	result, err := uc.Execute(context.Background(), domain.PropertyFilters{})
	assert.Error(t, err)
	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Data)
}

func TestSaleStatisticsExcludesCancelled(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	sales := &fakeCollection[domain.Sale]{items: []domain.Sale{
		{SalePrice: 1_000_000, Commission: 30_000, Expenses: 5_000, NetProfit: 25_000,
			Status: domain.SaleCompleted, SaleDate: now.AddDate(0, 0, -1)},
		{SalePrice: 500_000, Commission: 10_000, NetProfit: 10_000,
			Status: domain.SalePending, SaleDate: now.AddDate(0, -2, 0)},
		{SalePrice: 9_000_000, Status: domain.SaleCancelled, SaleDate: now},
	}}

	uc := NewSaleStatisticsUseCase(sales)
	uc.now = func() time.Time { return now }

	stats, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalSales)
	assert.Equal(t, 1_500_000.0, stats.TotalRevenue)
	assert.Equal(t, 40_000.0, stats.TotalCommission)
	assert.Equal(t, 5_000.0, stats.TotalExpenses)
	assert.Equal(t, 35_000.0, stats.TotalNetProfit)
	assert.Equal(t, 750_000.0, stats.AverageSalePrice)
	assert.Equal(t, 1, stats.SalesThisMonth)
	assert.Equal(t, 1_000_000.0, stats.RevenueThisMonth)
}
