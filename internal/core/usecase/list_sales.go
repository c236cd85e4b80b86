package usecase

import (
	"context"

	"github.com/olgudulger/emlakfe/internal/contextkeys"
	"github.com/olgudulger/emlakfe/internal/core/domain"
	"github.com/olgudulger/emlakfe/internal/core/port"
	"github.com/olgudulger/emlakfe/internal/core/query"
)

type ListSalesUseCase struct {
	sales port.CollectionPort[domain.Sale]
}

func NewListSalesUseCase(sales port.CollectionPort[domain.Sale]) *ListSalesUseCase {
	return &ListSalesUseCase{sales: sales}
}

// Execute pages through the cached sale collection in backend order.
func (uc *ListSalesUseCase) Execute(ctx context.Context, filters domain.SaleFilters) (query.Result[domain.Sale], error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "ListSales",
	})

	sales, err := uc.sales.GetAll(ctx)
	if err != nil {
		logger.Error("Failed to load sale collection", err, nil)
		return query.Result[domain.Sale]{Data: []domain.Sale{}}, err
	}

	result := query.Run(sales, query.Spec[domain.Sale]{
		Match: saleMatcher(filters),
		Page:  filters.Page,
		Limit: filters.Limit,
	})

	logger.Debug("Use case finished", port.Fields{
		"total_found":   result.Total,
		"items_on_page": len(result.Data),
	})
	return result, nil
}

func saleMatcher(filters domain.SaleFilters) func(domain.Sale) bool {
	return func(s domain.Sale) bool {
		if filters.Search != "" {
			if !query.ContainsFold(s.PropertyTitle, filters.Search) &&
				!query.ContainsFold(s.BuyerCustomerName, filters.Search) &&
				!query.ContainsFold(s.SellerCustomerName, filters.Search) {
				return false
			}
		}

		if filters.Status != nil && s.Status != *filters.Status {
			return false
		}
		if filters.PropertyType != nil && s.PropertyTypeName != filters.PropertyType.String() {
			return false
		}

		if filters.DateFrom != nil && s.SaleDate.Before(*filters.DateFrom) {
			return false
		}
		if filters.DateTo != nil && s.SaleDate.After(*filters.DateTo) {
			return false
		}

		if filters.MinPrice != nil && s.SalePrice < *filters.MinPrice {
			return false
		}
		if filters.MaxPrice != nil && s.SalePrice > *filters.MaxPrice {
			return false
		}

		return true
	}
}
