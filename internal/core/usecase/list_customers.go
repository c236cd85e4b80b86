package usecase

import (
	"context"
	"strings"

	"github.com/olgudulger/emlakfe/internal/contextkeys"
	"github.com/olgudulger/emlakfe/internal/core/domain"
	"github.com/olgudulger/emlakfe/internal/core/port"
	"github.com/olgudulger/emlakfe/internal/core/query"
)

type ListCustomersUseCase struct {
	customers port.CollectionPort[domain.Customer]
}

func NewListCustomersUseCase(customers port.CollectionPort[domain.Customer]) *ListCustomersUseCase {
	return &ListCustomersUseCase{customers: customers}
}

func (uc *ListCustomersUseCase) Execute(ctx context.Context, filters domain.CustomerFilters) (query.Result[domain.Customer], error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "ListCustomers",
	})

	customers, err := uc.customers.GetAll(ctx)
	if err != nil {
		logger.Error("Failed to load customer collection", err, nil)
		return query.Result[domain.Customer]{Data: []domain.Customer{}}, err
	}

	result := query.Run(customers, query.Spec[domain.Customer]{
		Match: customerMatcher(filters),
		Page:  filters.Page,
		Limit: filters.Limit,
	})

	logger.Debug("Use case finished", port.Fields{
		"total_found":   result.Total,
		"items_on_page": len(result.Data),
	})
	return result, nil
}

func customerMatcher(filters domain.CustomerFilters) func(domain.Customer) bool {
	return func(c domain.Customer) bool {
		if filters.Search != "" {
			// phone numbers are matched raw, not case folded
			if !query.ContainsFold(c.FullName, filters.Search) &&
				!strings.Contains(c.Phone, filters.Search) &&
				!query.ContainsFold(c.Notes, filters.Search) {
				return false
			}
		}

		if filters.CustomerType != nil && c.CustomerType != *filters.CustomerType {
			return false
		}
		if filters.InterestType != nil && *filters.InterestType != domain.InterestAll && c.InterestType != *filters.InterestType {
			return false
		}

		if filters.MinBudget != nil && c.Budget < *filters.MinBudget {
			return false
		}
		if filters.MaxBudget != nil && c.Budget > *filters.MaxBudget {
			return false
		}

		return true
	}
}
