package usecase

import (
	"context"

	"github.com/olgudulger/emlakfe/internal/contextkeys"
	"github.com/olgudulger/emlakfe/internal/core/domain"
	"github.com/olgudulger/emlakfe/internal/core/port"
	"github.com/olgudulger/emlakfe/internal/core/query"
)

type ListPropertiesUseCase struct {
	properties port.CollectionPort[domain.Property]
	customers  port.CollectionPort[domain.Customer]
}

func NewListPropertiesUseCase(properties port.CollectionPort[domain.Property], customers port.CollectionPort[domain.Customer]) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{properties: properties, customers: customers}
}

// Execute derives the visible page from the cached property collection.
// Free-text search also covers the resolved owning-customer name, and the
// fixed status priority ordering is applied before pagination so reserved and
// active listings always surface before completed ones.
func (uc *ListPropertiesUseCase) Execute(ctx context.Context, filters domain.PropertyFilters) (query.Result[domain.Property], error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "ListProperties",
	})

	properties, err := uc.properties.GetAll(ctx)
	if err != nil {
		logger.Error("Failed to load property collection", err, nil)
		return query.Result[domain.Property]{Data: []domain.Property{}}, err
	}

	// owner-name search is a join against the customer collection; if that
	// collection cannot be loaded the search simply loses the owner field
	ownerNames := map[int64]string{}
	if customers, err := uc.customers.GetAll(ctx); err == nil {
		for _, c := range customers {
			ownerNames[c.ID] = c.FullName
		}
	}

	result := query.Run(properties, query.Spec[domain.Property]{
		Match:    propertyMatcher(filters, ownerNames),
		Priority: func(p domain.Property) int { return p.Status.SortPriority() },
		Page:     filters.Page,
		Limit:    filters.Limit,
	})

	logger.Debug("Use case finished", port.Fields{
		"total_found":   result.Total,
		"items_on_page": len(result.Data),
	})
	return result, nil
}

func propertyMatcher(filters domain.PropertyFilters, ownerNames map[int64]string) func(domain.Property) bool {
	return func(p domain.Property) bool {
		if filters.Search != "" {
			if !query.ContainsFold(p.Title, filters.Search) &&
				!query.ContainsFold(p.IntermediaryFullName, filters.Search) &&
				!query.ContainsFold(p.Notes, filters.Search) &&
				!query.ContainsFold(ownerNames[p.CustomerID], filters.Search) {
				return false
			}
		}

		if filters.PropertyType != nil && p.PropertyType != *filters.PropertyType {
			return false
		}
		if filters.Status != nil && p.Status != *filters.Status {
			return false
		}
		if filters.ProvinceID != nil && p.ProvinceID != *filters.ProvinceID {
			return false
		}
		if filters.DistrictID != nil && p.DistrictID != *filters.DistrictID {
			return false
		}
		if filters.NeighborhoodID != nil && p.NeighborhoodID != *filters.NeighborhoodID {
			return false
		}

		if p.TypeSpecific != nil {
			if total := p.TypeSpecific.Total(); total > 0 {
				if filters.MinPrice != nil && total < *filters.MinPrice {
					return false
				}
				if filters.MaxPrice != nil && total > *filters.MaxPrice {
					return false
				}
			}
		}

		// the shareholder flag only exists on the Field variant
		if filters.HasShareholder != nil && filters.PropertyType != nil && *filters.PropertyType == domain.TypeField {
			if field, ok := p.TypeSpecific.(*domain.FieldAttributes); ok && field.HasShareholder != nil {
				if *field.HasShareholder != *filters.HasShareholder {
					return false
				}
			}
		}

		return true
	}
}
