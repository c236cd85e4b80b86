package usecase

import (
	"context"

	"github.com/olgudulger/emlakfe/internal/contextkeys"
	"github.com/olgudulger/emlakfe/internal/core/domain"
	"github.com/olgudulger/emlakfe/internal/core/port"
)

type UpdatePropertyStatusUseCase struct {
	api        port.PropertyAPIPort
	properties port.OptimisticPort[domain.Property]
}

func NewUpdatePropertyStatusUseCase(api port.PropertyAPIPort, properties port.OptimisticPort[domain.Property]) *UpdatePropertyStatusUseCase {
	return &UpdatePropertyStatusUseCase{api: api, properties: properties}
}

// Execute flips a single property's status. The cached collection is updated
// optimistically so list views reflect the change immediately; if the backend
// rejects the write the previous state is restored.
func (uc *UpdatePropertyStatusUseCase) Execute(ctx context.Context, id int64, status domain.PropertyStatus) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "UpdatePropertyStatus",
		"property_id": id,
		"status":      status.String(),
	})

	err := applyOptimistic(uc.properties,
		func(items []domain.Property) []domain.Property {
			for i := range items {
				if items[i].ID == id {
					items[i].Status = status
				}
			}
			return items
		},
		func() error {
			return uc.api.UpdateStatus(ctx, id, status)
		},
	)
	if err != nil {
		logger.Error("Property status update failed", err, nil)
		return err
	}

	logger.Info("Property status updated", nil)
	return nil
}

type PropertyPriceHistoryUseCase struct {
	api port.PropertyAPIPort
}

func NewPropertyPriceHistoryUseCase(api port.PropertyAPIPort) *PropertyPriceHistoryUseCase {
	return &PropertyPriceHistoryUseCase{api: api}
}

func (uc *PropertyPriceHistoryUseCase) Execute(ctx context.Context, id int64) ([]domain.PriceHistoryEntry, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "PropertyPriceHistory",
		"property_id": id,
	})

	entries, err := uc.api.PriceHistory(ctx, id)
	if err != nil {
		logger.Error("Failed to load price history", err, nil)
		return nil, err
	}
	return entries, nil
}
