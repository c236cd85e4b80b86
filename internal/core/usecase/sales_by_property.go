package usecase

import (
	"context"

	"github.com/olgudulger/emlakfe/internal/contextkeys"
	"github.com/olgudulger/emlakfe/internal/core/domain"
	"github.com/olgudulger/emlakfe/internal/core/port"
)

type SalesByPropertyUseCase struct {
	sales port.SaleAPIPort
}

func NewSalesByPropertyUseCase(sales port.SaleAPIPort) *SalesByPropertyUseCase {
	return &SalesByPropertyUseCase{sales: sales}
}

// Execute returns the sale history of a single property straight from the
// backend; this view is rare enough that it bypasses the session cache.
func (uc *SalesByPropertyUseCase) Execute(ctx context.Context, propertyID int64) ([]domain.Sale, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "SalesByProperty",
		"property_id": propertyID,
	})

	sales, err := uc.sales.ListByProperty(ctx, propertyID)
	if err != nil {
		logger.Error("Failed to load sales for property", err, nil)
		return nil, err
	}
	return sales, nil
}

type CanSellPropertyUseCase struct {
	sales port.SaleAPIPort
}

func NewCanSellPropertyUseCase(sales port.SaleAPIPort) *CanSellPropertyUseCase {
	return &CanSellPropertyUseCase{sales: sales}
}

// Execute asks the backend whether a property is currently sellable, i.e.
// has no open completed or reserved deal against it.
func (uc *CanSellPropertyUseCase) Execute(ctx context.Context, propertyID int64) (bool, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "CanSellProperty",
		"property_id": propertyID,
	})

	ok, err := uc.sales.CanSell(ctx, propertyID)
	if err != nil {
		logger.Error("Can-sell check failed", err, nil)
		return false, err
	}
	return ok, nil
}
