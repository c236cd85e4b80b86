package usecase

import (
	"context"

	"github.com/olgudulger/emlakfe/internal/contextkeys"
	"github.com/olgudulger/emlakfe/internal/core/domain"
	"github.com/olgudulger/emlakfe/internal/core/port"
)

type CancelSaleUseCase struct {
	sales     port.SaleAPIPort
	saleStore port.Invalidator
}

func NewCancelSaleUseCase(sales port.SaleAPIPort, saleStore port.Invalidator) *CancelSaleUseCase {
	return &CancelSaleUseCase{sales: sales, saleStore: saleStore}
}

// Execute moves a sale into the cancelled state. Cancelling an already
// cancelled sale is a no-op. Cancellation never touches the linked property:
// completion is a one-way door and the listing state after a cancelled deal
// is an agent decision.
func (uc *CancelSaleUseCase) Execute(ctx context.Context, id int64) (domain.Sale, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "CancelSale",
		"sale_id":  id,
	})

	current, err := uc.sales.GetByID(ctx, id)
	if err != nil {
		logger.Error("Failed to load sale", err, nil)
		return domain.Sale{}, err
	}
	if current.Status == domain.SaleCancelled {
		logger.Debug("Sale already cancelled", nil)
		return current, nil
	}

	current.Status = domain.SaleCancelled
	saved, err := uc.sales.Update(ctx, current)
	if err != nil {
		logger.Error("Sale cancel failed", err, nil)
		return domain.Sale{}, err
	}

	uc.saleStore.Invalidate()
	logger.Info("Sale cancelled", nil)
	return saved, nil
}

type DeleteSaleUseCase struct {
	sales     port.SaleAPIPort
	saleStore port.Invalidator
}

func NewDeleteSaleUseCase(sales port.SaleAPIPort, saleStore port.Invalidator) *DeleteSaleUseCase {
	return &DeleteSaleUseCase{sales: sales, saleStore: saleStore}
}

func (uc *DeleteSaleUseCase) Execute(ctx context.Context, id int64) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "DeleteSale",
		"sale_id":  id,
	})

	if err := uc.sales.Delete(ctx, id); err != nil {
		logger.Error("Sale delete failed", err, nil)
		return err
	}

	uc.saleStore.Invalidate()
	logger.Info("Sale deleted", nil)
	return nil
}
