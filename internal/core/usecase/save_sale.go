package usecase

import (
	"context"

	"github.com/olgudulger/emlakfe/internal/contextkeys"
	"github.com/olgudulger/emlakfe/internal/core/domain"
	"github.com/olgudulger/emlakfe/internal/core/port"
)

type SaveSaleUseCase struct {
	sales      port.SaleAPIPort
	properties port.PropertyAPIPort
	saleStore  port.Invalidator
	propStore  port.Invalidator
}

func NewSaveSaleUseCase(sales port.SaleAPIPort, properties port.PropertyAPIPort, saleStore, propStore port.Invalidator) *SaveSaleUseCase {
	return &SaveSaleUseCase{sales: sales, properties: properties, saleStore: saleStore, propStore: propStore}
}

// Execute writes a sale and, when the write moves it into the completed
// state, pushes the linked property to its terminal status. The property
// sync is best effort: a failure there is logged but never rolls back or
// fails the sale write.
func (uc *SaveSaleUseCase) Execute(ctx context.Context, s domain.Sale) (domain.Sale, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "SaveSale",
		"sale_id":  s.ID,
	})

	s.RecomputeDerived()

	// on update the previous status decides whether completion is a
	// transition, so the current sale is read before anything is written
	previous := domain.SaleStatus(0)
	if s.ID != 0 {
		current, err := uc.sales.GetByID(ctx, s.ID)
		if err != nil {
			logger.Error("Failed to load current sale before update", err, nil)
			return domain.Sale{}, err
		}
		previous = current.Status
	}

	var (
		saved domain.Sale
		err   error
	)
	if s.ID == 0 {
		saved, err = uc.sales.Create(ctx, s)
	} else {
		saved, err = uc.sales.Update(ctx, s)
	}
	if err != nil {
		logger.Error("Sale write failed", err, nil)
		return domain.Sale{}, err
	}

	uc.saleStore.Invalidate()

	if saved.Status == domain.SaleCompleted && previous != domain.SaleCompleted {
		uc.syncPropertyStatus(ctx, logger, saved.PropertyID)
	}

	logger.Info("Sale saved", port.Fields{"sale_id": saved.ID, "status": saved.Status.String()})
	return saved, nil
}

// syncPropertyStatus moves the sold property out of the market: a rental
// listing becomes rented, a sale listing becomes sold. Properties already in
// a terminal or reserved state are left alone.
func (uc *SaveSaleUseCase) syncPropertyStatus(ctx context.Context, logger port.LoggerPort, propertyID int64) {
	property, err := uc.properties.GetByID(ctx, propertyID)
	if err != nil {
		logger.Error("Completed sale saved but linked property could not be read for status sync", err,
			port.Fields{"property_id": propertyID})
		return
	}

	var target domain.PropertyStatus
	switch property.Status {
	case domain.StatusForRent, domain.StatusForSaleOrRent:
		target = domain.StatusRented
	case domain.StatusForSale:
		target = domain.StatusSold
	default:
		return
	}

	if err := uc.properties.UpdateStatus(ctx, propertyID, target); err != nil {
		logger.Error("Completed sale saved but property status sync failed", err, port.Fields{
			"property_id":   propertyID,
			"target_status": target.String(),
		})
		return
	}

	uc.propStore.Invalidate()
	logger.Info("Property status synced after completed sale", port.Fields{
		"property_id":   propertyID,
		"target_status": target.String(),
	})
}
