package usecase

import (
	"context"

	"github.com/olgudulger/emlakfe/internal/contextkeys"
	"github.com/olgudulger/emlakfe/internal/core/domain"
	"github.com/olgudulger/emlakfe/internal/core/port"
)

type SaveCustomerUseCase struct {
	api       port.CustomerAPIPort
	customers port.Invalidator
}

func NewSaveCustomerUseCase(api port.CustomerAPIPort, customers port.Invalidator) *SaveCustomerUseCase {
	return &SaveCustomerUseCase{api: api, customers: customers}
}

func (uc *SaveCustomerUseCase) Execute(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "SaveCustomer",
		"customer_id": c.ID,
	})

	var (
		saved domain.Customer
		err   error
	)
	if c.ID == 0 {
		saved, err = uc.api.Create(ctx, c)
	} else {
		saved, err = uc.api.Update(ctx, c)
	}
	if err != nil {
		logger.Error("Customer write failed", err, nil)
		return domain.Customer{}, err
	}

	uc.customers.Invalidate()
	logger.Info("Customer saved", port.Fields{"customer_id": saved.ID})
	return saved, nil
}

type DeleteCustomerUseCase struct {
	api       port.CustomerAPIPort
	customers port.Invalidator
}

func NewDeleteCustomerUseCase(api port.CustomerAPIPort, customers port.Invalidator) *DeleteCustomerUseCase {
	return &DeleteCustomerUseCase{api: api, customers: customers}
}

func (uc *DeleteCustomerUseCase) Execute(ctx context.Context, id int64) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "DeleteCustomer",
		"customer_id": id,
	})

	if err := uc.api.Delete(ctx, id); err != nil {
		logger.Error("Customer delete failed", err, nil)
		return err
	}

	uc.customers.Invalidate()
	logger.Info("Customer deleted", nil)
	return nil
}
