package usecase

import (
	"context"

	"github.com/olgudulger/emlakfe/internal/contextkeys"
	"github.com/olgudulger/emlakfe/internal/core/domain"
	"github.com/olgudulger/emlakfe/internal/core/port"
)

type GetPropertyUseCase struct {
	api port.PropertyAPIPort
}

func NewGetPropertyUseCase(api port.PropertyAPIPort) *GetPropertyUseCase {
	return &GetPropertyUseCase{api: api}
}

// Execute reads a single property straight from the backend so detail views
// never show a stale cached record.
func (uc *GetPropertyUseCase) Execute(ctx context.Context, id int64) (domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "GetProperty",
		"property_id": id,
	})

	p, err := uc.api.GetByID(ctx, id)
	if err != nil {
		logger.Error("Failed to load property", err, nil)
		return domain.Property{}, err
	}
	return p, nil
}

type GetSaleUseCase struct {
	api port.SaleAPIPort
}

func NewGetSaleUseCase(api port.SaleAPIPort) *GetSaleUseCase {
	return &GetSaleUseCase{api: api}
}

func (uc *GetSaleUseCase) Execute(ctx context.Context, id int64) (domain.Sale, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetSale",
		"sale_id":  id,
	})

	s, err := uc.api.GetByID(ctx, id)
	if err != nil {
		logger.Error("Failed to load sale", err, nil)
		return domain.Sale{}, err
	}
	return s, nil
}

type GetCustomerUseCase struct {
	api port.CustomerAPIPort
}

func NewGetCustomerUseCase(api port.CustomerAPIPort) *GetCustomerUseCase {
	return &GetCustomerUseCase{api: api}
}

func (uc *GetCustomerUseCase) Execute(ctx context.Context, id int64) (domain.Customer, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "GetCustomer",
		"customer_id": id,
	})

	c, err := uc.api.GetByID(ctx, id)
	if err != nil {
		logger.Error("Failed to load customer", err, nil)
		return domain.Customer{}, err
	}
	return c, nil
}
