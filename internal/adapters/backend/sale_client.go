package backend

import (
	"context"
	"net/http"

	"github.com/olgudulger/emlakfe/internal/constants"
	"github.com/olgudulger/emlakfe/internal/contextkeys"
	"github.com/olgudulger/emlakfe/internal/core/domain"
	"github.com/olgudulger/emlakfe/internal/core/port"
)

// SaleClient implements port.SaleAPIPort against the estate backend.
type SaleClient struct {
	client *Client
}

func NewSaleClient(client *Client) *SaleClient {
	return &SaleClient{client: client}
}

func (c *SaleClient) List(ctx context.Context) ([]domain.Sale, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "SaleClient",
		"method":    "List",
	})

	body, err := c.client.do(ctx, http.MethodGet, constants.EndpointSales, nil)
	if err != nil {
		logger.Error("Failed to fetch sales, returning empty collection", err, nil)
		return []domain.Sale{}, nil
	}

	dtos, err := decodeCollection[saleDTO](body)
	if err != nil {
		logger.Error("Failed to decode sales response, returning empty collection", err, nil)
		return []domain.Sale{}, nil
	}

	sales := make([]domain.Sale, len(dtos))
	for i, dto := range dtos {
		sales[i] = dto.toDomain()
	}
	logger.Debug("Sales fetched", port.Fields{"count": len(sales)})
	return sales, nil
}

func (c *SaleClient) GetByID(ctx context.Context, id int64) (domain.Sale, error) {
	body, err := c.client.do(ctx, http.MethodGet, constants.SaleByID(id), nil)
	if err != nil {
		return domain.Sale{}, err
	}
	dto, err := decodeItem[saleDTO](body)
	if err != nil {
		return domain.Sale{}, err
	}
	return dto.toDomain(), nil
}

func (c *SaleClient) Create(ctx context.Context, s domain.Sale) (domain.Sale, error) {
	body, err := c.client.do(ctx, http.MethodPost, constants.EndpointSales, saleToWire(s))
	if err != nil {
		return domain.Sale{}, err
	}
	dto, err := decodeItem[saleDTO](body)
	if err != nil {
		return domain.Sale{}, err
	}
	return dto.toDomain(), nil
}

func (c *SaleClient) Update(ctx context.Context, s domain.Sale) (domain.Sale, error) {
	body, err := c.client.do(ctx, http.MethodPut, constants.SaleByID(s.ID), saleToWire(s))
	if err != nil {
		return domain.Sale{}, err
	}
	dto, err := decodeItem[saleDTO](body)
	if err != nil {
		return domain.Sale{}, err
	}
	return dto.toDomain(), nil
}

func (c *SaleClient) Delete(ctx context.Context, id int64) error {
	_, err := c.client.do(ctx, http.MethodDelete, constants.SaleByID(id), nil)
	return err
}

func (c *SaleClient) ListByProperty(ctx context.Context, propertyID int64) ([]domain.Sale, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "SaleClient",
		"method":    "ListByProperty",
	})

	body, err := c.client.do(ctx, http.MethodGet, constants.SalesByProperty(propertyID), nil)
	if err != nil {
		logger.Error("Failed to fetch sales for property, returning empty collection", err, nil)
		return []domain.Sale{}, nil
	}

	dtos, err := decodeCollection[saleDTO](body)
	if err != nil {
		logger.Error("Failed to decode sales response, returning empty collection", err, nil)
		return []domain.Sale{}, nil
	}

	sales := make([]domain.Sale, len(dtos))
	for i, dto := range dtos {
		sales[i] = dto.toDomain()
	}
	return sales, nil
}

// CanSell answers false on any failure; the check is advisory.
func (c *SaleClient) CanSell(ctx context.Context, propertyID int64) (bool, error) {
	body, err := c.client.do(ctx, http.MethodGet, constants.CanSellProperty(propertyID), nil)
	if err != nil {
		return false, err
	}

	result, err := decodeItem[struct {
		CanSell bool `json:"canSell"`
	}](body)
	if err != nil {
		return false, err
	}
	return result.CanSell, nil
}
