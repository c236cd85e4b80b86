package backend

import (
	"context"
	"net/http"

	"github.com/olgudulger/emlakfe/internal/constants"
	"github.com/olgudulger/emlakfe/internal/contextkeys"
	"github.com/olgudulger/emlakfe/internal/core/domain"
	"github.com/olgudulger/emlakfe/internal/core/port"
)

// CustomerClient implements port.CustomerAPIPort against the estate backend.
type CustomerClient struct {
	client *Client
}

func NewCustomerClient(client *Client) *CustomerClient {
	return &CustomerClient{client: client}
}

func (c *CustomerClient) List(ctx context.Context) ([]domain.Customer, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "CustomerClient",
		"method":    "List",
	})

	body, err := c.client.do(ctx, http.MethodGet, constants.EndpointCustomers, nil)
	if err != nil {
		logger.Error("Failed to fetch customers, returning empty collection", err, nil)
		return []domain.Customer{}, nil
	}

	dtos, err := decodeCollection[customerDTO](body)
	if err != nil {
		logger.Error("Failed to decode customers response, returning empty collection", err, nil)
		return []domain.Customer{}, nil
	}

	customers := make([]domain.Customer, len(dtos))
	for i, dto := range dtos {
		customers[i] = dto.toDomain()
	}
	logger.Debug("Customers fetched", port.Fields{"count": len(customers)})
	return customers, nil
}

func (c *CustomerClient) GetByID(ctx context.Context, id int64) (domain.Customer, error) {
	body, err := c.client.do(ctx, http.MethodGet, constants.CustomerByID(id), nil)
	if err != nil {
		return domain.Customer{}, err
	}
	dto, err := decodeItem[customerDTO](body)
	if err != nil {
		return domain.Customer{}, err
	}
	return dto.toDomain(), nil
}

func (c *CustomerClient) Create(ctx context.Context, cust domain.Customer) (domain.Customer, error) {
	body, err := c.client.do(ctx, http.MethodPost, constants.EndpointCustomers, customerToWire(cust))
	if err != nil {
		return domain.Customer{}, err
	}
	dto, err := decodeItem[customerDTO](body)
	if err != nil {
		return domain.Customer{}, err
	}
	return dto.toDomain(), nil
}

func (c *CustomerClient) Update(ctx context.Context, cust domain.Customer) (domain.Customer, error) {
	body, err := c.client.do(ctx, http.MethodPut, constants.CustomerByID(cust.ID), customerToWire(cust))
	if err != nil {
		return domain.Customer{}, err
	}
	dto, err := decodeItem[customerDTO](body)
	if err != nil {
		return domain.Customer{}, err
	}
	return dto.toDomain(), nil
}

func (c *CustomerClient) Delete(ctx context.Context, id int64) error {
	_, err := c.client.do(ctx, http.MethodDelete, constants.CustomerByID(id), nil)
	return err
}
