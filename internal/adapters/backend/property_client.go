package backend

import (
	"context"
	"net/http"

	"github.com/olgudulger/emlakfe/internal/constants"
	"github.com/olgudulger/emlakfe/internal/contextkeys"
	"github.com/olgudulger/emlakfe/internal/core/domain"
	"github.com/olgudulger/emlakfe/internal/core/port"
)

// PropertyClient implements port.PropertyAPIPort against the estate backend.
type PropertyClient struct {
	client *Client
}

func NewPropertyClient(client *Client) *PropertyClient {
	return &PropertyClient{client: client}
}

// List recovers locally: a failing read yields an empty collection, not an
// error, so one broken endpoint never blocks the rest of the screen.
func (c *PropertyClient) List(ctx context.Context) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PropertyClient",
		"method":    "List",
	})

	body, err := c.client.do(ctx, http.MethodGet, constants.EndpointProperties, nil)
	if err != nil {
		logger.Error("Failed to fetch properties, returning empty collection", err, nil)
		return []domain.Property{}, nil
	}

	dtos, err := decodeCollection[propertyDTO](body)
	if err != nil {
		logger.Error("Failed to decode properties response, returning empty collection", err, nil)
		return []domain.Property{}, nil
	}

	properties := make([]domain.Property, len(dtos))
	for i, dto := range dtos {
		properties[i] = dto.toDomain(logger)
	}
	logger.Debug("Properties fetched", port.Fields{"count": len(properties)})
	return properties, nil
}

func (c *PropertyClient) GetByID(ctx context.Context, id int64) (domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PropertyClient",
		"method":    "GetByID",
	})

	body, err := c.client.do(ctx, http.MethodGet, constants.PropertyByID(id), nil)
	if err != nil {
		return domain.Property{}, err
	}
	dto, err := decodeItem[propertyDTO](body)
	if err != nil {
		return domain.Property{}, err
	}
	return dto.toDomain(logger), nil
}

func (c *PropertyClient) Create(ctx context.Context, p domain.Property) (domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PropertyClient",
		"method":    "Create",
	})

	body, err := c.client.do(ctx, http.MethodPost, constants.EndpointProperties, propertyToWire(p))
	if err != nil {
		return domain.Property{}, err
	}
	dto, err := decodeItem[propertyDTO](body)
	if err != nil {
		return domain.Property{}, err
	}
	return dto.toDomain(logger), nil
}

func (c *PropertyClient) Update(ctx context.Context, p domain.Property) (domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PropertyClient",
		"method":    "Update",
	})

	body, err := c.client.do(ctx, http.MethodPut, constants.PropertyByID(p.ID), propertyToWire(p))
	if err != nil {
		return domain.Property{}, err
	}
	dto, err := decodeItem[propertyDTO](body)
	if err != nil {
		return domain.Property{}, err
	}
	return dto.toDomain(logger), nil
}

func (c *PropertyClient) Delete(ctx context.Context, id int64) error {
	_, err := c.client.do(ctx, http.MethodDelete, constants.PropertyByID(id), nil)
	return err
}

// UpdateStatus tries the dedicated status endpoint first and falls back to a
// full update when the backend does not expose it.
func (c *PropertyClient) UpdateStatus(ctx context.Context, id int64, status domain.PropertyStatus) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PropertyClient",
		"method":    "UpdateStatus",
	})

	payload := map[string]int{"status": status.WireValue()}
	if _, err := c.client.do(ctx, http.MethodPatch, constants.PropertyStatus(id), payload); err == nil {
		return nil
	}

	logger.Debug("Status endpoint failed, falling back to full property update", port.Fields{"property_id": id})
	current, err := c.GetByID(ctx, id)
	if err != nil {
		return err
	}
	current.Status = status
	_, err = c.Update(ctx, current)
	return err
}

func (c *PropertyClient) PriceHistory(ctx context.Context, id int64) ([]domain.PriceHistoryEntry, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PropertyClient",
		"method":    "PriceHistory",
	})

	body, err := c.client.do(ctx, http.MethodGet, constants.PropertyPriceHistory(id), nil)
	if err != nil {
		logger.Error("Failed to fetch price history, returning empty collection", err, nil)
		return []domain.PriceHistoryEntry{}, nil
	}

	dtos, err := decodeCollection[priceHistoryDTO](body)
	if err != nil {
		logger.Error("Failed to decode price history, returning empty collection", err, nil)
		return []domain.PriceHistoryEntry{}, nil
	}

	entries := make([]domain.PriceHistoryEntry, len(dtos))
	for i, dto := range dtos {
		entries[i] = dto.toDomain()
	}
	return entries, nil
}
