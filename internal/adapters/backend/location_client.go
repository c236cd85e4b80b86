package backend

import (
	"context"
	"net/http"

	"github.com/olgudulger/emlakfe/internal/constants"
	"github.com/olgudulger/emlakfe/internal/contextkeys"
	"github.com/olgudulger/emlakfe/internal/core/domain"
	"github.com/olgudulger/emlakfe/internal/core/port"
)

// LocationClient implements port.LocationAPIPort. The location tree is plain
// reference data; all three levels are fetched whole and cached.
type LocationClient struct {
	client *Client
}

func NewLocationClient(client *Client) *LocationClient {
	return &LocationClient{client: client}
}

func (c *LocationClient) Provinces(ctx context.Context) ([]domain.Province, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "LocationClient",
		"method":    "Provinces",
	})

	body, err := c.client.do(ctx, http.MethodGet, constants.EndpointProvinces, nil)
	if err != nil {
		logger.Error("Failed to fetch provinces, returning empty collection", err, nil)
		return []domain.Province{}, nil
	}

	dtos, err := decodeCollection[provinceDTO](body)
	if err != nil {
		logger.Error("Failed to decode provinces response, returning empty collection", err, nil)
		return []domain.Province{}, nil
	}

	provinces := make([]domain.Province, len(dtos))
	for i, dto := range dtos {
		provinces[i] = domain.Province{ID: dto.ID, Name: dto.Name}
	}
	return provinces, nil
}

func (c *LocationClient) Districts(ctx context.Context) ([]domain.District, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "LocationClient",
		"method":    "Districts",
	})

	body, err := c.client.do(ctx, http.MethodGet, constants.EndpointDistricts, nil)
	if err != nil {
		logger.Error("Failed to fetch districts, returning empty collection", err, nil)
		return []domain.District{}, nil
	}

	dtos, err := decodeCollection[districtDTO](body)
	if err != nil {
		logger.Error("Failed to decode districts response, returning empty collection", err, nil)
		return []domain.District{}, nil
	}

	districts := make([]domain.District, len(dtos))
	for i, dto := range dtos {
		districts[i] = domain.District{ID: dto.ID, ProvinceID: dto.ProvinceID, Name: dto.Name}
	}
	return districts, nil
}

func (c *LocationClient) Neighborhoods(ctx context.Context) ([]domain.Neighborhood, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "LocationClient",
		"method":    "Neighborhoods",
	})

	body, err := c.client.do(ctx, http.MethodGet, constants.EndpointNeighborhoods, nil)
	if err != nil {
		logger.Error("Failed to fetch neighborhoods, returning empty collection", err, nil)
		return []domain.Neighborhood{}, nil
	}

	dtos, err := decodeCollection[neighborhoodDTO](body)
	if err != nil {
		logger.Error("Failed to decode neighborhoods response, returning empty collection", err, nil)
		return []domain.Neighborhood{}, nil
	}

	neighborhoods := make([]domain.Neighborhood, len(dtos))
	for i, dto := range dtos {
		neighborhoods[i] = domain.Neighborhood{ID: dto.ID, DistrictID: dto.DistrictID, Name: dto.Name}
	}
	return neighborhoods, nil
}
