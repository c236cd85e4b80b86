package usecase

import (
	"context"

	"github.com/olgudulger/emlakfe/internal/contextkeys"
	"github.com/olgudulger/emlakfe/internal/core/domain"
	"github.com/olgudulger/emlakfe/internal/core/port"
)

type ListLocationsUseCase struct {
	provinces     port.CollectionPort[domain.Province]
	districts     port.CollectionPort[domain.District]
	neighborhoods port.CollectionPort[domain.Neighborhood]
}

func NewListLocationsUseCase(
	provinces port.CollectionPort[domain.Province],
	districts port.CollectionPort[domain.District],
	neighborhoods port.CollectionPort[domain.Neighborhood],
) *ListLocationsUseCase {
	return &ListLocationsUseCase{provinces: provinces, districts: districts, neighborhoods: neighborhoods}
}

func (uc *ListLocationsUseCase) Provinces(ctx context.Context) ([]domain.Province, error) {
	return uc.provinces.GetAll(ctx)
}

// Districts narrows to one province when provinceID is nonzero.
func (uc *ListLocationsUseCase) Districts(ctx context.Context, provinceID int64) ([]domain.District, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "ListLocations",
	})

	all, err := uc.districts.GetAll(ctx)
	if err != nil {
		logger.Error("Failed to load districts", err, nil)
		return nil, err
	}
	if provinceID == 0 {
		return all, nil
	}
	filtered := []domain.District{}
	for _, d := range all {
		if d.ProvinceID == provinceID {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

// Neighborhoods narrows to one district when districtID is nonzero.
func (uc *ListLocationsUseCase) Neighborhoods(ctx context.Context, districtID int64) ([]domain.Neighborhood, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "ListLocations",
	})

	all, err := uc.neighborhoods.GetAll(ctx)
	if err != nil {
		logger.Error("Failed to load neighborhoods", err, nil)
		return nil, err
	}
	if districtID == 0 {
		return all, nil
	}
	filtered := []domain.Neighborhood{}
	for _, n := range all {
		if n.DistrictID == districtID {
			filtered = append(filtered, n)
		}
	}
	return filtered, nil
}
