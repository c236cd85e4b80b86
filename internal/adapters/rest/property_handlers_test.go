package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olgudulger/emlakfe/internal/core/domain"
	"github.com/olgudulger/emlakfe/internal/core/query"
)

type fakeListProperties struct {
	gotFilters domain.PropertyFilters
	result     query.Result[domain.Property]
}

func (f *fakeListProperties) Execute(ctx context.Context, filters domain.PropertyFilters) (query.Result[domain.Property], error) {
	f.gotFilters = filters
	return f.result, nil
}

type fakeSaveProperty struct {
	got domain.Property
}

func (f *fakeSaveProperty) Execute(ctx context.Context, p domain.Property) (domain.Property, error) {
	f.got = p
	p.ID = 42
	return p, nil
}

func TestPropertyListParsesFilters(t *testing.T) {
	listUC := &fakeListProperties{result: query.Result[domain.Property]{
		Data:       []domain.Property{{ID: 1, Status: domain.StatusReserved, TypeSpecific: &domain.LandAttributes{TotalPrice: 100}}},
		Total:      1,
		TotalPages: 1,
	}}
	handler := NewPropertyHandler(listUC, nil, nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/properties?search=arsa&propertyType=0&status=3&provinceId=42&minPrice=50000&page=2&limit=5", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "arsa", listUC.gotFilters.Search)
	require.NotNil(t, listUC.gotFilters.PropertyType)
	assert.Equal(t, domain.TypeLand, *listUC.gotFilters.PropertyType)
	require.NotNil(t, listUC.gotFilters.Status)
	assert.Equal(t, domain.StatusReserved, *listUC.gotFilters.Status)
	require.NotNil(t, listUC.gotFilters.ProvinceID)
	assert.Equal(t, int64(42), *listUC.gotFilters.ProvinceID)
	require.NotNil(t, listUC.gotFilters.MinPrice)
	assert.Equal(t, 50_000.0, *listUC.gotFilters.MinPrice)
	assert.Equal(t, 2, listUC.gotFilters.Page)
	assert.Equal(t, 5, listUC.gotFilters.Limit)

	var body struct {
		Data []struct {
			StatusName string  `json:"statusName"`
			TotalPrice float64 `json:"totalPrice"`
		} `json:"data"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Total)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Rezerv", body.Data[0].StatusName)
	assert.Equal(t, 100.0, body.Data[0].TotalPrice)
}

func TestPropertyCreateCoercesVariant(t *testing.T) {
	saveUC := &fakeSaveProperty{}
	handler := NewPropertyHandler(nil, nil, saveUC, nil, nil, nil)

	payload := `{
		"title": "Merkez arsa",
		"propertyType": 0,
		"status": 0,
		"typeSpecificProperties": {
			"TotalArea": "500",
			"PricePerSquareMeter": 1200,
			"ZoningStatus": "Var",
			"Floor": "3"
		}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/properties", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	land, ok := saveUC.got.TypeSpecific.(*domain.LandAttributes)
	require.True(t, ok)
	assert.Equal(t, 500.0, land.TotalArea)
	assert.Equal(t, 600_000.0, land.TotalPrice)
	assert.Equal(t, domain.EnumValue{Ordinal: 0}, land.ZoningStatus)
}

func TestPropertyCreateRejectsBadBody(t *testing.T) {
	handler := NewPropertyHandler(nil, nil, &fakeSaveProperty{}, nil, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/properties", strings.NewReader(`{`))
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
