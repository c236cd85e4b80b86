package rest

import (
	"net/http"

	usecases_port "github.com/olgudulger/emlakfe/internal/core/port/usecases_port"
)

type LocationHandler struct {
	locationsUC usecases_port.ListLocationsUseCase
}

func NewLocationHandler(locationsUC usecases_port.ListLocationsUseCase) *LocationHandler {
	return &LocationHandler{locationsUC: locationsUC}
}

func (h *LocationHandler) Provinces(w http.ResponseWriter, r *http.Request) {
	provinces, err := h.locationsUC.Provinces(r.Context())
	if err != nil {
		WriteJSONError(w, http.StatusBadGateway, "Failed to load provinces")
		return
	}

	response := make([]provinceResponse, len(provinces))
	for i, p := range provinces {
		response[i] = provinceResponse{ID: p.ID, Name: p.Name}
	}
	RespondWithJSON(w, http.StatusOK, response)
}

func (h *LocationHandler) Districts(w http.ResponseWriter, r *http.Request) {
	var provinceID int64
	if v := queryInt64(r, "provinceId"); v != nil {
		provinceID = *v
	}

	districts, err := h.locationsUC.Districts(r.Context(), provinceID)
	if err != nil {
		WriteJSONError(w, http.StatusBadGateway, "Failed to load districts")
		return
	}

	response := make([]districtResponse, len(districts))
	for i, d := range districts {
		response[i] = districtResponse{ID: d.ID, ProvinceID: d.ProvinceID, Name: d.Name}
	}
	RespondWithJSON(w, http.StatusOK, response)
}

func (h *LocationHandler) Neighborhoods(w http.ResponseWriter, r *http.Request) {
	var districtID int64
	if v := queryInt64(r, "districtId"); v != nil {
		districtID = *v
	}

	neighborhoods, err := h.locationsUC.Neighborhoods(r.Context(), districtID)
	if err != nil {
		WriteJSONError(w, http.StatusBadGateway, "Failed to load neighborhoods")
		return
	}

	response := make([]neighborhoodResponse, len(neighborhoods))
	for i, n := range neighborhoods {
		response[i] = neighborhoodResponse{ID: n.ID, DistrictID: n.DistrictID, Name: n.Name}
	}
	RespondWithJSON(w, http.StatusOK, response)
}
