package rest

import (
	"encoding/json"
	"net/http"

	"github.com/olgudulger/emlakfe/internal/core/domain"
	usecases_port "github.com/olgudulger/emlakfe/internal/core/port/usecases_port"
)

type PropertyHandler struct {
	listUC    usecases_port.ListPropertiesUseCase
	getUC     usecases_port.GetPropertyUseCase
	saveUC    usecases_port.SavePropertyUseCase
	deleteUC  usecases_port.DeletePropertyUseCase
	statusUC  usecases_port.UpdatePropertyStatusUseCase
	historyUC usecases_port.PropertyPriceHistoryUseCase
}

func NewPropertyHandler(
	listUC usecases_port.ListPropertiesUseCase,
	getUC usecases_port.GetPropertyUseCase,
	saveUC usecases_port.SavePropertyUseCase,
	deleteUC usecases_port.DeletePropertyUseCase,
	statusUC usecases_port.UpdatePropertyStatusUseCase,
	historyUC usecases_port.PropertyPriceHistoryUseCase,
) *PropertyHandler {
	return &PropertyHandler{
		listUC:    listUC,
		getUC:     getUC,
		saveUC:    saveUC,
		deleteUC:  deleteUC,
		statusUC:  statusUC,
		historyUC: historyUC,
	}
}

func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := domain.PropertyFilters{
		Search:         q.Get("search"),
		ProvinceID:     queryInt64(r, "provinceId"),
		DistrictID:     queryInt64(r, "districtId"),
		NeighborhoodID: queryInt64(r, "neighborhoodId"),
		MinPrice:       queryFloat(r, "minPrice"),
		MaxPrice:       queryFloat(r, "maxPrice"),
		HasShareholder: queryBool(r, "hasShareholder"),
	}
	if v := queryInt(r, "propertyType"); v != nil {
		t := domain.PropertyType(*v)
		filters.PropertyType = &t
	}
	if v := queryInt(r, "status"); v != nil {
		s := domain.PropertyStatus(*v)
		filters.Status = &s
	}
	filters.Page, filters.Limit = paging(r)

	result, err := h.listUC.Execute(r.Context(), filters)
	if err != nil {
		WriteJSONError(w, http.StatusBadGateway, "Failed to list properties")
		return
	}
	RespondWithJSON(w, http.StatusOK, pageOf(result, toPropertyResponse))
}

func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "propertyID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	p, err := h.getUC.Execute(r.Context(), id)
	if err != nil {
		WriteJSONError(w, http.StatusBadGateway, "Failed to load property")
		return
	}
	RespondWithJSON(w, http.StatusOK, toPropertyResponse(p))
}

func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req propertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := req.toDomain(0)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := h.saveUC.Execute(r.Context(), p)
	if err != nil {
		WriteJSONError(w, http.StatusBadGateway, "Failed to create property")
		return
	}
	RespondWithJSON(w, http.StatusCreated, toPropertyResponse(saved))
}

func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "propertyID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	var req propertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := req.toDomain(id)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := h.saveUC.Execute(r.Context(), p)
	if err != nil {
		WriteJSONError(w, http.StatusBadGateway, "Failed to update property")
		return
	}
	RespondWithJSON(w, http.StatusOK, toPropertyResponse(saved))
}

func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "propertyID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		WriteJSONError(w, http.StatusBadGateway, "Failed to delete property")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PropertyHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "propertyID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	var req struct {
		Status int `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	status, ok := domain.NormalizePropertyStatus(req.Status)
	if !ok {
		WriteJSONError(w, http.StatusBadRequest, "Unknown status value")
		return
	}

	if err := h.statusUC.Execute(r.Context(), id, status); err != nil {
		WriteJSONError(w, http.StatusBadGateway, "Failed to update property status")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PropertyHandler) PriceHistory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "propertyID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	entries, err := h.historyUC.Execute(r.Context(), id)
	if err != nil {
		WriteJSONError(w, http.StatusBadGateway, "Failed to load price history")
		return
	}

	response := make([]priceHistoryResponse, len(entries))
	for i, e := range entries {
		response[i] = priceHistoryResponse{ID: e.ID, Price: e.Price, Date: e.Date, CreatedAt: e.CreatedAt}
	}
	RespondWithJSON(w, http.StatusOK, response)
}
