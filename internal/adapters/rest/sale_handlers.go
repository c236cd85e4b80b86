package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/olgudulger/emlakfe/internal/core/domain"
	usecases_port "github.com/olgudulger/emlakfe/internal/core/port/usecases_port"
)

type SaleHandler struct {
	listUC       usecases_port.ListSalesUseCase
	getUC        usecases_port.GetSaleUseCase
	saveUC       usecases_port.SaveSaleUseCase
	cancelUC     usecases_port.CancelSaleUseCase
	deleteUC     usecases_port.DeleteSaleUseCase
	statsUC      usecases_port.SaleStatisticsUseCase
	byPropertyUC usecases_port.SalesByPropertyUseCase
	canSellUC    usecases_port.CanSellPropertyUseCase
}

func NewSaleHandler(
	listUC usecases_port.ListSalesUseCase,
	getUC usecases_port.GetSaleUseCase,
	saveUC usecases_port.SaveSaleUseCase,
	cancelUC usecases_port.CancelSaleUseCase,
	deleteUC usecases_port.DeleteSaleUseCase,
	statsUC usecases_port.SaleStatisticsUseCase,
	byPropertyUC usecases_port.SalesByPropertyUseCase,
	canSellUC usecases_port.CanSellPropertyUseCase,
) *SaleHandler {
	return &SaleHandler{
		listUC:       listUC,
		getUC:        getUC,
		saveUC:       saveUC,
		cancelUC:     cancelUC,
		deleteUC:     deleteUC,
		statsUC:      statsUC,
		byPropertyUC: byPropertyUC,
		canSellUC:    canSellUC,
	}
}

func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := domain.SaleFilters{
		Search:   q.Get("search"),
		MinPrice: queryFloat(r, "minPrice"),
		MaxPrice: queryFloat(r, "maxPrice"),
	}
	if v := queryInt(r, "status"); v != nil {
		s := domain.SaleStatus(*v)
		filters.Status = &s
	}
	if v := queryInt(r, "propertyType"); v != nil {
		t := domain.PropertyType(*v)
		filters.PropertyType = &t
	}
	if v := q.Get("dateFrom"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filters.DateFrom = &t
		}
	}
	if v := q.Get("dateTo"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filters.DateTo = &t
		}
	}
	filters.Page, filters.Limit = paging(r)

	result, err := h.listUC.Execute(r.Context(), filters)
	if err != nil {
		WriteJSONError(w, http.StatusBadGateway, "Failed to list sales")
		return
	}
	RespondWithJSON(w, http.StatusOK, pageOf(result, toSaleResponse))
}

func (h *SaleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "saleID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid sale id")
		return
	}

	s, err := h.getUC.Execute(r.Context(), id)
	if err != nil {
		WriteJSONError(w, http.StatusBadGateway, "Failed to load sale")
		return
	}
	RespondWithJSON(w, http.StatusOK, toSaleResponse(s))
}

func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req saleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved, err := h.saveUC.Execute(r.Context(), req.toDomain(0))
	if err != nil {
		WriteJSONError(w, http.StatusBadGateway, "Failed to create sale")
		return
	}
	RespondWithJSON(w, http.StatusCreated, toSaleResponse(saved))
}

func (h *SaleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "saleID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid sale id")
		return
	}

	var req saleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved, err := h.saveUC.Execute(r.Context(), req.toDomain(id))
	if err != nil {
		WriteJSONError(w, http.StatusBadGateway, "Failed to update sale")
		return
	}
	RespondWithJSON(w, http.StatusOK, toSaleResponse(saved))
}

func (h *SaleHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "saleID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid sale id")
		return
	}

	saved, err := h.cancelUC.Execute(r.Context(), id)
	if err != nil {
		WriteJSONError(w, http.StatusBadGateway, "Failed to cancel sale")
		return
	}
	RespondWithJSON(w, http.StatusOK, toSaleResponse(saved))
}

func (h *SaleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "saleID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid sale id")
		return
	}

	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		WriteJSONError(w, http.StatusBadGateway, "Failed to delete sale")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SaleHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsUC.Execute(r.Context())
	if err != nil {
		WriteJSONError(w, http.StatusBadGateway, "Failed to compute sale statistics")
		return
	}
	RespondWithJSON(w, http.StatusOK, saleStatisticsResponse{
		TotalSales:       stats.TotalSales,
		TotalRevenue:     stats.TotalRevenue,
		TotalCommission:  stats.TotalCommission,
		TotalExpenses:    stats.TotalExpenses,
		TotalNetProfit:   stats.TotalNetProfit,
		AverageSalePrice: stats.AverageSalePrice,
		SalesThisMonth:   stats.SalesThisMonth,
		RevenueThisMonth: stats.RevenueThisMonth,
	})
}

func (h *SaleHandler) ByProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "propertyID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	sales, err := h.byPropertyUC.Execute(r.Context(), id)
	if err != nil {
		WriteJSONError(w, http.StatusBadGateway, "Failed to load sales for property")
		return
	}

	response := make([]saleResponse, len(sales))
	for i, s := range sales {
		response[i] = toSaleResponse(s)
	}
	RespondWithJSON(w, http.StatusOK, response)
}

func (h *SaleHandler) CanSell(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "propertyID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	ok, err := h.canSellUC.Execute(r.Context(), id)
	if err != nil {
		WriteJSONError(w, http.StatusBadGateway, "Failed to check property sellability")
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]bool{"canSell": ok})
}
