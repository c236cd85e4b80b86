package rest

import (
	"encoding/json"
	"net/http"

	"github.com/olgudulger/emlakfe/internal/core/domain"
	usecases_port "github.com/olgudulger/emlakfe/internal/core/port/usecases_port"
)

type CustomerHandler struct {
	listUC   usecases_port.ListCustomersUseCase
	getUC    usecases_port.GetCustomerUseCase
	saveUC   usecases_port.SaveCustomerUseCase
	deleteUC usecases_port.DeleteCustomerUseCase
}

func NewCustomerHandler(
	listUC usecases_port.ListCustomersUseCase,
	getUC usecases_port.GetCustomerUseCase,
	saveUC usecases_port.SaveCustomerUseCase,
	deleteUC usecases_port.DeleteCustomerUseCase,
) *CustomerHandler {
	return &CustomerHandler{listUC: listUC, getUC: getUC, saveUC: saveUC, deleteUC: deleteUC}
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := domain.CustomerFilters{
		Search:    r.URL.Query().Get("search"),
		MinBudget: queryFloat(r, "minBudget"),
		MaxBudget: queryFloat(r, "maxBudget"),
	}
	if v := queryInt(r, "customerType"); v != nil {
		t := domain.CustomerType(*v)
		filters.CustomerType = &t
	}
	if v := queryInt(r, "interestType"); v != nil {
		t := domain.InterestType(*v)
		filters.InterestType = &t
	}
	filters.Page, filters.Limit = paging(r)

	result, err := h.listUC.Execute(r.Context(), filters)
	if err != nil {
		WriteJSONError(w, http.StatusBadGateway, "Failed to list customers")
		return
	}
	RespondWithJSON(w, http.StatusOK, pageOf(result, toCustomerResponse))
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "customerID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid customer id")
		return
	}

	c, err := h.getUC.Execute(r.Context(), id)
	if err != nil {
		WriteJSONError(w, http.StatusBadGateway, "Failed to load customer")
		return
	}
	RespondWithJSON(w, http.StatusOK, toCustomerResponse(c))
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved, err := h.saveUC.Execute(r.Context(), req.toDomain(0))
	if err != nil {
		WriteJSONError(w, http.StatusBadGateway, "Failed to create customer")
		return
	}
	RespondWithJSON(w, http.StatusCreated, toCustomerResponse(saved))
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "customerID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid customer id")
		return
	}

	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved, err := h.saveUC.Execute(r.Context(), req.toDomain(id))
	if err != nil {
		WriteJSONError(w, http.StatusBadGateway, "Failed to update customer")
		return
	}
	RespondWithJSON(w, http.StatusOK, toCustomerResponse(saved))
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "customerID")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid customer id")
		return
	}

	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		WriteJSONError(w, http.StatusBadGateway, "Failed to delete customer")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
