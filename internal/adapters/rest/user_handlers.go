package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olgudulger/emlakfe/internal/core/domain"
	usecases_port "github.com/olgudulger/emlakfe/internal/core/port/usecases_port"
)

type UserHandler struct {
	listUC     usecases_port.ListUsersUseCase
	saveUC     usecases_port.SaveUserUseCase
	passwordUC usecases_port.ChangeUserPasswordUseCase
	roleUC     usecases_port.ChangeUserRoleUseCase
	lockUC     usecases_port.ToggleUserLockUseCase
}

func NewUserHandler(
	listUC usecases_port.ListUsersUseCase,
	saveUC usecases_port.SaveUserUseCase,
	passwordUC usecases_port.ChangeUserPasswordUseCase,
	roleUC usecases_port.ChangeUserRoleUseCase,
	lockUC usecases_port.ToggleUserLockUseCase,
) *UserHandler {
	return &UserHandler{listUC: listUC, saveUC: saveUC, passwordUC: passwordUC, roleUC: roleUC, lockUC: lockUC}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := domain.UserFilters{
		Search:   r.URL.Query().Get("search"),
		IsActive: queryBool(r, "isActive"),
	}
	if v := r.URL.Query().Get("role"); v != "" {
		filters.Role = &v
	}
	filters.Page, filters.Limit = paging(r)

	result, err := h.listUC.Execute(r.Context(), filters)
	if err != nil {
		WriteJSONError(w, http.StatusBadGateway, "Failed to list users")
		return
	}
	RespondWithJSON(w, http.StatusOK, pageOf(result, toUserResponse))
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved, err := h.saveUC.Execute(r.Context(), domain.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
	}, req.Password)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	RespondWithJSON(w, http.StatusCreated, toUserResponse(saved))
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userID")
	if id == "" {
		WriteJSONError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved, err := h.saveUC.Execute(r.Context(), domain.User{
		ID:       id,
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
	}, "")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	RespondWithJSON(w, http.StatusOK, toUserResponse(saved))
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userID")

	var req struct {
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.passwordUC.Execute(r.Context(), id, req.NewPassword); err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userID")

	var req struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved, err := h.roleUC.Execute(r.Context(), id, req.Role)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	RespondWithJSON(w, http.StatusOK, toUserResponse(saved))
}

func (h *UserHandler) ToggleLock(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userID")

	var req struct {
		Locked bool `json:"locked"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.lockUC.Execute(r.Context(), id, req.Locked); err != nil {
		WriteJSONError(w, http.StatusBadGateway, "Failed to toggle user lock")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
