package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/painel-equipe/presenca-backend-go/internal/domain/employee"
	"github.com/painel-equipe/presenca-backend-go/internal/handler/http/response"
)

type RosterHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type rosterHandlerImpl struct {
	rosterService employee.Service
}

func NewRosterHandler(rosterService employee.Service) RosterHandler {
	return &rosterHandlerImpl{rosterService: rosterService}
}

// List implements RosterHandler. The optional ?q= narrows by name.
func (h *rosterHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	list, err := h.rosterService.List(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, list)
}

// Create implements RosterHandler.
func (h *rosterHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Requisição inválida")
		return
	}

	created, err := h.rosterService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, created)
}

// Update implements RosterHandler.
func (h *rosterHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req employee.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Requisição inválida")
		return
	}

	updated, err := h.rosterService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, updated)
}

// Delete implements RosterHandler. Idempotent.
func (h *rosterHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.rosterService.Remove(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}

// parseID reads the {id} route parameter, answering 400 on a non-numeric
// value.
func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido")
		return 0, false
	}
	return id, true
}
