package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/painel-equipe/presenca-backend-go/internal/domain/attendance"
	"github.com/painel-equipe/presenca-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	BulkSet(w http.ResponseWriter, r *http.Request)
	SetLoggedIn(w http.ResponseWriter, r *http.Request)
	Snapshot(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// BulkSet implements AttendanceHandler. The posted id set becomes the new
// truth: everyone else is logged out.
func (h *attendanceHandlerImpl) BulkSet(w http.ResponseWriter, r *http.Request) {
	var req attendance.BulkSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Requisição inválida")
		return
	}

	total, err := h.attendanceService.BulkSet(r.Context(), req.LoggedIn)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, attendance.BulkSetResponse{
		Success:       true,
		TotalLoggedIn: total,
	})
}

// SetLoggedIn implements AttendanceHandler. {val} of "1" or "true" logs the
// employee in; anything else logs them out.
func (h *attendanceHandlerImpl) SetLoggedIn(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	val := chi.URLParam(r, "val")
	loggedIn := val == "1" || val == "true"

	if err := h.attendanceService.SetLoggedIn(r.Context(), id, loggedIn); err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, attendance.SetLoggedInResponse{Success: true})
}

// Snapshot implements AttendanceHandler.
func (h *attendanceHandlerImpl) Snapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.attendanceService.Snapshot(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, snapshot)
}
