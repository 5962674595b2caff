package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/painel-equipe/presenca-backend-go/internal/domain/employee"
	"github.com/painel-equipe/presenca-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		Error(w, http.StatusBadRequest, validationErrs.Error())
		return
	}

	switch {
	case errors.Is(err, employee.ErrNotFound):
		Error(w, http.StatusNotFound, "Colaborador não encontrado")

	// Store failures are internal; log them, never leak driver details.
	default:
		slog.Error("Request failed", "error", err)
		Error(w, http.StatusInternalServerError, "Erro interno do servidor")
	}
}
