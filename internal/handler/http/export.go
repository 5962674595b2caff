package http

import (
	"net/http"

	"github.com/painel-equipe/presenca-backend-go/internal/handler/http/response"
	"github.com/painel-equipe/presenca-backend-go/internal/service/export"
)

type ExportHandler interface {
	ExportCSV(w http.ResponseWriter, r *http.Request)
}

type exportHandlerImpl struct {
	exportService export.Service
}

func NewExportHandler(exportService export.Service) ExportHandler {
	return &exportHandlerImpl{exportService: exportService}
}

// ExportCSV implements ExportHandler. Served as a download so the browser
// saves it instead of rendering it.
func (h *exportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	data, err := h.exportService.CSV(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="colaboradores.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
