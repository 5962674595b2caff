package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/painel-equipe/presenca-backend-go/internal/domain/attendance"
	"github.com/painel-equipe/presenca-backend-go/internal/domain/employee"
	"github.com/painel-equipe/presenca-backend-go/internal/domain/vacation"
	"github.com/painel-equipe/presenca-backend-go/internal/pkg/clock"
	"github.com/painel-equipe/presenca-backend-go/internal/pkg/database"
	"github.com/painel-equipe/presenca-backend-go/internal/repository/sqlite"
	attendanceService "github.com/painel-equipe/presenca-backend-go/internal/service/attendance"
	"github.com/painel-equipe/presenca-backend-go/internal/service/export"
	"github.com/painel-equipe/presenca-backend-go/internal/service/roster"
	vacationService "github.com/painel-equipe/presenca-backend-go/internal/service/vacation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(context.Background()))
	t.Cleanup(func() { _ = db.Close() })

	employeeRepo := sqlite.NewEmployeeRepository(db)
	vacationRepo := sqlite.NewVacationRepository(db)

	return NewRouter(
		"test",
		NewRosterHandler(roster.NewRosterService(employeeRepo)),
		NewAttendanceHandler(attendanceService.NewAttendanceService(db, employeeRepo, clock.System())),
		NewVacationHandler(vacationService.NewVacationService(vacationRepo)),
		NewExportHandler(export.NewExportService(employeeRepo)),
	)
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func createEmployee(t *testing.T, router http.Handler, name, status string) employee.Employee {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/collaboradores", employee.CreateRequest{Name: name, Status: status})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created employee.Employee
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	return created
}

func TestAPI_CreateAndListEmployees(t *testing.T) {
	router := newTestRouter(t)

	created := createEmployee(t, router, "Ana", "sick")
	assert.Equal(t, "Ana", created.Name)
	assert.Equal(t, employee.StatusSick, created.Status)
	assert.False(t, created.LoggedIn)

	rec := doJSON(t, router, http.MethodGet, "/api/collaboradores", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []employee.Employee
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestAPI_CreateEmployee_EmptyName(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/collaboradores", employee.CreateRequest{Name: "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestAPI_SearchEmployees(t *testing.T) {
	router := newTestRouter(t)

	createEmployee(t, router, "Ana Souza", "")
	createEmployee(t, router, "Bruno Lima", "")

	rec := doJSON(t, router, http.MethodGet, "/api/collaboradores?q=lima", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []employee.Employee
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Bruno Lima", list[0].Name)
}

func TestAPI_UpdateEmployee(t *testing.T) {
	router := newTestRouter(t)

	created := createEmployee(t, router, "Ana", "on_leave")

	rec := doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/collaboradores/%d", created.ID),
		employee.UpdateRequest{Name: "Ana Paula"})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated employee.Employee
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Ana Paula", updated.Name)
	assert.Equal(t, employee.StatusOnLeave, updated.Status)
}

func TestAPI_UpdateEmployee_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/api/collaboradores/999", employee.UpdateRequest{Name: "Ana"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_UpdateEmployee_InvalidID(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/api/collaboradores/abc", employee.UpdateRequest{Name: "Ana"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_DeleteEmployee(t *testing.T) {
	router := newTestRouter(t)

	created := createEmployee(t, router, "Ana", "")

	rec := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/collaboradores/%d", created.ID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Deleting again is still a 204.
	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/collaboradores/%d", created.ID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAPI_BulkSetAndSnapshot(t *testing.T) {
	router := newTestRouter(t)

	ana := createEmployee(t, router, "Ana", "")
	bruno := createEmployee(t, router, "Bruno", "")
	carla := createEmployee(t, router, "Carla", "")

	rec := doJSON(t, router, http.MethodPost, "/api/status",
		attendance.BulkSetRequest{LoggedIn: []int64{ana.ID, carla.ID}})
	require.Equal(t, http.StatusOK, rec.Code)

	var bulkResp attendance.BulkSetResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bulkResp))
	assert.True(t, bulkResp.Success)
	assert.Equal(t, 2, bulkResp.TotalLoggedIn)

	rec = doJSON(t, router, http.MethodGet, "/api/ativos", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var snapshot attendance.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Equal(t, 2, snapshot.Total)

	ids := make([]int64, 0, len(snapshot.List))
	for _, emp := range snapshot.List {
		ids = append(ids, emp.ID)
	}
	assert.ElementsMatch(t, []int64{ana.ID, carla.ID}, ids)
	assert.NotContains(t, ids, bruno.ID)
}

func TestAPI_SetLoggedIn(t *testing.T) {
	router := newTestRouter(t)

	ana := createEmployee(t, router, "Ana", "")

	rec := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/logado/%d/1", ana.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)

	rec = doJSON(t, router, http.MethodGet, "/api/ativos", nil)
	var snapshot attendance.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Equal(t, 1, snapshot.Total)

	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/logado/%d/0", ana.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/ativos", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Equal(t, 0, snapshot.Total)
}

func TestAPI_SetLoggedIn_UnknownEmployee(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/logado/999/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_Vacations(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/ferias", vacation.CreateRequest{Name: "Ana", Month: 7})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created vacation.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 7, created.Month)

	rec = doJSON(t, router, http.MethodPost, "/api/ferias", vacation.CreateRequest{Name: "Bruno", Month: 13})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/ferias", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []vacation.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/ferias/%d", created.ID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAPI_ExportCSV(t *testing.T) {
	router := newTestRouter(t)

	ana := createEmployee(t, router, "Ana", "")
	rec := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/logado/%d/1", ana.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/export-all.csv", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="colaboradores.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "nome,status,logado\n\"Ana\",\"active\",\"1\"\n", rec.Body.String())
}
