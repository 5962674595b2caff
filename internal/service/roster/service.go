package roster

import (
	"context"
	"strings"

	"github.com/painel-equipe/presenca-backend-go/internal/domain/employee"
	"github.com/painel-equipe/presenca-backend-go/internal/pkg/validator"
)

type rosterServiceImpl struct {
	employeeRepo employee.Repository
}

func NewRosterService(employeeRepo employee.Repository) employee.Service {
	return &rosterServiceImpl{employeeRepo: employeeRepo}
}

// List implements employee.Service. The filter runs over the fetched list
// rather than in SQL so the case folding also covers accented names.
func (s *rosterServiceImpl) List(ctx context.Context, query string) ([]employee.Employee, error) {
	list, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	results := make([]employee.Employee, 0, len(list))
	for _, emp := range list {
		if query == "" || strings.Contains(strings.ToLower(emp.Name), query) {
			results = append(results, emp)
		}
	}

	return results, nil
}

// Create implements employee.Service.
func (s *rosterServiceImpl) Create(ctx context.Context, req employee.CreateRequest) (employee.Employee, error) {
	name := strings.TrimSpace(req.Name)
	if validator.IsEmpty(name) {
		return employee.Employee{}, validator.ValidationErrors{
			{Field: "nome", Message: "Nome é obrigatório"},
		}
	}

	status := employee.Status(req.Status)
	if !status.Valid() {
		status = employee.StatusActive
	}

	return s.employeeRepo.Create(ctx, name, status)
}

// Update implements employee.Service.
func (s *rosterServiceImpl) Update(ctx context.Context, id int64, req employee.UpdateRequest) (employee.Employee, error) {
	name := strings.TrimSpace(req.Name)
	if validator.IsEmpty(name) {
		return employee.Employee{}, validator.ValidationErrors{
			{Field: "nome", Message: "Nome é obrigatório"},
		}
	}

	existing, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}

	// An omitted or unknown status keeps the stored one.
	status := existing.Status
	if req.Status != "" && employee.Status(req.Status).Valid() {
		status = employee.Status(req.Status)
	}

	return s.employeeRepo.Update(ctx, id, name, status)
}

// Remove implements employee.Service.
func (s *rosterServiceImpl) Remove(ctx context.Context, id int64) error {
	return s.employeeRepo.Delete(ctx, id)
}
