package vacation

import (
	"context"
	"strings"

	"github.com/painel-equipe/presenca-backend-go/internal/domain/vacation"
	"github.com/painel-equipe/presenca-backend-go/internal/pkg/validator"
)

type vacationServiceImpl struct {
	vacationRepo vacation.Repository
}

func NewVacationService(vacationRepo vacation.Repository) vacation.Service {
	return &vacationServiceImpl{vacationRepo: vacationRepo}
}

// List implements vacation.Service.
func (s *vacationServiceImpl) List(ctx context.Context) ([]vacation.Entry, error) {
	entries, err := s.vacationRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []vacation.Entry{}
	}
	return entries, nil
}

// Create implements vacation.Service. Validation happens before the store
// is touched; a rejected request never persists anything.
func (s *vacationServiceImpl) Create(ctx context.Context, req vacation.CreateRequest) (vacation.Entry, error) {
	var errs validator.ValidationErrors

	name := strings.TrimSpace(req.Name)
	if validator.IsEmpty(name) {
		errs = append(errs, validator.ValidationError{Field: "nome", Message: "Nome é obrigatório"})
	}
	if !validator.IsValidMonth(req.Month) {
		errs = append(errs, validator.ValidationError{Field: "mes", Message: "Mês deve estar entre 1 e 12"})
	}
	if len(errs) > 0 {
		return vacation.Entry{}, errs
	}

	return s.vacationRepo.Create(ctx, name, req.Month)
}

// Remove implements vacation.Service.
func (s *vacationServiceImpl) Remove(ctx context.Context, id int64) error {
	return s.vacationRepo.Delete(ctx, id)
}
