package export

import (
	"context"
	"strings"

	"github.com/painel-equipe/presenca-backend-go/internal/domain/employee"
)

// Service renders the full roster as CSV text.
type Service interface {
	CSV(ctx context.Context) ([]byte, error)
}

type exportServiceImpl struct {
	employeeRepo employee.Repository
}

func NewExportService(employeeRepo employee.Repository) Service {
	return &exportServiceImpl{employeeRepo: employeeRepo}
}

// CSV implements Service. Canonical form: plain header `nome,status,logado`,
// then one fully double-quoted row per employee in roster order, with the
// flag rendered as 1/0 and a trailing newline.
func (s *exportServiceImpl) CSV(ctx context.Context) ([]byte, error) {
	list, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("nome,status,logado\n")

	for _, emp := range list {
		flag := "0"
		if emp.LoggedIn {
			flag = "1"
		}
		b.WriteString(quote(emp.Name))
		b.WriteByte(',')
		b.WriteString(quote(string(emp.Status)))
		b.WriteByte(',')
		b.WriteString(quote(flag))
		b.WriteByte('\n')
	}

	return []byte(b.String()), nil
}

// quote wraps s in double quotes, doubling any embedded quotes.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
