package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/painel-equipe/presenca-backend-go/internal/domain/employee"
	"github.com/painel-equipe/presenca-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

// List implements employee.Repository. Newest records first.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, nome, status, logado
		FROM employees
		ORDER BY id DESC
	`

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// GetByID implements employee.Repository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, nome, status, logado
		FROM employees
		WHERE id = ?
	`

	var emp employee.Employee
	err := q.QueryRowContext(ctx, query, id).Scan(&emp.ID, &emp.Name, &emp.Status, &emp.LoggedIn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return employee.Employee{}, employee.ErrNotFound
		}
		return employee.Employee{}, fmt.Errorf("get employee %d: %w", id, err)
	}

	return emp, nil
}

// Create implements employee.Repository. New employees start logged out.
func (e *employeeRepositoryImpl) Create(ctx context.Context, name string, status employee.Status) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (nome, status, logado)
		VALUES (?, ?, 0)
	`

	res, err := q.ExecContext(ctx, query, name, status)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("create employee: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return employee.Employee{}, fmt.Errorf("create employee: %w", err)
	}

	return e.GetByID(ctx, id)
}

// Update implements employee.Repository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, id int64, name string, status employee.Status) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET nome = ?, status = ?
		WHERE id = ?
	`

	res, err := q.ExecContext(ctx, query, name, status, id)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("update employee %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return employee.Employee{}, fmt.Errorf("update employee %d: %w", id, err)
	}
	if affected == 0 {
		return employee.Employee{}, employee.ErrNotFound
	}

	return e.GetByID(ctx, id)
}

// Delete implements employee.Repository. Deleting an absent id is a no-op.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, e.db)

	if _, err := q.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete employee %d: %w", id, err)
	}

	return nil
}

// SetLoggedIn implements employee.Repository.
func (e *employeeRepositoryImpl) SetLoggedIn(ctx context.Context, id int64, loggedIn bool) error {
	q := GetQuerier(ctx, e.db)

	res, err := q.ExecContext(ctx, `UPDATE employees SET logado = ? WHERE id = ?`, loggedIn, id)
	if err != nil {
		return fmt.Errorf("set logged-in flag for employee %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set logged-in flag for employee %d: %w", id, err)
	}
	if affected == 0 {
		return employee.ErrNotFound
	}

	return nil
}

// MarkLoggedIn implements employee.Repository. Ids without a matching row
// are silently skipped.
func (e *employeeRepositoryImpl) MarkLoggedIn(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	q := GetQuerier(ctx, e.db)

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	query := fmt.Sprintf(`UPDATE employees SET logado = 1 WHERE id IN (%s)`, placeholders)
	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("mark employees logged in: %w", err)
	}

	return nil
}

// ResetLoggedIn implements employee.Repository.
func (e *employeeRepositoryImpl) ResetLoggedIn(ctx context.Context) error {
	q := GetQuerier(ctx, e.db)

	if _, err := q.ExecContext(ctx, `UPDATE employees SET logado = 0`); err != nil {
		return fmt.Errorf("reset logged-in flags: %w", err)
	}

	return nil
}

// CountLoggedIn implements employee.Repository.
func (e *employeeRepositoryImpl) CountLoggedIn(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, e.db)

	var count int
	err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees WHERE logado = 1`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count logged-in employees: %w", err)
	}

	return count, nil
}

// ListLoggedIn implements employee.Repository. Newest records first.
func (e *employeeRepositoryImpl) ListLoggedIn(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, nome, status, logado
		FROM employees
		WHERE logado = 1
		ORDER BY id DESC
	`

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list logged-in employees: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

func scanEmployees(rows *sql.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Status, &emp.LoggedIn); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
