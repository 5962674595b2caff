package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/painel-equipe/presenca-backend-go/internal/domain/vacation"
	"github.com/painel-equipe/presenca-backend-go/internal/pkg/database"
)

type vacationRepositoryImpl struct {
	db *database.DB
}

func NewVacationRepository(db *database.DB) vacation.Repository {
	return &vacationRepositoryImpl{db: db}
}

// List implements vacation.Repository. Ordered by month, then name.
func (v *vacationRepositoryImpl) List(ctx context.Context) ([]vacation.Entry, error) {
	q := GetQuerier(ctx, v.db)

	query := `
		SELECT id, nome, mes
		FROM vacations
		ORDER BY mes ASC, nome ASC
	`

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vacations: %w", err)
	}
	defer rows.Close()

	var entries []vacation.Entry
	for rows.Next() {
		var entry vacation.Entry
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.Month); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Create implements vacation.Repository.
func (v *vacationRepositoryImpl) Create(ctx context.Context, name string, month int) (vacation.Entry, error) {
	q := GetQuerier(ctx, v.db)

	res, err := q.ExecContext(ctx, `INSERT INTO vacations (nome, mes) VALUES (?, ?)`, name, month)
	if err != nil {
		return vacation.Entry{}, fmt.Errorf("create vacation entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return vacation.Entry{}, fmt.Errorf("create vacation entry: %w", err)
	}

	var entry vacation.Entry
	err = q.QueryRowContext(ctx, `SELECT id, nome, mes FROM vacations WHERE id = ?`, id).
		Scan(&entry.ID, &entry.Name, &entry.Month)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return vacation.Entry{}, fmt.Errorf("create vacation entry: inserted row %d not found", id)
		}
		return vacation.Entry{}, fmt.Errorf("create vacation entry: %w", err)
	}

	return entry, nil
}

// Delete implements vacation.Repository. Deleting an absent id is a no-op.
func (v *vacationRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, v.db)

	if _, err := q.ExecContext(ctx, `DELETE FROM vacations WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete vacation entry %d: %w", id, err)
	}

	return nil
}
