package employee

import "context"

// Service defines business logic for roster operations.
type Service interface {
	// List returns the roster, newest first. A non-empty query narrows it
	// to names containing the query as a case-insensitive substring; an
	// empty query returns the whole roster.
	List(ctx context.Context, query string) ([]Employee, error)

	// Create adds an employee. The name is trimmed and must be non-empty;
	// an absent or unknown status falls back to active.
	Create(ctx context.Context, req CreateRequest) (Employee, error)

	// Update renames and optionally re-statuses an employee. An omitted
	// status keeps the stored one.
	Update(ctx context.Context, id int64, req UpdateRequest) (Employee, error)

	// Remove deletes an employee. Removing an absent id is not an error.
	Remove(ctx context.Context, id int64) error
}
