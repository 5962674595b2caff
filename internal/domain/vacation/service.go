package vacation

import "context"

// Service defines business logic for vacation entries.
type Service interface {
	// List returns all entries ordered by month ascending, then name.
	List(ctx context.Context) ([]Entry, error)

	// Create adds an entry. The name is trimmed and must be non-empty;
	// the month must be in 1-12.
	Create(ctx context.Context, req CreateRequest) (Entry, error)

	// Remove deletes an entry. Removing an absent id is not an error.
	Remove(ctx context.Context, id int64) error
}
