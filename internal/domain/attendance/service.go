package attendance

import (
	"context"

	"github.com/painel-equipe/presenca-backend-go/internal/domain/employee"
)

// Service is the single source of truth for "who is logged in today".
type Service interface {
	// SetLoggedIn sets one employee's attendance flag. Returns
	// employee.ErrNotFound for an unknown id.
	SetLoggedIn(ctx context.Context, id int64, loggedIn bool) error

	// BulkSet overwrites the whole roster's flags so that exactly the
	// given ids are logged in. Ids not present in the roster are ignored.
	// Returns the logged-in total after the write.
	BulkSet(ctx context.Context, ids []int64) (int, error)

	Count(ctx context.Context) (int, error)
	List(ctx context.Context) ([]employee.Employee, error)
	Snapshot(ctx context.Context) (Snapshot, error)

	// DailyReset clears every attendance flag. Idempotent.
	DailyReset(ctx context.Context) error

	// RunRolloverCheck advances the controller's last-reset date marker
	// and clears all flags when the local calendar day has changed since
	// the previous check. The first check after boot only establishes the
	// baseline date.
	RunRolloverCheck(ctx context.Context) error
}
