package employee

import "context"

type Repository interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	Create(ctx context.Context, name string, status Status) (Employee, error)
	Update(ctx context.Context, id int64, name string, status Status) (Employee, error)
	Delete(ctx context.Context, id int64) error

	// Attendance flag operations. MarkLoggedIn and ResetLoggedIn join an
	// ambient transaction when the context carries one.
	SetLoggedIn(ctx context.Context, id int64, loggedIn bool) error
	MarkLoggedIn(ctx context.Context, ids []int64) error
	ResetLoggedIn(ctx context.Context) error
	CountLoggedIn(ctx context.Context) (int, error)
	ListLoggedIn(ctx context.Context) ([]Employee, error)
}
