package vacation

import "context"

type Repository interface {
	List(ctx context.Context) ([]Entry, error)
	Create(ctx context.Context, name string, month int) (Entry, error)
	Delete(ctx context.Context, id int64) error
}
