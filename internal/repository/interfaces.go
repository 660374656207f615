package repository

import (
	"context"

	"github.com/ttakeda/daybook/internal/domain"
)

// TodoRepo is the record-store contract for todos. Update and delete report
// the affected row count so the caller decides how to treat a missing target:
// the service maps zero affected rows to ErrNotFound on update but treats it
// as a silent no-op on delete.
type TodoRepo interface {
	// Insert persists a new todo and fills in the store-assigned ID.
	Insert(ctx context.Context, t *domain.Todo) error
	GetByID(ctx context.Context, id int64) (*domain.Todo, error)
	// List returns the full current result set ordered by creation time.
	List(ctx context.Context) ([]*domain.Todo, error)
	UpdateByID(ctx context.Context, t *domain.Todo) (int64, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
}
