package service

import (
	"context"

	"github.com/ttakeda/daybook/internal/domain"
	"github.com/ttakeda/daybook/internal/schema"
)

// TodoService is the application-facing surface for todo operations.
// Create and Update validate before any store access; validation failures
// come back as *schema.ValidationError and never reach the database.
type TodoService interface {
	Create(ctx context.Context, in schema.CreateTodoInput) (*domain.Todo, error)
	GetByID(ctx context.Context, id int64) (*domain.Todo, error)
	List(ctx context.Context) ([]*domain.Todo, error)
	Update(ctx context.Context, in schema.UpdateTodoInput) (*domain.Todo, error)
	// Delete is idempotent: removing an id that no longer exists succeeds.
	Delete(ctx context.Context, id int64) error
}

// ChangeNotifier receives a signal after every successful write so live
// subscribers can be re-fed the current result set.
type ChangeNotifier interface {
	TodosChanged(ctx context.Context) error
}

// NoopNotifier satisfies ChangeNotifier for callers without subscribers.
type NoopNotifier struct{}

func (NoopNotifier) TodosChanged(ctx context.Context) error { return nil }
