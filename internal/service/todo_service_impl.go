package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ttakeda/daybook/internal/db"
	"github.com/ttakeda/daybook/internal/domain"
	"github.com/ttakeda/daybook/internal/repository"
	"github.com/ttakeda/daybook/internal/schema"
)

type todoService struct {
	todos  repository.TodoRepo
	uow    db.UnitOfWork
	notify ChangeNotifier
}

// NewTodoService wires the todo service. Pass NoopNotifier{} when no live
// subscribers exist.
func NewTodoService(todos repository.TodoRepo, uow db.UnitOfWork, notify ChangeNotifier) TodoService {
	return &todoService{todos: todos, uow: uow, notify: notify}
}

func (s *todoService) Create(ctx context.Context, in schema.CreateTodoInput) (*domain.Todo, error) {
	if verr := schema.ValidateCreate(in); verr != nil {
		return nil, verr
	}

	now := time.Now()
	todo := &domain.Todo{
		Title:       in.Title,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.todos.Insert(ctx, todo); err != nil {
		return nil, err
	}

	if err := s.notify.TodosChanged(ctx); err != nil {
		return nil, fmt.Errorf("notifying subscribers after create: %w", err)
	}
	return todo, nil
}

func (s *todoService) GetByID(ctx context.Context, id int64) (*domain.Todo, error) {
	return s.todos.GetByID(ctx, id)
}

func (s *todoService) List(ctx context.Context) ([]*domain.Todo, error) {
	return s.todos.List(ctx)
}

func (s *todoService) Update(ctx context.Context, in schema.UpdateTodoInput) (*domain.Todo, error) {
	if verr := schema.ValidateUpdate(in); verr != nil {
		return nil, verr
	}

	var updated *domain.Todo
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTodos := repository.NewSQLiteTodoRepo(tx)

		// Read within the transaction so created_at survives unchanged.
		existing, err := txTodos.GetByID(ctx, in.ID)
		if err != nil {
			return err
		}

		existing.Title = in.Title
		existing.Description = in.Description
		existing.UpdatedAt = time.Now()
		if existing.UpdatedAt.Before(existing.CreatedAt) {
			existing.UpdatedAt = existing.CreatedAt
		}

		affected, err := txTodos.UpdateByID(ctx, existing)
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("todo %d: %w", in.ID, repository.ErrNotFound)
		}

		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.notify.TodosChanged(ctx); err != nil {
		return nil, fmt.Errorf("notifying subscribers after update: %w", err)
	}
	return updated, nil
}

func (s *todoService) Delete(ctx context.Context, id int64) error {
	// Zero affected rows is deliberately not an error: the item may already
	// have been removed, and deleting twice should land in the same state.
	if _, err := s.todos.DeleteByID(ctx, id); err != nil {
		return err
	}

	if err := s.notify.TodosChanged(ctx); err != nil {
		return fmt.Errorf("notifying subscribers after delete: %w", err)
	}
	return nil
}
