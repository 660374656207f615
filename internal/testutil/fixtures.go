package testutil

import (
	"time"

	"github.com/ttakeda/daybook/internal/domain"
)

// TodoOption customizes a fixture todo.
type TodoOption func(*domain.Todo)

func WithDescription(d string) TodoOption {
	return func(t *domain.Todo) {
		t.Description = d
	}
}

func WithCreatedAt(at time.Time) TodoOption {
	return func(t *domain.Todo) {
		t.CreatedAt = at
		if t.UpdatedAt.Before(at) {
			t.UpdatedAt = at
		}
	}
}

func WithUpdatedAt(at time.Time) TodoOption {
	return func(t *domain.Todo) {
		t.UpdatedAt = at
	}
}

// NewTestTodo builds an unsaved todo with sensible defaults. The ID is left
// zero; the store assigns it on insert.
func NewTestTodo(title string, opts ...TodoOption) *domain.Todo {
	now := time.Now()
	todo := &domain.Todo{
		Title:       title,
		Description: "test description",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(todo)
	}
	return todo
}
