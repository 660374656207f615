package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ttakeda/daybook/internal/db"
	"github.com/ttakeda/daybook/internal/domain"
)

// todoColumns is the canonical SELECT column list for todos.
const todoColumns = `id, title, description, created_at, updated_at`

// SQLiteTodoRepo implements TodoRepo over a SQLite database. It accepts a
// db.DBTX so the same implementation serves both plain connections and
// transactions opened by a UnitOfWork.
type SQLiteTodoRepo struct {
	db db.DBTX
}

// NewSQLiteTodoRepo creates a new SQLiteTodoRepo.
func NewSQLiteTodoRepo(dbtx db.DBTX) *SQLiteTodoRepo {
	return &SQLiteTodoRepo{db: dbtx}
}

func (r *SQLiteTodoRepo) Insert(ctx context.Context, t *domain.Todo) error {
	query := `INSERT INTO todos (title, description, created_at, updated_at)
		VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		t.Title,
		t.Description,
		timeToEpoch(t.CreatedAt),
		timeToEpoch(t.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting todo: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading inserted todo id: %w", err)
	}
	t.ID = id
	return nil
}

func (r *SQLiteTodoRepo) GetByID(ctx context.Context, id int64) (*domain.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanTodo(row)
}

func (r *SQLiteTodoRepo) List(ctx context.Context) ([]*domain.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}
	defer rows.Close()
	return r.scanTodos(rows)
}

func (r *SQLiteTodoRepo) UpdateByID(ctx context.Context, t *domain.Todo) (int64, error) {
	// created_at is immutable and deliberately absent from the SET list.
	query := `UPDATE todos SET title = ?, description = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Title,
		t.Description,
		timeToEpoch(t.UpdatedAt),
		t.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("updating todo: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading updated row count: %w", err)
	}
	return affected, nil
}

func (r *SQLiteTodoRepo) DeleteByID(ctx context.Context, id int64) (int64, error) {
	query := `DELETE FROM todos WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("deleting todo: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading deleted row count: %w", err)
	}
	return affected, nil
}

// scanTodo scans a single todo from a *sql.Row.
func (r *SQLiteTodoRepo) scanTodo(row *sql.Row) (*domain.Todo, error) {
	var t domain.Todo
	var createdAt, updatedAt int64

	err := row.Scan(&t.ID, &t.Title, &t.Description, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("todo: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning todo: %w", err)
	}

	t.CreatedAt = domain.TimeFromEpoch(createdAt)
	t.UpdatedAt = domain.TimeFromEpoch(updatedAt)
	return &t, nil
}

// scanTodos scans multiple todos from *sql.Rows.
func (r *SQLiteTodoRepo) scanTodos(rows *sql.Rows) ([]*domain.Todo, error) {
	var todos []*domain.Todo
	for rows.Next() {
		var t domain.Todo
		var createdAt, updatedAt int64

		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning todo row: %w", err)
		}

		t.CreatedAt = domain.TimeFromEpoch(createdAt)
		t.UpdatedAt = domain.TimeFromEpoch(updatedAt)
		todos = append(todos, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating todos: %w", err)
	}
	return todos, nil
}
