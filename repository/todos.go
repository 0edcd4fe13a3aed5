package repository

import (
	"context"
	"database/sql"
	"todo-admin/models"
)

// TodoRepository handles database operations for todos
type TodoRepository struct {
	db *sql.DB
}

// NewTodoRepository creates a new todo repository
func NewTodoRepository(db *sql.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// GetAll retrieves every todo, newest first. create_time is read back as
// the text SQLite stored.
func (r *TodoRepository) GetAll(ctx context.Context) ([]models.Todo, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, content, CAST(create_time AS TEXT) FROM todos ORDER BY create_time DESC, id DESC",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.Content, &t.CreateTime); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return todos, nil
}

// Create adds a new todo and returns its id. create_time is set by the
// column default.
func (r *TodoRepository) Create(ctx context.Context, content string) (int64, error) {
	result, err := r.db.ExecContext(ctx, "INSERT INTO todos (content) VALUES (?)", content)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

// Delete removes the todo with the given id. The id is bound as given, so
// a value that is not an integer simply matches nothing.
func (r *TodoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", id)
	return err
}
