package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Default administrator seeded on first start.
const (
	AdminUsername   = "admin"
	DefaultPassword = "123456"
)

const (
	createUsersTable = `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL
	);`

	createTodosTable = `
	CREATE TABLE IF NOT EXISTS todos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		content TEXT NOT NULL,
		create_time DATETIME DEFAULT CURRENT_TIMESTAMP
	);`
)

// Bootstrap creates both tables if they are missing and seeds the admin
// credential if no admin row exists. It is safe to run on every start.
//
// The todos table is attempted even when the users table fails, so the
// returned error may join several failures. Callers are expected to log it
// and keep serving: requests against a missing table fail on their own.
func Bootstrap(ctx context.Context, db *sql.DB) error {
	var errs []error

	if _, err := db.ExecContext(ctx, createUsersTable); err != nil {
		errs = append(errs, fmt.Errorf("failed to create users table: %w", err))
	} else if err := NewUserRepository(db).EnsureUser(ctx, AdminUsername, DefaultPassword); err != nil {
		errs = append(errs, fmt.Errorf("failed to seed admin user: %w", err))
	}

	if _, err := db.ExecContext(ctx, createTodosTable); err != nil {
		errs = append(errs, fmt.Errorf("failed to create todos table: %w", err))
	}

	return errors.Join(errs...)
}
