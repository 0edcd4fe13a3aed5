package repository

import (
	"context"
	"database/sql"
	"errors"
	"todo-admin/models"

	"golang.org/x/crypto/bcrypt"
)

// UserRepository handles credential lookups
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// EnsureUser stores username with a bcrypt hash of password unless a row
// for that username already exists. An existing row keeps its hash.
func (r *UserRepository) EnsureUser(ctx context.Context, username, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO users (username, password) VALUES (?, ?)",
		username, string(hashedPassword),
	)
	return err
}

// GetUserByUsername retrieves a user by username
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.QueryRowContext(ctx,
		"SELECT id, username, password FROM users WHERE username = ?",
		username,
	).Scan(&user.ID, &user.Username, &user.Password)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ValidatePassword checks if password matches
func (r *UserRepository) ValidatePassword(user *models.User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	return err == nil
}
