package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Ahmad-Raza810/blog-application/internal/models"
)

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *sqlx.DB
}

// NewPostgresUserRepository creates a new instance of PostgresUserRepository
func NewPostgresUserRepository(db *sqlx.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// Create inserts a new user row.
func (repo *PostgresUserRepository) Create(ctx context.Context, user models.User) (*models.User, error) {
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now().UTC()

	_, err := repo.db.ExecContext(ctx, `
        INSERT INTO users (id, name, email, password_hash, role, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return &user, nil
}

// FindByEmail retrieves a user by email address.
func (repo *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := repo.db.GetContext(ctx, &u, `
        SELECT id, name, email, password_hash, role, created_at FROM users WHERE email = $1`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // User not found
	}
	if err != nil {
		return nil, fmt.Errorf("error querying user by email: %w", err)
	}
	return &u, nil
}

// FindByID retrieves a user by their ID.
func (repo *PostgresUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := repo.db.GetContext(ctx, &u, `
        SELECT id, name, email, password_hash, role, created_at FROM users WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // User not found
	}
	if err != nil {
		return nil, fmt.Errorf("error querying user by ID: %w", err)
	}
	return &u, nil
}

// EmailExists reports whether any user already uses the email.
func (repo *PostgresUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := repo.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}
	return exists, nil
}
