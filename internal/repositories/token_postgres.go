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

// PostgresRefreshTokenRepository implements RefreshTokenRepository for PostgreSQL
type PostgresRefreshTokenRepository struct {
	db *sqlx.DB
}

// NewPostgresRefreshTokenRepository creates a new instance of PostgresRefreshTokenRepository
func NewPostgresRefreshTokenRepository(db *sqlx.DB) *PostgresRefreshTokenRepository {
	return &PostgresRefreshTokenRepository{db: db}
}

// Replace deletes any existing token row for the user and inserts the
// new one inside a single transaction. Together with the UNIQUE
// constraint on the token column this enforces one live token per user
// even under concurrent rotation attempts.
func (repo *PostgresRefreshTokenRepository) Replace(ctx context.Context, token models.RefreshToken) error {
	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now().UTC()
	}

	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting token rotation: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, token.UserID); err != nil {
		return fmt.Errorf("error deleting previous refresh token: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
        INSERT INTO refresh_tokens (id, token, user_id, expires_at, created_at)
        VALUES ($1, $2, $3, $4, $5)`,
		token.ID, token.Token, token.UserID, token.ExpiresAt, token.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating refresh token: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing token rotation: %w", err)
	}
	return nil
}

// FindByToken retrieves a refresh token from the database
func (repo *PostgresRefreshTokenRepository) FindByToken(ctx context.Context, tokenString string) (*models.RefreshToken, error) {
	var rt models.RefreshToken
	err := repo.db.GetContext(ctx, &rt, `
        SELECT id, token, user_id, expires_at, created_at FROM refresh_tokens WHERE token = $1`, tokenString)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // Token not found
	}
	if err != nil {
		return nil, fmt.Errorf("error querying refresh token: %w", err)
	}
	return &rt, nil
}

// DeleteByToken removes a refresh token row by its token string.
func (repo *PostgresRefreshTokenRepository) DeleteByToken(ctx context.Context, tokenString string) error {
	if _, err := repo.db.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE token = $1`, tokenString); err != nil {
		return fmt.Errorf("error deleting refresh token: %w", err)
	}
	return nil
}

// DeleteByUser removes all refresh token rows owned by a user.
func (repo *PostgresRefreshTokenRepository) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := repo.db.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("error deleting user refresh tokens: %w", err)
	}
	return nil
}
