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

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *sqlx.DB
}

// NewPostgresCommentRepository creates a new instance of PostgresCommentRepository
func NewPostgresCommentRepository(db *sqlx.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// ListByPost retrieves a post's comments, newest first, with author names joined.
func (repo *PostgresCommentRepository) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := repo.db.SelectContext(ctx, &comments, `
        SELECT cm.id, cm.post_id, cm.author_id, u.name AS author_name, cm.content, cm.created_at
        FROM comments cm
        JOIN users u ON u.id = cm.author_id
        WHERE cm.post_id = $1
        ORDER BY cm.created_at DESC`, postID)
	if err != nil {
		return nil, fmt.Errorf("error querying comments: %w", err)
	}
	return comments, nil
}

// FindByID retrieves a single comment.
func (repo *PostgresCommentRepository) FindByID(ctx context.Context, id string) (*models.Comment, error) {
	var cm models.Comment
	err := repo.db.GetContext(ctx, &cm, `
        SELECT cm.id, cm.post_id, cm.author_id, u.name AS author_name, cm.content, cm.created_at
        FROM comments cm
        JOIN users u ON u.id = cm.author_id
        WHERE cm.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // Comment not found
	}
	if err != nil {
		return nil, fmt.Errorf("error querying comment by ID: %w", err)
	}
	return &cm, nil
}

// Create inserts a new comment.
func (repo *PostgresCommentRepository) Create(ctx context.Context, comment models.Comment) (*models.Comment, error) {
	comment.ID = uuid.New().String()
	comment.CreatedAt = time.Now().UTC()

	_, err := repo.db.ExecContext(ctx, `
        INSERT INTO comments (id, post_id, author_id, content, created_at)
        VALUES ($1, $2, $3, $4, $5)`,
		comment.ID, comment.PostID, comment.AuthorID, comment.Content, comment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error creating comment: %w", err)
	}
	return repo.FindByID(ctx, comment.ID)
}

// Delete removes a comment row.
func (repo *PostgresCommentRepository) Delete(ctx context.Context, id string) error {
	result, err := repo.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting comment: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CountByPost counts a post's comments.
func (repo *PostgresCommentRepository) CountByPost(ctx context.Context, postID string) (int, error) {
	var count int
	if err := repo.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM comments WHERE post_id = $1`, postID); err != nil {
		return 0, fmt.Errorf("error counting comments: %w", err)
	}
	return count, nil
}
