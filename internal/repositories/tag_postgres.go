package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Ahmad-Raza810/blog-application/internal/models"
)

// PostgresTagRepository implements TagRepository for PostgreSQL
type PostgresTagRepository struct {
	db *sqlx.DB
}

// NewPostgresTagRepository creates a new instance of PostgresTagRepository
func NewPostgresTagRepository(db *sqlx.DB) *PostgresTagRepository {
	return &PostgresTagRepository{db: db}
}

// List returns all tags with counts of PUBLISHED posts only.
func (repo *PostgresTagRepository) List(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	err := repo.db.SelectContext(ctx, &tags, `
        SELECT t.id, t.name,
               COUNT(p.id) FILTER (WHERE p.status = $1) AS post_count
        FROM tags t
        LEFT JOIN post_tags pt ON pt.tag_id = t.id
        LEFT JOIN posts p ON p.id = pt.post_id
        GROUP BY t.id, t.name
        ORDER BY t.name ASC`, models.PostStatusPublished)
	if err != nil {
		return nil, fmt.Errorf("error querying tags: %w", err)
	}
	return tags, nil
}

// FindByIDs retrieves the tags matching the given ids.
func (repo *PostgresTagRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(`SELECT id, name, 0 AS post_count FROM tags WHERE id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("error building tags query: %w", err)
	}
	query = repo.db.Rebind(query)

	var tags []models.Tag
	if err := repo.db.SelectContext(ctx, &tags, query, args...); err != nil {
		return nil, fmt.Errorf("error querying tags by IDs: %w", err)
	}
	return tags, nil
}

// CreateBatch inserts any of the given tag names that do not exist yet
// and returns the full tag rows for all of them.
func (repo *PostgresTagRepository) CreateBatch(ctx context.Context, names []string) ([]models.Tag, error) {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting tag creation: %w", err)
	}
	defer tx.Rollback()

	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		var t models.Tag
		err := tx.GetContext(ctx, &t, `
            INSERT INTO tags (id, name) VALUES ($1, $2)
            ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
            RETURNING id, name`, uuid.New().String(), name)
		if err != nil {
			return nil, fmt.Errorf("error creating tag %s: %w", name, err)
		}
		tags = append(tags, t)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing tag creation: %w", err)
	}
	return tags, nil
}

// Delete removes a tag and its post links.
func (repo *PostgresTagRepository) Delete(ctx context.Context, id string) error {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting tag deletion: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM post_tags WHERE tag_id = $1`, id); err != nil {
		return fmt.Errorf("error unlinking tag: %w", err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting tag: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return tx.Commit()
}
