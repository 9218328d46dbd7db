package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Ahmad-Raza810/blog-application/internal/models"
)

// PostgresCategoryRepository implements CategoryRepository for PostgreSQL
type PostgresCategoryRepository struct {
	db *sqlx.DB
}

// NewPostgresCategoryRepository creates a new instance of PostgresCategoryRepository
func NewPostgresCategoryRepository(db *sqlx.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

// List returns all categories with counts of PUBLISHED posts only.
func (repo *PostgresCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := repo.db.SelectContext(ctx, &categories, `
        SELECT c.id, c.name,
               COUNT(p.id) FILTER (WHERE p.status = $1) AS post_count
        FROM categories c
        LEFT JOIN posts p ON p.category_id = c.id
        GROUP BY c.id, c.name
        ORDER BY c.name ASC`, models.PostStatusPublished)
	if err != nil {
		return nil, fmt.Errorf("error querying categories: %w", err)
	}
	return categories, nil
}

// FindByID retrieves a single category.
func (repo *PostgresCategoryRepository) FindByID(ctx context.Context, id string) (*models.Category, error) {
	var c models.Category
	err := repo.db.GetContext(ctx, &c, `SELECT id, name, 0 AS post_count FROM categories WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // Category not found
	}
	if err != nil {
		return nil, fmt.Errorf("error querying category by ID: %w", err)
	}
	return &c, nil
}

// Create inserts a new category.
func (repo *PostgresCategoryRepository) Create(ctx context.Context, name string) (*models.Category, error) {
	c := models.Category{ID: uuid.New().String(), Name: name}
	if _, err := repo.db.ExecContext(ctx, `INSERT INTO categories (id, name) VALUES ($1, $2)`, c.ID, c.Name); err != nil {
		return nil, fmt.Errorf("error creating category: %w", err)
	}
	return &c, nil
}

// Delete removes a category row.
func (repo *PostgresCategoryRepository) Delete(ctx context.Context, id string) error {
	result, err := repo.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting category: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
