package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/Ahmad-Raza810/blog-application/internal/apperrors"
	"github.com/Ahmad-Raza810/blog-application/internal/cache"
	"github.com/Ahmad-Raza810/blog-application/internal/models"
	"github.com/Ahmad-Raza810/blog-application/internal/repositories"
)

// pqUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pqUniqueViolation = "23505"

// CategoryService provides category business logic.
type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, name string) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
	cache        cache.PostCache
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo repositories.CategoryRepository, postCache cache.PostCache) CategoryService {
	return &categoryService{categoryRepo: categoryRepo, cache: postCache}
}

// List returns all categories with their published-post counts.
func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list categories: %w", err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

// Get returns one category or ErrResourceNotFound.
func (s *categoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("%w: category %s", apperrors.ErrResourceNotFound, id)
	}
	return category, nil
}

// Create adds a category with a unique name.
func (s *categoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	category, err := s.categoryRepo.Create(ctx, name)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: category %s", apperrors.ErrResourceExists, name)
		}
		return nil, fmt.Errorf("service: failed to create category: %w", err)
	}
	return category, nil
}

// Delete removes a category and evicts cached listings that embed its name.
func (s *categoryService) Delete(ctx context.Context, id string) error {
	err := s.categoryRepo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: category %s", apperrors.ErrResourceNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("service: failed to delete category: %w", err)
	}
	if err := s.cache.InvalidatePages(ctx); err != nil {
		logrus.Warnf("CategoryService.Delete: cache invalidation failed: %v", err)
	}
	return nil
}

// isUniqueViolation reports whether a repository error wraps a
// PostgreSQL unique constraint violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation
}
