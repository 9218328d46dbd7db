package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Ahmad-Raza810/blog-application/internal/apperrors"
	"github.com/Ahmad-Raza810/blog-application/internal/cache"
	"github.com/Ahmad-Raza810/blog-application/internal/models"
	"github.com/Ahmad-Raza810/blog-application/internal/repositories"
)

// TagService provides tag business logic.
type TagService interface {
	List(ctx context.Context) ([]models.Tag, error)
	// CreateBatch creates any missing tags and returns rows for all names.
	CreateBatch(ctx context.Context, names []string) ([]models.Tag, error)
	Delete(ctx context.Context, id string) error
}

type tagService struct {
	tagRepo repositories.TagRepository
	cache   cache.PostCache
}

// NewTagService creates a new TagService.
func NewTagService(tagRepo repositories.TagRepository, postCache cache.PostCache) TagService {
	return &tagService{tagRepo: tagRepo, cache: postCache}
}

// List returns all tags with their published-post counts.
func (s *tagService) List(ctx context.Context) ([]models.Tag, error) {
	tags, err := s.tagRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list tags: %w", err)
	}
	if tags == nil {
		tags = []models.Tag{}
	}
	return tags, nil
}

// CreateBatch upserts the given tag names.
func (s *tagService) CreateBatch(ctx context.Context, names []string) ([]models.Tag, error) {
	tags, err := s.tagRepo.CreateBatch(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("service: failed to create tags: %w", err)
	}
	return tags, nil
}

// Delete removes a tag and evicts cached listings that embed it.
func (s *tagService) Delete(ctx context.Context, id string) error {
	err := s.tagRepo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: tag %s", apperrors.ErrResourceNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("service: failed to delete tag: %w", err)
	}
	if err := s.cache.InvalidatePages(ctx); err != nil {
		logrus.Warnf("TagService.Delete: cache invalidation failed: %v", err)
	}
	return nil
}
