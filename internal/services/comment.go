package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Ahmad-Raza810/blog-application/internal/apperrors"
	"github.com/Ahmad-Raza810/blog-application/internal/models"
	"github.com/Ahmad-Raza810/blog-application/internal/repositories"
)

// CommentService provides comment business logic.
type CommentService interface {
	ListByPost(ctx context.Context, postID string) ([]models.Comment, error)
	Create(ctx context.Context, postID, authorID, content string) (*models.Comment, error)
	// Delete removes a comment; only its author may delete it.
	Delete(ctx context.Context, commentID, authorID string) error
}

type commentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) CommentService {
	return &commentService{commentRepo: commentRepo, postRepo: postRepo}
}

// ListByPost returns a post's comments, newest first.
func (s *commentService) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list comments: %w", err)
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

// Create adds a comment to an existing post.
func (s *commentService) Create(ctx context.Context, postID, authorID, content string) (*models.Comment, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to check post: %w", err)
	}
	if post == nil {
		return nil, fmt.Errorf("%w: post %s", apperrors.ErrResourceNotFound, postID)
	}

	comment, err := s.commentRepo.Create(ctx, models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  content,
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to create comment: %w", err)
	}
	return comment, nil
}

// Delete removes a comment after an ownership check.
func (s *commentService) Delete(ctx context.Context, commentID, authorID string) error {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return fmt.Errorf("service: failed to load comment: %w", err)
	}
	if comment == nil {
		return fmt.Errorf("%w: comment %s", apperrors.ErrResourceNotFound, commentID)
	}
	if comment.AuthorID != authorID {
		return fmt.Errorf("%w: you do not have permission to delete this comment", apperrors.ErrNotAllowedOperation)
	}

	if err := s.commentRepo.Delete(ctx, commentID); errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: comment %s", apperrors.ErrResourceNotFound, commentID)
	} else if err != nil {
		return fmt.Errorf("service: failed to delete comment: %w", err)
	}
	return nil
}
