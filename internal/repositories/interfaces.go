package repositories

import (
	"context"
	"time"

	"github.com/Ahmad-Raza810/blog-application/internal/models"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	// FindPublished returns up to limit PUBLISHED posts ordered by
	// created_at DESC (ties broken by id DESC), optionally filtered by
	// category and by an exclusive created_at upper bound.
	FindPublished(ctx context.Context, limit int, categoryID *string, createdBefore *time.Time) ([]models.Post, error)
	FindByID(ctx context.Context, id string) (*models.Post, error)
	FindByAuthorAndStatus(ctx context.Context, authorID string, status models.PostStatus) ([]models.Post, error)
	FindFeatured(ctx context.Context, limit int) ([]models.Post, error)
	FindTrending(ctx context.Context) ([]models.Post, error)
	Create(ctx context.Context, post models.Post, tagIDs []string) (*models.Post, error)
	Update(ctx context.Context, post models.Post, tagIDs []string) (*models.Post, error)
	Delete(ctx context.Context, id string) error
	// TagsForPosts batch-loads the tags of every listed post in one query.
	TagsForPosts(ctx context.Context, postIDs []string) (map[string][]models.Tag, error)
}

// RefreshTokenRepository defines the interface for refresh token data operations
type RefreshTokenRepository interface {
	// Replace atomically deletes the user's existing token row and
	// inserts the new one. The delete-then-insert pair runs in a single
	// transaction so at most one live token exists per user.
	Replace(ctx context.Context, token models.RefreshToken) error
	FindByToken(ctx context.Context, tokenString string) (*models.RefreshToken, error)
	DeleteByToken(ctx context.Context, tokenString string) error
	DeleteByUser(ctx context.Context, userID string) error
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	// List returns all categories with their PUBLISHED post counts.
	List(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, name string) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}

// TagRepository defines the interface for tag data operations
type TagRepository interface {
	// List returns all tags with their PUBLISHED post counts.
	List(ctx context.Context) ([]models.Tag, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Tag, error)
	CreateBatch(ctx context.Context, names []string) ([]models.Tag, error)
	Delete(ctx context.Context, id string) error
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	ListByPost(ctx context.Context, postID string) ([]models.Comment, error)
	FindByID(ctx context.Context, id string) (*models.Comment, error)
	Create(ctx context.Context, comment models.Comment) (*models.Comment, error)
	Delete(ctx context.Context, id string) error
	CountByPost(ctx context.Context, postID string) (int, error)
}
