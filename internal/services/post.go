package services

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Ahmad-Raza810/blog-application/internal/apperrors"
	"github.com/Ahmad-Raza810/blog-application/internal/cache"
	"github.com/Ahmad-Raza810/blog-application/internal/models"
	"github.com/Ahmad-Raza810/blog-application/internal/pagination"
	"github.com/Ahmad-Raza810/blog-application/internal/repositories"
)

const (
	// maxPageSize caps the listing window. Larger requests are clamped,
	// not rejected, so casual clients stay forgiving while worst-case
	// load stays bounded.
	maxPageSize     = 20
	defaultPageSize = 5

	wordsPerMinute = 200

	featuredLimit = 5
	trendingLimit = 5
)

// CreatePostRequest is the payload for creating a post.
type CreatePostRequest struct {
	Title         string            `json:"title" binding:"required"`
	Content       string            `json:"content" binding:"required"`
	CategoryID    string            `json:"categoryId" binding:"required"`
	TagIDs        []string          `json:"tagIds"`
	Status        models.PostStatus `json:"status" binding:"required"`
	CoverImageURL string            `json:"coverImageUrl"`
}

// UpdatePostRequest is the payload for updating a post.
type UpdatePostRequest struct {
	Title         string            `json:"title" binding:"required"`
	Content       string            `json:"content" binding:"required"`
	CategoryID    string            `json:"categoryId" binding:"required"`
	TagIDs        []string          `json:"tagIds"`
	Status        models.PostStatus `json:"status" binding:"required"`
	CoverImageURL string            `json:"coverImageUrl"`
}

// PostService provides post listing and CRUD business logic.
type PostService interface {
	// ListPosts returns one cursor-paginated window of PUBLISHED posts,
	// newest first, optionally filtered by category.
	ListPosts(ctx context.Context, pageSize int, cursor, categoryID *string) (*models.PageResponse, error)
	GetPost(ctx context.Context, id string) (*models.PostResponse, error)
	GetDrafts(ctx context.Context, authorID string) ([]models.PostResponse, error)
	GetFeatured(ctx context.Context) ([]models.PostResponse, error)
	GetTrending(ctx context.Context) ([]models.PostResponse, error)
	CreatePost(ctx context.Context, authorID string, req CreatePostRequest) (*models.PostResponse, error)
	UpdatePost(ctx context.Context, postID, authorID string, req UpdatePostRequest) (*models.PostResponse, error)
	DeletePost(ctx context.Context, postID, authorID string) error
}

type postService struct {
	postRepo     repositories.PostRepository
	categoryRepo repositories.CategoryRepository
	tagRepo      repositories.TagRepository
	commentRepo  repositories.CommentRepository
	cache        cache.PostCache
}

// NewPostService creates a new PostService.
func NewPostService(
	postRepo repositories.PostRepository,
	categoryRepo repositories.CategoryRepository,
	tagRepo repositories.TagRepository,
	commentRepo repositories.CommentRepository,
	postCache cache.PostCache,
) PostService {
	return &postService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		commentRepo:  commentRepo,
		cache:        postCache,
	}
}

// ListPosts plans the listing query from (pageSize, cursor?, categoryID?).
// It over-fetches one row to detect another page without a count query,
// and derives the next cursor from the last row of the trimmed page.
func (s *postService) ListPosts(ctx context.Context, pageSize int, cursor, categoryID *string) (*models.PageResponse, error) {
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	cacheKey := cache.PageKey(pageSize, deref(cursor), deref(categoryID))
	if page, err := s.cache.GetPage(ctx, cacheKey); err != nil {
		logrus.Warnf("PostService.ListPosts: cache read failed: %v", err)
	} else if page != nil {
		return page, nil
	}

	var createdBefore *time.Time
	if cursor != nil {
		decoded, err := pagination.DecodeCursor(*cursor)
		if err != nil {
			return nil, err
		}
		createdBefore = &decoded
	}

	posts, err := s.postRepo.FindPublished(ctx, pageSize+1, categoryID, createdBefore)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list posts: %w", err)
	}

	hasMore := len(posts) > pageSize
	if hasMore {
		posts = posts[:pageSize]
	}

	page := &models.PageResponse{
		Posts:   []models.PostResponse{},
		Cursor:  nil,
		HasMore: false,
	}

	if len(posts) > 0 {
		responses, err := s.assemble(ctx, posts)
		if err != nil {
			return nil, err
		}
		page.Posts = responses
		if hasMore {
			next := pagination.EncodeCursor(posts[len(posts)-1].CreatedAt)
			page.Cursor = &next
			page.HasMore = true
		}
	}

	if err := s.cache.PutPage(ctx, cacheKey, page); err != nil {
		logrus.Warnf("PostService.ListPosts: cache write failed: %v", err)
	}
	return page, nil
}

// GetPost retrieves a single post, cache-aside.
func (s *postService) GetPost(ctx context.Context, id string) (*models.PostResponse, error) {
	if cached, err := s.cache.GetPost(ctx, id); err != nil {
		logrus.Warnf("PostService.GetPost: cache read failed: %v", err)
	} else if cached != nil {
		return cached, nil
	}

	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get post: %w", err)
	}
	if post == nil {
		return nil, fmt.Errorf("%w: post %s", apperrors.ErrResourceNotFound, id)
	}

	responses, err := s.assemble(ctx, []models.Post{*post})
	if err != nil {
		return nil, err
	}
	resp := &responses[0]

	if err := s.cache.PutPost(ctx, id, resp); err != nil {
		logrus.Warnf("PostService.GetPost: cache write failed: %v", err)
	}
	return resp, nil
}

// GetDrafts lists the calling author's draft posts.
func (s *postService) GetDrafts(ctx context.Context, authorID string) ([]models.PostResponse, error) {
	posts, err := s.postRepo.FindByAuthorAndStatus(ctx, authorID, models.PostStatusDraft)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get drafts: %w", err)
	}
	return s.assemble(ctx, posts)
}

// GetFeatured lists the most recent featured published posts.
func (s *postService) GetFeatured(ctx context.Context) ([]models.PostResponse, error) {
	posts, err := s.postRepo.FindFeatured(ctx, featuredLimit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get featured posts: %w", err)
	}
	return s.assemble(ctx, posts)
}

// GetTrending lists up to five trending published posts in random order.
func (s *postService) GetTrending(ctx context.Context) ([]models.PostResponse, error) {
	posts, err := s.postRepo.FindTrending(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get trending posts: %w", err)
	}
	rand.Shuffle(len(posts), func(i, j int) { posts[i], posts[j] = posts[j], posts[i] })
	if len(posts) > trendingLimit {
		posts = posts[:trendingLimit]
	}
	return s.assemble(ctx, posts)
}

// CreatePost validates associations, computes reading time and persists
// the post, then evicts the listing cache.
func (s *postService) CreatePost(ctx context.Context, authorID string, req CreatePostRequest) (*models.PostResponse, error) {
	if err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}
	if err := s.checkTags(ctx, req.TagIDs); err != nil {
		return nil, err
	}

	post := models.Post{
		Title:         req.Title,
		Content:       req.Content,
		ReadingTime:   calculateReadTime(req.Content),
		AuthorID:      authorID,
		CategoryID:    req.CategoryID,
		Status:        req.Status,
		CoverImageURL: req.CoverImageURL,
	}

	created, err := s.postRepo.Create(ctx, post, req.TagIDs)
	if err != nil {
		return nil, fmt.Errorf("service: failed to create post: %w", err)
	}

	s.invalidateListings(ctx)
	return s.GetPost(ctx, created.ID)
}

// UpdatePost rewrites an existing post after an ownership check.
func (s *postService) UpdatePost(ctx context.Context, postID, authorID string, req UpdatePostRequest) (*models.PostResponse, error) {
	existing, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load post for update: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: post %s", apperrors.ErrResourceNotFound, postID)
	}
	if existing.AuthorID != authorID {
		return nil, fmt.Errorf("%w: you do not have permission to update this post", apperrors.ErrNotAllowedOperation)
	}

	if existing.CategoryID != req.CategoryID {
		if err := s.checkCategory(ctx, req.CategoryID); err != nil {
			return nil, err
		}
	}
	if err := s.checkTags(ctx, req.TagIDs); err != nil {
		return nil, err
	}

	updated := *existing
	updated.Title = req.Title
	updated.Content = req.Content
	updated.ReadingTime = calculateReadTime(req.Content)
	updated.CategoryID = req.CategoryID
	updated.Status = req.Status
	updated.CoverImageURL = req.CoverImageURL

	if _, err := s.postRepo.Update(ctx, updated, req.TagIDs); err != nil {
		return nil, fmt.Errorf("service: failed to update post: %w", err)
	}

	s.invalidateListings(ctx)
	if err := s.cache.InvalidatePost(ctx, postID); err != nil {
		logrus.Warnf("PostService.UpdatePost: cache invalidation failed: %v", err)
	}
	return s.GetPost(ctx, postID)
}

// DeletePost removes a post after ownership and comment checks.
func (s *postService) DeletePost(ctx context.Context, postID, authorID string) error {
	existing, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("service: failed to load post for deletion: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("%w: post %s", apperrors.ErrResourceNotFound, postID)
	}
	if existing.AuthorID != authorID {
		return fmt.Errorf("%w: you do not have permission to delete this post", apperrors.ErrNotAllowedOperation)
	}

	commentCount, err := s.commentRepo.CountByPost(ctx, postID)
	if err != nil {
		return fmt.Errorf("service: failed to count comments: %w", err)
	}
	if commentCount > 0 {
		return apperrors.ErrPostHasComments
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return fmt.Errorf("service: failed to delete post: %w", err)
	}

	s.invalidateListings(ctx)
	if err := s.cache.InvalidatePost(ctx, postID); err != nil {
		logrus.Warnf("PostService.DeletePost: cache invalidation failed: %v", err)
	}
	return nil
}

// assemble turns post rows into API responses, batch-loading tags for
// the whole page in one query.
func (s *postService) assemble(ctx context.Context, posts []models.Post) ([]models.PostResponse, error) {
	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	tagsByPost, err := s.postRepo.TagsForPosts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load post tags: %w", err)
	}

	responses := make([]models.PostResponse, 0, len(posts))
	for _, p := range posts {
		tags := tagsByPost[p.ID]
		if tags == nil {
			tags = []models.Tag{}
		}
		responses = append(responses, models.PostResponse{
			ID:            p.ID,
			Title:         p.Title,
			Content:       p.Content,
			ReadingTime:   p.ReadingTime,
			Author:        models.AuthorRef{ID: p.AuthorID, Name: p.AuthorName},
			Category:      models.CategoryRef{ID: p.CategoryID, Name: p.CategoryName},
			Tags:          tags,
			Status:        p.Status,
			CoverImageURL: p.CoverImageURL,
			CreatedAt:     p.CreatedAt,
			UpdatedAt:     p.UpdatedAt,
		})
	}
	return responses, nil
}

func (s *postService) checkCategory(ctx context.Context, categoryID string) error {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("service: failed to check category: %w", err)
	}
	if category == nil {
		return fmt.Errorf("%w: category %s", apperrors.ErrResourceNotFound, categoryID)
	}
	return nil
}

func (s *postService) checkTags(ctx context.Context, tagIDs []string) error {
	if len(tagIDs) == 0 {
		return nil
	}
	tags, err := s.tagRepo.FindByIDs(ctx, tagIDs)
	if err != nil {
		return fmt.Errorf("service: failed to check tags: %w", err)
	}
	if len(tags) != len(tagIDs) {
		return fmt.Errorf("%w: one or more tags do not exist", apperrors.ErrResourceNotFound)
	}
	return nil
}

func (s *postService) invalidateListings(ctx context.Context) {
	if err := s.cache.InvalidatePages(ctx); err != nil {
		logrus.Warnf("PostService: listing cache invalidation failed: %v", err)
	}
}

// calculateReadTime estimates reading minutes at 200 words per minute.
func calculateReadTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / wordsPerMinute))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
