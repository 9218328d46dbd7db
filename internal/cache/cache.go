// Package cache is the explicit caching port used by the post service.
// Reads go through GetPage/GetPost, writes through PutPage/PutPost, and
// every post/category/tag mutation calls the matching Invalidate method.
// Callers treat the cache as best-effort: a miss and a cache failure look
// the same, the database stays authoritative.
package cache

import (
	"context"
	"fmt"

	"github.com/Ahmad-Raza810/blog-application/internal/models"
)

// PostCache caches paginated listing windows and single post views.
type PostCache interface {
	GetPage(ctx context.Context, key string) (*models.PageResponse, error)
	PutPage(ctx context.Context, key string, page *models.PageResponse) error
	GetPost(ctx context.Context, postID string) (*models.PostResponse, error)
	PutPost(ctx context.Context, postID string, post *models.PostResponse) error
	// InvalidatePages drops every cached listing window.
	InvalidatePages(ctx context.Context) error
	// InvalidatePost drops a single cached post view.
	InvalidatePost(ctx context.Context, postID string) error
}

// PageKey builds the cache key for one listing window. Cursor and
// category are empty strings when absent, so the four query shapes get
// distinct keys.
func PageKey(pageSize int, cursor, categoryID string) string {
	return fmt.Sprintf("posts:page:%d:%s:%s", pageSize, cursor, categoryID)
}
