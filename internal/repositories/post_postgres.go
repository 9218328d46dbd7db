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

// postColumns selects post rows with author and category names joined
// in, so response assembly never touches a second query per row.
const postColumns = `
        p.id, p.title, p.content, p.reading_time, p.author_id, p.category_id,
        p.status, p.is_featured, p.is_trending, p.cover_image_url,
        p.created_at, p.updated_at,
        u.name AS author_name, c.name AS category_name
    FROM posts p
    JOIN users u ON u.id = p.author_id
    JOIN categories c ON c.id = p.category_id`

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *sqlx.DB
}

// NewPostgresPostRepository creates a new instance of PostgresPostRepository
func NewPostgresPostRepository(db *sqlx.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// FindPublished retrieves one window of the published feed. The WHERE
// clause is built from whichever of categoryID/createdBefore are set,
// giving the four listing query shapes.
func (repo *PostgresPostRepository) FindPublished(ctx context.Context, limit int, categoryID *string, createdBefore *time.Time) ([]models.Post, error) {
	queryBuilder := "SELECT " + postColumns + " WHERE p.status = $1"
	args := []interface{}{models.PostStatusPublished}
	argCounter := 2

	if categoryID != nil {
		queryBuilder += fmt.Sprintf(" AND p.category_id = $%d", argCounter)
		args = append(args, *categoryID)
		argCounter++
	}
	if createdBefore != nil {
		queryBuilder += fmt.Sprintf(" AND p.created_at < $%d", argCounter)
		args = append(args, *createdBefore)
		argCounter++
	}

	queryBuilder += fmt.Sprintf(" ORDER BY p.created_at DESC, p.id DESC LIMIT $%d", argCounter)
	args = append(args, limit)

	var posts []models.Post
	if err := repo.db.SelectContext(ctx, &posts, queryBuilder, args...); err != nil {
		return nil, fmt.Errorf("error querying published posts: %w", err)
	}
	return posts, nil
}

// FindByID retrieves a single post with its author/category names joined.
func (repo *PostgresPostRepository) FindByID(ctx context.Context, id string) (*models.Post, error) {
	var p models.Post
	err := repo.db.GetContext(ctx, &p, "SELECT "+postColumns+" WHERE p.id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // Post not found
	}
	if err != nil {
		return nil, fmt.Errorf("error querying post by ID: %w", err)
	}
	return &p, nil
}

// FindByAuthorAndStatus retrieves an author's posts in one status (drafts view).
func (repo *PostgresPostRepository) FindByAuthorAndStatus(ctx context.Context, authorID string, status models.PostStatus) ([]models.Post, error) {
	var posts []models.Post
	err := repo.db.SelectContext(ctx, &posts,
		"SELECT "+postColumns+" WHERE p.author_id = $1 AND p.status = $2 ORDER BY p.created_at DESC, p.id DESC",
		authorID, status)
	if err != nil {
		return nil, fmt.Errorf("error querying posts by author: %w", err)
	}
	return posts, nil
}

// FindFeatured retrieves the most recent featured published posts.
func (repo *PostgresPostRepository) FindFeatured(ctx context.Context, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := repo.db.SelectContext(ctx, &posts,
		"SELECT "+postColumns+" WHERE p.is_featured = TRUE AND p.status = $1 ORDER BY p.created_at DESC, p.id DESC LIMIT $2",
		models.PostStatusPublished, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying featured posts: %w", err)
	}
	return posts, nil
}

// FindTrending retrieves all trending published posts; the service
// shuffles and caps them.
func (repo *PostgresPostRepository) FindTrending(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := repo.db.SelectContext(ctx, &posts,
		"SELECT "+postColumns+" WHERE p.is_trending = TRUE AND p.status = $1 ORDER BY p.created_at DESC, p.id DESC",
		models.PostStatusPublished)
	if err != nil {
		return nil, fmt.Errorf("error querying trending posts: %w", err)
	}
	return posts, nil
}

// Create inserts a post and its tag links in one transaction.
func (repo *PostgresPostRepository) Create(ctx context.Context, post models.Post, tagIDs []string) (*models.Post, error) {
	post.ID = uuid.New().String()
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
        INSERT INTO posts (id, title, content, reading_time, author_id, category_id, status,
                           is_featured, is_trending, cover_image_url, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		post.ID, post.Title, post.Content, post.ReadingTime, post.AuthorID, post.CategoryID,
		post.Status, post.IsFeatured, post.IsTrending, post.CoverImageURL, post.CreatedAt, post.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}

	if err := insertTagLinks(ctx, tx, post.ID, tagIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing post creation: %w", err)
	}
	return repo.FindByID(ctx, post.ID)
}

// Update rewrites a post's mutable columns. A non-nil tagIDs replaces
// the tag links; nil leaves them untouched.
func (repo *PostgresPostRepository) Update(ctx context.Context, post models.Post, tagIDs []string) (*models.Post, error) {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
        UPDATE posts
        SET title = $1, content = $2, reading_time = $3, category_id = $4, status = $5,
            cover_image_url = $6, updated_at = $7
        WHERE id = $8`,
		post.Title, post.Content, post.ReadingTime, post.CategoryID, post.Status,
		post.CoverImageURL, time.Now().UTC(), post.ID)
	if err != nil {
		return nil, fmt.Errorf("error updating post: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return nil, nil // Post not found
	}

	if tagIDs != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM post_tags WHERE post_id = $1`, post.ID); err != nil {
			return nil, fmt.Errorf("error clearing post tags: %w", err)
		}
		if err := insertTagLinks(ctx, tx, post.ID, tagIDs); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing post update: %w", err)
	}
	return repo.FindByID(ctx, post.ID)
}

// Delete removes a post and its tag links.
func (repo *PostgresPostRepository) Delete(ctx context.Context, id string) error {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM post_tags WHERE post_id = $1`, id); err != nil {
		return fmt.Errorf("error deleting post tags: %w", err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return tx.Commit()
}

// TagsForPosts batch-loads tags for a page of posts in one query.
func (repo *PostgresPostRepository) TagsForPosts(ctx context.Context, postIDs []string) (map[string][]models.Tag, error) {
	result := make(map[string][]models.Tag)
	if len(postIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`
        SELECT pt.post_id, t.id, t.name
        FROM post_tags pt
        JOIN tags t ON t.id = pt.tag_id
        WHERE pt.post_id IN (?)`, postIDs)
	if err != nil {
		return nil, fmt.Errorf("error building tags query: %w", err)
	}
	query = repo.db.Rebind(query)

	rows, err := repo.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying post tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var postID string
		var tag models.Tag
		if err := rows.Scan(&postID, &tag.ID, &tag.Name); err != nil {
			return nil, fmt.Errorf("error scanning post tag: %w", err)
		}
		result[postID] = append(result[postID], tag)
	}
	return result, rows.Err()
}

func insertTagLinks(ctx context.Context, tx *sqlx.Tx, postID string, tagIDs []string) error {
	for _, tagID := range tagIDs {
		if _, err := tx.ExecContext(ctx, `INSERT INTO post_tags (post_id, tag_id) VALUES ($1, $2)`, postID, tagID); err != nil {
			return fmt.Errorf("error linking tag %s: %w", tagID, err)
		}
	}
	return nil
}
