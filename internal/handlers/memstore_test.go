package handlers

// In-memory repository implementations backing the HTTP tests, so the
// full router can be exercised without Postgres.

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Ahmad-Raza810/blog-application/internal/models"
)

type memPostRepo struct {
	mu       sync.Mutex
	posts    map[string]models.Post
	postTags map[string][]string // post id -> tag ids
	tags     map[string]models.Tag
}

func newMemPostRepo(tags map[string]models.Tag) *memPostRepo {
	return &memPostRepo{
		posts:    make(map[string]models.Post),
		postTags: make(map[string][]string),
		tags:     tags,
	}
}

func (r *memPostRepo) seed(post models.Post) models.Post {
	r.mu.Lock()
	defer r.mu.Unlock()
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	r.posts[post.ID] = post
	return post
}

func (r *memPostRepo) FindPublished(ctx context.Context, limit int, categoryID *string, createdBefore *time.Time) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []models.Post
	for _, p := range r.posts {
		if p.Status != models.PostStatusPublished {
			continue
		}
		if categoryID != nil && p.CategoryID != *categoryID {
			continue
		}
		if createdBefore != nil && !p.CreatedAt.Before(*createdBefore) {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *memPostRepo) FindByID(ctx context.Context, id string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.posts[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *memPostRepo) FindByAuthorAndStatus(ctx context.Context, authorID string, status models.PostStatus) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []models.Post
	for _, p := range r.posts {
		if p.AuthorID == authorID && p.Status == status {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (r *memPostRepo) FindFeatured(ctx context.Context, limit int) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []models.Post
	for _, p := range r.posts {
		if p.IsFeatured && p.Status == models.PostStatusPublished {
			matched = append(matched, p)
		}
	}
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *memPostRepo) FindTrending(ctx context.Context) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []models.Post
	for _, p := range r.posts {
		if p.IsTrending && p.Status == models.PostStatusPublished {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (r *memPostRepo) Create(ctx context.Context, post models.Post, tagIDs []string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post.ID = uuid.New().String()
	post.CreatedAt = time.Now().UTC()
	post.UpdatedAt = post.CreatedAt
	r.posts[post.ID] = post
	r.postTags[post.ID] = tagIDs
	return &post, nil
}

func (r *memPostRepo) Update(ctx context.Context, post models.Post, tagIDs []string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[post.ID]; !ok {
		return nil, sql.ErrNoRows
	}
	post.UpdatedAt = time.Now().UTC()
	r.posts[post.ID] = post
	r.postTags[post.ID] = tagIDs
	return &post, nil
}

func (r *memPostRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.posts, id)
	delete(r.postTags, id)
	return nil
}

func (r *memPostRepo) TagsForPosts(ctx context.Context, postIDs []string) (map[string][]models.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make(map[string][]models.Tag)
	for _, postID := range postIDs {
		for _, tagID := range r.postTags[postID] {
			if tag, ok := r.tags[tagID]; ok {
				result[postID] = append(result[postID], tag)
			}
		}
	}
	return result, nil
}

type memTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]models.RefreshToken // keyed by token string
}

func newMemTokenRepo() *memTokenRepo {
	return &memTokenRepo{tokens: make(map[string]models.RefreshToken)}
}

func (r *memTokenRepo) Replace(ctx context.Context, token models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, existing := range r.tokens {
		if existing.UserID == token.UserID {
			delete(r.tokens, key)
		}
	}
	r.tokens[token.Token] = token
	return nil
}

func (r *memTokenRepo) FindByToken(ctx context.Context, tokenString string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if token, ok := r.tokens[tokenString]; ok {
		return &token, nil
	}
	return nil, nil
}

func (r *memTokenRepo) DeleteByToken(ctx context.Context, tokenString string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, tokenString)
	return nil
}

func (r *memTokenRepo) DeleteByUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, token := range r.tokens {
		if token.UserID == userID {
			delete(r.tokens, key)
		}
	}
	return nil
}

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]models.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now().UTC()
	r.users[user.ID] = user
	return &user, nil
}

func (r *memUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *memUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	u, _ := r.FindByEmail(ctx, email)
	return u != nil, nil
}

type memCategoryRepo struct {
	mu         sync.Mutex
	categories map[string]models.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: make(map[string]models.Category)}
}

func (r *memCategoryRepo) seed(name string) models.Category {
	r.mu.Lock()
	defer r.mu.Unlock()
	category := models.Category{ID: uuid.New().String(), Name: name}
	r.categories[category.ID] = category
	return category
}

func (r *memCategoryRepo) List(ctx context.Context) ([]models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		result = append(result, c)
	}
	return result, nil
}

func (r *memCategoryRepo) FindByID(ctx context.Context, id string) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.categories[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *memCategoryRepo) Create(ctx context.Context, name string) (*models.Category, error) {
	category := r.seed(name)
	return &category, nil
}

func (r *memCategoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.categories, id)
	return nil
}

type memTagRepo struct {
	mu   sync.Mutex
	tags map[string]models.Tag
}

func newMemTagRepo(tags map[string]models.Tag) *memTagRepo {
	return &memTagRepo{tags: tags}
}

func (r *memTagRepo) List(ctx context.Context) ([]models.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]models.Tag, 0, len(r.tags))
	for _, t := range r.tags {
		result = append(result, t)
	}
	return result, nil
}

func (r *memTagRepo) FindByIDs(ctx context.Context, ids []string) ([]models.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.Tag
	for _, id := range ids {
		if t, ok := r.tags[id]; ok {
			result = append(result, t)
		}
	}
	return result, nil
}

func (r *memTagRepo) CreateBatch(ctx context.Context, names []string) ([]models.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]models.Tag, 0, len(names))
next:
	for _, name := range names {
		for _, existing := range r.tags {
			if existing.Name == name {
				result = append(result, existing)
				continue next
			}
		}
		tag := models.Tag{ID: uuid.New().String(), Name: name}
		r.tags[tag.ID] = tag
		result = append(result, tag)
	}
	return result, nil
}

func (r *memTagRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tags[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.tags, id)
	return nil
}

type memCommentRepo struct {
	mu       sync.Mutex
	comments map[string]models.Comment
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{comments: make(map[string]models.Comment)}
}

func (r *memCommentRepo) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []models.Comment{}
	for _, c := range r.comments {
		if c.PostID == postID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *memCommentRepo) FindByID(ctx context.Context, id string) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.comments[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *memCommentRepo) Create(ctx context.Context, comment models.Comment) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment.ID = uuid.New().String()
	comment.CreatedAt = time.Now().UTC()
	r.comments[comment.ID] = comment
	return &comment, nil
}

func (r *memCommentRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.comments, id)
	return nil
}

func (r *memCommentRepo) CountByPost(ctx context.Context, postID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, c := range r.comments {
		if c.PostID == postID {
			count++
		}
	}
	return count, nil
}
