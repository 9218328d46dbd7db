package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Ahmad-Raza810/blog-application/internal/models"
)

// In-memory repository fakes shared by the service tests.

type fakePostRepo struct {
	mu    sync.Mutex
	posts map[string]models.Post
	tags  map[string][]models.Tag

	lastLimit         int
	lastCategoryID    *string
	lastCreatedBefore *time.Time
	findCalls         int
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{
		posts: make(map[string]models.Post),
		tags:  make(map[string][]models.Tag),
	}
}

func (r *fakePostRepo) add(post models.Post) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	r.posts[post.ID] = post
}

func (r *fakePostRepo) FindPublished(ctx context.Context, limit int, categoryID *string, createdBefore *time.Time) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findCalls++
	r.lastLimit = limit
	r.lastCategoryID = categoryID
	r.lastCreatedBefore = createdBefore

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

func (r *fakePostRepo) FindByID(ctx context.Context, id string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.posts[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *fakePostRepo) FindByAuthorAndStatus(ctx context.Context, authorID string, status models.PostStatus) ([]models.Post, error) {
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

func (r *fakePostRepo) FindFeatured(ctx context.Context, limit int) ([]models.Post, error) {
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

func (r *fakePostRepo) FindTrending(ctx context.Context) ([]models.Post, error) {
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

func (r *fakePostRepo) Create(ctx context.Context, post models.Post, tagIDs []string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post.ID = uuid.New().String()
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now
	r.posts[post.ID] = post
	return &post, nil
}

func (r *fakePostRepo) Update(ctx context.Context, post models.Post, tagIDs []string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[post.ID]; !ok {
		return nil, nil
	}
	post.UpdatedAt = time.Now().UTC()
	r.posts[post.ID] = post
	return &post, nil
}

func (r *fakePostRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) TagsForPosts(ctx context.Context, postIDs []string) (map[string][]models.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make(map[string][]models.Tag)
	for _, id := range postIDs {
		if tags, ok := r.tags[id]; ok {
			result[id] = tags
		}
	}
	return result, nil
}

type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]models.RefreshToken // keyed by token string
	calls  int
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]models.RefreshToken)}
}

func (r *fakeTokenRepo) Replace(ctx context.Context, token models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	for key, existing := range r.tokens {
		if existing.UserID == token.UserID {
			delete(r.tokens, key)
		}
	}
	r.tokens[token.Token] = token
	return nil
}

func (r *fakeTokenRepo) FindByToken(ctx context.Context, tokenString string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if t, ok := r.tokens[tokenString]; ok {
		return &t, nil
	}
	return nil, nil
}

func (r *fakeTokenRepo) DeleteByToken(ctx context.Context, tokenString string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	delete(r.tokens, tokenString)
	return nil
}

func (r *fakeTokenRepo) DeleteByUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	for key, existing := range r.tokens {
		if existing.UserID == userID {
			delete(r.tokens, key)
		}
	}
	return nil
}

func (r *fakeTokenRepo) countForUser(userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, t := range r.tokens {
		if t.UserID == userID {
			count++
		}
	}
	return count
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]models.User // keyed by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]models.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now().UTC()
	r.users[user.ID] = user
	return &user, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
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

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	u, _ := r.FindByEmail(ctx, email)
	return u != nil, nil
}

type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[string]models.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]models.Category)}
}

func (r *fakeCategoryRepo) add(c models.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[c.ID] = c
}

func (r *fakeCategoryRepo) List(ctx context.Context) ([]models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Category
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) FindByID(ctx context.Context, id string) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.categories[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Create(ctx context.Context, name string) (*models.Category, error) {
	c := models.Category{ID: uuid.New().String(), Name: name}
	r.add(c)
	return &c, nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.categories, id)
	return nil
}

type fakeTagRepo struct {
	mu   sync.Mutex
	tags map[string]models.Tag
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: make(map[string]models.Tag)}
}

func (r *fakeTagRepo) add(t models.Tag) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tags[t.ID] = t
}

func (r *fakeTagRepo) List(ctx context.Context) ([]models.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Tag
	for _, t := range r.tags {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTagRepo) FindByIDs(ctx context.Context, ids []string) ([]models.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Tag
	for _, id := range ids {
		if t, ok := r.tags[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTagRepo) CreateBatch(ctx context.Context, names []string) ([]models.Tag, error) {
	out := make([]models.Tag, 0, len(names))
	for _, name := range names {
		t := models.Tag{ID: uuid.New().String(), Name: name}
		r.add(t)
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTagRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tags, id)
	return nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments map[string]models.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[string]models.Comment)}
}

func (r *fakeCommentRepo) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Comment
	for _, cm := range r.comments {
		if cm.PostID == postID {
			out = append(out, cm)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) FindByID(ctx context.Context, id string) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cm, ok := r.comments[id]; ok {
		return &cm, nil
	}
	return nil, nil
}

func (r *fakeCommentRepo) Create(ctx context.Context, comment models.Comment) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment.ID = uuid.New().String()
	comment.CreatedAt = time.Now().UTC()
	r.comments[comment.ID] = comment
	return &comment, nil
}

func (r *fakeCommentRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.comments, id)
	return nil
}

func (r *fakeCommentRepo) CountByPost(ctx context.Context, postID string) (int, error) {
	comments, _ := r.ListByPost(ctx, postID)
	return len(comments), nil
}
