package models

import "time"

// PostStatus is the publication state of a post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "DRAFT"
	PostStatusPublished PostStatus = "PUBLISHED"
)

// Post represents a blog post row. Associations are held as plain ids;
// the repository joins author and category names explicitly when a
// listing or detail view needs them.
type Post struct {
	ID            string     `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	Content       string     `json:"content" db:"content"`
	ReadingTime   int        `json:"readingTime" db:"reading_time"`
	AuthorID      string     `json:"authorId" db:"author_id"`
	CategoryID    string     `json:"categoryId" db:"category_id"`
	Status        PostStatus `json:"status" db:"status"`
	IsFeatured    bool       `json:"isFeatured" db:"is_featured"`
	IsTrending    bool       `json:"isTrending" db:"is_trending"`
	CoverImageURL string     `json:"coverImageUrl,omitempty" db:"cover_image_url"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`

	// Joined columns, populated by the listing/detail queries.
	AuthorName   string `json:"-" db:"author_name"`
	CategoryName string `json:"-" db:"category_name"`
}

// PostResponse is the API view of a post with its associations resolved.
type PostResponse struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Content       string       `json:"content"`
	ReadingTime   int          `json:"readingTime"`
	Author        AuthorRef    `json:"author"`
	Category      CategoryRef  `json:"category"`
	Tags          []Tag        `json:"tags"`
	Status        PostStatus   `json:"status"`
	CoverImageURL string       `json:"coverImageUrl,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// AuthorRef identifies a post's author in responses.
type AuthorRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryRef identifies a post's category in responses.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PageResponse is one cursor-paginated window of posts.
// HasMore is true exactly when Cursor is non-nil.
type PageResponse struct {
	Posts   []PostResponse `json:"posts"`
	Cursor  *string        `json:"cursor"`
	HasMore bool           `json:"hasMore"`
}
