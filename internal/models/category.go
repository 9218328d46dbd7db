package models

import "time"

// Category groups posts by subject.
type Category struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	// PostCount counts PUBLISHED posts only.
	PostCount int `json:"postCount" db:"post_count"`
}

// Tag is a free-form label attached to posts.
type Tag struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	// PostCount counts PUBLISHED posts only.
	PostCount int `json:"postCount,omitempty" db:"post_count"`
}

// Comment is a reader comment on a post.
type Comment struct {
	ID         string `json:"id" db:"id"`
	PostID     string `json:"postId" db:"post_id"`
	AuthorID   string `json:"authorId" db:"author_id"`
	AuthorName string `json:"authorName" db:"author_name"`
	Content    string `json:"content" db:"content"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
