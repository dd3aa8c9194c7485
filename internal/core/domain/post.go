package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")

// Post is a single feed entry as served by the Bloggie API. The identifier
// is assigned server-side; the client never invents one.
type Post struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Images    []string  `json:"images,omitempty"`
}

// Draft is unsaved post content held in form state until submission.
type Draft struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
}

// PostUpdate carries the replaceable fields of an existing post.
type PostUpdate struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
}
