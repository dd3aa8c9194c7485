package handler

import (
	"github.com/bloggie/bloggie-web/internal/core/domain"
)

// --- Form types ---

type postForm struct {
	Title   string `form:"title"`
	Content string `form:"content" validate:"required"`
}

// --- View types ---

// postView is one rendered feed entry.
type postView struct {
	ID        int64
	Author    string
	Title     string
	Content   string
	CreatedAt string
	Images    []string
	// Mine enables the edit/delete controls.
	Mine bool
}

// feedView backs the Home and Feeds pages.
type feedView struct {
	Title    string
	Username string
	Flash    []string
	// Error marks the errored list state; draft creation stays usable.
	Error       string
	FieldErrors map[string]string
	// Draft is retained across a failed submission.
	Draft postForm
	Posts []postView
	// ShowComposer toggles the new-post form (Home has it, Feeds is
	// read-only).
	ShowComposer bool
}

// profileView backs the Profile page.
type profileView struct {
	Title    string
	Username string
	Flash    []string
	Error    string
	Profile  domain.Profile
	Posts    []postView
}

const postDateLayout = "January 2, 2006"

func toPostViews(posts []domain.Post, viewer string) []postView {
	views := make([]postView, 0, len(posts))
	for _, p := range posts {
		created := ""
		if !p.CreatedAt.IsZero() {
			created = p.CreatedAt.Format(postDateLayout)
		}
		views = append(views, postView{
			ID:        p.ID,
			Author:    p.Author,
			Title:     p.Title,
			Content:   p.Content,
			CreatedAt: created,
			Images:    p.Images,
			Mine:      viewer != "" && p.Author == viewer,
		})
	}
	return views
}
