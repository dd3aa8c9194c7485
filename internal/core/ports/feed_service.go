package ports

import (
	"context"

	"github.com/bloggie/bloggie-web/internal/core/domain"
)

// FeedService defines use-case operations over the post feed. The service
// keeps an in-memory, newest-first mirror of the server's post list; every
// successful mutation is applied to the mirror keyed by post id.
type FeedService interface {
	// Timeline refreshes the mirror from the API and returns it newest-first.
	Timeline(ctx context.Context) ([]domain.Post, error)
	// AuthorPosts returns the timeline filtered to one author, order preserved.
	AuthorPosts(ctx context.Context, author string) ([]domain.Post, error)
	Create(ctx context.Context, token string, draft domain.Draft) (*domain.Post, error)
	Update(ctx context.Context, token string, id int64, fields domain.PostUpdate) (*domain.Post, error)
	Delete(ctx context.Context, token string, id int64) error
	// Cached returns the current mirror without a network call.
	Cached() []domain.Post
}
