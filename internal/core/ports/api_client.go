package ports

import (
	"context"

	"github.com/bloggie/bloggie-web/internal/core/domain"
)

// AuthAPI is the outbound port for the Bloggie API's authentication
// endpoints. Implementations return *domain.RequestError on non-2xx
// responses and a wrapped transport error otherwise.
type AuthAPI interface {
	Login(ctx context.Context, creds domain.Credentials) (string, error)
	Register(ctx context.Context, reg domain.Registration) error
	Logout(ctx context.Context, token string) error
}

// FeedAPI is the outbound port for the post CRUD endpoints. The token is
// attached as a bearer credential when non-empty; the server alone decides
// authorization failures.
type FeedAPI interface {
	ListPosts(ctx context.Context) ([]domain.Post, error)
	CreatePost(ctx context.Context, token string, draft domain.Draft) (*domain.Post, error)
	UpdatePost(ctx context.Context, token string, id int64, fields domain.PostUpdate) (*domain.Post, error)
	DeletePost(ctx context.Context, token string, id int64) error
}
