package ports

import (
	"context"

	"github.com/bloggie/bloggie-web/internal/core/domain"
)

// AuthService defines the login/registration/logout use cases.
type AuthService interface {
	Login(ctx context.Context, creds domain.Credentials) (string, error)
	Register(ctx context.Context, reg domain.Registration) error
	Logout(ctx context.Context, token string) error
}
