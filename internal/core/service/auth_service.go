package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bloggie/bloggie-web/internal/core/domain"
	"github.com/bloggie/bloggie-web/internal/core/ports"
)

// AuthService implements login, registration and logout against the
// remote API. It holds no state of its own; the session cookie is the
// only place a token lives.
type AuthService struct {
	api    ports.AuthAPI
	logger zerolog.Logger
}

func NewAuthService(api ports.AuthAPI, logger zerolog.Logger) *AuthService {
	return &AuthService{api: api, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	if creds.Email == "" || creds.Password == "" {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.api.Login(ctx, creds)
	if err != nil {
		s.logger.Warn().Err(err).Str("email", creds.Email).Msg("login rejected")
		return "", err
	}

	s.logger.Info().Str("email", creds.Email).Msg("login succeeded")
	return token, nil
}

func (s *AuthService) Register(ctx context.Context, reg domain.Registration) error {
	if reg.Email == "" || reg.Password == "" {
		return domain.ErrInvalidCredentials
	}
	if reg.ConfirmPassword != "" && reg.ConfirmPassword != reg.Password {
		return domain.ErrInvalidCredentials
	}

	if err := s.api.Register(ctx, reg); err != nil {
		s.logger.Warn().Err(err).Str("email", reg.Email).Msg("registration rejected")
		return err
	}

	s.logger.Info().Str("email", reg.Email).Msg("registration succeeded")
	return nil
}

// Logout tells the API to invalidate the token. Failures are logged and
// swallowed: the caller clears the local session either way.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.api.Logout(ctx, token); err != nil {
		s.logger.Warn().Err(err).Msg("upstream logout failed")
		return err
	}
	return nil
}
