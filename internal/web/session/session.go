// Package session owns the browser-held session state: the API token and
// one-shot flash messages. The cookie is the single durable copy; every
// mutation writes it, so the in-memory and persisted views can never
// diverge.
package session

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	// Name is the fixed cookie the session lives under.
	Name = "bloggie_session"
	// tokenKey is the fixed key the auth token is stored at.
	tokenKey = "authToken"

	maxAge = 7 * 24 * 60 * 60
)

// NewStore builds the cookie store the session middleware runs on.
// Secure is off in development so the cookie survives plain HTTP.
func NewStore(secret string, development bool) sessions.Store {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   !development,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// Login persists the token under the fixed key.
func Login(c echo.Context, token string) error {
	s, err := session.Get(Name, c)
	if err != nil {
		return err
	}
	s.Values[tokenKey] = token
	return s.Save(c.Request(), c.Response())
}

// Logout removes the token; the rest of the session (flashes) survives.
func Logout(c echo.Context) error {
	s, err := session.Get(Name, c)
	if err != nil {
		return err
	}
	delete(s.Values, tokenKey)
	return s.Save(c.Request(), c.Response())
}

// CurrentToken returns the stored token, or "" when logged out. A cookie
// that fails to decode reads as logged out rather than erroring.
func CurrentToken(c echo.Context) string {
	s, err := session.Get(Name, c)
	if err != nil {
		return ""
	}
	token, _ := s.Values[tokenKey].(string)
	return token
}

// Flash queues a one-shot notice for the next rendered page.
func Flash(c echo.Context, message string) error {
	s, err := session.Get(Name, c)
	if err != nil {
		return err
	}
	s.AddFlash(message)
	return s.Save(c.Request(), c.Response())
}

// TakeFlashes drains and returns the queued notices.
func TakeFlashes(c echo.Context) []string {
	s, err := session.Get(Name, c)
	if err != nil {
		return nil
	}
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if m, ok := f.(string); ok {
			messages = append(messages, m)
		}
	}
	// Best effort: if the save fails the drained flashes show once more on
	// the next page, never lost mid-render.
	_ = s.Save(c.Request(), c.Response())
	return messages
}
