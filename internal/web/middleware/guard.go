package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	websession "github.com/bloggie/bloggie-web/internal/web/session"
)

// RequireSession gates authenticated-only views. Without a token the
// request is redirected to the login page carrying a flash message; with
// one, the token and the username claim are injected into the context.
// The check is stateless and re-evaluated on every navigation.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := websession.CurrentToken(c)
			if token == "" {
				_ = websession.Flash(c, "Please log in to continue.")
				return c.Redirect(http.StatusSeeOther, "/")
			}

			c.Set("token", token)
			c.Set("username", UsernameFromToken(token))
			return next(c)
		}
	}
}

// UsernameFromToken pulls the user's display identity out of the API
// token's claims. The signature is not verified here: the remote server
// is the sole authority on token validity, this tier only needs the name
// for display and feed filtering.
func UsernameFromToken(token string) string {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return ""
	}

	for _, key := range []string{"username", "name", "sub", "email"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
