package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloggie/bloggie-web/internal/core/domain"
	"github.com/bloggie/bloggie-web/internal/core/ports"
	"github.com/bloggie/bloggie-web/internal/metrics"
	websession "github.com/bloggie/bloggie-web/internal/web/session"
)

// AuthHandler serves the login and registration pages and processes their
// submissions. Local validation runs before any API call; an invalid form
// never reaches the network.
type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// LoginPage renders GET /.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", authView{
		Title: "Login",
		Flash: websession.TakeFlashes(c),
	})
}

// Login processes POST /login.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	if err := c.Validate(&form); err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return c.Render(http.StatusBadRequest, "login.html", authView{
			Title:       "Login",
			Email:       form.Email,
			FieldErrors: fieldErrors(err),
		})
	}

	token, err := h.service.Login(c.Request().Context(), domain.Credentials{
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return c.Render(errorStatus(err), "login.html", authView{
			Title: "Login",
			Email: form.Email,
			Error: userMessage(err),
		})
	}

	if err := websession.Login(c, token); err != nil {
		return err
	}
	_ = websession.Flash(c, "Login successful!")

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.Redirect(http.StatusSeeOther, "/Home")
}

// RegisterPage renders GET /register.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", authView{
		Title: "Register",
		Flash: websession.TakeFlashes(c),
	})
}

// Register processes POST /register. On success the user is sent back to
// the login page with a notice; there is no auto-login.
func (h *AuthHandler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	if err := c.Validate(&form); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return c.Render(http.StatusBadRequest, "register.html", authView{
			Title:       "Register",
			Email:       form.Email,
			FieldErrors: fieldErrors(err),
		})
	}

	err := h.service.Register(c.Request().Context(), domain.Registration{
		Email:           form.Email,
		Password:        form.Password,
		ConfirmPassword: form.ConfirmPassword,
	})
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
		return c.Render(errorStatus(err), "register.html", authView{
			Title: "Register",
			Email: form.Email,
			Error: userMessage(err),
		})
	}

	_ = websession.Flash(c, "Registration successful! You can now log in.")

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout processes POST /logout: best-effort upstream invalidation, then
// the local session is cleared regardless.
func (h *AuthHandler) Logout(c echo.Context) error {
	_ = h.service.Logout(c.Request().Context(), ctxToken(c))

	if err := websession.Logout(c); err != nil {
		return err
	}
	_ = websession.Flash(c, "Logged out successfully!")
	return c.Redirect(http.StatusSeeOther, "/")
}
