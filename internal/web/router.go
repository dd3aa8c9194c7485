package web

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/bloggie/bloggie-web/internal/core/ports"
	"github.com/bloggie/bloggie-web/internal/infrastructure/config"
	"github.com/bloggie/bloggie-web/internal/web/handler"
	webmiddleware "github.com/bloggie/bloggie-web/internal/web/middleware"
	"github.com/bloggie/bloggie-web/internal/web/render"
	websession "github.com/bloggie/bloggie-web/internal/web/session"
)

// NewRouter assembles the Echo instance with all middleware, page routes
// and operational endpoints wired in.
func NewRouter(cfg *config.Config, auth ports.AuthService, feed ports.FeedService, upstream handler.UpstreamPinger, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	renderer, err := render.New()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(echoprometheus.NewMiddleware("bloggie"))
	e.Use(session.Middleware(websession.NewStore(cfg.SessionSecret, cfg.Development())))

	authHandler := handler.NewAuthHandler(auth)
	feedHandler := handler.NewFeedHandler(feed)
	profileHandler := handler.NewProfileHandler(feed)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(upstream)

	// Public pages.
	e.GET("/", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/register", authHandler.RegisterPage)
	e.POST("/register", authHandler.Register)

	// Pages behind the session guard.
	guard := webmiddleware.RequireSession()
	e.GET("/Home", feedHandler.Home, guard)
	e.GET("/Feeds", feedHandler.Feeds, guard)
	e.GET("/Profile", profileHandler.Show, guard)
	e.POST("/post", feedHandler.Create, guard)
	e.POST("/post/:id", feedHandler.Update, guard)
	e.POST("/post/:id/delete", feedHandler.Delete, guard)
	e.POST("/logout", authHandler.Logout, guard)

	// Operational endpoints.
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e, nil
}
