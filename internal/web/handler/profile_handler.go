package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloggie/bloggie-web/internal/core/domain"
	"github.com/bloggie/bloggie-web/internal/core/ports"
	websession "github.com/bloggie/bloggie-web/internal/web/session"
)

// ProfileHandler serves GET /Profile: the current user's posts (the feed
// filtered by author, order preserved) next to static profile metadata.
// No mutations are exposed from this view.
type ProfileHandler struct {
	service ports.FeedService
}

func NewProfileHandler(service ports.FeedService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) Show(c echo.Context) error {
	username := ctxUsername(c)
	view := profileView{
		Title:    "Profile",
		Username: username,
		Flash:    websession.TakeFlashes(c),
		Profile:  domain.DefaultProfile(username),
	}

	posts, err := h.service.AuthorPosts(c.Request().Context(), username)
	if err != nil {
		view.Error = feedLoadError
	} else {
		// Empty viewer keeps Mine false on every entry: this page is
		// read-only, editing happens on the feed.
		view.Posts = toPostViews(posts, "")
	}
	return c.Render(http.StatusOK, "profile.html", view)
}
