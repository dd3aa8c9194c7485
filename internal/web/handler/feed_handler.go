package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bloggie/bloggie-web/internal/core/domain"
	"github.com/bloggie/bloggie-web/internal/core/ports"
	"github.com/bloggie/bloggie-web/internal/metrics"
	websession "github.com/bloggie/bloggie-web/internal/web/session"
)

const feedLoadError = "Failed to load posts. Please try again later."

// FeedHandler serves the feed pages and the post create/update/delete
// submissions. Mutations follow POST-redirect-GET: a success lands back on
// /Home with a flash notice.
type FeedHandler struct {
	service ports.FeedService
}

func NewFeedHandler(service ports.FeedService) *FeedHandler {
	return &FeedHandler{service: service}
}

// Home renders GET /Home: the feed plus the new-post composer.
func (h *FeedHandler) Home(c echo.Context) error {
	return h.feedPage(c, "Home", true)
}

// Feeds renders GET /Feeds: the read-only feed listing.
func (h *FeedHandler) Feeds(c echo.Context) error {
	return h.feedPage(c, "Feeds", false)
}

func (h *FeedHandler) feedPage(c echo.Context, title string, composer bool) error {
	username := ctxUsername(c)
	view := feedView{
		Title:        title,
		Username:     username,
		Flash:        websession.TakeFlashes(c),
		ShowComposer: composer,
	}

	posts, err := h.service.Timeline(c.Request().Context())
	if err != nil {
		view.Error = feedLoadError
	} else {
		view.Posts = toPostViews(posts, username)
	}
	return c.Render(http.StatusOK, "feed.html", view)
}

// Create processes POST /post.
func (h *FeedHandler) Create(c echo.Context) error {
	var form postForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	form.Title = strings.TrimSpace(form.Title)
	form.Content = strings.TrimSpace(form.Content)

	username := ctxUsername(c)
	if err := c.Validate(&form); err != nil {
		metrics.PostActionsTotal.WithLabelValues("create", "invalid").Inc()
		return c.Render(http.StatusBadRequest, "feed.html", feedView{
			Title:        "Home",
			Username:     username,
			Draft:        form,
			FieldErrors:  fieldErrors(err),
			Posts:        toPostViews(h.service.Cached(), username),
			ShowComposer: true,
		})
	}

	_, err := h.service.Create(c.Request().Context(), ctxToken(c), domain.Draft{
		Title:   form.Title,
		Content: form.Content,
	})
	if err != nil {
		metrics.PostActionsTotal.WithLabelValues("create", "failure").Inc()
		return c.Render(errorStatus(err), "feed.html", feedView{
			Title:        "Home",
			Username:     username,
			Draft:        form,
			Error:        userMessage(err),
			Posts:        toPostViews(h.service.Cached(), username),
			ShowComposer: true,
		})
	}

	metrics.PostActionsTotal.WithLabelValues("create", "success").Inc()
	_ = websession.Flash(c, "Post created successfully!")
	return c.Redirect(http.StatusSeeOther, "/Home")
}

// Update processes POST /post/:id.
func (h *FeedHandler) Update(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return err
	}

	var form postForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	form.Title = strings.TrimSpace(form.Title)
	form.Content = strings.TrimSpace(form.Content)

	if err := c.Validate(&form); err != nil {
		metrics.PostActionsTotal.WithLabelValues("update", "invalid").Inc()
		_ = websession.Flash(c, err.Error())
		return c.Redirect(http.StatusSeeOther, "/Home")
	}

	_, err = h.service.Update(c.Request().Context(), ctxToken(c), id, domain.PostUpdate{
		Title:   form.Title,
		Content: form.Content,
	})
	if err != nil {
		metrics.PostActionsTotal.WithLabelValues("update", "failure").Inc()
		_ = websession.Flash(c, userMessage(err))
		return c.Redirect(http.StatusSeeOther, "/Home")
	}

	metrics.PostActionsTotal.WithLabelValues("update", "success").Inc()
	_ = websession.Flash(c, "Post updated successfully!")
	return c.Redirect(http.StatusSeeOther, "/Home")
}

// Delete processes POST /post/:id/delete, submitted by the confirmation
// form. Cancelling the confirmation never reaches this handler.
func (h *FeedHandler) Delete(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), ctxToken(c), id); err != nil {
		metrics.PostActionsTotal.WithLabelValues("delete", "failure").Inc()
		_ = websession.Flash(c, userMessage(err))
		return c.Redirect(http.StatusSeeOther, "/Home")
	}

	metrics.PostActionsTotal.WithLabelValues("delete", "success").Inc()
	_ = websession.Flash(c, "Post deleted successfully!")
	return c.Redirect(http.StatusSeeOther, "/Home")
}

// postID parses the :id route param. Anything that is not a positive
// integer reads as a missing post; the global error handler turns the
// sentinel into the 404 page.
func postID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrPostNotFound
	}
	return id, nil
}
