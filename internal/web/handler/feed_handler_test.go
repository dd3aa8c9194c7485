package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bloggie/bloggie-web/internal/core/domain"
)

type stubFeedService struct {
	timelineFn func(ctx context.Context) ([]domain.Post, error)
	authorFn   func(ctx context.Context, author string) ([]domain.Post, error)
	createFn   func(ctx context.Context, token string, draft domain.Draft) (*domain.Post, error)
	updateFn   func(ctx context.Context, token string, id int64, fields domain.PostUpdate) (*domain.Post, error)
	deleteFn   func(ctx context.Context, token string, id int64) error
	cached     []domain.Post
}

func (s *stubFeedService) Timeline(ctx context.Context) ([]domain.Post, error) {
	return s.timelineFn(ctx)
}

func (s *stubFeedService) AuthorPosts(ctx context.Context, author string) ([]domain.Post, error) {
	return s.authorFn(ctx, author)
}

func (s *stubFeedService) Create(ctx context.Context, token string, draft domain.Draft) (*domain.Post, error) {
	return s.createFn(ctx, token, draft)
}

func (s *stubFeedService) Update(ctx context.Context, token string, id int64, fields domain.PostUpdate) (*domain.Post, error) {
	return s.updateFn(ctx, token, id, fields)
}

func (s *stubFeedService) Delete(ctx context.Context, token string, id int64) error {
	return s.deleteFn(ctx, token, id)
}

func (s *stubFeedService) Cached() []domain.Post {
	return s.cached
}

func asUser(username, token string, h echo.HandlerFunc) echo.HandlerFunc {
	return withSession(func(c echo.Context) error {
		c.Set("username", username)
		c.Set("token", token)
		return h(c)
	})
}

func samplePosts() []domain.Post {
	return []domain.Post{
		{ID: 2, Author: "callmeoliver", Title: "Mine", Content: "my post", CreatedAt: time.Date(2024, 3, 9, 8, 0, 0, 0, time.UTC)},
		{ID: 1, Author: "someoneelse", Title: "Theirs", Content: "their post", CreatedAt: time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)},
	}
}

func TestFeedHandler_Home_RendersPostsAndComposer(t *testing.T) {
	e := newTestEcho(t)
	stub := &stubFeedService{
		timelineFn: func(context.Context) ([]domain.Post, error) { return samplePosts(), nil },
	}
	handler := NewFeedHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/Home", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := asUser("callmeoliver", "tok", handler.Home)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Mine") || !strings.Contains(body, "Theirs") {
		t.Fatalf("posts missing from page:\n%s", body)
	}
	if !strings.Contains(body, `action="/post"`) {
		t.Fatalf("composer missing from Home")
	}
	if !strings.Contains(body, "March 9, 2024") {
		t.Fatalf("post date not formatted for display")
	}
	// Edit and delete controls only on the viewer's own post.
	if !strings.Contains(body, `action="/post/2/delete"`) {
		t.Fatalf("delete control missing on own post")
	}
	if strings.Contains(body, `action="/post/1/delete"`) {
		t.Fatalf("delete control present on another author's post")
	}
}

func TestFeedHandler_Feeds_HasNoComposer(t *testing.T) {
	e := newTestEcho(t)
	stub := &stubFeedService{
		timelineFn: func(context.Context) ([]domain.Post, error) { return samplePosts(), nil },
	}
	handler := NewFeedHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/Feeds", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := asUser("callmeoliver", "tok", handler.Feeds)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if strings.Contains(rec.Body.String(), `action="/post"`) {
		t.Fatalf("composer should not render on Feeds")
	}
}

func TestFeedHandler_Home_LoadFailureShowsNotice(t *testing.T) {
	e := newTestEcho(t)
	stub := &stubFeedService{
		timelineFn: func(context.Context) ([]domain.Post, error) {
			return nil, &domain.RequestError{StatusCode: 500, Message: "Failed to load posts"}
		},
	}
	handler := NewFeedHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/Home", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := asUser("callmeoliver", "tok", handler.Home)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// The page itself still renders; only the list area errors.
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), feedLoadError) {
		t.Fatalf("load error notice missing from page")
	}
}

func TestFeedHandler_Create_Success(t *testing.T) {
	e := newTestEcho(t)
	stub := &stubFeedService{
		createFn: func(_ context.Context, token string, draft domain.Draft) (*domain.Post, error) {
			if token != "tok" {
				t.Fatalf("token not forwarded: %q", token)
			}
			if draft.Title != "Hello" || draft.Content != "World" {
				t.Fatalf("unexpected draft: %+v", draft)
			}
			return &domain.Post{ID: 10, Author: "callmeoliver", Title: draft.Title, Content: draft.Content}, nil
		},
	}
	handler := NewFeedHandler(stub)

	req := newFormRequest("/post", url.Values{"title": {"  Hello  "}, "content": {"  World  "}})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := asUser("callmeoliver", "tok", handler.Create)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/Home" {
		t.Fatalf("expected redirect to /Home, got %q", loc)
	}
}

func TestFeedHandler_Create_EmptyContentBlocked(t *testing.T) {
	e := newTestEcho(t)
	stub := &stubFeedService{
		createFn: func(context.Context, string, domain.Draft) (*domain.Post, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
		cached: samplePosts(),
	}
	handler := NewFeedHandler(stub)

	req := newFormRequest("/post", url.Values{"title": {"Title only"}, "content": {"   "}})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := asUser("callmeoliver", "tok", handler.Create)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Content is required") {
		t.Fatalf("field error missing from page:\n%s", body)
	}
	if !strings.Contains(body, "Title only") {
		t.Fatalf("draft title not retained")
	}
	// The cached timeline still shows behind the failed composer.
	if !strings.Contains(body, "Theirs") {
		t.Fatalf("cached posts missing from re-render")
	}
}

func TestFeedHandler_Create_UpstreamFailureKeepsDraft(t *testing.T) {
	e := newTestEcho(t)
	stub := &stubFeedService{
		createFn: func(context.Context, string, domain.Draft) (*domain.Post, error) {
			return nil, &domain.RequestError{StatusCode: 401, Message: "Failed to create post"}
		},
	}
	handler := NewFeedHandler(stub)

	req := newFormRequest("/post", url.Values{"title": {"Hello"}, "content": {"World"}})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := asUser("callmeoliver", "tok", handler.Create)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Failed to create post") {
		t.Fatalf("error message missing from page")
	}
	if !strings.Contains(body, "World") {
		t.Fatalf("draft content not retained")
	}
}

func TestFeedHandler_Update_Success(t *testing.T) {
	e := newTestEcho(t)
	stub := &stubFeedService{
		updateFn: func(_ context.Context, token string, id int64, fields domain.PostUpdate) (*domain.Post, error) {
			if id != 7 || fields.Title != "Edited" {
				t.Fatalf("unexpected update: id=%d fields=%+v", id, fields)
			}
			return &domain.Post{ID: id, Title: fields.Title, Content: fields.Content}, nil
		},
	}
	handler := NewFeedHandler(stub)

	req := newFormRequest("/post/7", url.Values{"title": {"Edited"}, "content": {"Changed"}})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := asUser("callmeoliver", "tok", handler.Update)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/Home" {
		t.Fatalf("expected redirect to /Home, got %q", loc)
	}
}

func TestFeedHandler_Update_BadIDIs404(t *testing.T) {
	e := newTestEcho(t)
	stub := &stubFeedService{
		updateFn: func(context.Context, string, int64, domain.PostUpdate) (*domain.Post, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewFeedHandler(stub)

	req := newFormRequest("/post/abc", url.Values{"title": {"x"}, "content": {"y"}})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := asUser("callmeoliver", "tok", handler.Update)(c)
	if !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestFeedHandler_Delete_Success(t *testing.T) {
	e := newTestEcho(t)
	var deleted int64
	stub := &stubFeedService{
		deleteFn: func(_ context.Context, token string, id int64) error {
			deleted = id
			return nil
		},
	}
	handler := NewFeedHandler(stub)

	req := newFormRequest("/post/3/delete", url.Values{})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := asUser("callmeoliver", "tok", handler.Delete)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if deleted != 3 {
		t.Fatalf("expected delete of post 3, got %d", deleted)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
}

func TestFeedHandler_Delete_FailureStillRedirects(t *testing.T) {
	e := newTestEcho(t)
	stub := &stubFeedService{
		deleteFn: func(context.Context, string, int64) error {
			return &domain.RequestError{StatusCode: 403, Message: "Failed to delete post"}
		},
	}
	handler := NewFeedHandler(stub)

	req := newFormRequest("/post/3/delete", url.Values{})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := asUser("callmeoliver", "tok", handler.Delete)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/Home" {
		t.Fatalf("expected redirect to /Home, got %q", loc)
	}
}
