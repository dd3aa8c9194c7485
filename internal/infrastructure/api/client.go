// Package api implements the outbound ports against the remote Bloggie
// REST API. It is the only place in the codebase that knows the wire
// format; everything above it works with domain types.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloggie/bloggie-web/internal/core/domain"
	"github.com/bloggie/bloggie-web/internal/metrics"
)

// Per-action default messages, used when the server's error body carries
// no message of its own.
const (
	msgLoginFailed    = "Login failed"
	msgRegisterFailed = "Registration failed"
	msgLogoutFailed   = "Logout failed"
	msgListFailed     = "Failed to load posts"
	msgCreateFailed   = "Failed to create post"
	msgUpdateFailed   = "Failed to update post"
	msgDeleteFailed   = "Failed to delete post"
)

// Client talks HTTP+JSON to the Bloggie API. It implements ports.AuthAPI
// and ports.FeedAPI. The zero http.Client is acceptable: no client-side
// timeout is enforced, the transport's defaults apply.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

func NewClient(baseURL string, httpClient *http.Client, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{baseURL: baseURL, http: httpClient, logger: logger}
}

// --- Wire types ---

type loginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type wirePost struct {
	ID        int64    `json:"id"`
	Author    string   `json:"author"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	CreatedAt string   `json:"created_at"`
	Images    []string `json:"images"`
}

func (p wirePost) toDomain() domain.Post {
	return domain.Post{
		ID:        p.ID,
		Author:    p.Author,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: parseTimestamp(p.CreatedAt),
		Images:    p.Images,
	}
}

// parseTimestamp tolerates the formats the API has been seen emitting.
// An unrecognized value yields the zero time rather than a failed decode.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// --- ports.AuthAPI ---

func (c *Client) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	var resp loginResponse
	if err := c.do(ctx, "login", http.MethodPost, "/login", "", creds, &resp, msgLoginFailed); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *Client) Register(ctx context.Context, reg domain.Registration) error {
	return c.do(ctx, "register", http.MethodPost, "/register", "", reg, nil, msgRegisterFailed)
}

func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, "logout", http.MethodPost, "/logout", token, nil, nil, msgLogoutFailed)
}

// --- ports.FeedAPI ---

func (c *Client) ListPosts(ctx context.Context) ([]domain.Post, error) {
	var wire []wirePost
	if err := c.do(ctx, "list_posts", http.MethodGet, "/post", "", nil, &wire, msgListFailed); err != nil {
		return nil, err
	}
	posts := make([]domain.Post, 0, len(wire))
	for _, p := range wire {
		posts = append(posts, p.toDomain())
	}
	return posts, nil
}

func (c *Client) CreatePost(ctx context.Context, token string, draft domain.Draft) (*domain.Post, error) {
	var wire wirePost
	if err := c.do(ctx, "create_post", http.MethodPost, "/post", token, draft, &wire, msgCreateFailed); err != nil {
		return nil, err
	}
	post := wire.toDomain()
	return &post, nil
}

func (c *Client) UpdatePost(ctx context.Context, token string, id int64, fields domain.PostUpdate) (*domain.Post, error) {
	var wire wirePost
	path := "/post/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, "update_post", http.MethodPut, path, token, fields, &wire, msgUpdateFailed); err != nil {
		return nil, err
	}
	post := wire.toDomain()
	// Servers that answer with a partial body still identify the post.
	if post.ID == 0 {
		post.ID = id
		post.Title = fields.Title
		post.Content = fields.Content
	}
	return &post, nil
}

func (c *Client) DeletePost(ctx context.Context, token string, id int64) error {
	path := "/post/" + strconv.FormatInt(id, 10)
	return c.do(ctx, "delete_post", http.MethodDelete, path, token, nil, nil, msgDeleteFailed)
}

// Ping reports whether the upstream API is reachable at the transport
// level. Any HTTP response, including an error status, counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/post", nil)
	if err != nil {
		return fmt.Errorf("build ping request: %w", err)
	}
	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("ping upstream: %w", err)
	}
	io.Copy(io.Discard, res.Body)
	return res.Body.Close()
}

// do issues one request and decodes the result. Non-2xx responses become
// *domain.RequestError with the server's message when present, defaultMsg
// otherwise. Transport failures come back as plain wrapped errors.
func (c *Client) do(ctx context.Context, op, method, path, token string, body, out any, defaultMsg string) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	res, err := c.http.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		c.logger.Error().Err(err).Str("operation", op).Msg("upstream request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg := serverMessage(data, defaultMsg)
		c.logger.Warn().Int("status", res.StatusCode).Str("operation", op).Str("message", msg).Msg("upstream rejected request")
		return &domain.RequestError{StatusCode: res.StatusCode, Message: msg}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func serverMessage(data []byte, fallback string) string {
	var body errorBody
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return fallback
}
