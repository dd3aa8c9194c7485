package service

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bloggie/bloggie-web/internal/core/domain"
	"github.com/bloggie/bloggie-web/internal/core/ports"
)

// FeedService implements the post feed use cases. It mirrors the server's
// post list in memory, newest-first. All mirror mutations are keyed by
// post id and applied under one mutex, so a create racing an update or
// delete cannot lose either change. The mirror is never reconciled with
// concurrent server-side edits; the next Timeline call replaces it.
type FeedService struct {
	api    ports.FeedAPI
	logger zerolog.Logger

	mu     sync.Mutex
	mirror []domain.Post
}

func NewFeedService(api ports.FeedAPI, logger zerolog.Logger) *FeedService {
	return &FeedService{api: api, logger: logger}
}

// Timeline fetches the full post list, orders it newest-first, replaces
// the mirror, and returns a copy.
func (s *FeedService) Timeline(ctx context.Context) ([]domain.Post, error) {
	posts, err := s.api.ListPosts(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load posts")
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	s.mu.Lock()
	s.mirror = posts
	out := snapshot(s.mirror)
	s.mu.Unlock()
	return out, nil
}

// AuthorPosts returns the timeline entries whose author matches, order
// preserved.
func (s *FeedService) AuthorPosts(ctx context.Context, author string) ([]domain.Post, error) {
	posts, err := s.Timeline(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if p.Author == author {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Create submits the draft and prepends the server-confirmed post to the
// mirror.
func (s *FeedService) Create(ctx context.Context, token string, draft domain.Draft) (*domain.Post, error) {
	post, err := s.api.CreatePost(ctx, token, draft)
	if err != nil {
		s.logger.Warn().Err(err).Msg("create post failed")
		return nil, err
	}

	s.mu.Lock()
	s.mirror = append([]domain.Post{*post}, s.mirror...)
	s.mu.Unlock()

	s.logger.Info().Int64("post_id", post.ID).Msg("post created")
	return post, nil
}

// Update replaces the title/content of an existing post and swaps the
// matching mirror entry in place.
func (s *FeedService) Update(ctx context.Context, token string, id int64, fields domain.PostUpdate) (*domain.Post, error) {
	post, err := s.api.UpdatePost(ctx, token, id, fields)
	if err != nil {
		s.logger.Warn().Err(err).Int64("post_id", id).Msg("update post failed")
		return nil, err
	}

	s.mu.Lock()
	for i := range s.mirror {
		if s.mirror[i].ID == id {
			updated := s.mirror[i]
			updated.Title = post.Title
			updated.Content = post.Content
			s.mirror[i] = updated
			break
		}
	}
	s.mu.Unlock()

	s.logger.Info().Int64("post_id", id).Msg("post updated")
	return post, nil
}

// Delete removes the post upstream and drops the matching mirror entry.
func (s *FeedService) Delete(ctx context.Context, token string, id int64) error {
	if err := s.api.DeletePost(ctx, token, id); err != nil {
		s.logger.Warn().Err(err).Int64("post_id", id).Msg("delete post failed")
		return err
	}

	s.mu.Lock()
	kept := s.mirror[:0]
	for _, p := range s.mirror {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.mirror = kept
	s.mu.Unlock()

	s.logger.Info().Int64("post_id", id).Msg("post deleted")
	return nil
}

// Cached returns the current mirror without touching the API.
func (s *FeedService) Cached() []domain.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.mirror)
}

func snapshot(posts []domain.Post) []domain.Post {
	out := make([]domain.Post, len(posts))
	copy(out, posts)
	return out
}
