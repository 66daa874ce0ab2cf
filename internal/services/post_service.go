// Package services – PostService
//
// This file implements the PostService, which manages the lifecycle of board
// posts. It validates input, confirms the requesting account still exists,
// enforces the ownership rule (only the author may update or delete a post),
// and coordinates repository operations.
//
// Every predictable failure is raised as a classified apperr kind so the HTTP
// dispatcher can map it deterministically; raw store errors never escape this
// layer unclassified.
package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/jwpark-dev/go-board-backend/internal/apperr"
	"github.com/jwpark-dev/go-board-backend/internal/domain"
)

// PostRepo defines the repository contract required by PostService.
// Implementations are responsible for persistence of post records and the
// requester-existence lookup.
type PostRepo interface {
	// UserExists reports whether the account with the given id exists.
	UserExists(ctx context.Context, db *gorm.DB, id string) (bool, error)

	// CreatePost inserts a new post row owned by userID.
	CreatePost(ctx context.Context, db *gorm.DB, userID, title, content string, categoryID *int64) (*domain.Post, error)

	// ListPosts returns post summaries ordered by creation time; dir is one
	// of "ASC" or "DESC".
	ListPosts(ctx context.Context, db *gorm.DB, dir string) ([]domain.PostSummary, error)

	// GetPost fetches a post by id, including its content.
	GetPost(ctx context.Context, db *gorm.DB, id string) (*domain.Post, error)

	// UpdatePost mutates title/content conditioned on (id, userID) matching
	// in one statement; zero affected rows surfaces as a not-found error.
	UpdatePost(ctx context.Context, db *gorm.DB, id, userID, title, content string) error

	// DeletePost removes the post conditioned on (id, userID) matching in
	// one statement; zero affected rows surfaces as a not-found error.
	DeletePost(ctx context.Context, db *gorm.DB, id, userID string) error
}

// PostService provides post-level operations: create, list, get, update, and
// delete. It enforces field validation and the ownership invariant.
type PostService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the post repository used by this service.
	Repo PostRepo

	// TitleMaxLen caps stored titles by rune length.
	TitleMaxLen int
}

// NewPostService constructs a PostService with the default title cap.
func NewPostService(db *gorm.DB, r PostRepo) *PostService {
	return &PostService{
		DB:          db,
		Repo:        r,
		TitleMaxLen: 255,
	}
}

// Create persists a new post owned by requesterID. Title and content must be
// non-blank after trimming; the requester must still exist as a user.
func (s *PostService) Create(ctx context.Context, requesterID, title, content string, categoryID *int64) (*domain.Post, error) {
	title, content = strings.TrimSpace(title), strings.TrimSpace(content)
	if title == "" {
		return nil, apperr.Validation("title")
	}
	if content == "" {
		return nil, apperr.Validation("content")
	}

	exists, err := s.Repo.UserExists(ctx, s.DB, requesterID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnexpected, err)
	}
	if !exists {
		return nil, apperr.New(apperr.KindUserNotFound)
	}

	p, err := s.Repo.CreatePost(ctx, s.DB, requesterID, s.clip(title), content, categoryID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnexpected, err)
	}
	return p, nil
}

// List returns post summaries ordered by creation time. The sort parameter is
// normalized case-insensitively to ASC/DESC, defaulting to DESC on anything
// unrecognized, and the normalized direction is applied to the query.
func (s *PostService) List(ctx context.Context, sort string) ([]domain.PostSummary, error) {
	out, err := s.Repo.ListPosts(ctx, s.DB, NormalizeSort(sort))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnexpected, err)
	}
	return out, nil
}

// Get returns the full post record, including content and both timestamps.
func (s *PostService) Get(ctx context.Context, postID string) (*domain.Post, error) {
	p, err := s.Repo.GetPost(ctx, s.DB, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound)
		}
		return nil, apperr.Wrap(apperr.KindUnexpected, err)
	}
	return p, nil
}

// Update mutates title and content of a post owned by requesterID.
//
// The read distinguishes a missing post (NotFound) from a foreign one
// (Forbidden); the write itself is still conditioned on (id, owner), so a
// post deleted between the two steps surfaces as NotFound instead of being
// resurrected by the stale read.
func (s *PostService) Update(ctx context.Context, requesterID, postID, title, content string) error {
	title, content = strings.TrimSpace(title), strings.TrimSpace(content)
	if title == "" {
		return apperr.Validation("title")
	}
	if content == "" {
		return apperr.Validation("content")
	}

	if err := s.authorize(ctx, requesterID, postID); err != nil {
		return err
	}

	err := s.Repo.UpdatePost(ctx, s.DB, postID, requesterID, s.clip(title), content)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.KindNotFound)
		}
		return apperr.Wrap(apperr.KindUnexpected, err)
	}
	return nil
}

// Delete permanently removes a post owned by requesterID. Deleting an already
// deleted post reports NotFound; the same holds for losing a race against a
// concurrent delete of the same id.
func (s *PostService) Delete(ctx context.Context, requesterID, postID string) error {
	if err := s.authorize(ctx, requesterID, postID); err != nil {
		return err
	}

	err := s.Repo.DeletePost(ctx, s.DB, postID, requesterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.KindNotFound)
		}
		return apperr.Wrap(apperr.KindUnexpected, err)
	}
	return nil
}

// authorize fetches the post and checks ownership, translating the outcome
// into NotFound or Forbidden.
func (s *PostService) authorize(ctx context.Context, requesterID, postID string) error {
	p, err := s.Repo.GetPost(ctx, s.DB, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.KindNotFound)
		}
		return apperr.Wrap(apperr.KindUnexpected, err)
	}
	if p.UserID != requesterID {
		return apperr.New(apperr.KindForbidden)
	}
	return nil
}

// clip truncates a title to the configured maximum rune length.
func (s *PostService) clip(title string) string {
	if s.TitleMaxLen > 0 && utf8.RuneCountInString(title) > s.TitleMaxLen {
		return string([]rune(title)[:s.TitleMaxLen])
	}
	return title
}

// NormalizeSort maps arbitrary sort input onto "ASC" or "DESC" (the default).
func NormalizeSort(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), "ASC") {
		return "ASC"
	}
	return "DESC"
}
