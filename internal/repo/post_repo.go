// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Post model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a post is not found, functions return ErrNotFound
//     (an alias of gorm.ErrRecordNotFound, declared in db.go).
//   - UpdatePost and DeletePost are conditioned on both id and owner in a
//     single statement; zero affected rows is reported as ErrNotFound so a
//     row that vanished between the caller's read and the write is never
//     silently "updated".
//   - On other DB errors, the raw gorm error is propagated.
package repo

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jwpark-dev/go-board-backend/internal/domain"
)

// SortDir is a validated ORDER BY direction. Only the two constants below are
// ever interpolated into a query.
type SortDir string

const (
	// SortAsc orders oldest first.
	SortAsc SortDir = "ASC"
	// SortDesc orders newest first.
	SortDesc SortDir = "DESC"
)

// NormalizeSortDir maps arbitrary user input onto a SortDir. Matching is
// case-insensitive; anything unrecognized (including empty input) defaults
// to descending.
func NormalizeSortDir(s string) SortDir {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ASC":
		return SortAsc
	default:
		return SortDesc
	}
}

// CreatePost inserts a new Post owned by userID. The post ID is a randomly
// generated UUID (string), and CreatedAt is set to UTC.
//
// On success, it returns the persisted Post. On failure, it returns a DB error.
func CreatePost(ctx context.Context, db *gorm.DB, userID, title, content string, categoryID *int64) (*domain.Post, error) {
	p := &domain.Post{
		ID:         uuid.NewString(),
		UserID:     userID,
		Title:      title,
		Content:    content,
		CategoryID: categoryID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// ListPosts returns summaries of all posts ordered by creation time in the
// given direction. It returns an empty slice when the board is empty. On DB
// error, it returns the error.
func ListPosts(ctx context.Context, db *gorm.DB, dir SortDir) ([]domain.PostSummary, error) {
	out := []domain.PostSummary{}
	err := db.WithContext(ctx).
		Model(&domain.Post{}).
		Select("id", "title", "category_id", "created_at").
		Order("created_at " + string(dir)).
		Find(&out).Error
	return out, err
}

// GetPost fetches a single post by id, including content and timestamps.
// If the record does not exist, it returns ErrNotFound.
func GetPost(ctx context.Context, db *gorm.DB, id string) (*domain.Post, error) {
	var p domain.Post
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePost sets title and content on the post identified by id and owned by
// userID in one conditional statement. If no rows are affected (post missing
// or not owned by userID), it returns ErrNotFound. On DB error, the raw error
// is returned.
func UpdatePost(ctx context.Context, db *gorm.DB, id, userID, title, content string) error {
	res := db.WithContext(ctx).
		Model(&domain.Post{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{"title": title, "content": content})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePost permanently removes the post identified by id and owned by
// userID in one conditional statement. If no rows are affected, it returns
// ErrNotFound. On DB error, the raw error is returned.
func DeletePost(ctx context.Context, db *gorm.DB, id, userID string) error {
	res := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.Post{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
