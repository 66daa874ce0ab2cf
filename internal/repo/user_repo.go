// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides read-only access to the User model:
// accounts are managed by the identity service, this backend only confirms
// that a given id still maps to a live account.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/jwpark-dev/go-board-backend/internal/domain"
)

// GetUser fetches a user by id. If the record does not exist, it returns
// ErrNotFound. On other DB errors, the raw error is returned.
func GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	var u domain.User
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UserExists reports whether a user with the given id exists. It folds the
// not-found case into a boolean so callers that only need an existence check
// do not have to inspect errors.
func UserExists(ctx context.Context, db *gorm.DB, id string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
