// Package domain defines the persistence models for users and posts. These
// types are mapped with GORM and form the data layer of the board backend.
package domain

import "time"

// User represents an account able to author posts. This service treats users
// as read-only: accounts are provisioned elsewhere and only looked up here to
// confirm that a token subject still exists.
//
// Fields:
//   - ID: stable identifier carried as the token subject (varchar(64)).
//   - Nickname: display name, unique across accounts.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type User struct {
	ID        string    `json:"id"       gorm:"type:varchar(64);primaryKey"`
	Nickname  string    `json:"nickname" gorm:"type:varchar(64);not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Post represents a board entry. The owner is fixed at creation time and
// never changes; only the owner may update or delete the post. Deletion is a
// hard delete, so there is intentionally no gorm.DeletedAt column.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - UserID: identifier of the author; indexed for ownership lookups.
//   - Title / Content: required, non-empty after trimming.
//   - CategoryID: optional board category reference.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type Post struct {
	ID         string    `json:"id"          gorm:"type:char(36);primaryKey"`
	UserID     string    `json:"user_id"     gorm:"type:varchar(64);not null;index:idx_user_posts"`
	Title      string    `json:"title"       gorm:"type:varchar(255);not null"`
	Content    string    `json:"content"     gorm:"type:text;not null"`
	CategoryID *int64    `json:"category_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"  gorm:"index"`
	UpdatedAt  time.Time `json:"updated_at"`

	// User is the author. Posts are cascade-deleted if the account is removed.
	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Post.
func (Post) TableName() string { return "posts" }

// PostSummary is the projection returned by the list endpoint: enough to
// render an index page without shipping post bodies.
type PostSummary struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	CategoryID *int64    `json:"category_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
