package repo

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jwpark-dev/go-board-backend/internal/domain"
)

func newPostRepoDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("post_repo_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Ensure the file handle is released before TempDir cleanup (Windows needs this).
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id string) {
	t.Helper()
	u := domain.User{ID: id, Nickname: "nick-" + id}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user %s: %v", id, err)
	}
}

func TestNormalizeSortDir(t *testing.T) {
	cases := map[string]SortDir{
		"ASC":   SortAsc,
		"asc":   SortAsc,
		" Asc ": SortAsc,
		"DESC":  SortDesc,
		"desc":  SortDesc,
		"bogus": SortDesc,
		"":      SortDesc,
	}
	for in, want := range cases {
		if got := NormalizeSortDir(in); got != want {
			t.Errorf("NormalizeSortDir(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestCreatePost_Error_NoTable(t *testing.T) {
	db := newPostRepoDB(t /* no migrations */)
	p, err := CreatePost(context.Background(), db, "u1", "t", "c", nil)
	if err == nil || p != nil {
		t.Fatalf("expected error creating without table, got post=%v err=%v", p, err)
	}
}

func TestCreatePost_PersistsAndSetsFields(t *testing.T) {
	db := newPostRepoDB(t, &domain.User{}, &domain.Post{})
	seedUser(t, db, "u1")

	cat := int64(3)
	start := time.Now().UTC().Add(-time.Minute)
	p, err := CreatePost(context.Background(), db, "u1", "Title", "Content", &cat)
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if p.ID == "" || p.UserID != "u1" || p.Title != "Title" || p.Content != "Content" {
		t.Fatalf("unexpected Post fields: %+v", p)
	}
	if p.CategoryID == nil || *p.CategoryID != 3 {
		t.Fatalf("category not persisted: %+v", p.CategoryID)
	}
	if p.CreatedAt.Before(start) {
		t.Fatalf("CreatedAt not set: %v", p.CreatedAt)
	}

	var stored domain.Post
	if err := db.First(&stored, "id = ?", p.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.UserID != "u1" {
		t.Fatalf("owner not persisted: %+v", stored)
	}
}

func TestListPosts_AppliesDirection(t *testing.T) {
	db := newPostRepoDB(t, &domain.User{}, &domain.Post{})
	seedUser(t, db, "u1")
	ctx := context.Background()

	base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		p := domain.Post{
			ID: fmt.Sprintf("p%d", i), UserID: "u1",
			Title: title, Content: "c",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("seed post: %v", err)
		}
	}

	asc, err := ListPosts(ctx, db, SortAsc)
	if err != nil {
		t.Fatalf("ListPosts asc: %v", err)
	}
	if len(asc) != 3 || asc[0].Title != "first" || asc[2].Title != "third" {
		t.Fatalf("ascending order wrong: %+v", asc)
	}

	desc, err := ListPosts(ctx, db, SortDesc)
	if err != nil {
		t.Fatalf("ListPosts desc: %v", err)
	}
	if len(desc) != 3 || desc[0].Title != "third" || desc[2].Title != "first" {
		t.Fatalf("descending order wrong: %+v", desc)
	}
}

func TestListPosts_EmptyBoardReturnsEmptySlice(t *testing.T) {
	db := newPostRepoDB(t, &domain.User{}, &domain.Post{})
	out, err := ListPosts(context.Background(), db, SortDesc)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}
}

func TestGetPost_NotFound(t *testing.T) {
	db := newPostRepoDB(t, &domain.User{}, &domain.Post{})
	_, err := GetPost(context.Background(), db, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdatePost_OwnerScoped(t *testing.T) {
	db := newPostRepoDB(t, &domain.User{}, &domain.Post{})
	seedUser(t, db, "owner")
	ctx := context.Background()

	p, err := CreatePost(ctx, db, "owner", "old title", "old content", nil)
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	// Wrong owner: the conditional WHERE must match zero rows.
	if err := UpdatePost(ctx, db, p.ID, "intruder", "x", "y"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("non-owner update: want ErrNotFound, got %v", err)
	}

	// Right owner: row updated in place.
	if err := UpdatePost(ctx, db, p.ID, "owner", "new title", "new content"); err != nil {
		t.Fatalf("owner update: %v", err)
	}
	got, err := GetPost(ctx, db, p.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Title != "new title" || got.Content != "new content" {
		t.Fatalf("update not applied: %+v", got)
	}
	if !got.UpdatedAt.After(got.CreatedAt) && !got.UpdatedAt.Equal(got.CreatedAt) {
		t.Fatalf("UpdatedAt not maintained: created=%v updated=%v", got.CreatedAt, got.UpdatedAt)
	}
}

func TestUpdatePost_MissingRow(t *testing.T) {
	db := newPostRepoDB(t, &domain.User{}, &domain.Post{})
	err := UpdatePost(context.Background(), db, "missing", "u1", "t", "c")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeletePost_HardDeleteAndIdempotentFailure(t *testing.T) {
	db := newPostRepoDB(t, &domain.User{}, &domain.Post{})
	seedUser(t, db, "owner")
	ctx := context.Background()

	p, err := CreatePost(ctx, db, "owner", "t", "c", nil)
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	if err := DeletePost(ctx, db, p.ID, "intruder"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("non-owner delete: want ErrNotFound, got %v", err)
	}

	if err := DeletePost(ctx, db, p.ID, "owner"); err != nil {
		t.Fatalf("owner delete: %v", err)
	}

	// Row is gone for real (hard delete), not flagged.
	var n int64
	if err := db.Model(&domain.Post{}).Where("id = ?", p.ID).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("post still present after delete")
	}

	// Second delete of the same id reports not-found, never crashes.
	if err := DeletePost(ctx, db, p.ID, "owner"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("repeat delete: want ErrNotFound, got %v", err)
	}
}

func TestGetUser_And_UserExists(t *testing.T) {
	db := newPostRepoDB(t, &domain.User{})
	seedUser(t, db, "u1")
	ctx := context.Background()

	u, err := GetUser(ctx, db, "u1")
	if err != nil || u.ID != "u1" {
		t.Fatalf("GetUser: u=%+v err=%v", u, err)
	}
	if _, err := GetUser(ctx, db, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetUser(ghost): want ErrNotFound, got %v", err)
	}

	ok, err := UserExists(ctx, db, "u1")
	if err != nil || !ok {
		t.Fatalf("UserExists(u1) = %v, %v", ok, err)
	}
	ok, err = UserExists(ctx, db, "ghost")
	if err != nil || ok {
		t.Fatalf("UserExists(ghost) = %v, %v", ok, err)
	}
}
