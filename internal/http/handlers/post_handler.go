// Post HTTP handlers.
//
// This file exposes the REST endpoints for the post resource:
//   - POST   /posts          (create)
//   - GET    /posts          (list, sortable by creation time)
//   - GET    /posts/:postId  (detail)
//   - PUT    /posts/:postId  (update, owner only)
//   - DELETE /posts/:postId  (delete, owner only)
//
// Handlers are transport-thin: they bind input, call the post service, and on
// failure hand the classified error to the dispatcher. They never construct
// failure responses themselves.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwpark-dev/go-board-backend/internal/apperr"
	"github.com/jwpark-dev/go-board-backend/internal/domain"
	"github.com/jwpark-dev/go-board-backend/internal/i18n"
)

// PostService defines the post lifecycle operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type PostService interface {
	// Create persists a new post owned by requesterID.
	Create(ctx context.Context, requesterID, title, content string, categoryID *int64) (*domain.Post, error)
	// List returns post summaries ordered by creation time.
	List(ctx context.Context, sort string) ([]domain.PostSummary, error)
	// Get returns the full post record.
	Get(ctx context.Context, postID string) (*domain.Post, error)
	// Update mutates title/content of a post owned by requesterID.
	Update(ctx context.Context, requesterID, postID, title, content string) error
	// Delete permanently removes a post owned by requesterID.
	Delete(ctx context.Context, requesterID, postID string) error
}

// Handlers groups the HTTP endpoints for the post resource.
type Handlers struct {
	postSvc    PostService
	cookieName string
}

// New constructs a Handlers instance bound to the given service. cookieName
// is the auth cookie the dispatcher expires on invalid-credential failures.
func New(postSvc PostService, cookieName string) *Handlers {
	return &Handlers{postSvc: postSvc, cookieName: cookieName}
}

// userID extracts the authenticated user id placed in the Gin context by the
// auth middleware.
func userID(c *gin.Context) (string, bool) {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// dispatch forwards a classified error to the central dispatcher.
func (h *Handlers) dispatch(c *gin.Context, err error) {
	Dispatch(c, h.cookieName, err)
}

//
// DTOs
//

// CreatePostRequest is the JSON payload for creating a post.
type CreatePostRequest struct {
	// Title is the post headline (required, non-blank).
	Title string `json:"title" example:"Weekend hiking meetup"`
	// Content is the post body (required, non-blank).
	Content string `json:"content" example:"Anyone up for Bukhansan on Saturday?"`
	// CategoryID optionally files the post under a board category.
	CategoryID *int64 `json:"category_id,omitempty" example:"3"`
}

// UpdatePostRequest is the JSON payload for updating a post.
type UpdatePostRequest struct {
	// Title is the new headline (required, non-blank).
	Title string `json:"title" example:"Weekend hiking meetup (moved to Sunday)"`
	// Content is the new body (required, non-blank).
	Content string `json:"content" example:"Schedule change, see inside."`
}

//
// Handlers
//

// CreatePost godoc
// @ID          createPost
// @Summary     Create a post
// @Description Creates a post owned by the authenticated user and returns the created record.
// @Tags        Posts
// @Accept      json
// @Produce     json
// @Security    BearerCookie
//
// @Param       body  body  handlers.CreatePostRequest  true  "Create post payload"
//
// @Success     201  {object}  handlers.Envelope{data=domain.Post}
// @Failure     400  {object}  handlers.Envelope  "Missing title or content"
// @Failure     401  {object}  handlers.Envelope  "Not authenticated"
// @Failure     500  {object}  handlers.Envelope  "Internal error"
// @Router      /posts [post]
func (h *Handlers) CreatePost(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		h.dispatch(c, apperr.New(apperr.KindTokenMissing))
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.dispatch(c, apperr.Wrap(apperr.KindValidation, err))
		return
	}

	p, err := h.postSvc.Create(c.Request.Context(), uid, req.Title, req.Content, req.CategoryID)
	if err != nil {
		h.dispatch(c, err)
		return
	}
	okData(c, http.StatusCreated, p)
}

// ListPosts godoc
// @ID          listPosts
// @Summary     List posts
// @Description Returns post summaries ordered by creation time. sort=ASC|DESC (case-insensitive); anything else defaults to DESC.
// @Tags        Posts
// @Produce     json
// @Security    BearerCookie
//
// @Param       sort  query  string  false  "Sort direction by created_at"  Enums(ASC, DESC)  default(DESC)
//
// @Success     200  {object}  handlers.Envelope{data=[]domain.PostSummary}
// @Failure     401  {object}  handlers.Envelope  "Not authenticated"
// @Failure     500  {object}  handlers.Envelope  "Internal error"
// @Router      /posts [get]
func (h *Handlers) ListPosts(c *gin.Context) {
	out, err := h.postSvc.List(c.Request.Context(), c.Query("sort"))
	if err != nil {
		h.dispatch(c, err)
		return
	}
	okData(c, http.StatusOK, out)
}

// GetPost godoc
// @ID          getPost
// @Summary     Get a post
// @Description Returns the full post record including content and timestamps.
// @Tags        Posts
// @Produce     json
// @Security    BearerCookie
//
// @Param       postId  path  string  true  "Post ID (UUID)"  format(uuid)
//
// @Success     200  {object}  handlers.Envelope{data=domain.Post}
// @Failure     401  {object}  handlers.Envelope  "Not authenticated"
// @Failure     404  {object}  handlers.Envelope  "Post not found"
// @Failure     500  {object}  handlers.Envelope  "Internal error"
// @Router      /posts/{postId} [get]
func (h *Handlers) GetPost(c *gin.Context) {
	p, err := h.postSvc.Get(c.Request.Context(), c.Param("postId"))
	if err != nil {
		h.dispatch(c, err)
		return
	}
	okData(c, http.StatusOK, p)
}

// UpdatePost godoc
// @ID          updatePost
// @Summary     Update a post
// @Description Updates title and content of a post owned by the authenticated user.
// @Tags        Posts
// @Accept      json
// @Produce     json
// @Security    BearerCookie
//
// @Param       postId  path  string                      true  "Post ID (UUID)"  format(uuid)
// @Param       body    body  handlers.UpdatePostRequest  true  "New title and content"
//
// @Success     200  {object}  handlers.Envelope  "Confirmation message"
// @Failure     400  {object}  handlers.Envelope  "Missing title or content"
// @Failure     401  {object}  handlers.Envelope  "Not authenticated"
// @Failure     403  {object}  handlers.Envelope  "Not the author"
// @Failure     404  {object}  handlers.Envelope  "Post not found"
// @Failure     500  {object}  handlers.Envelope  "Internal error"
// @Router      /posts/{postId} [put]
func (h *Handlers) UpdatePost(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		h.dispatch(c, apperr.New(apperr.KindTokenMissing))
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.dispatch(c, apperr.Wrap(apperr.KindValidation, err))
		return
	}

	if err := h.postSvc.Update(c.Request.Context(), uid, c.Param("postId"), req.Title, req.Content); err != nil {
		h.dispatch(c, err)
		return
	}
	okMessage(c, http.StatusOK, i18n.KeyPostUpdated)
}

// DeletePost godoc
// @ID          deletePost
// @Summary     Delete a post
// @Description Permanently deletes a post owned by the authenticated user.
// @Tags        Posts
// @Produce     json
// @Security    BearerCookie
//
// @Param       postId  path  string  true  "Post ID (UUID)"  format(uuid)
//
// @Success     200  {object}  handlers.Envelope  "Confirmation message"
// @Failure     401  {object}  handlers.Envelope  "Not authenticated"
// @Failure     403  {object}  handlers.Envelope  "Not the author"
// @Failure     404  {object}  handlers.Envelope  "Post not found"
// @Failure     500  {object}  handlers.Envelope  "Internal error"
// @Router      /posts/{postId} [delete]
func (h *Handlers) DeletePost(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		h.dispatch(c, apperr.New(apperr.KindTokenMissing))
		return
	}

	if err := h.postSvc.Delete(c.Request.Context(), uid, c.Param("postId")); err != nil {
		h.dispatch(c, err)
		return
	}
	okMessage(c, http.StatusOK, i18n.KeyPostDeleted)
}
