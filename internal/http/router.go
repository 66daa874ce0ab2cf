// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, CORS,
// security headers, rate limiting, and the authentication guard.
//
// Design goals:
//   - Observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - One error translator: handlers and the auth guard both dispatch
//     classified errors through handlers.Dispatch, so no response mapping
//     depends on middleware registration order
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "github.com/jwpark-dev/go-board-backend/docs"
	"github.com/jwpark-dev/go-board-backend/internal/auth"
	"github.com/jwpark-dev/go-board-backend/internal/config"
	"github.com/jwpark-dev/go-board-backend/internal/domain"
	"github.com/jwpark-dev/go-board-backend/internal/http/handlers"
	"github.com/jwpark-dev/go-board-backend/internal/http/middleware"
	"github.com/jwpark-dev/go-board-backend/internal/i18n"
	"github.com/jwpark-dev/go-board-backend/internal/repo"
	"github.com/jwpark-dev/go-board-backend/internal/services"
)

// postRepoShim adapts the repository free functions to the services.PostRepo
// interface expected by the PostService. This keeps services decoupled from
// the concrete repo package while reusing existing functions.
type postRepoShim struct{}

// UserExists proxies repo.UserExists.
func (postRepoShim) UserExists(ctx context.Context, db *gorm.DB, id string) (bool, error) {
	return repo.UserExists(ctx, db, id)
}

// CreatePost proxies repo.CreatePost.
func (postRepoShim) CreatePost(ctx context.Context, db *gorm.DB, userID, title, content string, categoryID *int64) (*domain.Post, error) {
	return repo.CreatePost(ctx, db, userID, title, content, categoryID)
}

// ListPosts proxies repo.ListPosts, funneling the direction through the
// repo-level normalization so only ASC/DESC ever reaches the query.
func (postRepoShim) ListPosts(ctx context.Context, db *gorm.DB, dir string) ([]domain.PostSummary, error) {
	return repo.ListPosts(ctx, db, repo.NormalizeSortDir(dir))
}

// GetPost proxies repo.GetPost.
func (postRepoShim) GetPost(ctx context.Context, db *gorm.DB, id string) (*domain.Post, error) {
	return repo.GetPost(ctx, db, id)
}

// UpdatePost proxies repo.UpdatePost.
func (postRepoShim) UpdatePost(ctx context.Context, db *gorm.DB, id, userID, title, content string) error {
	return repo.UpdatePost(ctx, db, id, userID, title, content)
}

// DeletePost proxies repo.DeletePost.
func (postRepoShim) DeletePost(ctx context.Context, db *gorm.DB, id, userID string) error {
	return repo.DeletePost(ctx, db, id, userID)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine: observability (tracing, metrics), rate limiting, CORS and security
// headers, health/metrics/docs endpoints, and the token-guarded post routes
// under the configured API base path.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Response compression
//  7. Metrics
//  8. Rate limiter (per user/IP)
//  9. CORS and Security headers
//
// The auth guard is attached per route group, not globally, so /health,
// /metrics, and the docs stay reachable without a credential.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured access logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Compress JSON responses
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 7) Prometheus instrumentation
	r.Use(middleware.Metrics())

	// 8) Token-bucket rate limiter per user/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// 9) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: true, // cookie credential needs this with an allowlist
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, i18n.KeyRouteNotFound)
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, i18n.KeyMethodNotAllowed)
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Prometheus scrape endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger UI (opt-in)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: verifier + service ← repo/db
	verifier := auth.NewVerifier(db, cfg.Auth.Secret, cfg.Auth.Issuer)
	postSvc := services.NewPostService(db, postRepoShim{})
	h := handlers.New(postSvc, cfg.Auth.CookieName)

	// The guard hands classified auth failures to the same dispatcher the
	// handlers use, keeping one translator for the whole surface.
	guard := middleware.Auth(verifier, cfg.Auth.CookieName, func(c *gin.Context, err error) {
		handlers.Dispatch(c, cfg.Auth.CookieName, err)
	})

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)
	posts := api.Group("/posts", guard)
	{
		posts.POST("", h.CreatePost)
		posts.GET("", h.ListPosts)
		posts.GET("/:postId", h.GetPost)
		posts.PUT("/:postId", h.UpdatePost)
		posts.DELETE("/:postId", h.DeletePost)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
