// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the uniform response envelope and the helpers that write
// it. Every endpoint, success or failure, answers with the same shape:
//
//	{ "success": true,  "data": { … } }
//	{ "success": true,  "message": "the post was deleted" }
//	{ "success": false, "code": "not_found", "message": "…", "request_id": "…" }
//
// Data and message are never both set. Failure bodies never include data.
// Messages are localized per request via Accept-Language; codes are stable
// across locales (see errors.go).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/jwpark-dev/go-board-backend/internal/http/middleware"
	"github.com/jwpark-dev/go-board-backend/internal/i18n"
)

// Envelope is the standard response shape returned by all endpoints.
//
// Fields:
//   - Success: true on 2xx responses, false otherwise.
//   - RequestID: correlation ID echoed from X-Request-ID, set on failures.
//   - Code: stable machine-readable failure code (see errors.go constants).
//   - Message: localized, user-displayable text (confirmations and failures).
//   - Data: the operation result; success responses only.
type Envelope struct {
	Success bool `json:"success"`
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code,omitempty" example:"not_found"`
	// Localized message (safe to show to users)
	Message string `json:"message,omitempty" example:"the requested post could not be found"`
	// Operation result (success responses only)
	Data any `json:"data,omitempty"`
}

// locale resolves the request's negotiated message catalog.
func locale(c *gin.Context) language.Tag {
	if c == nil || c.Request == nil {
		return language.English
	}
	return i18n.Negotiate(c.GetHeader("Accept-Language"))
}

// okData writes a success envelope carrying a payload.
func okData(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

// okMessage writes a success envelope carrying a localized confirmation.
func okMessage(c *gin.Context, status int, key i18n.Key) {
	c.JSON(status, Envelope{Success: true, Message: i18n.Localize(locale(c), key)})
}

// fail aborts the request with a failure envelope and logs server-side errors.
//
// Server errors (>=500) are logged through the request-scoped logger so that
// the correlation ID and request fields travel with the diagnostic; the
// response body itself never carries internal detail.
func fail(c *gin.Context, status int, code string, key i18n.Key) {
	msg := i18n.Localize(locale(c), key)
	resp := Envelope{
		Success:   false,
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Code:      code,
		Message:   msg,
	}

	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail().
//
// External packages (e.g., router setup) call Fail to return consistent
// failure envelopes for NoRoute/NoMethod/rate-limit rejections without
// depending on unexported helpers.
func Fail(c *gin.Context, status int, code string, key i18n.Key) { fail(c, status, code, key) }
