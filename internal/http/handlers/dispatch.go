// Error dispatcher.
//
// This file is the single point of truth for translating classified errors
// into transport responses. No other component emits final failure responses:
// handlers and the auth middleware hand any error to Dispatch, which resolves
// it through one total mapping.
//
// Resolve is a pure function over the closed apperr.Kind set, so "no matching
// branch" is impossible by construction: the switch's default is the 500
// catch-all, and every auth, validation, resource, and authorization kind has
// exactly one (status, code, message, side-effect) disposition.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwpark-dev/go-board-backend/internal/apperr"
	"github.com/jwpark-dev/go-board-backend/internal/http/middleware"
	"github.com/jwpark-dev/go-board-backend/internal/i18n"
)

// ReqInfo carries the request metadata available to the dispatcher. Method
// and Route take part in server-side diagnostics only; the response mapping
// depends solely on the error classification.
type ReqInfo struct {
	Method string
	Route  string
}

// Disposition is the resolved terminal response for one classified error.
type Disposition struct {
	// Status is the HTTP status code.
	Status int
	// Code is the stable machine-readable failure code.
	Code string
	// MessageKey selects the localized user-facing text.
	MessageKey i18n.Key
	// ClearCredential instructs the transport to expire the stored auth
	// cookie. Set only for kinds that mean the credential itself is now
	// invalid (expired token, vanished user), not for every auth failure.
	ClearCredential bool
}

// Resolve maps any error to exactly one Disposition. It is total: errors that
// carry no classification (or none of the known kinds) land in the 500
// catch-all, so no input leaves a request unanswered.
func Resolve(err error, _ ReqInfo) Disposition {
	switch apperr.KindOf(err) {
	case apperr.KindTokenTypeMismatch:
		return Disposition{http.StatusUnauthorized, ErrCodeUnauthorized, i18n.KeyTokenTypeMismatch, false}
	case apperr.KindTokenExpired:
		return Disposition{http.StatusUnauthorized, ErrCodeUnauthorized, i18n.KeyTokenExpired, true}
	case apperr.KindUserNotFound:
		return Disposition{http.StatusUnauthorized, ErrCodeUnauthorized, i18n.KeyTokenUserMissing, true}
	case apperr.KindTokenMissing:
		return Disposition{http.StatusUnauthorized, ErrCodeUnauthorized, i18n.KeyLoginRequired, false}
	case apperr.KindValidation:
		return Disposition{http.StatusBadRequest, ErrCodeBadRequest, validationKey(apperr.PathOf(err)), false}
	case apperr.KindNotFound:
		return Disposition{http.StatusNotFound, ErrCodeNotFound, i18n.KeyPostNotFound, false}
	case apperr.KindForbidden:
		return Disposition{http.StatusForbidden, ErrCodeForbidden, i18n.KeyNoPermission, false}
	default:
		return Disposition{http.StatusInternalServerError, ErrCodeInternal, i18n.KeyUnexpected, false}
	}
}

// validationKey selects the message for a failing field. Unrecognized paths
// get the generic invalid-payload message but stay a 400: an unknown field
// name is still a client error, not a server fault.
func validationKey(path string) i18n.Key {
	switch path {
	case "email":
		return i18n.KeyInvalidEmail
	case "nickname":
		return i18n.KeyNicknameTooShort
	case "password":
		return i18n.KeyPasswordTooShort
	case "passwordConfirm":
		return i18n.KeyPasswordConfirmMismatch
	case "title", "content":
		return i18n.KeyTitleContentRequired
	default:
		return i18n.KeyInvalidPayload
	}
}

// Dispatch resolves err and writes the terminal failure response: localized
// envelope, credential clearing when required, and server-side logging for
// unexpected failures. cookieName is the auth cookie to expire.
func Dispatch(c *gin.Context, cookieName string, err error) {
	d := Resolve(err, ReqInfo{Method: c.Request.Method, Route: c.FullPath()})

	if d.ClearCredential && cookieName != "" {
		// Max-Age < 0 expires the cookie immediately.
		c.SetCookie(cookieName, "", -1, "/", "", false, true)
	}

	if d.Status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Err(err).
			Str("kind", apperr.KindOf(err).String()).
			Str("method", c.Request.Method).
			Str("route", c.FullPath()).
			Msg("unclassified failure dispatched")
	}

	fail(c, d.Status, d.Code, d.MessageKey)
}
