// Package i18n holds every user-facing string returned by the API, keyed by a
// stable message identifier and localized per request via Accept-Language
// negotiation. Handlers and the error dispatcher never embed literal response
// text; they reference a Key and let this package pick the catalog.
//
// English is the default; Korean is carried as the second catalog (the
// original deployment served a Korean audience).
package i18n

import "golang.org/x/text/language"

// Key identifies one user-facing message independent of locale.
type Key string

const (
	// Auth failures
	KeyTokenTypeMismatch Key = "token_type_mismatch"
	KeyTokenExpired      Key = "token_expired"
	KeyTokenUserMissing  Key = "token_user_missing"
	KeyLoginRequired     Key = "login_required"

	// Validation failures
	KeyInvalidEmail            Key = "invalid_email"
	KeyNicknameTooShort        Key = "nickname_too_short"
	KeyPasswordTooShort        Key = "password_too_short"
	KeyPasswordConfirmMismatch Key = "password_confirm_mismatch"
	KeyTitleContentRequired    Key = "title_content_required"
	KeyInvalidPayload          Key = "invalid_payload"

	// Resource failures
	KeyPostNotFound Key = "post_not_found"
	KeyNoPermission Key = "no_permission"

	// Catch-all
	KeyUnexpected Key = "unexpected"

	// Success confirmations
	KeyPostCreated Key = "post_created"
	KeyPostUpdated Key = "post_updated"
	KeyPostDeleted Key = "post_deleted"

	// Transport-level
	KeyRouteNotFound    Key = "route_not_found"
	KeyMethodNotAllowed Key = "method_not_allowed"
	KeyRateLimited      Key = "rate_limited"
)

// supported lists the catalogs in preference order; the first entry is the
// fallback when negotiation fails.
var supported = []language.Tag{language.English, language.Korean}

var matcher = language.NewMatcher(supported)

var english = map[Key]string{
	KeyTokenTypeMismatch:       "token type does not match",
	KeyTokenExpired:            "your session has expired, please sign in again",
	KeyTokenUserMissing:        "the token user no longer exists",
	KeyLoginRequired:           "sign in to continue",
	KeyInvalidEmail:            "email format is invalid",
	KeyNicknameTooShort:        "nickname must be at least 3 characters",
	KeyPasswordTooShort:        "password must be at least 5 characters",
	KeyPasswordConfirmMismatch: "password and confirmation do not match",
	KeyTitleContentRequired:    "both title and content are required",
	KeyInvalidPayload:          "the request payload is invalid",
	KeyPostNotFound:            "the requested post could not be found",
	KeyNoPermission:            "you do not have permission to modify this post",
	KeyUnexpected:              "an unexpected error occurred, please contact the administrator",
	KeyPostCreated:             "the post was created successfully",
	KeyPostUpdated:             "the post was updated successfully",
	KeyPostDeleted:             "the post was deleted",
	KeyRouteNotFound:           "route not found",
	KeyMethodNotAllowed:        "method not allowed",
	KeyRateLimited:             "too many requests, slow down",
}

var korean = map[Key]string{
	KeyTokenTypeMismatch:       "토큰 타입이 일치하지 않습니다.",
	KeyTokenExpired:            "인증이 만료되었습니다. 재인증을 받아주세요.",
	KeyTokenUserMissing:        "토큰 사용자가 존재하지 않습니다.",
	KeyLoginRequired:           "로그인 후 이용 가능합니다.",
	KeyInvalidEmail:            "이메일 형식이 올바르지 않습니다.",
	KeyNicknameTooShort:        "닉네임은 3자리 이상 필요합니다.",
	KeyPasswordTooShort:        "비밀번호는 5자리 이상 필요합니다.",
	KeyPasswordConfirmMismatch: "비밀번호와 비밀번호 확인이 일치하지 않습니다.",
	KeyTitleContentRequired:    "게시글의 제목과 내용을 모두 입력해주세요.",
	KeyInvalidPayload:          "요청 형식이 올바르지 않습니다.",
	KeyPostNotFound:            "해당하는 게시물을 찾을 수 없습니다.",
	KeyNoPermission:            "게시물에 대한 권한이 없습니다.",
	KeyUnexpected:              "예상치 못한 에러가 발생하였습니다. 관리자에게 문의 해주십시오.",
	KeyPostCreated:             "게시글을 성공적으로 등록하였습니다.",
	KeyPostUpdated:             "게시물 정보를 성공적으로 수정하였습니다.",
	KeyPostDeleted:             "게시물 정보를 삭제하였습니다.",
	KeyRouteNotFound:           "요청하신 경로를 찾을 수 없습니다.",
	KeyMethodNotAllowed:        "허용되지 않은 메서드입니다.",
	KeyRateLimited:             "요청이 너무 많습니다. 잠시 후 다시 시도해주세요.",
}

// Negotiate resolves an Accept-Language header value to one of the supported
// catalogs. An empty or unparseable header falls back to English.
func Negotiate(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return language.English
	}
	tag, _ := language.MatchStrings(matcher, acceptLanguage)
	base, _ := tag.Base()
	// Collapse region/script variants onto the catalog tag.
	if kb, _ := language.Korean.Base(); base == kb {
		return language.Korean
	}
	return language.English
}

// Localize returns the message for key in the given catalog. Unknown keys
// return the catch-all message so a bad key can never surface an empty body.
func Localize(tag language.Tag, key Key) string {
	catalog := english
	if tag == language.Korean {
		catalog = korean
	}
	if msg, ok := catalog[key]; ok {
		return msg
	}
	return catalog[KeyUnexpected]
}
