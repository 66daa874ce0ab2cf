// Package auth implements the token-verification collaborator consumed by the
// HTTP layer. It parses the request credential ("Bearer <jwt>"), validates the
// signature and expiry, and confirms the token subject still maps to a live
// account.
//
// Token issuance lives with the identity service; this package only verifies.
// The Sign helper exists for tests and local tooling.
//
// Failure classification (consumed by the error dispatcher):
//   - no credential                      → KindTokenMissing
//   - scheme other than Bearer           → KindTokenTypeMismatch
//   - expired token                      → KindTokenExpired
//   - bad signature / malformed claims   → KindTokenTypeMismatch
//   - subject no longer exists           → KindUserNotFound
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/jwpark-dev/go-board-backend/internal/apperr"
	"github.com/jwpark-dev/go-board-backend/internal/repo"
)

// BearerScheme is the only accepted credential scheme.
const BearerScheme = "Bearer"

// Verifier validates request credentials against the signing secret and the
// users table. Safe for concurrent use.
type Verifier struct {
	// DB is the GORM handle used for the subject-existence lookup.
	DB *gorm.DB
	// Secret is the HMAC signing key shared with the identity service.
	Secret []byte
	// Issuer, when non-empty, is enforced against the token's iss claim.
	Issuer string
}

// NewVerifier constructs a Verifier.
func NewVerifier(db *gorm.DB, secret, issuer string) *Verifier {
	return &Verifier{DB: db, Secret: []byte(secret), Issuer: issuer}
}

// Verify checks a raw credential value and returns the authenticated user id.
// Every failure is one of the four classified auth kinds; store errors during
// the subject lookup are wrapped as Unexpected.
func (v *Verifier) Verify(ctx context.Context, credential string) (string, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return "", apperr.New(apperr.KindTokenMissing)
	}

	scheme, raw, found := strings.Cut(credential, " ")
	if !found || !strings.EqualFold(scheme, BearerScheme) || strings.TrimSpace(raw) == "" {
		return "", apperr.New(apperr.KindTokenTypeMismatch)
	}
	raw = strings.TrimSpace(raw)

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.Issuer))
	}

	claims := jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return v.Secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", apperr.Wrap(apperr.KindTokenExpired, err)
		}
		// Wrong algorithm, bad signature, malformed payload, wrong issuer:
		// all mean the credential is not the token we issued.
		return "", apperr.Wrap(apperr.KindTokenTypeMismatch, err)
	}
	if claims.Subject == "" {
		return "", apperr.New(apperr.KindTokenTypeMismatch)
	}

	exists, err := repo.UserExists(ctx, v.DB, claims.Subject)
	if err != nil {
		return "", apperr.Wrap(apperr.KindUnexpected, err)
	}
	if !exists {
		return "", apperr.New(apperr.KindUserNotFound)
	}
	return claims.Subject, nil
}

// Sign mints a Bearer credential for userID, valid for ttl. Intended for
// tests and local tooling; production tokens come from the identity service.
func Sign(secret, issuer, userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", err
	}
	return BearerScheme + " " + tok, nil
}
