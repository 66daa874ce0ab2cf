package auth

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jwpark-dev/go-board-backend/internal/apperr"
	"github.com/jwpark-dev/go-board-backend/internal/domain"
)

const testSecret = "test-secret"

func newAuthDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:auth_test_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestVerifier(t *testing.T) *Verifier {
	t.Helper()
	db := newAuthDB(t)
	if err := db.Create(&domain.User{ID: "u1", Nickname: "author"}).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return NewVerifier(db, testSecret, "board-api")
}

func TestVerify_ValidTokenReturnsSubject(t *testing.T) {
	v := newTestVerifier(t)
	cred, err := Sign(testSecret, "board-api", "u1", time.Hour)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	uid, err := v.Verify(context.Background(), cred)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if uid != "u1" {
		t.Fatalf("subject = %q; want u1", uid)
	}
}

func TestVerify_MissingCredential(t *testing.T) {
	v := newTestVerifier(t)
	for _, cred := range []string{"", "   "} {
		_, err := v.Verify(context.Background(), cred)
		if apperr.KindOf(err) != apperr.KindTokenMissing {
			t.Errorf("Verify(%q) kind = %v; want token_missing", cred, apperr.KindOf(err))
		}
	}
}

func TestVerify_WrongScheme(t *testing.T) {
	v := newTestVerifier(t)
	cred, _ := Sign(testSecret, "board-api", "u1", time.Hour)
	raw := strings.TrimPrefix(cred, BearerScheme+" ")

	for _, bad := range []string{
		"Basic " + raw, // wrong scheme
		raw,            // bare token, no scheme
		"Bearer ",      // scheme with nothing after it
	} {
		_, err := v.Verify(context.Background(), bad)
		if apperr.KindOf(err) != apperr.KindTokenTypeMismatch {
			t.Errorf("Verify(%q) kind = %v; want token_type_mismatch", bad, apperr.KindOf(err))
		}
	}
}

func TestVerify_SchemeIsCaseInsensitive(t *testing.T) {
	v := newTestVerifier(t)
	cred, _ := Sign(testSecret, "board-api", "u1", time.Hour)
	lower := "bearer " + strings.TrimPrefix(cred, BearerScheme+" ")
	if _, err := v.Verify(context.Background(), lower); err != nil {
		t.Fatalf("lowercase scheme should verify: %v", err)
	}
}

func TestVerify_ExpiredToken(t *testing.T) {
	v := newTestVerifier(t)
	cred, _ := Sign(testSecret, "board-api", "u1", -time.Minute)
	_, err := v.Verify(context.Background(), cred)
	if apperr.KindOf(err) != apperr.KindTokenExpired {
		t.Fatalf("kind = %v; want token_expired", apperr.KindOf(err))
	}
}

func TestVerify_BadSignature(t *testing.T) {
	v := newTestVerifier(t)
	cred, _ := Sign("some-other-secret", "board-api", "u1", time.Hour)
	_, err := v.Verify(context.Background(), cred)
	if apperr.KindOf(err) != apperr.KindTokenTypeMismatch {
		t.Fatalf("kind = %v; want token_type_mismatch", apperr.KindOf(err))
	}
}

func TestVerify_WrongIssuer(t *testing.T) {
	v := newTestVerifier(t)
	cred, _ := Sign(testSecret, "someone-else", "u1", time.Hour)
	_, err := v.Verify(context.Background(), cred)
	if apperr.KindOf(err) != apperr.KindTokenTypeMismatch {
		t.Fatalf("kind = %v; want token_type_mismatch", apperr.KindOf(err))
	}
}

func TestVerify_SubjectVanished(t *testing.T) {
	v := newTestVerifier(t)
	cred, _ := Sign(testSecret, "board-api", "deleted-user", time.Hour)
	_, err := v.Verify(context.Background(), cred)
	if apperr.KindOf(err) != apperr.KindUserNotFound {
		t.Fatalf("kind = %v; want user_not_found", apperr.KindOf(err))
	}
}

func TestVerify_MissingSubjectClaim(t *testing.T) {
	v := newTestVerifier(t)
	claims := jwt.RegisteredClaims{
		Issuer:    "board-api",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	_, err = v.Verify(context.Background(), "Bearer "+raw)
	if apperr.KindOf(err) != apperr.KindTokenTypeMismatch {
		t.Fatalf("kind = %v; want token_type_mismatch", apperr.KindOf(err))
	}
}
