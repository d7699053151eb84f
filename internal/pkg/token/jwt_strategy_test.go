package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewJWTStrategy_DefaultTTL(t *testing.T) {
	strategy, err := NewJWTStrategy("secret", Options{})
	if err != nil {
		t.Fatalf("new strategy: %v", err)
	}
	if string(strategy.secret) != "secret" {
		t.Fatalf("unexpected secret: %q", string(strategy.secret))
	}
	if strategy.ttl != 24*time.Hour {
		t.Fatalf("unexpected ttl: %s", strategy.ttl)
	}
}

func TestNewJWTStrategy_MissingSecret(t *testing.T) {
	if _, err := NewJWTStrategy("", Options{}); !errors.Is(err, ErrMissingSigningKey) {
		t.Fatalf("expected ErrMissingSigningKey, got %v", err)
	}
}

func TestJWTStrategy_IssueAndParse(t *testing.T) {
	strategy, err := NewJWTStrategy("secret", Options{TTL: time.Minute})
	if err != nil {
		t.Fatalf("new strategy: %v", err)
	}
	token, err := strategy.Issue("user-123")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	userID, err := strategy.Parse(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if userID != "user-123" {
		t.Fatalf("unexpected user id: %q", userID)
	}
}

func TestJWTStrategy_ParseGarbage(t *testing.T) {
	strategy, _ := NewJWTStrategy("secret", Options{})
	if _, err := strategy.Parse("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategy_ParseWrongSecret(t *testing.T) {
	issuer, _ := NewJWTStrategy("secret-a", Options{TTL: time.Minute})
	verifier, _ := NewJWTStrategy("secret-b", Options{TTL: time.Minute})

	token, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := verifier.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategy_ParseExpired(t *testing.T) {
	strategy, _ := NewJWTStrategy("secret", Options{})

	now := time.Now()
	claims := Claims{
		UserID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := strategy.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestJWTStrategy_ParseMissingUserID(t *testing.T) {
	strategy, _ := NewJWTStrategy("secret", Options{})

	claims := jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := strategy.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for missing userId claim, got %v", err)
	}
}

func TestJWTStrategy_ParseWrongSigningMethod(t *testing.T) {
	strategy, _ := NewJWTStrategy("secret", Options{})

	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "user-123"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := strategy.Parse(signed); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for alg=none token, got %v", err)
	}
}

func TestJWTStrategy_Name(t *testing.T) {
	strategy, _ := NewJWTStrategy("secret", Options{})
	if strategy.Name() != "jwt" {
		t.Fatalf("unexpected name %q", strategy.Name())
	}
}
