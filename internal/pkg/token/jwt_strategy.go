package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by issued tokens.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// JWTStrategy implements Strategy with HS256-signed JWTs.
type JWTStrategy struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTStrategy builds JWTStrategy with provided secret and options.
// An empty secret is a misconfiguration and is rejected.
func NewJWTStrategy(secret string, opts Options) (*JWTStrategy, error) {
	if secret == "" {
		return nil, ErrMissingSigningKey
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTStrategy{secret: []byte(secret), ttl: ttl}, nil
}

// Issue generates a signed token bound to the user.
func (s *JWTStrategy) Issue(userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse validates signature and expiry, returning the user identifier.
// All failure modes report the same ErrInvalidToken; callers must not be able
// to distinguish an expired token from a forged one.
func (s *JWTStrategy) Parse(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}

func (s *JWTStrategy) Name() string {
	return "jwt"
}
