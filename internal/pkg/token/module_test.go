package token

import (
	"errors"
	"testing"
	"time"

	"github.com/novelnest/userservice/internal/config"
)

func TestNewTokenStrategy(t *testing.T) {
	strategy, err := newTokenStrategy(strategyParams{Config: &config.Config{JWTSecret: "top-secret"}})
	if err != nil {
		t.Fatalf("new token strategy: %v", err)
	}
	jwtStrategy, ok := strategy.(*JWTStrategy)
	if !ok {
		t.Fatalf("expected *JWTStrategy, got %T", strategy)
	}
	if string(jwtStrategy.secret) != "top-secret" {
		t.Fatalf("unexpected secret: %q", string(jwtStrategy.secret))
	}
	if jwtStrategy.ttl != 24*time.Hour {
		t.Fatalf("unexpected ttl: %s", jwtStrategy.ttl)
	}
}

func TestNewTokenStrategyMissingSecret(t *testing.T) {
	if _, err := newTokenStrategy(strategyParams{Config: &config.Config{}}); !errors.Is(err, ErrMissingSigningKey) {
		t.Fatalf("expected ErrMissingSigningKey, got %v", err)
	}
}
