package identity

import (
	"io"
	"log/slog"
	"testing"

	"github.com/novelnest/userservice/internal/config"
)

func TestNewProviderUsesConfig(t *testing.T) {
	cfg := &config.Config{IdentityProviderURL: "http://example.com"}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	provider, err := newProvider(providerParams{Config: cfg, Logger: logger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider == nil {
		t.Fatal("expected provider instance")
	}
}

func TestNewProviderRejectsBadURL(t *testing.T) {
	cfg := &config.Config{IdentityProviderURL: "/relative"}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if _, err := newProvider(providerParams{Config: cfg, Logger: logger}); err == nil {
		t.Fatal("expected error for relative url")
	}
}
