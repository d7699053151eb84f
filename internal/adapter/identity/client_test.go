package identity

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainErrors "github.com/novelnest/userservice/internal/domain/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	if _, err := NewHTTPClient("://bad-url", testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient("/relative", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := NewHTTPClient(server.URL, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func TestSignUp(t *testing.T) {
	joined := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/recipe/signup" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Email != "alice@example.com" {
			t.Fatalf("unexpected email %q", req.Email)
		}
		_ = json.NewEncoder(w).Encode(userResponse{
			Status: statusOK,
			User:   userPayload{ID: "user-1", Email: req.Email, TimeJoined: joined.UnixMilli()},
		})
	})

	user, err := client.SignUp(context.Background(), "alice@example.com", "password")
	if err != nil {
		t.Fatalf("signup returned error: %v", err)
	}
	if user.ID != "user-1" || user.Email != "alice@example.com" {
		t.Fatalf("unexpected user %+v", user)
	}
	if !user.CreatedAt.Equal(joined) {
		t.Fatalf("expected join time %v, got %v", joined, user.CreatedAt)
	}
}

func TestSignUpEmailExists(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(userResponse{Status: statusEmailExists})
	})

	if _, err := client.SignUp(context.Background(), "a@b.c", "pw"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestSignIn(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		wantErr error
	}{
		{name: "ok", status: statusOK},
		{name: "wrong credentials", status: statusWrongPassword, wantErr: domainErrors.ErrInvalidCredentials},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/recipe/signin" {
					t.Fatalf("unexpected path %s", r.URL.Path)
				}
				_ = json.NewEncoder(w).Encode(userResponse{
					Status: tc.status,
					User:   userPayload{ID: "user-1", Email: "a@b.c"},
				})
			})

			user, err := client.SignIn(context.Background(), "a@b.c", "pw")
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("signin returned error: %v", err)
			}
			if user.ID != "user-1" {
				t.Fatalf("unexpected user %+v", user)
			}
		})
	}
}

func TestGetUserByID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/recipe/user" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		switch r.URL.Query().Get("userId") {
		case "user-1":
			_ = json.NewEncoder(w).Encode(userResponse{
				Status: statusOK,
				User:   userPayload{ID: "user-1", Email: "a@b.c"},
			})
		default:
			_ = json.NewEncoder(w).Encode(userResponse{Status: statusUnknownUser})
		}
	})

	user, err := client.GetUserByID(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("get user returned error: %v", err)
	}
	if user.Email != "a@b.c" {
		t.Fatalf("unexpected user %+v", user)
	}

	if _, err := client.GetUserByID(context.Background(), "ghost"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMetadataRoundTrip(t *testing.T) {
	stored := map[string]any{}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recipe/user/metadata" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		switch r.Method {
		case http.MethodPut:
			var req metadataUpdateRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			for k, v := range req.MetadataUpdate {
				stored[k] = v
			}
			_ = json.NewEncoder(w).Encode(metadataResponse{Status: statusOK})
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(metadataResponse{Status: statusOK, Metadata: stored})
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	})

	if err := client.SetMetadata(context.Background(), "user-1", map[string]any{"username": "alice"}); err != nil {
		t.Fatalf("set metadata returned error: %v", err)
	}

	metadata, err := client.GetMetadata(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("get metadata returned error: %v", err)
	}
	if metadata["username"] != "alice" {
		t.Fatalf("unexpected metadata %v", metadata)
	}
}

func TestGetMetadataEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(metadataResponse{Status: statusOK})
	})

	metadata, err := client.GetMetadata(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("get metadata returned error: %v", err)
	}
	if metadata == nil || len(metadata) != 0 {
		t.Fatalf("expected empty metadata map, got %v", metadata)
	}
}

func TestProviderHTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	if _, err := client.SignIn(context.Background(), "a@b.c", "pw"); err == nil {
		t.Fatal("expected error for HTTP 500")
	}
	if _, err := client.GetMetadata(context.Background(), "user-1"); err == nil {
		t.Fatal("expected error for HTTP 500")
	}
}

func TestProviderUnexpectedStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(userResponse{Status: "SOMETHING_ELSE"})
	})

	if _, err := client.SignUp(context.Background(), "a@b.c", "pw"); err == nil {
		t.Fatal("expected error for unexpected signup status")
	}
	if _, err := client.SignIn(context.Background(), "a@b.c", "pw"); err == nil {
		t.Fatal("expected error for unexpected signin status")
	}
	if _, err := client.GetUserByID(context.Background(), "user-1"); err == nil {
		t.Fatal("expected error for unexpected user status")
	}
}
