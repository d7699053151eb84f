package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	domainErrors "github.com/novelnest/userservice/internal/domain/errors"
	"github.com/novelnest/userservice/internal/domain/model"
)

// Provider core status values. The protocol reports recoverable failures in a
// status field of a 200 response rather than via HTTP status codes.
const (
	statusOK            = "OK"
	statusEmailExists   = "EMAIL_ALREADY_EXISTS_ERROR"
	statusWrongPassword = "WRONG_CREDENTIALS_ERROR"
	statusUnknownUser   = "UNKNOWN_USER_ID_ERROR"
)

// HTTPClient implements Provider via the identity core HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	TimeJoined int64  `json:"timeJoined"`
}

type userResponse struct {
	Status string      `json:"status"`
	User   userPayload `json:"user"`
}

type metadataResponse struct {
	Status   string         `json:"status"`
	Metadata map[string]any `json:"metadata"`
}

type metadataUpdateRequest struct {
	UserID         string         `json:"userId"`
	MetadataUpdate map[string]any `json:"metadataUpdate"`
}

// NewHTTPClient creates an identity provider client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse identity provider url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("identity provider url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// SignUp creates an account for the credentials.
func (c *HTTPClient) SignUp(ctx context.Context, email, password string) (*model.User, error) {
	var result userResponse
	err := c.post(ctx, "/recipe/signup", credentialsRequest{Email: email, Password: password}, &result)
	if err != nil {
		return nil, err
	}
	switch result.Status {
	case statusOK:
		return toUser(result.User), nil
	case statusEmailExists:
		return nil, domainErrors.ErrAlreadyExists
	default:
		return nil, fmt.Errorf("%w: status %s", domainErrors.ErrSignupRejected, result.Status)
	}
}

// SignIn checks credentials against the provider.
func (c *HTTPClient) SignIn(ctx context.Context, email, password string) (*model.User, error) {
	var result userResponse
	err := c.post(ctx, "/recipe/signin", credentialsRequest{Email: email, Password: password}, &result)
	if err != nil {
		return nil, err
	}
	switch result.Status {
	case statusOK:
		return toUser(result.User), nil
	case statusWrongPassword:
		return nil, domainErrors.ErrInvalidCredentials
	default:
		return nil, fmt.Errorf("identity provider signin status: %s", result.Status)
	}
}

// GetUserByID fetches the account for a stable user identifier.
func (c *HTTPClient) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	endpoint := c.endpoint("/recipe/user")
	endpoint.RawQuery = url.Values{"userId": {userID}}.Encode()

	var result userResponse
	if err := c.do(ctx, http.MethodGet, endpoint.String(), nil, &result); err != nil {
		return nil, err
	}
	switch result.Status {
	case statusOK:
		return toUser(result.User), nil
	case statusUnknownUser:
		return nil, domainErrors.ErrNotFound
	default:
		return nil, fmt.Errorf("identity provider user status: %s", result.Status)
	}
}

// GetMetadata reads the metadata attached to the user.
func (c *HTTPClient) GetMetadata(ctx context.Context, userID string) (map[string]any, error) {
	endpoint := c.endpoint("/recipe/user/metadata")
	endpoint.RawQuery = url.Values{"userId": {userID}}.Encode()

	var result metadataResponse
	if err := c.do(ctx, http.MethodGet, endpoint.String(), nil, &result); err != nil {
		return nil, err
	}
	if result.Status != statusOK {
		return nil, fmt.Errorf("identity provider metadata status: %s", result.Status)
	}
	if result.Metadata == nil {
		return map[string]any{}, nil
	}
	return result.Metadata, nil
}

// SetMetadata merges the update into the user's provider-side metadata.
func (c *HTTPClient) SetMetadata(ctx context.Context, userID string, metadata map[string]any) error {
	var result metadataResponse
	err := c.do(ctx, http.MethodPut, c.endpoint("/recipe/user/metadata").String(),
		metadataUpdateRequest{UserID: userID, MetadataUpdate: metadata}, &result)
	if err != nil {
		return err
	}
	if result.Status != statusOK {
		return fmt.Errorf("identity provider metadata status: %s", result.Status)
	}
	return nil
}

func (c *HTTPClient) post(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodPost, c.endpoint(endpoint).String(), body, out)
}

func (c *HTTPClient) endpoint(p string) *url.URL {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, p)
	return &endpoint
}

func (c *HTTPClient) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Error("identity provider request failed",
			slog.String("method", method),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(raw)),
		)
		return fmt.Errorf("%w: identity provider responded %s", domainErrors.ErrUnavailable, resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func toUser(p userPayload) *model.User {
	return &model.User{
		ID:        p.ID,
		Email:     p.Email,
		CreatedAt: time.UnixMilli(p.TimeJoined).UTC(),
	}
}
