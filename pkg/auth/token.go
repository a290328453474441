// Package auth holds the credentials attached to ReferenceDataManager calls.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultLoginURL is the KBase legacy username/password login endpoint.
const DefaultLoginURL = "https://kbase.us/services/auth/api/legacy/KBase/Sessions/Login"

// Token is an opaque KBase auth token.
type Token struct {
	// Value is sent verbatim in the Authorization header.
	Value string
	// User is the account name, when known.
	User string
}

// NewToken wraps a token string.
func NewToken(value string) *Token {
	return &Token{Value: strings.TrimSpace(value)}
}

// String renders the token with its value redacted.
func (t *Token) String() string {
	if t == nil || t.Value == "" {
		return "<no token>"
	}
	if t.User != "" {
		return "token for " + t.User
	}
	return "token ****" + t.Value[max(0, len(t.Value)-4):]
}

// LoginError is returned when the auth service rejects a login.
type LoginError struct {
	StatusCode int
	Message    string
}

func (e *LoginError) Error() string {
	return fmt.Sprintf("login failed (HTTP %d): %s", e.StatusCode, e.Message)
}

// ErrMissingCredentials is returned when Login is called without a user or password.
var ErrMissingCredentials = errors.New("user name and password are required")

type loginConfig struct {
	httpClient *http.Client
}

// LoginOption configures Login.
type LoginOption func(*loginConfig)

// WithHTTPClient sets the HTTP client used to reach the auth service.
func WithHTTPClient(hc *http.Client) LoginOption {
	return func(c *loginConfig) {
		c.httpClient = hc
	}
}

// Login exchanges a user name and password for a token at loginURL.
// An empty loginURL means DefaultLoginURL.
func Login(ctx context.Context, loginURL, user, password string, opts ...LoginOption) (*Token, error) {
	if user == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	if loginURL == "" {
		loginURL = DefaultLoginURL
	}
	cfg := &loginConfig{httpClient: &http.Client{Timeout: 30 * time.Second}}
	for _, opt := range opts {
		opt(cfg)
	}

	form := url.Values{}
	form.Set("user_id", user)
	form.Set("password", password)
	form.Set("fields", "token")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, loginURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("invalid auth URL %q: %w", loginURL, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := cfg.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot reach auth service at %s: %w", loginURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read auth response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &LoginError{StatusCode: resp.StatusCode, Message: loginErrorMessage(body)}
	}

	var result struct {
		UserID string `json:"user_id"`
		Token  string `json:"token"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse auth response: %w", err)
	}
	if result.Token == "" {
		return nil, &LoginError{StatusCode: resp.StatusCode, Message: "auth service returned no token"}
	}
	return &Token{Value: result.Token, User: result.UserID}, nil
}

// loginErrorMessage pulls a message out of the auth service's error body.
func loginErrorMessage(body []byte) string {
	var errResp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &errResp) == nil {
		if errResp.Error.Message != "" {
			return errResp.Error.Message
		}
		if errResp.Message != "" {
			return errResp.Message
		}
	}
	if len(body) == 0 {
		return "no response body"
	}
	return strings.TrimSpace(string(body))
}
