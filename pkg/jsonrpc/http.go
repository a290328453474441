package jsonrpc

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/kbaseapps/refdatamgr/pkg/auth"
	"github.com/kbaseapps/refdatamgr/pkg/logging"
)

// DefaultTimeout is the default connection read timeout. Loading reference
// data can take a long time, so the default is generous.
const DefaultTimeout = 30 * time.Minute

// maxErrorExcerpt bounds how much of an unparseable body ends up in errors.
const maxErrorExcerpt = 512

// HTTPCaller is the default Caller. It posts JSON-RPC 1.1 envelopes to a
// single service URL.
//
// Settings may be changed with the setters between calls but not while a
// call is in flight.
type HTTPCaller struct {
	url        *url.URL
	httpClient *http.Client
	timeout    *time.Duration
	token      *auth.Token
	insecure   bool
	trustAll   bool
	streaming  bool
	logger     *slog.Logger
	newID      func() string
}

// Option configures an HTTPCaller.
type Option func(*HTTPCaller)

// WithToken sets the token sent in the Authorization header.
func WithToken(token *auth.Token) Option {
	return func(c *HTTPCaller) {
		c.token = token
	}
}

// WithTimeout sets the connection read timeout. Zero disables the timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *HTTPCaller) {
		c.timeout = &timeout
	}
}

// WithInsecureHTTP allows sending credentials over plain http.
func WithInsecureHTTP(allowed bool) Option {
	return func(c *HTTPCaller) {
		c.insecure = allowed
	}
}

// WithTrustAllCerts disables TLS certificate verification.
func WithTrustAllCerts(trustAll bool) Option {
	return func(c *HTTPCaller) {
		c.trustAll = trustAll
	}
}

// WithStreaming sends request bodies chunked instead of buffering them.
func WithStreaming(on bool) Option {
	return func(c *HTTPCaller) {
		c.streaming = on
	}
}

// WithHTTPClient bases the underlying HTTP client on hc. The caller works
// on a copy of hc and of its *http.Transport, so timeout and TLS settings
// never reach hc itself. Without WithTimeout, hc's timeout is kept.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPCaller) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for per-call diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *HTTPCaller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewHTTPCaller creates a caller for the service at rawURL.
func NewHTTPCaller(rawURL string, opts ...Option) (*HTTPCaller, error) {
	u, err := ParseServiceURL(rawURL)
	if err != nil {
		return nil, err
	}
	c := &HTTPCaller{
		url:    u,
		logger: logging.Nop(),
		newID:  func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	c.httpClient = ownClient(c.httpClient)
	if c.timeout != nil {
		c.httpClient.Timeout = *c.timeout
	}
	c.applyTLS()
	return c, nil
}

// ownClient returns a client the caller may change freely: a copy of hc
// with a cloned *http.Transport, or a fresh client when hc is nil.
func ownClient(hc *http.Client) *http.Client {
	if hc == nil {
		return &http.Client{
			Timeout:   DefaultTimeout,
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
		}
	}
	cp := *hc
	switch tr := cp.Transport.(type) {
	case nil:
		cp.Transport = http.DefaultTransport.(*http.Transport).Clone()
	case *http.Transport:
		cp.Transport = tr.Clone()
	}
	return &cp
}

// ParseServiceURL validates a service URL.
func ParseServiceURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid service URL %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid service URL %q: scheme must be http or https", rawURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid service URL %q: missing host", rawURL)
	}
	return u, nil
}

// URL returns the service URL.
func (c *HTTPCaller) URL() *url.URL {
	u := *c.url
	return &u
}

// Token returns the configured token, or nil.
func (c *HTTPCaller) Token() *auth.Token {
	return c.token
}

// HTTPClient returns the client used for calls. It is owned by the caller
// and carries its timeout and TLS policy.
func (c *HTTPCaller) HTTPClient() *http.Client {
	return c.httpClient
}

// SetToken replaces the token sent in the Authorization header.
func (c *HTTPCaller) SetToken(token *auth.Token) {
	c.token = token
}

// SetTimeout changes the connection read timeout. Zero disables it.
func (c *HTTPCaller) SetTimeout(timeout time.Duration) {
	c.httpClient.Timeout = timeout
}

// Timeout returns the connection read timeout.
func (c *HTTPCaller) Timeout() time.Duration {
	return c.httpClient.Timeout
}

// InsecureHTTPAllowed reports whether credentials may travel over plain http.
func (c *HTTPCaller) InsecureHTTPAllowed() bool {
	return c.insecure
}

// SetInsecureHTTPAllowed changes the insecure http allowance.
func (c *HTTPCaller) SetInsecureHTTPAllowed(allowed bool) {
	c.insecure = allowed
}

// TrustAllCerts reports whether TLS verification is disabled.
func (c *HTTPCaller) TrustAllCerts() bool {
	return c.trustAll
}

// SetTrustAllCerts enables or disables TLS certificate verification.
func (c *HTTPCaller) SetTrustAllCerts(trustAll bool) {
	c.trustAll = trustAll
	c.applyTLS()
}

// Streaming reports whether request bodies are streamed.
func (c *HTTPCaller) Streaming() bool {
	return c.streaming
}

// SetStreaming turns streaming mode on or off.
func (c *HTTPCaller) SetStreaming(on bool) {
	c.streaming = on
}

// applyTLS pushes the trust policy into the caller's own transport. Custom
// RoundTrippers other than *http.Transport are left alone.
func (c *HTTPCaller) applyTLS() {
	tr, ok := c.httpClient.Transport.(*http.Transport)
	if !ok {
		return
	}
	if tr.TLSClientConfig == nil {
		tr.TLSClientConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	} else {
		tr.TLSClientConfig = tr.TLSClientConfig.Clone()
	}
	tr.TLSClientConfig.InsecureSkipVerify = c.trustAll //nolint:gosec // opt-in via SetTrustAllCerts
}

// Call implements Caller.
func (c *HTTPCaller) Call(ctx context.Context, req *Request, result any) error {
	token, err := c.authorize(req)
	if err != nil {
		return err
	}

	env := NewEnvelope(req, c.newID())
	httpReq, err := c.newHTTPRequest(ctx, env)
	if err != nil {
		return err
	}
	if token != "" {
		httpReq.Header.Set("Authorization", token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warn("jsonrpc call failed", "method", req.Method, "id", env.ID, "error", err)
		return &TransportError{Method: req.Method, URL: c.url.String(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	err = c.decode(req, resp, result)
	c.logger.Debug("jsonrpc call",
		"method", req.Method,
		"id", env.ID,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"error", err,
	)
	return err
}

// authorize returns the token to send, or an unauthorized error when the
// request cannot be sent with the current credentials.
func (c *HTTPCaller) authorize(req *Request) (string, error) {
	var token string
	if c.token != nil {
		token = c.token.Value
	}
	secure := c.url.Scheme == "https" || c.insecure

	if req.RequireAuth {
		if token == "" {
			return "", UnauthorizedError(req.Method, ErrNoToken, 0)
		}
		if !secure {
			return "", UnauthorizedError(req.Method, ErrInsecureAuth, 0)
		}
		return token, nil
	}
	if !secure {
		// optional credentials are not leaked over plain http
		return "", nil
	}
	return token, nil
}

func (c *HTTPCaller) newHTTPRequest(ctx context.Context, env *Envelope) (*http.Request, error) {
	var body io.Reader
	if c.streaming {
		pr, pw := io.Pipe()
		go func() {
			_ = pw.CloseWithError(json.NewEncoder(pw).Encode(env))
		}()
		body = pr
	} else {
		data, err := json.Marshal(env)
		if err != nil {
			return nil, &RPCError{
				Method:  env.Method,
				Name:    "JSONRPCError",
				Code:    ErrCodeInvalidParams,
				Message: fmt.Sprintf("failed to encode request for %s: %v", env.Method, err),
				cause:   err,
			}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url.String(), body)
	if err != nil {
		return nil, &TransportError{Method: env.Method, URL: c.url.String(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *HTTPCaller) decode(req *Request, resp *http.Response, result any) error {
	if resp.StatusCode == http.StatusOK && !req.ExpectResponse {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Method: req.Method, URL: c.url.String(), Err: err}
	}

	var env ResponseEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return UnauthorizedError(req.Method,
				fmt.Errorf("service rejected credentials: %s", excerpt(body)), resp.StatusCode)
		}
		return MalformedResponseError(req.Method, resp.StatusCode, excerpt(body))
	}
	if env.Error != nil {
		return NewRPCError(req.Method, env.Error, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return UnauthorizedError(req.Method,
				fmt.Errorf("service rejected credentials (HTTP %d)", resp.StatusCode), resp.StatusCode)
		}
		return MalformedResponseError(req.Method, resp.StatusCode, "unexpected HTTP status")
	}
	if result == nil {
		return nil
	}
	if len(env.Result) == 0 {
		return MalformedResponseError(req.Method, resp.StatusCode, "response has no result")
	}
	if err := json.Unmarshal(env.Result, result); err != nil {
		return MalformedResponseError(req.Method, resp.StatusCode, err.Error())
	}
	return nil
}

func excerpt(body []byte) string {
	if len(body) > maxErrorExcerpt {
		return string(body[:maxErrorExcerpt]) + "..."
	}
	return string(body)
}
