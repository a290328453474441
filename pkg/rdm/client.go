package rdm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/kbaseapps/refdatamgr/pkg/auth"
	"github.com/kbaseapps/refdatamgr/pkg/jsonrpc"
)

// ServiceName is the module name that prefixes every remote method.
const ServiceName = "ReferenceDataManager"

// Operation names as exposed by the service.
const (
	OpListReferenceGenomes = "list_reference_genomes"
	OpListLoadedGenomes    = "list_loaded_genomes"
	OpListLoadedTaxons     = "list_loaded_taxons"
	OpLoadGenomes          = "load_genomes"
	OpLoadTaxons           = "load_taxons"
	OpIndexGenomesInSolr   = "index_genomes_in_solr"
	OpUpdateLoadedGenomes  = "update_loaded_genomes"
	OpStatus               = "status"
)

// MethodName returns the fully qualified remote method name for op.
func MethodName(op string) string {
	return ServiceName + "." + op
}

// ErrEmptyToken is returned by NewWithToken when the token has no value.
var ErrEmptyToken = errors.New("auth token is empty")

// Client calls the ReferenceDataManager service. Each method performs one
// blocking request. Configuration setters must not be called concurrently
// with requests.
type Client struct {
	caller         jsonrpc.Caller
	http           *jsonrpc.HTTPCaller // nil when built with NewWithCaller
	serviceVersion string
}

type settings struct {
	httpOpts       []jsonrpc.Option
	serviceVersion string
}

// Option configures a Client.
type Option func(*settings)

// WithTimeout sets the connection read timeout. Zero disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.httpOpts = append(s.httpOpts, jsonrpc.WithTimeout(timeout))
	}
}

// WithInsecureHTTP allows authenticated calls over plain http.
func WithInsecureHTTP(allowed bool) Option {
	return func(s *settings) {
		s.httpOpts = append(s.httpOpts, jsonrpc.WithInsecureHTTP(allowed))
	}
}

// WithTrustAllCerts trusts every TLS certificate, including self-signed ones.
func WithTrustAllCerts(trustAll bool) Option {
	return func(s *settings) {
		s.httpOpts = append(s.httpOpts, jsonrpc.WithTrustAllCerts(trustAll))
	}
}

// WithStreaming streams request bodies to the server instead of buffering
// them. Many servers do not accept chunked requests.
func WithStreaming(on bool) Option {
	return func(s *settings) {
		s.httpOpts = append(s.httpOpts, jsonrpc.WithStreaming(on))
	}
}

// WithHTTPClient bases the HTTP client used for service and login calls on
// hc. hc itself is never modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *settings) {
		s.httpOpts = append(s.httpOpts, jsonrpc.WithHTTPClient(hc))
	}
}

// WithLogger sets the logger for per-call diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.httpOpts = append(s.httpOpts, jsonrpc.WithLogger(logger))
	}
}

// WithServiceVersion pins calls to a deployed service release.
func WithServiceVersion(version string) Option {
	return func(s *settings) {
		s.serviceVersion = version
	}
}

func newSettings(opts []Option) *settings {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// New creates a client for serviceURL without credentials.
func New(serviceURL string, opts ...Option) (*Client, error) {
	return newClient(serviceURL, nil, newSettings(opts))
}

// NewWithToken creates a client that authenticates with token.
func NewWithToken(serviceURL string, token *auth.Token, opts ...Option) (*Client, error) {
	if token == nil || token.Value == "" {
		return nil, ErrEmptyToken
	}
	return newClient(serviceURL, token, newSettings(opts))
}

// NewWithPassword logs in at the default auth endpoint and creates a client
// holding the resulting token.
func NewWithPassword(ctx context.Context, serviceURL, user, password string, opts ...Option) (*Client, error) {
	return NewWithPasswordAuthURL(ctx, serviceURL, user, password, auth.DefaultLoginURL, opts...)
}

// NewWithPasswordAuthURL logs in at loginURL and creates a client holding the
// resulting token.
func NewWithPasswordAuthURL(ctx context.Context, serviceURL, user, password, loginURL string, opts ...Option) (*Client, error) {
	c, err := newClient(serviceURL, nil, newSettings(opts))
	if err != nil {
		return nil, err
	}
	// Login shares the service client's timeout and TLS policy.
	token, err := auth.Login(ctx, loginURL, user, password, auth.WithHTTPClient(c.http.HTTPClient()))
	if err != nil {
		return nil, err
	}
	c.http.SetToken(token)
	return c, nil
}

// NewWithCaller creates a client on top of a custom transport. Transport
// settings (timeout, TLS, streaming) are the caller's business and the
// corresponding setters have no effect.
func NewWithCaller(caller jsonrpc.Caller, opts ...Option) *Client {
	s := newSettings(opts)
	c := &Client{caller: caller, serviceVersion: s.serviceVersion}
	if hc, ok := caller.(*jsonrpc.HTTPCaller); ok {
		c.http = hc
	}
	return c
}

func newClient(serviceURL string, token *auth.Token, s *settings) (*Client, error) {
	opts := s.httpOpts
	if token != nil {
		opts = append(opts, jsonrpc.WithToken(token))
	}
	hc, err := jsonrpc.NewHTTPCaller(serviceURL, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{caller: hc, http: hc, serviceVersion: s.serviceVersion}, nil
}

// URL returns the service URL, or nil for a custom caller.
func (c *Client) URL() *url.URL {
	if c.http == nil {
		return nil
	}
	return c.http.URL()
}

// Token returns the token used for authenticated calls, or nil.
func (c *Client) Token() *auth.Token {
	if c.http == nil {
		return nil
	}
	return c.http.Token()
}

// SetConnectionReadTimeout sets the read timeout. Zero disables it.
func (c *Client) SetConnectionReadTimeout(timeout time.Duration) {
	if c.http != nil {
		c.http.SetTimeout(timeout)
	}
}

// IsInsecureHTTPConnectionAllowed reports whether authenticated calls may use http.
func (c *Client) IsInsecureHTTPConnectionAllowed() bool {
	return c.http != nil && c.http.InsecureHTTPAllowed()
}

// SetInsecureHTTPConnectionAllowed allows or forbids authenticated calls over http.
func (c *Client) SetInsecureHTTPConnectionAllowed(allowed bool) {
	if c.http != nil {
		c.http.SetInsecureHTTPAllowed(allowed)
	}
}

// IsAllSSLCertificatesTrusted reports whether TLS verification is disabled.
func (c *Client) IsAllSSLCertificatesTrusted() bool {
	return c.http != nil && c.http.TrustAllCerts()
}

// SetAllSSLCertificatesTrusted disables or enables TLS verification.
func (c *Client) SetAllSSLCertificatesTrusted(trustAll bool) {
	if c.http != nil {
		c.http.SetTrustAllCerts(trustAll)
	}
}

// IsStreamingModeOn reports whether request bodies are streamed.
func (c *Client) IsStreamingModeOn() bool {
	return c.http != nil && c.http.Streaming()
}

// SetStreamingModeOn turns request streaming on or off.
func (c *Client) SetStreamingModeOn(on bool) {
	if c.http != nil {
		c.http.SetStreaming(on)
	}
}

// ServiceVersion returns the pinned service release, or "".
func (c *Client) ServiceVersion() string {
	return c.serviceVersion
}

// SetServiceVersion pins calls to a service release. Empty removes the pin.
func (c *Client) SetServiceVersion(version string) {
	c.serviceVersion = version
}

// ListReferenceGenomes lists genomes present in the selected reference
// databases (ensembl, phytozome, refseq).
func (c *Client) ListReferenceGenomes(ctx context.Context, params *ListReferenceGenomesParams, rpcContext ...*jsonrpc.CallContext) ([]ReferenceGenomeData, error) {
	return callList[ReferenceGenomeData](ctx, c, OpListReferenceGenomes, params, false, rpcContext)
}

// ListLoadedGenomes lists genomes loaded into KBase from the selected
// reference sources.
func (c *Client) ListLoadedGenomes(ctx context.Context, params *ListLoadedGenomesParams, rpcContext ...*jsonrpc.CallContext) ([]KBaseReferenceGenomeData, error) {
	return callList[KBaseReferenceGenomeData](ctx, c, OpListLoadedGenomes, params, false, rpcContext)
}

// ListLoadedTaxons lists taxons loaded into KBase for a workspace.
func (c *Client) ListLoadedTaxons(ctx context.Context, params *ListLoadedTaxonsParams, rpcContext ...*jsonrpc.CallContext) ([]KBaseReferenceTaxonData, error) {
	return callList[KBaseReferenceTaxonData](ctx, c, OpListLoadedTaxons, params, false, rpcContext)
}

// LoadGenomes loads the given genomes into a workspace and indexes them in
// SOLR on demand.
func (c *Client) LoadGenomes(ctx context.Context, params *LoadGenomesParams, rpcContext ...*jsonrpc.CallContext) ([]KBaseReferenceGenomeData, error) {
	return callList[KBaseReferenceGenomeData](ctx, c, OpLoadGenomes, params, true, rpcContext)
}

// LoadTaxons loads the given taxons into a workspace.
func (c *Client) LoadTaxons(ctx context.Context, params *LoadTaxonsParams, rpcContext ...*jsonrpc.CallContext) ([]ReferenceTaxonData, error) {
	return callList[ReferenceTaxonData](ctx, c, OpLoadTaxons, params, true, rpcContext)
}

// IndexGenomesInSolr indexes loaded genomes in SOLR.
func (c *Client) IndexGenomesInSolr(ctx context.Context, params *IndexGenomesInSolrParams, rpcContext ...*jsonrpc.CallContext) ([]KBaseReferenceGenomeData, error) {
	return callList[KBaseReferenceGenomeData](ctx, c, OpIndexGenomesInSolr, params, true, rpcContext)
}

// UpdateLoadedGenomes refreshes loaded genomes from the selected sources.
// params is either *UpdateLoadedGenomesParams or *UpdateLoadedGenomesParamsV1.
func (c *Client) UpdateLoadedGenomes(ctx context.Context, params UpdateParams, rpcContext ...*jsonrpc.CallContext) ([]KBaseReferenceGenomeData, error) {
	return callList[KBaseReferenceGenomeData](ctx, c, OpUpdateLoadedGenomes, params, true, rpcContext)
}

// Status returns the service status document (state, version, git info).
func (c *Client) Status(ctx context.Context, rpcContext ...*jsonrpc.CallContext) (map[string]any, error) {
	var res []map[string]any
	if err := c.call(ctx, OpStatus, []any{}, false, rpcContext, &res); err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return nil, emptyResult(OpStatus)
	}
	return res[0], nil
}

// callList performs op with a single params argument. The service wraps its
// logical result in a one-element array; element 0 is returned.
func callList[T any](ctx context.Context, c *Client, op string, params any, requireAuth bool, rpcContext []*jsonrpc.CallContext) ([]T, error) {
	var res [][]T
	if err := c.call(ctx, op, []any{params}, requireAuth, rpcContext, &res); err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return nil, emptyResult(op)
	}
	return res[0], nil
}

func (c *Client) call(ctx context.Context, op string, args []any, requireAuth bool, rpcContext []*jsonrpc.CallContext, result any) error {
	req := &jsonrpc.Request{
		Method:         MethodName(op),
		Params:         args,
		ExpectResponse: true,
		RequireAuth:    requireAuth,
		Context:        firstContext(rpcContext),
		ServiceVersion: c.serviceVersion,
	}
	return c.caller.Call(ctx, req, result)
}

func firstContext(rpcContext []*jsonrpc.CallContext) *jsonrpc.CallContext {
	for _, rc := range rpcContext {
		if rc != nil {
			return rc
		}
	}
	return nil
}

func emptyResult(op string) error {
	return jsonrpc.MalformedResponseError(MethodName(op), http.StatusOK,
		fmt.Sprintf("%s returned an empty result array", op))
}
