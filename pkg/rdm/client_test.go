package rdm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbaseapps/refdatamgr/pkg/auth"
	"github.com/kbaseapps/refdatamgr/pkg/jsonrpc"
)

// recordingCaller captures requests and answers with a fixed raw result.
type recordingCaller struct {
	reqs     []*jsonrpc.Request
	response string
	err      error
}

func (c *recordingCaller) Call(_ context.Context, req *jsonrpc.Request, result any) error {
	c.reqs = append(c.reqs, req)
	if c.err != nil {
		return c.err
	}
	return json.Unmarshal([]byte(c.response), result)
}

func (c *recordingCaller) last(t *testing.T) *jsonrpc.Request {
	t.Helper()
	require.NotEmpty(t, c.reqs)
	return c.reqs[len(c.reqs)-1]
}

func TestClient_Operations(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		method   string
		auth     bool
		response string
		params   any
		invoke   func(c *Client, params any) (any, error)
		check    func(t *testing.T, got any)
	}{
		{
			name:     "list_reference_genomes",
			method:   "ReferenceDataManager.list_reference_genomes",
			response: `[[{"id":"GCF_1","source":"refseq"},{"id":"GCF_2"}]]`,
			params:   (&ListReferenceGenomesParams{}).WithRefSeq(1),
			invoke: func(c *Client, p any) (any, error) {
				return c.ListReferenceGenomes(ctx, p.(*ListReferenceGenomesParams))
			},
			check: func(t *testing.T, got any) {
				genomes := got.([]ReferenceGenomeData)
				require.Len(t, genomes, 2)
				assert.Equal(t, "GCF_1", *genomes[0].ID)
				assert.Equal(t, "refseq", *genomes[0].Source)
			},
		},
		{
			name:     "list_loaded_genomes",
			method:   "ReferenceDataManager.list_loaded_genomes",
			response: `[[{"id":"g1","ref":"1/2/3"}]]`,
			params:   (&ListLoadedGenomesParams{}).WithEnsembl(1),
			invoke: func(c *Client, p any) (any, error) {
				return c.ListLoadedGenomes(ctx, p.(*ListLoadedGenomesParams))
			},
			check: func(t *testing.T, got any) {
				genomes := got.([]KBaseReferenceGenomeData)
				require.Len(t, genomes, 1)
				assert.Equal(t, "g1", *genomes[0].ID)
				assert.Equal(t, "1/2/3", *genomes[0].Ref)
			},
		},
		{
			name:     "list_loaded_taxons",
			method:   "ReferenceDataManager.list_loaded_taxons",
			response: `[[{"taxon":{"taxonomy_id":562,"scientific_name":"Escherichia coli"},"ws_ref":"5/6/7"}]]`,
			params:   (&ListLoadedTaxonsParams{}).WithWorkspaceName("ReferenceTaxons"),
			invoke: func(c *Client, p any) (any, error) {
				return c.ListLoadedTaxons(ctx, p.(*ListLoadedTaxonsParams))
			},
			check: func(t *testing.T, got any) {
				taxons := got.([]KBaseReferenceTaxonData)
				require.Len(t, taxons, 1)
				assert.Equal(t, "5/6/7", *taxons[0].WSRef)
				assert.Equal(t, int64(562), *taxons[0].Taxon.TaxonomyID)
			},
		},
		{
			name:     "load_genomes",
			method:   "ReferenceDataManager.load_genomes",
			auth:     true,
			response: `[[{"ref":"9/1/1","id":"GCF_1","workspace_name":"RefData"}]]`,
			params:   (&LoadGenomesParams{}).WithGenomes([]ReferenceGenomeData{*sampleGenome()}).WithWorkspaceName("RefData"),
			invoke: func(c *Client, p any) (any, error) {
				return c.LoadGenomes(ctx, p.(*LoadGenomesParams))
			},
			check: func(t *testing.T, got any) {
				genomes := got.([]KBaseReferenceGenomeData)
				require.Len(t, genomes, 1)
				assert.Equal(t, "RefData", *genomes[0].WorkspaceName)
			},
		},
		{
			name:     "load_taxons",
			method:   "ReferenceDataManager.load_taxons",
			auth:     true,
			response: `[[{"taxonomy_id":562},{"taxonomy_id":561}]]`,
			params:   (&LoadTaxonsParams{}).WithTaxons([]ReferenceTaxonData{*sampleTaxon()}),
			invoke: func(c *Client, p any) (any, error) {
				return c.LoadTaxons(ctx, p.(*LoadTaxonsParams))
			},
			check: func(t *testing.T, got any) {
				taxons := got.([]ReferenceTaxonData)
				require.Len(t, taxons, 2)
				assert.Equal(t, int64(561), *taxons[1].TaxonomyID)
			},
		},
		{
			name:     "index_genomes_in_solr",
			method:   "ReferenceDataManager.index_genomes_in_solr",
			auth:     true,
			response: `[[]]`,
			params:   (&IndexGenomesInSolrParams{}).WithGenomes([]KBaseReferenceGenomeData{*sampleLoadedGenome()}),
			invoke: func(c *Client, p any) (any, error) {
				return c.IndexGenomesInSolr(ctx, p.(*IndexGenomesInSolrParams))
			},
			check: func(t *testing.T, got any) {
				genomes := got.([]KBaseReferenceGenomeData)
				assert.NotNil(t, genomes)
				assert.Empty(t, genomes)
			},
		},
		{
			name:     "update_loaded_genomes",
			method:   "ReferenceDataManager.update_loaded_genomes",
			auth:     true,
			response: `[[{"id":"GCF_1"}]]`,
			params:   (&UpdateLoadedGenomesParams{}).WithRefSeq(1).WithFormats("gbff"),
			invoke: func(c *Client, p any) (any, error) {
				return c.UpdateLoadedGenomes(ctx, p.(*UpdateLoadedGenomesParams))
			},
			check: func(t *testing.T, got any) {
				assert.Len(t, got.([]KBaseReferenceGenomeData), 1)
			},
		},
		{
			name:     "update_loaded_genomes v1",
			method:   "ReferenceDataManager.update_loaded_genomes",
			auth:     true,
			response: `[[{"id":"GCF_1"},{"id":"GCF_2"}]]`,
			params:   (&UpdateLoadedGenomesParamsV1{}).WithRefSeq(1).WithFileFormats("gbff"),
			invoke: func(c *Client, p any) (any, error) {
				return c.UpdateLoadedGenomes(ctx, p.(*UpdateLoadedGenomesParamsV1))
			},
			check: func(t *testing.T, got any) {
				assert.Len(t, got.([]KBaseReferenceGenomeData), 2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caller := &recordingCaller{response: tt.response}
			c := NewWithCaller(caller)

			got, err := tt.invoke(c, tt.params)
			require.NoError(t, err)
			tt.check(t, got)

			req := caller.last(t)
			assert.Equal(t, tt.method, req.Method)
			require.Len(t, req.Params, 1)
			assert.Same(t, tt.params, req.Params[0])
			assert.True(t, req.ExpectResponse)
			assert.Equal(t, tt.auth, req.RequireAuth)
			assert.Empty(t, req.ServiceVersion)
			assert.Nil(t, req.Context)
		})
	}
}

func TestClient_Status(t *testing.T) {
	caller := &recordingCaller{response: `[{"state":"OK","version":"1.0.4","git_url":"https://github.com/kbaseapps/ReferenceDataManager"}]`}
	c := NewWithCaller(caller)

	status, err := c.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "OK", status["state"])
	assert.Equal(t, "1.0.4", status["version"])

	req := caller.last(t)
	assert.Equal(t, "ReferenceDataManager.status", req.Method)
	assert.Empty(t, req.Params)
	assert.NotNil(t, req.Params)
	assert.False(t, req.RequireAuth)
}

func TestClient_ErrorsPassThroughUnmodified(t *testing.T) {
	rpcErr := &jsonrpc.RPCError{Name: "JSONRPCError", Code: -32500, Message: "workspace RefData does not exist"}
	transportErr := &jsonrpc.TransportError{Method: "m", URL: "https://x", Err: errors.New("connection refused")}

	for _, want := range []error{rpcErr, transportErr} {
		c := NewWithCaller(&recordingCaller{err: want})
		genomes, err := c.LoadGenomes(context.Background(), &LoadGenomesParams{})
		assert.Nil(t, genomes)
		assert.Same(t, want, err)
	}
}

func TestClient_EmptyResultIsRPCError(t *testing.T) {
	c := NewWithCaller(jsonrpc.StaticResult(`[]`))

	_, err := c.ListLoadedGenomes(context.Background(), &ListLoadedGenomesParams{})
	var rpcErr *jsonrpc.RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Contains(t, rpcErr.Message, "empty result")

	_, err = c.Status(context.Background())
	require.ErrorAs(t, err, &rpcErr)
}

func TestClient_ServiceVersionAndContext(t *testing.T) {
	caller := &recordingCaller{response: `[[]]`}
	c := NewWithCaller(caller, WithServiceVersion("dev"))
	assert.Equal(t, "dev", c.ServiceVersion())

	rc := &jsonrpc.CallContext{CallStack: []map[string]any{{"method": "Narrative.run"}}}
	_, err := c.ListReferenceGenomes(context.Background(), &ListReferenceGenomesParams{}, nil, rc)
	require.NoError(t, err)
	assert.Equal(t, "dev", caller.last(t).ServiceVersion)
	assert.Same(t, rc, caller.last(t).Context)

	c.SetServiceVersion("")
	_, err = c.ListReferenceGenomes(context.Background(), &ListReferenceGenomesParams{})
	require.NoError(t, err)
	assert.Empty(t, caller.last(t).ServiceVersion)
}

func TestNew_InvalidURL(t *testing.T) {
	for _, u := range []string{"", "ftp://kbase.us/services", "https://", "::not a url"} {
		_, err := New(u)
		assert.Error(t, err, u)
	}
}

func TestNewWithToken_Empty(t *testing.T) {
	_, err := NewWithToken("https://kbase.us/services/rdm", nil)
	assert.ErrorIs(t, err, ErrEmptyToken)
	_, err = NewWithToken("https://kbase.us/services/rdm", auth.NewToken("  "))
	assert.ErrorIs(t, err, ErrEmptyToken)
}

func TestClient_Settings(t *testing.T) {
	c, err := NewWithToken("https://kbase.us/services/rdm", auth.NewToken("TOKEN"),
		WithTimeout(5*time.Second), WithStreaming(true), WithServiceVersion("release"))
	require.NoError(t, err)

	assert.Equal(t, "https://kbase.us/services/rdm", c.URL().String())
	assert.Equal(t, "TOKEN", c.Token().Value)
	assert.True(t, c.IsStreamingModeOn())
	assert.False(t, c.IsInsecureHTTPConnectionAllowed())
	assert.False(t, c.IsAllSSLCertificatesTrusted())
	assert.Equal(t, "release", c.ServiceVersion())

	c.SetStreamingModeOn(false)
	c.SetInsecureHTTPConnectionAllowed(true)
	c.SetAllSSLCertificatesTrusted(true)
	c.SetConnectionReadTimeout(0)
	assert.False(t, c.IsStreamingModeOn())
	assert.True(t, c.IsInsecureHTTPConnectionAllowed())
	assert.True(t, c.IsAllSSLCertificatesTrusted())
}

func TestClient_CustomCallerSettersAreNoops(t *testing.T) {
	c := NewWithCaller(jsonrpc.StaticResult(`[[]]`))
	c.SetStreamingModeOn(true)
	c.SetAllSSLCertificatesTrusted(true)
	assert.False(t, c.IsStreamingModeOn())
	assert.False(t, c.IsAllSSLCertificatesTrusted())
	assert.Nil(t, c.URL())
	assert.Nil(t, c.Token())
}

func TestNewWithPasswordAuthURL(t *testing.T) {
	login := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		if r.PostForm.Get("password") != "pw" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"message":"Invalid password"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"user_id":"` + r.PostForm.Get("user_id") + `","token":"LOGINTOKEN"}`))
	}))
	t.Cleanup(login.Close)

	c, err := NewWithPasswordAuthURL(context.Background(), "https://kbase.us/services/rdm", "bob", "pw", login.URL)
	require.NoError(t, err)
	assert.Equal(t, "LOGINTOKEN", c.Token().Value)
	assert.Equal(t, "bob", c.Token().User)

	_, err = NewWithPasswordAuthURL(context.Background(), "https://kbase.us/services/rdm", "bob", "nope", login.URL)
	var loginErr *auth.LoginError
	require.ErrorAs(t, err, &loginErr)
	assert.Equal(t, http.StatusUnauthorized, loginErr.StatusCode)

	_, err = NewWithPasswordAuthURL(context.Background(), "not-a-url", "bob", "pw", login.URL)
	require.Error(t, err)
	assert.False(t, errors.As(err, &loginErr))
}

func TestHTTPClientOption_LeavesSharedClientAlone(t *testing.T) {
	shared := &http.Client{Transport: http.DefaultTransport}
	sharedTLS := http.DefaultTransport.(*http.Transport).TLSClientConfig

	c, err := New("https://kbase.us/services/rdm", WithTimeout(5*time.Second), WithHTTPClient(shared))
	require.NoError(t, err)
	c.SetAllSSLCertificatesTrusted(true)

	assert.Equal(t, 5*time.Second, c.http.Timeout())
	assert.Zero(t, shared.Timeout)
	assert.Same(t, http.DefaultTransport, shared.Transport)
	assert.Same(t, sharedTLS, http.DefaultTransport.(*http.Transport).TLSClientConfig)
	if sharedTLS != nil {
		assert.False(t, sharedTLS.InsecureSkipVerify)
	}
}

func TestNewWithPasswordAuthURL_LoginUsesClientTLSPolicy(t *testing.T) {
	login := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		_, _ = w.Write([]byte(`{"user_id":"` + r.PostForm.Get("user_id") + `","token":"TLSTOKEN"}`))
	}))
	t.Cleanup(login.Close)
	ctx := context.Background()

	_, err := NewWithPasswordAuthURL(ctx, "https://kbase.us/services/rdm", "bob", "pw", login.URL)
	require.Error(t, err, "self-signed login endpoint must be rejected by default")

	c, err := NewWithPasswordAuthURL(ctx, "https://kbase.us/services/rdm", "bob", "pw", login.URL,
		WithTrustAllCerts(true), WithTimeout(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "TLSTOKEN", c.Token().Value)
	assert.Equal(t, time.Minute, c.http.Timeout())
}
