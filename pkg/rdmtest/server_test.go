package rdmtest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbaseapps/refdatamgr/pkg/auth"
	"github.com/kbaseapps/refdatamgr/pkg/jsonrpc"
	"github.com/kbaseapps/refdatamgr/pkg/rdm"
	"github.com/kbaseapps/refdatamgr/pkg/rdmtest"
)

func post(t *testing.T, u, token string, body any) (int, map[string]any) {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, u, bytes.NewReader(data))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func envelope(method string, params ...any) map[string]any {
	if params == nil {
		params = []any{}
	}
	return map[string]any{"version": "1.1", "method": method, "params": params, "id": "42"}
}

func errorCode(t *testing.T, resp map[string]any) float64 {
	t.Helper()
	e, ok := resp["error"].(map[string]any)
	require.True(t, ok, "response has no error member: %v", resp)
	return e["code"].(float64)
}

func TestServer_Status(t *testing.T) {
	srv := rdmtest.New(t)

	status, resp := post(t, srv.URL(), "", envelope("ReferenceDataManager.status"))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "1.1", resp["version"])
	assert.Equal(t, "42", resp["id"])
	result := resp["result"].([]any)
	require.Len(t, result, 1)
	assert.Equal(t, "OK", result[0].(map[string]any)["state"])

	srv.AssertCalled(rdm.OpStatus, 1)
}

func TestServer_Errors(t *testing.T) {
	srv := rdmtest.New(t)

	tests := []struct {
		name   string
		token  string
		body   any
		status int
		code   float64
	}{
		{
			name:   "unknown method",
			body:   envelope("ReferenceDataManager.drop_everything", map[string]any{}),
			status: http.StatusInternalServerError,
			code:   jsonrpc.ErrCodeMethodNotFound,
		},
		{
			name:   "wrong service",
			body:   envelope("Workspace.status"),
			status: http.StatusInternalServerError,
			code:   jsonrpc.ErrCodeMethodNotFound,
		},
		{
			name:   "bad version",
			body:   map[string]any{"version": "2.0", "method": "ReferenceDataManager.status", "params": []any{}},
			status: http.StatusInternalServerError,
			code:   jsonrpc.ErrCodeInvalidRequest,
		},
		{
			name:   "auth required",
			body:   envelope("ReferenceDataManager.load_genomes", map[string]any{"data": "x"}),
			status: http.StatusUnauthorized,
			code:   jsonrpc.ErrCodeUnauthorized,
		},
		{
			name:   "bad token",
			token:  "nope",
			body:   envelope("ReferenceDataManager.list_loaded_genomes", map[string]any{}),
			status: http.StatusUnauthorized,
			code:   jsonrpc.ErrCodeUnauthorized,
		},
		{
			name:   "wrong arity",
			body:   envelope("ReferenceDataManager.list_loaded_genomes"),
			status: http.StatusInternalServerError,
			code:   jsonrpc.ErrCodeInvalidParams,
		},
		{
			name:   "schema violation",
			body:   envelope("ReferenceDataManager.list_reference_genomes", map[string]any{"refseq": 2}),
			status: http.StatusInternalServerError,
			code:   jsonrpc.ErrCodeInvalidParams,
		},
		{
			name:   "missing required member",
			body:   envelope("ReferenceDataManager.list_loaded_taxons", map[string]any{}),
			status: http.StatusInternalServerError,
			code:   jsonrpc.ErrCodeInvalidParams,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := post(t, srv.URL(), tt.token, tt.body)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, errorCode(t, resp))
		})
	}
}

func TestServer_SchemaMessageNamesField(t *testing.T) {
	srv := rdmtest.New(t)

	_, resp := post(t, srv.URL(), rdmtest.DefaultToken, envelope("ReferenceDataManager.load_taxons",
		map[string]any{"taxons": []any{map[string]any{"taxonomy_id": "562"}}}))
	msg := resp["error"].(map[string]any)["message"].(string)
	assert.Contains(t, msg, "taxons.0.taxonomy_id")
}

func TestServer_Login(t *testing.T) {
	srv := rdmtest.New(t)
	srv.AddUser("alice", "pw", "ALICETOKEN")

	tok, err := auth.Login(context.Background(), srv.LoginURL(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "ALICETOKEN", tok.Value)
	assert.Equal(t, "alice", tok.User)

	_, err = auth.Login(context.Background(), srv.LoginURL(), "alice", "wrong")
	var loginErr *auth.LoginError
	require.ErrorAs(t, err, &loginErr)
	assert.Equal(t, http.StatusUnauthorized, loginErr.StatusCode)
	assert.Contains(t, loginErr.Message, "Authentication failed")

	resp, err := http.PostForm(srv.LoginURL(), url.Values{"user_id": {"nobody"}})
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServer_SetResultAndError(t *testing.T) {
	srv := rdmtest.New(t)
	srv.SetResult(rdm.OpListLoadedGenomes, []map[string]any{{"id": "g1", "ref": "1/2/3"}})

	_, resp := post(t, srv.URL(), "", envelope("ReferenceDataManager.list_loaded_genomes", map[string]any{}))
	assert.Equal(t, []any{[]any{map[string]any{"id": "g1", "ref": "1/2/3"}}}, resp["result"])

	srv.SetError(rdm.OpListLoadedGenomes, jsonrpc.ErrCodeServerError, "solr is down")
	status, resp := post(t, srv.URL(), "", envelope("ReferenceDataManager.list_loaded_genomes", map[string]any{}))
	assert.Equal(t, http.StatusInternalServerError, status)
	e := resp["error"].(map[string]any)
	assert.Equal(t, "solr is down", e["message"])
	assert.Contains(t, e["error"], "Traceback")

	srv.Reset()
	assert.Empty(t, srv.Calls())
	status, _ = post(t, srv.URL(), "", envelope("ReferenceDataManager.list_loaded_genomes", map[string]any{}))
	assert.Equal(t, http.StatusOK, status)
}

func TestServer_RecordsCalls(t *testing.T) {
	srv := rdmtest.New(t)

	body := envelope("ReferenceDataManager.list_loaded_genomes", map[string]any{"workspace": "RefData"})
	body["context"] = map[string]any{"service_ver": "dev"}
	post(t, srv.URL(), rdmtest.DefaultToken, body)

	call := srv.LastCall()
	assert.Equal(t, "ReferenceDataManager.list_loaded_genomes", call.Method)
	assert.Equal(t, rdm.OpListLoadedGenomes, call.Op)
	assert.Equal(t, "42", call.ID)
	assert.Equal(t, rdmtest.DefaultToken, call.Token)
	assert.Equal(t, "dev", call.Context["service_ver"])

	var params rdm.ListLoadedGenomesParams
	require.NoError(t, call.DecodeParam(0, &params))
	assert.Equal(t, "RefData", *params.Workspace)
	assert.Error(t, call.DecodeParam(1, &params))
}
