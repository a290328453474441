package rdmtest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/kbaseapps/refdatamgr/pkg/jsonrpc"
	"github.com/kbaseapps/refdatamgr/pkg/rdm"
)

// LoginPath is where the fake auth endpoint is mounted.
const LoginPath = "/auth/login"

type opInfo struct {
	requireAuth bool
	arity       int
}

var operations = map[string]opInfo{
	rdm.OpListReferenceGenomes: {arity: 1},
	rdm.OpListLoadedGenomes:    {arity: 1},
	rdm.OpListLoadedTaxons:     {arity: 1},
	rdm.OpLoadGenomes:          {requireAuth: true, arity: 1},
	rdm.OpLoadTaxons:           {requireAuth: true, arity: 1},
	rdm.OpIndexGenomesInSolr:   {requireAuth: true, arity: 1},
	rdm.OpUpdateLoadedGenomes:  {requireAuth: true, arity: 1},
	rdm.OpStatus:               {arity: 0},
}

// Call is one request received by the fake service.
type Call struct {
	// ID is the envelope id.
	ID any
	// Method is the fully qualified method name.
	Method string
	// Op is Method without the service prefix.
	Op string
	// Params holds the raw positional arguments.
	Params []json.RawMessage
	// Context is the envelope context member.
	Context map[string]any
	// Token is the Authorization header.
	Token string
}

// DecodeParam decodes positional argument i into v.
func (c *Call) DecodeParam(i int, v any) error {
	if i >= len(c.Params) {
		return fmt.Errorf("call %s has %d params, want index %d", c.Method, len(c.Params), i)
	}
	return json.Unmarshal(c.Params[i], v)
}

type user struct {
	password string
	token    string
}

// Server is an in-process ReferenceDataManager speaking the KBase JSON-RPC
// 1.1 dialect. Each operation answers with a canned result, which tests can
// replace with SetResult or SetError. Parameters are validated against the
// embedded JSON Schemas before a result is produced.
type Server struct {
	t   testing.TB
	srv *httptest.Server

	mu      sync.Mutex
	results map[string]any
	errors  map[string]*jsonrpc.ErrorObject
	calls   []*Call
	users   map[string]user
	tokens  map[string]string
}

// New starts a fake service with the default fixtures. It is closed when
// the test finishes.
func New(t testing.TB) *Server {
	t.Helper()

	if _, err := paramSchemas(); err != nil {
		t.Fatalf("rdmtest: %v", err)
	}

	s := &Server{
		t:       t,
		results: defaultResults(),
		errors:  make(map[string]*jsonrpc.ErrorObject),
		users:   make(map[string]user),
		tokens:  make(map[string]string),
	}
	s.AddUser(DefaultUser, DefaultPassword, DefaultToken)

	mux := http.NewServeMux()
	mux.HandleFunc("POST "+LoginPath, s.handleLogin)
	mux.HandleFunc("POST /", s.handleRPC)
	s.srv = httptest.NewServer(mux)
	t.Cleanup(s.srv.Close)
	return s
}

// URL returns the service endpoint.
func (s *Server) URL() string {
	return s.srv.URL
}

// LoginURL returns the fake auth endpoint.
func (s *Server) LoginURL() string {
	return s.srv.URL + LoginPath
}

// Close shuts the server down early.
func (s *Server) Close() {
	s.srv.Close()
}

// AddUser registers an account for the login endpoint. token becomes valid
// for authenticated calls.
func (s *Server) AddUser(name, password, token string) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[name] = user{password: password, token: token}
	s.tokens[token] = name
	return s
}

// SetResult replaces the logical result of op. The server wraps it in the
// one-element result array.
func (s *Server) SetResult(op string, result any) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[op] = result
	delete(s.errors, op)
	return s
}

// SetError makes op fail with a server side error object.
func (s *Server) SetError(op string, code int, message string) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors[op] = &jsonrpc.ErrorObject{
		Name:    "Server error",
		Code:    code,
		Message: message,
		Error:   "Traceback (most recent call last):\n  " + op,
	}
	return s
}

// Calls returns every request received so far.
func (s *Server) Calls() []*Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallsTo returns the requests received for op.
func (s *Server) CallsTo(op string) []*Call {
	var out []*Call
	for _, c := range s.Calls() {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// LastCall returns the most recent request, failing the test when there is none.
func (s *Server) LastCall() *Call {
	s.t.Helper()
	calls := s.Calls()
	if len(calls) == 0 {
		s.t.Fatalf("rdmtest: no calls received")
		return nil
	}
	return calls[len(calls)-1]
}

// AssertCalled fails the test unless op was called exactly times times.
func (s *Server) AssertCalled(op string, times int) {
	s.t.Helper()
	if got := len(s.CallsTo(op)); got != times {
		s.t.Errorf("rdmtest: %s called %d times, want %d", op, got, times)
	}
}

// Reset forgets recorded calls and restores the default fixtures.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
	s.results = defaultResults()
	s.errors = make(map[string]*jsonrpc.ErrorObject)
}

type requestEnvelope struct {
	Version string            `json:"version"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
	ID      any               `json:"id"`
	Context map[string]any    `json:"context"`
}

func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusInternalServerError, nil, jsonrpc.ErrCodeInternalError, err.Error())
		return
	}

	var env requestEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		writeError(w, http.StatusInternalServerError, nil, jsonrpc.ErrCodeParseError, "Parse error: "+err.Error())
		return
	}
	if env.Version != jsonrpc.Version {
		writeError(w, http.StatusInternalServerError, env.ID, jsonrpc.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported protocol version %q", env.Version))
		return
	}

	op, ok := strings.CutPrefix(env.Method, rdm.ServiceName+".")
	call := &Call{
		ID:      env.ID,
		Method:  env.Method,
		Op:      op,
		Params:  env.Params,
		Context: env.Context,
		Token:   r.Header.Get("Authorization"),
	}
	s.mu.Lock()
	s.calls = append(s.calls, call)
	s.mu.Unlock()

	info, known := operations[op]
	if !ok || !known {
		writeError(w, http.StatusInternalServerError, env.ID, jsonrpc.ErrCodeMethodNotFound,
			"Method not found: "+env.Method)
		return
	}

	if call.Token != "" || info.requireAuth {
		if !s.validToken(call.Token) {
			msg := "Token validation failed"
			if call.Token == "" {
				msg = "Authentication required for " + env.Method
			}
			writeError(w, http.StatusUnauthorized, env.ID, jsonrpc.ErrCodeUnauthorized, msg)
			return
		}
	}

	if len(env.Params) != info.arity {
		writeError(w, http.StatusInternalServerError, env.ID, jsonrpc.ErrCodeInvalidParams,
			fmt.Sprintf("Invalid params: %s takes %d argument(s) but %d were given", env.Method, info.arity, len(env.Params)))
		return
	}
	if info.arity == 1 {
		var value any
		if err := json.Unmarshal(env.Params[0], &value); err != nil {
			writeError(w, http.StatusInternalServerError, env.ID, jsonrpc.ErrCodeInvalidParams, err.Error())
			return
		}
		if err := validateParams(op, value); err != nil {
			writeError(w, http.StatusInternalServerError, env.ID, jsonrpc.ErrCodeInvalidParams, err.Error())
			return
		}
	}

	s.mu.Lock()
	errObj := s.errors[op]
	result := s.results[op]
	s.mu.Unlock()

	if errObj != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"version": jsonrpc.Version,
			"id":      env.ID,
			"error":   errObj,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"version": jsonrpc.Version,
		"id":      env.ID,
		"result":  []any{result},
	})
}

func (s *Server) validToken(token string) bool {
	if token == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[token]
	return ok
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, loginFailure(err.Error()))
		return
	}
	name := r.PostForm.Get("user_id")

	s.mu.Lock()
	u, ok := s.users[name]
	s.mu.Unlock()

	if !ok || u.password != r.PostForm.Get("password") {
		writeJSON(w, http.StatusUnauthorized, loginFailure("LoginFailure: Authentication failed."))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"user_id": name, "token": u.token})
}

func loginFailure(msg string) map[string]any {
	return map[string]any{"error": map[string]any{"message": msg}}
}

func writeError(w http.ResponseWriter, status int, id any, code int, message string) {
	writeJSON(w, status, map[string]any{
		"version": jsonrpc.Version,
		"id":      id,
		"error": &jsonrpc.ErrorObject{
			Name:    "JSONRPCError",
			Code:    code,
			Message: message,
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
