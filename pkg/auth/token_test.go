package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		w.Header().Set("Content-Type", "application/json")
		if r.PostForm.Get("user_id") == "alice" && r.PostForm.Get("password") == "s3cret" {
			assert.Equal(t, "token", r.PostForm.Get("fields"))
			_ = json.NewEncoder(w).Encode(map[string]string{"user_id": "alice", "token": "ABCDEF123456"})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"10020 Invalid username or password"}}`))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestLogin_Success(t *testing.T) {
	ts := loginServer(t)

	tok, err := Login(context.Background(), ts.URL, "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "ABCDEF123456", tok.Value)
	assert.Equal(t, "alice", tok.User)
}

func TestLogin_BadPassword(t *testing.T) {
	ts := loginServer(t)

	_, err := Login(context.Background(), ts.URL, "alice", "wrong")
	require.Error(t, err)

	var loginErr *LoginError
	require.True(t, errors.As(err, &loginErr))
	assert.Equal(t, http.StatusUnauthorized, loginErr.StatusCode)
	assert.Contains(t, loginErr.Message, "Invalid username or password")
}

func TestLogin_MissingCredentials(t *testing.T) {
	_, err := Login(context.Background(), "http://127.0.0.1:1", "", "x")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestLogin_Unreachable(t *testing.T) {
	_, err := Login(context.Background(), "http://127.0.0.1:1", "alice", "s3cret")
	require.Error(t, err)
	var loginErr *LoginError
	assert.False(t, errors.As(err, &loginErr))
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, "<no token>", (*Token)(nil).String())
	assert.Equal(t, "token ****3456", NewToken(" ABCDEF123456\n").String())
	assert.Equal(t, "token for alice", (&Token{Value: "x", User: "alice"}).String())
}
