package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	query  string
	auth   string
	body   map[string]string
}

func fakeAPI(t *testing.T, status int) (*httptest.Server, *[]recorded) {
	t.Helper()
	var calls []recorded
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recorded{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery, auth: r.Header.Get("Authorization")}
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&rec.body)
		}
		calls = append(calls, rec)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"success":true,"message":"ok"}`))
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		args   []string
		method string
		path   string
		query  string
		auth   string
	}{
		{[]string{"health"}, "GET", "/health", "", ""},
		{[]string{"status"}, "GET", "/", "", ""},
		{[]string{"me", "--token", "abc"}, "GET", "/api/auth/me", "", "Bearer abc"},
		{[]string{"rows"}, "GET", "/api/v1/catalog/rows", "", ""},
		{[]string{"row", "sci-fi"}, "GET", "/api/v1/catalog/rows/sci-fi", "", ""},
		{[]string{"search", "star wars", "--token", "t"}, "GET", "/api/v1/catalog/search", "q=star+wars", "Bearer t"},
	}

	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			server, calls := fakeAPI(t, http.StatusOK)

			out, err := execute(t, append(tt.args, "--base-url", server.URL)...)
			require.NoError(t, err)
			assert.Contains(t, out, `"success": true`)

			require.Len(t, *calls, 1)
			call := (*calls)[0]
			assert.Equal(t, tt.method, call.method)
			assert.Equal(t, tt.path, call.path)
			assert.Equal(t, tt.query, call.query)
			assert.Equal(t, tt.auth, call.auth)
		})
	}
}

func TestRegisterDefaults(t *testing.T) {
	server, calls := fakeAPI(t, http.StatusCreated)

	_, err := execute(t, "register", "--base-url", server.URL)
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	assert.Equal(t, "POST", (*calls)[0].method)
	assert.Equal(t, map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "password123",
	}, (*calls)[0].body)
}

func TestErrorStatusFails(t *testing.T) {
	server, _ := fakeAPI(t, http.StatusUnauthorized)

	_, err := execute(t, "login", "--base-url", server.URL, "--password", "wrong")
	assert.ErrorContains(t, err, "status 401")
}

func TestMeRequiresToken(t *testing.T) {
	_, err := execute(t, "me")
	assert.Error(t, err)
}

func TestEnvCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STORE_DRIVER=sqlite\n"), 0o600))
	t.Setenv("GO_ENV", "test")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("SEARCH_API_KEY", "")

	out, err := execute(t, "env", "--dir", dir)
	require.NoError(t, err)

	assert.Contains(t, out, ".env.test")
	assert.Contains(t, out, "missing")
	assert.Contains(t, out, "found")
	assert.Contains(t, out, "SEARCH_API_KEY")
	assert.Contains(t, out, "not set")
}
