package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchClient_Fetch(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Search":[{"Title":"Heat","imdbID":"tt0113277"}],"totalResults":"1"}`))
	}))
	defer server.Close()

	client := NewSearchClient(testSearchConfig(server.URL), testLogger())
	payload, err := client.Fetch(context.Background(), "/", url.Values{"s": {"heat"}, "type": {"movie"}})
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotQuery.Get("apikey"))
	assert.Equal(t, "heat", gotQuery.Get("s"))
	assert.Equal(t, "movie", gotQuery.Get("type"))

	obj, ok := payload.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1", obj["totalResults"])
	assert.Len(t, obj["Search"], 1)
}

func TestSearchClient_KeepsNumbersAsText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[{"id":12345678901234567,"vote_average":7.5}]}`))
	}))
	defer server.Close()

	client := NewSearchClient(testSearchConfig(server.URL), testLogger())
	payload, err := client.Fetch(context.Background(), "/search", nil)
	require.NoError(t, err)

	record := payload.(map[string]any)["results"].([]any)[0].(map[string]any)
	assert.Equal(t, json.Number("12345678901234567"), record["id"])
}

func TestSearchClient_OmitsEmptyAPIKey(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	cfg := testSearchConfig(server.URL)
	cfg.APIKey = ""
	client := NewSearchClient(cfg, testLogger())
	_, err := client.Fetch(context.Background(), "/", url.Values{"s": {"x"}})
	require.NoError(t, err)
	_, present := gotQuery["apikey"]
	assert.False(t, present)
}

func TestSearchClient_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"Response":"False","Error":"Invalid API key!"}`))
			},
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewSearchClient(testSearchConfig(server.URL), testLogger())
			_, err := client.Fetch(context.Background(), "/", nil)
			assert.ErrorIs(t, err, ErrFetchFailed)
		})
	}
}

func TestSearchClient_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := NewSearchClient(testSearchConfig(baseURL), testLogger())
	_, err := client.Fetch(context.Background(), "/", nil)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestSearchClient_Cancelled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewSearchClient(testSearchConfig(server.URL), testLogger())
	_, err := client.Fetch(ctx, "/", nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, ErrFetchFailed)
}
