package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchJSONDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"pump-1","is_on":true}`))
	}))
	defer srv.Close()

	var out struct {
		Name string `json:"name"`
		IsOn bool   `json:"is_on"`
	}
	err := New().Get(context.Background(), srv.URL, &out)
	require.NoError(t, err)
	assert.Equal(t, "pump-1", out.Name)
	assert.True(t, out.IsOn)
}

func TestFetchJSONSendsBody(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := New().Post(context.Background(), srv.URL, map[string]string{"message": "hello"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", got["message"])
}

func TestFetchJSONStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error":"Empty message"}`))
	}))
	defer srv.Close()

	err := New().Get(context.Background(), srv.URL, nil)
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "Empty message")
	assert.Equal(t, `HTTP 400: {"ok":false,"error":"Empty message"}`, statusErr.Error())
}

func TestWithHeaderAppliesToEveryRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(WithHeader("Authorization", "Bearer token-123"))
	require.NoError(t, c.Get(context.Background(), srv.URL, nil))
	require.NoError(t, c.Post(context.Background(), srv.URL, nil, nil))
}

func TestFetchJSONContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New().Get(ctx, srv.URL, nil)
	require.Error(t, err)
}
