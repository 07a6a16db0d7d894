package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facility-hub/internal/config"
)

func TestGeminiAsk(t *testing.T) {
	var gotPath, gotKey string
	var gotReq generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Pump A "},{"text":"is on."}]}}]}`))
	}))
	defer srv.Close()

	client := NewGeminiClient(&config.SupportConfig{
		APIBaseURL: srv.URL,
		APIKey:     "key-123",
		Model:      "gemini-2.5-flash",
	})

	answer, err := client.Ask(context.Background(), "You are a support agent.", "is pump A on?")
	require.NoError(t, err)

	assert.Equal(t, "Pump A is on.", answer)
	assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", gotPath)
	assert.Equal(t, "key-123", gotKey)

	require.NotNil(t, gotReq.SystemInstruction)
	require.Len(t, gotReq.SystemInstruction.Parts, 1)
	assert.Equal(t, "You are a support agent.", gotReq.SystemInstruction.Parts[0].Text)
	require.Len(t, gotReq.Contents, 1)
	assert.Equal(t, "user", gotReq.Contents[0].Role)
	assert.Equal(t, "is pump A on?", gotReq.Contents[0].Parts[0].Text)
}

func TestGeminiAskNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	client := NewGeminiClient(&config.SupportConfig{APIBaseURL: srv.URL, Model: "gemini-2.5-flash"})

	_, err := client.Ask(context.Background(), "sys", "msg")
	require.Error(t, err)
}

func TestGeminiAskUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"API key not valid"}}`))
	}))
	defer srv.Close()

	client := NewGeminiClient(&config.SupportConfig{APIBaseURL: srv.URL, APIKey: "bad", Model: "gemini-2.5-flash"})

	_, err := client.Ask(context.Background(), "sys", "msg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
