package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func completionServer(t *testing.T, content string, requests chan<- chatRequest, auth chan<- string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		var req chatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if requests != nil {
			requests <- req
		}
		if auth != nil {
			auth <- r.Header.Get("Authorization")
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  req.Model,
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message":       map[string]string{"role": "assistant", "content": content},
				},
			},
		})
	}))
}

func TestOpenAICompatible_Generate(t *testing.T) {
	requests := make(chan chatRequest, 1)
	auth := make(chan string, 1)
	server := completionServer(t, ` {"translation":"дом"} `, requests, auth)
	defer server.Close()

	g := NewOpenAICompatible(server.URL+"/", "gemini-1.5-flash")
	text, err := g.Generate(context.Background(), "secret", "translate house")
	require.NoError(t, err)
	assert.Equal(t, `{"translation":"дом"}`, text)

	req := <-requests
	assert.Equal(t, "gemini-1.5-flash", req.Model)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, "user", req.Messages[0].Role)
	assert.Equal(t, "translate house", req.Messages[0].Content)
	assert.Equal(t, "Bearer secret", <-auth)
}

func TestOpenAICompatible_EmptyCompletion(t *testing.T) {
	server := completionServer(t, "   ", nil, nil)
	defer server.Close()

	_, err := NewOpenAICompatible(server.URL, "m").Generate(context.Background(), "k", "p")
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestOpenAICompatible_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exceeded","type":"rate_limit"}}`))
	}))
	defer server.Close()

	_, err := NewOpenAICompatible(server.URL, "m").Generate(context.Background(), "k", "p")
	require.Error(t, err)
	assert.Equal(t, http.StatusTooManyRequests, StatusCode(err))
}

func TestStatusCode_Unknown(t *testing.T) {
	assert.Zero(t, StatusCode(ErrEmptyCompletion))
}
