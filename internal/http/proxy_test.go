package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/audaroky/internal/credentials"
	"github.com/mrlokans/audaroky/internal/gateway"
	"github.com/mrlokans/audaroky/internal/kvstore"
)

type fakeGenerator struct {
	mu      sync.Mutex
	keys    []string
	prompts []string
	reply   string
	err     error
}

func (g *fakeGenerator) Generate(_ context.Context, apiKey, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.keys = append(g.keys, apiKey)
	g.prompts = append(g.prompts, prompt)
	return g.reply, g.err
}

func postProxy(t *testing.T, pc *ProxyController, body string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.POST("/api/gemini", pc.Generate)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/gemini", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestProxyController_Generate(t *testing.T) {
	t.Run("uses request key", func(t *testing.T) {
		gen := &fakeGenerator{reply: `{"translation":"дом"}`}
		w := postProxy(t, NewProxyController(gen, "server-key"), `{"prompt":"translate house","apiKey":" user-key "}`)

		require.Equal(t, http.StatusOK, w.Code)
		var resp ProxyResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, `{"translation":"дом"}`, resp.Result)
		assert.Equal(t, []string{"user-key"}, gen.keys)
		assert.Equal(t, []string{"translate house"}, gen.prompts)
	})

	t.Run("falls back to server key", func(t *testing.T) {
		gen := &fakeGenerator{reply: "ok"}
		w := postProxy(t, NewProxyController(gen, "server-key"), `{"prompt":"hi"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"server-key"}, gen.keys)
	})

	t.Run("no key at all", func(t *testing.T) {
		gen := &fakeGenerator{}
		w := postProxy(t, NewProxyController(gen, ""), `{"prompt":"hi"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "API key is missing")
		assert.Empty(t, gen.keys)
	})

	t.Run("missing key wins over missing prompt", func(t *testing.T) {
		w := postProxy(t, NewProxyController(&fakeGenerator{}, ""), `{}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing prompt", func(t *testing.T) {
		gen := &fakeGenerator{}
		w := postProxy(t, NewProxyController(gen, ""), `{"prompt":"  ","apiKey":"k"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "prompt is required")
		assert.Empty(t, gen.keys)
	})

	t.Run("upstream failure", func(t *testing.T) {
		gen := &fakeGenerator{err: errors.New("quota exceeded")}
		w := postProxy(t, NewProxyController(gen, ""), `{"prompt":"hi","apiKey":"k"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Error, "quota exceeded")
	})
}

func TestGatewayThroughProxy(t *testing.T) {
	gen := &fakeGenerator{reply: "```json\n{\"translation\":\"дом\"}\n```"}
	server := httptest.NewServer(NewRouter(RouterConfig{Generator: gen}))
	defer server.Close()

	creds := credentials.New(kvstore.NewMemoryStore(), nil)
	cfg := gateway.DefaultConfig(server.URL + "/api/gemini")
	cfg.AttemptTimeout = 2 * time.Second
	client := gateway.New(cfg, creds, nil, gateway.WithSleep(func(context.Context, time.Duration) error { return nil }))

	t.Run("rejected without credential", func(t *testing.T) {
		_, err := client.CallAI(context.Background(), "translate house")

		var gerr *gateway.GatewayError
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, http.StatusUnauthorized, gerr.Status)
		assert.Empty(t, gen.prompts)
	})

	t.Run("stored credential is forwarded", func(t *testing.T) {
		require.NoError(t, creds.SetAPIKey("stored-key"))

		text, err := client.CallAI(context.Background(), "translate house")
		require.NoError(t, err)
		assert.Contains(t, text, "дом")
		assert.Equal(t, []string{"stored-key"}, gen.keys)
	})
}
