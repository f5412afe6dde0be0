package entrypoint

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mrlokans/audaroky/internal/config"
	"github.com/mrlokans/audaroky/internal/credentials"
	"github.com/mrlokans/audaroky/internal/entities"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func memoryConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.NewConfig()
	cfg.Store.Backend = config.StoreBackendMemory
	cfg.Tasks.Enabled = false
	cfg.Tasks.DatabasePath = filepath.Join(t.TempDir(), "tasks.db")
	return cfg
}

func TestBuild_MemoryStore(t *testing.T) {
	app, err := Build(memoryConfig(t), "test", nil)
	require.NoError(t, err)
	defer app.Close()

	router := app.Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var health struct {
		Status  string            `json:"status"`
		Version string            `json:"version"`
		Checks  map[string]string `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "test", health.Version)
	assert.Equal(t, "not configured", health.Checks["store"])

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tasks/types", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBuild_OfflineWordWithoutCredential(t *testing.T) {
	app, err := Build(memoryConfig(t), "test", nil)
	require.NoError(t, err)
	defer app.Close()

	assert.False(t, app.Credentials.HasAPIKey())

	res, err := app.Reader.TranslateWord(context.Background(), "House", "", "ru")
	require.NoError(t, err)
	assert.Equal(t, "дом", res.Translation)
	require.NotNil(t, res.Reward)
	assert.Equal(t, 1, res.Reward.XP)
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"unknown backend", func(c *config.Config) { c.Store.Backend = "mongo" }},
		{"bad encryption key", func(c *config.Config) { c.Credentials.EncryptionKey = "not base64!" }},
		{"bad timezone", func(c *config.Config) { c.Timezone = "Nowhere/Land" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := memoryConfig(t)
			tt.mutate(cfg)
			app, err := Build(cfg, "test", nil)
			assert.Error(t, err)
			assert.Nil(t, app)
		})
	}
}

func TestOpenStore(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		cfg  config.Store
	}{
		{"sqlite", config.Store{Backend: config.StoreBackendSQLite, DatabasePath: filepath.Join(dir, "kv.db")}},
		{"sql", config.Store{Backend: config.StoreBackendSQL, SQLDriver: "sqlite3", SQLDSN: filepath.Join(dir, "sql.db")}},
		{"memory", config.Store{Backend: config.StoreBackendMemory}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, closeFn, err := OpenStore(tt.cfg, zap.NewNop())
			require.NoError(t, err)
			defer closeFn()

			require.NoError(t, store.Set("totalXP", "42"))
			value, ok, err := store.Get("totalXP")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "42", value)
		})
	}
}

func TestOpenStore_UnknownBackend(t *testing.T) {
	_, closeFn, err := OpenStore(config.Store{Backend: "etcd"}, zap.NewNop())
	assert.Error(t, err)
	assert.NoError(t, closeFn())
}

func TestEnableBackground(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.Tasks.Enabled = true
	cfg.Cache.MaxAge = time.Hour
	cfg.Cache.PruneSchedule = "0 3 * * *"

	app, err := Build(cfg, "test", nil)
	require.NoError(t, err)
	defer app.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, app.EnableBackground(ctx))
	require.NotNil(t, app.Tasks)
	assert.True(t, app.Pruner.IsRunning())

	w := httptest.NewRecorder()
	app.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tasks/types", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer stopCancel()
	app.Shutdown(stopCtx)
	assert.False(t, app.Pruner.IsRunning())
}

func TestEnableBackground_PruneDisabledWithoutMaxAge(t *testing.T) {
	app, err := Build(memoryConfig(t), "test", nil)
	require.NoError(t, err)
	defer app.Close()

	require.NoError(t, app.EnableBackground(context.Background()))
	assert.Nil(t, app.Tasks)
	assert.False(t, app.Pruner.IsRunning())
}

func TestBuild_PassphraseSealsCredential(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.Credentials.Passphrase = "correct horse"

	app, err := Build(cfg, "test", nil)
	require.NoError(t, err)
	defer app.Close()

	require.NoError(t, app.Credentials.SetAPIKey(" AIza-secret "))

	raw, ok, err := app.Store.Get(entities.KeyCredential)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, credentials.IsSealed(raw))

	key, ok, err := app.Credentials.APIKey()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "AIza-secret", key)
}

func TestReaderCredentials_ServerKey(t *testing.T) {
	tests := []struct {
		name       string
		serverKey  string
		gatewayURL string
		want       bool
	}{
		{"no keys", "", "", false},
		{"server key behind own proxy", "AIza-server", "", true},
		{"server key with external gateway", "AIza-server", "https://proxy.example.com/api/gemini", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := memoryConfig(t)
			cfg.LLM.ServerAPIKey = tt.serverKey
			cfg.Gateway.URL = tt.gatewayURL

			app, err := Build(cfg, "test", nil)
			require.NoError(t, err)
			defer app.Close()

			assert.Equal(t, tt.want, readerCredentials(cfg, app.Credentials).HasAPIKey())
		})
	}
}
