package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Store
		Gateway
		LLM
		Cache
		Credentials
		Tasks
	}

	HTTP struct {
		Port int32  `validate:"min=1,max=65535"`
		Host string
	}

	Global struct {
		Env                      string `validate:"oneof=development production test"`
		ShutdownTimeoutInSeconds int    `validate:"min=0"`
		Timezone                 string // IANA name used for streak calendar days; empty means local time
	}

	Store struct {
		Backend       string `validate:"oneof=sqlite sql redis memory"`
		DatabasePath  string `validate:"required_if=Backend sqlite"`
		SQLDriver     string `validate:"oneof=sqlite3 postgres"`
		SQLDSN        string `validate:"required_if=Backend sql"`
		RedisAddr     string `validate:"required_if=Backend redis"`
		RedisPassword string
		RedisDB       int `validate:"min=0"`
	}

	Gateway struct {
		URL            string        // Empty means the local proxy endpoint of this server
		Attempts       int           `validate:"min=1,max=10"`
		AttemptTimeout time.Duration `validate:"gt=0"`
		Backoff        time.Duration `validate:"min=0"`
	}

	LLM struct {
		BaseURL      string `validate:"omitempty,url"`
		Model        string `validate:"required"`
		ServerAPIKey string // GOOGLE_API_KEY fallback used by the proxy endpoint
	}

	Cache struct {
		MaxAge        time.Duration `validate:"min=0"` // Zero keeps cached translations forever
		PruneSchedule string        // Cron format: "0 3 * * *" = daily at 03:00
	}

	Credentials struct {
		EncryptionKey string // Base64 AES-256 key; empty stores the credential as plain text
		Passphrase    string // Used to derive the key when EncryptionKey is empty
	}

	Tasks struct {
		Enabled         bool
		DatabasePath    string `validate:"required_if=Enabled true"`
		Workers         int    `validate:"min=1"`
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
)

// LoadDotEnv loads variables from the given files (default ".env") without
// overriding ones already set. Missing files are ignored.
func LoadDotEnv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		_ = godotenv.Load(p)
	}
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("env", "development")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("timezone", "")

	v.SetDefault("store_backend", StoreBackendSQLite)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("store_sql_driver", "sqlite3")
	v.SetDefault("store_sql_dsn", "")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)

	v.SetDefault("gateway_url", "")
	v.SetDefault("gateway_attempts", 3)
	v.SetDefault("gateway_attempt_timeout", "30s")
	v.SetDefault("gateway_backoff", "1s")

	v.SetDefault("llm_base_url", DefaultLLMBaseURL)
	v.SetDefault("llm_model", DefaultLLMModel)
	v.SetDefault("google_api_key", "")

	v.SetDefault("cache_max_age", "0s")
	v.SetDefault("cache_prune_schedule", "0 3 * * *")

	v.SetDefault("credential_encryption_key", "")
	v.SetDefault("credential_passphrase", "")

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_database_path", DefaultTaskDatabasePath)
	v.SetDefault("task_workers", 1)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			Env:                      v.GetString("ENV"),
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
			Timezone:                 v.GetString("TIMEZONE"),
		},
		Store: Store{
			Backend:       v.GetString("STORE_BACKEND"),
			DatabasePath:  v.GetString("DATABASE_PATH"),
			SQLDriver:     v.GetString("STORE_SQL_DRIVER"),
			SQLDSN:        v.GetString("STORE_SQL_DSN"),
			RedisAddr:     v.GetString("REDIS_ADDR"),
			RedisPassword: v.GetString("REDIS_PASSWORD"),
			RedisDB:       v.GetInt("REDIS_DB"),
		},
		Gateway: Gateway{
			URL:            v.GetString("GATEWAY_URL"),
			Attempts:       v.GetInt("GATEWAY_ATTEMPTS"),
			AttemptTimeout: v.GetDuration("GATEWAY_ATTEMPT_TIMEOUT"),
			Backoff:        v.GetDuration("GATEWAY_BACKOFF"),
		},
		LLM: LLM{
			BaseURL:      v.GetString("LLM_BASE_URL"),
			Model:        v.GetString("LLM_MODEL"),
			ServerAPIKey: strings.TrimSpace(v.GetString("GOOGLE_API_KEY")),
		},
		Cache: Cache{
			MaxAge:        v.GetDuration("CACHE_MAX_AGE"),
			PruneSchedule: v.GetString("CACHE_PRUNE_SCHEDULE"),
		},
		Credentials: Credentials{
			EncryptionKey: v.GetString("CREDENTIAL_ENCRYPTION_KEY"),
			Passphrase:    v.GetString("CREDENTIAL_PASSPHRASE"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			DatabasePath:    v.GetString("TASK_DATABASE_PATH"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
	}
}

var validate = validator.New()

// Validate checks the struct tags of cfg and the timezone name.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validation failed: %w", err)
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("Field: %s, Tag: %s, Param: %s", fe.Namespace(), fe.Tag(), fe.Param()))
		}
		return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}
	if _, err := cfg.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone; an empty name means time.Local.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// ListenAddr returns host:port for the HTTP server.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GatewayURL returns the configured gateway URL or the proxy endpoint of this server.
func (c *Config) GatewayURL() string {
	if c.Gateway.URL != "" {
		return c.Gateway.URL
	}
	host := c.Host
	if host == "" || host == "0.0.0.0" {
		host = "127.0.0.1"
	}
	return fmt.Sprintf("http://%s:%d/api/gemini", host, c.Port)
}
