package http

import (
	"go.uber.org/zap"

	"github.com/mrlokans/audaroky/internal/llm"
	"github.com/mrlokans/audaroky/internal/tasks"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Reader      ReaderService
	Levels      LevelStore
	XP          XPFeed
	Credentials CredentialStore

	// Upstream model behind /api/gemini
	Generator llm.Generator

	// ServerAPIKey is used when a proxy request carries no key
	ServerAPIKey string

	// Store health
	Store Pinger

	// Task queue client (optional)
	TaskClient *tasks.Client

	// Application info
	Version string

	Logger *zap.Logger
}
