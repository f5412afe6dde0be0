package config

const (
	// DefaultDatabasePath is the default path for the key-value database
	DefaultDatabasePath = "./audaroky.db"

	// DefaultTaskDatabasePath holds the background task queue
	DefaultTaskDatabasePath = "./audaroky-tasks.db"

	// DefaultLLMBaseURL is Gemini's OpenAI-compatible endpoint
	DefaultLLMBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

	DefaultLLMModel = "gemini-1.5-flash"
)

// Store backends
const (
	StoreBackendSQLite = "sqlite"
	StoreBackendSQL    = "sql"
	StoreBackendRedis  = "redis"
	StoreBackendMemory = "memory"
)
