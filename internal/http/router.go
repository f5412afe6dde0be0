package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Optional dependencies left nil disable their routes.
func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware(logger))

	health := NewHealthController(cfg.Store, cfg.Version)
	router.GET("/health", health.Status)

	api := router.Group("/api")

	if cfg.Generator != nil {
		proxy := NewProxyController(cfg.Generator, cfg.ServerAPIKey)
		api.POST("/gemini", proxy.Generate)
	}

	if cfg.Credentials != nil {
		credential := NewCredentialController(cfg.Credentials)
		api.GET("/credential/status", credential.Status)
		api.PUT("/credential", credential.Set)
		api.DELETE("/credential", credential.Delete)
	}

	if cfg.Reader != nil {
		translate := NewTranslateController(cfg.Reader)
		api.GET("/languages", translate.Languages)
		api.POST("/translate/word", translate.Word)
		api.POST("/translate/sentence", translate.Sentence)

		quiz := NewQuizController(cfg.Reader)
		api.POST("/quiz/generate", quiz.Generate)
		api.POST("/quiz/submit", quiz.Submit)
	}

	if cfg.Reader != nil && cfg.Levels != nil {
		progress := NewProgressController(cfg.Reader, cfg.Levels)
		api.GET("/progress", progress.Get)
		api.POST("/progress/books/:id/chapters", progress.FinishChapter)
		api.POST("/levels/:id/unlock", progress.UnlockLevel)
	}

	if cfg.Reader != nil && cfg.XP != nil {
		gamification := NewGamificationController(cfg.Reader, cfg.XP)
		api.GET("/xp", gamification.XP)
		api.GET("/xp/events", gamification.XPEvents)
		api.GET("/achievements", gamification.Achievements)
		api.GET("/stats", gamification.Stats)
		api.POST("/session/start", gamification.StartSession)
		api.GET("/games/match/pairs", gamification.MatchPairs)
		api.POST("/games/match/complete", gamification.CompleteMatch)
	}

	if cfg.TaskClient != nil {
		tasksController := NewTasksController(cfg.TaskClient)
		api.GET("/tasks/types", tasksController.ListTaskTypes)
		api.POST("/tasks/warm", tasksController.Warm)
		api.GET("/tasks/:id", tasksController.GetTaskStatus)
	}

	return router
}
