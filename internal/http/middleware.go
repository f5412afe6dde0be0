package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	requestIDHeader  = "X-Request-ID"
	contextKeyLogger = "logger"
)

// RequestIDMiddleware tags every request with an ID, reusing a valid one sent
// by the client, and stores a logger carrying it in the context.
func RequestIDMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Set(contextKeyLogger, logger.With(zap.String("request_id", id)))
		c.Next()
	}
}

// loggerFrom returns the request logger, or a no-op logger outside the middleware.
func loggerFrom(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(contextKeyLogger); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return zap.NewNop()
}
