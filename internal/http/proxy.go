package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/audaroky/internal/llm"
)

// ProxyRequest is the body of POST /api/gemini.
type ProxyRequest struct {
	Prompt string `json:"prompt"`
	APIKey string `json:"apiKey"`
}

type ProxyResponse struct {
	Result string `json:"result"`
}

// ProxyController forwards prompts to the upstream model with the caller's
// key, or the server key when the caller has none.
type ProxyController struct {
	generator llm.Generator
	serverKey string
}

func NewProxyController(generator llm.Generator, serverKey string) *ProxyController {
	return &ProxyController{
		generator: generator,
		serverKey: strings.TrimSpace(serverKey),
	}
}

// Generate handles POST /api/gemini.
func (pc *ProxyController) Generate(c *gin.Context) {
	var req ProxyRequest
	_ = c.ShouldBindJSON(&req)

	apiKey := strings.TrimSpace(req.APIKey)
	if apiKey == "" {
		apiKey = pc.serverKey
	}
	if apiKey == "" {
		respondError(c, http.StatusUnauthorized, "API key is missing, configure it in settings")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		respondBadRequest(c, "prompt is required")
		return
	}

	text, err := pc.generator.Generate(c.Request.Context(), apiKey, req.Prompt)
	if err != nil {
		loggerFrom(c).Warn("upstream model failed", zap.Int("upstream_status", llm.StatusCode(err)), zap.Error(err))
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, ProxyResponse{Result: text})
}
