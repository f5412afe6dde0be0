package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/audaroky/internal/services"
)

type QuizController struct {
	reader ReaderService
}

func NewQuizController(reader ReaderService) *QuizController {
	return &QuizController{reader: reader}
}

// GenerateQuizRequest selects a book quiz (BookID plus optional source Text)
// or a level test (Level).
type GenerateQuizRequest struct {
	Kind   string `json:"kind" binding:"required,oneof=level book"`
	BookID string `json:"bookId" binding:"required_if=Kind book"`
	Level  string `json:"level" binding:"required_if=Kind level"`
	Text   string `json:"text"`
}

// Generate handles POST /api/quiz/generate.
func (qc *QuizController) Generate(c *gin.Context) {
	var req GenerateQuizRequest
	if !bindJSON(c, &req) {
		return
	}

	var set services.QuizSet
	if req.Kind == "level" {
		set = qc.reader.LevelQuiz(req.Level)
	} else {
		set = qc.reader.BookQuiz(c.Request.Context(), req.BookID, req.Text)
	}
	c.JSON(http.StatusOK, set)
}

// Submit handles POST /api/quiz/submit.
func (qc *QuizController) Submit(c *gin.Context) {
	var req services.QuizSubmission
	if !bindJSON(c, &req) {
		return
	}

	outcome, err := qc.reader.SubmitQuiz(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidQuiz) {
			respondBadRequest(c, err.Error())
			return
		}
		respondInternalError(c, err, "submit quiz")
		return
	}
	c.JSON(http.StatusOK, outcome)
}
