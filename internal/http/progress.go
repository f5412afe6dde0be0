package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/audaroky/internal/progress"
)

type ProgressController struct {
	reader ReaderService
	levels LevelStore
}

func NewProgressController(reader ReaderService, levels LevelStore) *ProgressController {
	return &ProgressController{reader: reader, levels: levels}
}

type FinishChapterRequest struct {
	ChapterIndex  int `json:"chapterIndex" binding:"min=0"`
	TotalChapters int `json:"totalChapters" binding:"required,min=1"`
}

// Get handles GET /api/progress.
func (pc *ProgressController) Get(c *gin.Context) {
	p, err := pc.levels.Get()
	if err != nil {
		respondInternalError(c, err, "get progress")
		return
	}
	c.JSON(http.StatusOK, p)
}

// FinishChapter handles POST /api/progress/books/:id/chapters.
func (pc *ProgressController) FinishChapter(c *gin.Context) {
	var req FinishChapterRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := pc.reader.FinishChapter(c.Param("id"), req.ChapterIndex, req.TotalChapters)
	if err != nil {
		if errors.Is(err, progress.ErrInvalidBook) || errors.Is(err, progress.ErrInvalidChapter) {
			respondBadRequest(c, err.Error())
			return
		}
		respondInternalError(c, err, "finish chapter")
		return
	}
	c.JSON(http.StatusOK, result)
}

// UnlockLevel handles POST /api/levels/:id/unlock.
func (pc *ProgressController) UnlockLevel(c *gin.Context) {
	level := c.Param("id")
	added, err := pc.levels.UnlockLevel(level)
	if err != nil {
		if errors.Is(err, progress.ErrInvalidLevel) {
			respondBadRequest(c, err.Error())
			return
		}
		respondInternalError(c, err, "unlock level")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"level":    level,
		"unlocked": added,
	})
}
