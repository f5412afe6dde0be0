package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/audaroky/internal/services"
	"github.com/mrlokans/audaroky/internal/xp"
)

type GamificationController struct {
	reader ReaderService
	xp     XPFeed
}

func NewGamificationController(reader ReaderService, feed XPFeed) *GamificationController {
	return &GamificationController{reader: reader, xp: feed}
}

type AchievementView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	XPReward    int    `json:"xpReward"`
	Unlocked    bool   `json:"unlocked"`
}

// XP handles GET /api/xp.
func (gc *GamificationController) XP(c *gin.Context) {
	total, err := gc.xp.Get()
	if err != nil {
		respondInternalError(c, err, "get xp")
		return
	}
	c.JSON(http.StatusOK, gin.H{"xp": total})
}

// XPEvents handles GET /api/xp/events as a server-sent event stream. The
// current total is sent first, then one event per change.
func (gc *GamificationController) XPEvents(c *gin.Context) {
	events, cancel := gc.xp.Subscribe()
	defer cancel()

	total, err := gc.xp.Get()
	if err != nil {
		respondInternalError(c, err, "get xp")
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.SSEvent("xp", xp.Event{Total: total})
	c.Writer.Flush()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("xp", ev)
			return true
		case <-ctx.Done():
			return false
		}
	})
}

// Achievements handles GET /api/achievements.
func (gc *GamificationController) Achievements(c *gin.Context) {
	d, err := gc.reader.Dashboard()
	if err != nil {
		respondInternalError(c, err, "get achievements")
		return
	}

	unlocked := make(map[string]bool, len(d.Unlocked))
	for _, id := range d.Unlocked {
		unlocked[id] = true
	}
	views := make([]AchievementView, 0, len(d.Achievements))
	for _, a := range d.Achievements {
		views = append(views, AchievementView{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Icon:        a.Icon,
			XPReward:    a.XPReward,
			Unlocked:    unlocked[a.ID],
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"achievements": views,
		"unlocked":     d.Unlocked,
	})
}

// Stats handles GET /api/stats.
func (gc *GamificationController) Stats(c *gin.Context) {
	d, err := gc.reader.Dashboard()
	if err != nil {
		respondInternalError(c, err, "get stats")
		return
	}
	c.JSON(http.StatusOK, d)
}

// StartSession handles POST /api/session/start.
func (gc *GamificationController) StartSession(c *gin.Context) {
	result, err := gc.reader.StartSession()
	if err != nil {
		respondInternalError(c, err, "start session")
		return
	}
	c.JSON(http.StatusOK, result)
}

// MatchPairs handles GET /api/games/match/pairs.
func (gc *GamificationController) MatchPairs(c *gin.Context) {
	n, ok := parseIntQuery(c, "n", services.DefaultMatchPairs)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"pairs": gc.reader.MatchPairs(n)})
}

// CompleteMatch handles POST /api/games/match/complete.
func (gc *GamificationController) CompleteMatch(c *gin.Context) {
	reward, err := gc.reader.CompleteMatchGame()
	if err != nil {
		respondInternalError(c, err, "complete match game")
		return
	}
	c.JSON(http.StatusOK, reward)
}
