package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/audaroky/internal/tasks"
	"github.com/mrlokans/audaroky/internal/translator"
)

// TasksController handles task queue endpoints.
type TasksController struct {
	client *tasks.Client
}

func NewTasksController(client *tasks.Client) *TasksController {
	return &TasksController{client: client}
}

// TaskTypeInfo describes an available task type.
type TaskTypeInfo struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Queue       string `json:"queue"`
}

// WarmRequest is the body of POST /api/tasks/warm.
type WarmRequest struct {
	Words    []string `json:"words" binding:"required,min=1"`
	Language string   `json:"language"`
	Context  string   `json:"context"`
}

// ListTaskTypes handles GET /api/tasks/types.
func (tc *TasksController) ListTaskTypes(c *gin.Context) {
	types := []TaskTypeInfo{
		{
			Type:        "warm_translations",
			Description: "Translate a list of words ahead of time so reading stays offline",
			Queue:       tasks.WarmTranslationsTask{}.Config().Name,
		},
	}

	c.JSON(http.StatusOK, gin.H{
		"task_types": types,
	})
}

// Warm handles POST /api/tasks/warm.
func (tc *TasksController) Warm(c *gin.Context) {
	var req WarmRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Language == "" {
		req.Language = translator.DefaultLanguage
	}

	task, id, err := tc.client.EnqueueWarm(req.Words, req.Language, req.Context)
	if err != nil {
		if errors.Is(err, tasks.ErrNoWords) || errors.Is(err, tasks.ErrTooManyWords) {
			respondBadRequest(c, err.Error())
			return
		}
		respondInternalError(c, err, "enqueue warm-up")
		return
	}

	respondAccepted(c, "task enqueued", gin.H{
		"task_id": id,
		"type":    task.Config().Name,
		"words":   len(task.Words),
	})
}

// GetTaskStatus handles GET /api/tasks/:id.
func (tc *TasksController) GetTaskStatus(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		respondBadRequest(c, "task ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, err := tc.client.Status(ctx, taskID)
	if err != nil {
		respondInternalError(c, err, "task status")
		return
	}
	if status == backlite.TaskStatusNotFound {
		respondNotFound(c, "task")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     taskID,
		"status": taskStatusToString(status),
	})
}

func taskStatusToString(status backlite.TaskStatus) string {
	switch status {
	case backlite.TaskStatusPending:
		return "pending"
	case backlite.TaskStatusRunning:
		return "running"
	case backlite.TaskStatusSuccess:
		return "success"
	case backlite.TaskStatusFailure:
		return "failure"
	case backlite.TaskStatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
