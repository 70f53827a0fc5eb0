package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joinboard/join-api/internal/dto"
	apierrors "github.com/joinboard/join-api/internal/errors"
	"github.com/joinboard/join-api/internal/services"
)

// SubtaskHandler coordinates the direct /subtasks HTTP handlers.
type SubtaskHandler struct {
	subtaskService *services.SubtaskService
}

// NewSubtaskHandler creates a new SubtaskHandler.
func NewSubtaskHandler(subtaskService *services.SubtaskService) *SubtaskHandler {
	return &SubtaskHandler{
		subtaskService: subtaskService,
	}
}

// ListSubtasks returns all subtasks.
func (h *SubtaskHandler) ListSubtasks(c *gin.Context) {
	subtasks, err := h.subtaskService.ListSubtasks()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch subtasks")
		return
	}

	c.JSON(http.StatusOK, dto.ToSubtaskDTOs(subtasks))
}

// GetSubtask returns a single subtask.
func (h *SubtaskHandler) GetSubtask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	subtask, err := h.subtaskService.GetSubtask(id)
	if err != nil {
		respondSubtaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSubtaskDTO(*subtask))
}

// CreateSubtask creates a subtask bound to an existing task.
func (h *SubtaskHandler) CreateSubtask(c *gin.Context) {
	type CreateSubtaskRequest struct {
		IsDone      bool    `json:"is_done"`
		Description string  `json:"description" binding:"required,max=200"`
		Task        *uint64 `json:"task"`
	}

	var req CreateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	subtask, err := h.subtaskService.CreateSubtask(services.CreateSubtaskInput{
		IsDone:      req.IsDone,
		Description: req.Description,
		TaskID:      req.Task,
	})
	if err != nil {
		respondSubtaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSubtaskDTO(*subtask))
}

// UpdateSubtask applies a partial update to a subtask's description and done
// flag. The owning task is immutable: a task id in the request is read but
// never forwarded, so re-pointing attempts are silently ignored rather than
// rejected.
func (h *SubtaskHandler) UpdateSubtask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateSubtaskRequest struct {
		IsDone      *bool   `json:"is_done"`
		Description *string `json:"description" binding:"omitempty,max=200"`
		Task        *uint64 `json:"task"`
	}

	var req UpdateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	subtask, err := h.subtaskService.UpdateSubtask(id, services.UpdateSubtaskInput{
		IsDone:      req.IsDone,
		Description: req.Description,
	})
	if err != nil {
		respondSubtaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSubtaskDTO(*subtask))
}

// DeleteSubtask removes a subtask.
func (h *SubtaskHandler) DeleteSubtask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.subtaskService.DeleteSubtask(id); err != nil {
		respondSubtaskError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondSubtaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSubtaskNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrSubtaskTaskRequired),
		errors.Is(err, services.ErrSubtaskTaskInvalid),
		errors.Is(err, services.ErrSubtaskDescriptionRequired),
		errors.Is(err, services.ErrSubtaskDescriptionTooLong):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
