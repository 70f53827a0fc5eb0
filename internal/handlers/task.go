package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joinboard/join-api/internal/dto"
	apierrors "github.com/joinboard/join-api/internal/errors"
	"github.com/joinboard/join-api/internal/models"
	"github.com/joinboard/join-api/internal/services"
)

// TaskHandler coordinates task board HTTP handlers. Tasks carry no ownership
// beyond authentication: any logged-in caller may read and write any task.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// subtaskRequest is a nested subtask in a task payload. A task id on the
// nested object is ignored; nested subtasks bind to the surrounding task.
type subtaskRequest struct {
	IsDone      bool   `json:"is_done"`
	Description string `json:"description" binding:"required,max=200"`
}

func toSubtaskInputs(reqs []subtaskRequest) []services.SubtaskInput {
	inputs := make([]services.SubtaskInput, len(reqs))
	for i, req := range reqs {
		inputs[i] = services.SubtaskInput{
			IsDone:      req.IsDone,
			Description: req.Description,
		}
	}
	return inputs
}

// ListTasks returns all tasks with assignments and subtasks.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.ListTasks()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// GetTask returns a single task.
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(id)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CreateTask creates a task, its assignment set, and its nested subtasks in
// one atomic operation.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		Status      models.TaskStatus   `json:"status"`
		Title       string              `json:"title" binding:"required,max=200"`
		Description string              `json:"description"`
		Priority    models.TaskPriority `json:"priority"`
		DueDate     models.Date         `json:"due_date"`
		Category    models.TaskCategory `json:"category"`
		AssignedTo  []uint64            `json:"assigned_to"`
		Subtasks    []subtaskRequest    `json:"subtasks"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		Status:      req.Status,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		Category:    req.Category,
		AssignedTo:  req.AssignedTo,
		Subtasks:    toSubtaskInputs(req.Subtasks),
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask applies a partial update. A non-empty assigned_to replaces the
// whole assignment set (empty or omitted is a no-op). A present subtasks
// field, including an empty list, replaces the entire owned collection; an
// omitted field leaves existing subtasks alone.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateTaskRequest struct {
		Status      *models.TaskStatus   `json:"status"`
		Title       *string              `json:"title" binding:"omitempty,max=200"`
		Description *string              `json:"description"`
		Priority    *models.TaskPriority `json:"priority"`
		DueDate     *models.Date         `json:"due_date"`
		Category    *models.TaskCategory `json:"category"`
		AssignedTo  []uint64             `json:"assigned_to"`
		Subtasks    *[]subtaskRequest    `json:"subtasks"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateTaskInput{
		Status:      req.Status,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		Category:    req.Category,
		AssignedTo:  req.AssignedTo,
	}
	if req.Subtasks != nil {
		input.ReplaceSubtasks = true
		input.Subtasks = toSubtaskInputs(*req.Subtasks)
	}

	task, err := h.taskService.UpdateTask(id, input)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask removes a task and its owned subtasks.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(id); err != nil {
		respondTaskError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrDueDateRequired),
		errors.Is(err, services.ErrCategoryRequired),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidPriority),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidAssignee),
		errors.Is(err, services.ErrSubtaskDescriptionRequired),
		errors.Is(err, services.ErrSubtaskDescriptionTooLong):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
