package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/joinboard/join-api/internal/dto"
	"github.com/joinboard/join-api/internal/models"
	"github.com/joinboard/join-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func (e *testEnv) createTask(t *testing.T, title string) *models.Task {
	t.Helper()

	task, err := e.taskService.CreateTask(services.CreateTaskInput{
		Title:    title,
		DueDate:  models.NewDate(2026, time.October, 1),
		Category: models.TaskCategoryUserStory,
	})
	require.NoError(t, err)
	return task
}

func TestSubtaskHandler_CreateRequiresTask(t *testing.T) {
	env := setupTestEnv(t)
	env.register(t, "user1", "user1@example.com", "password1")
	token := env.loginToken(t, "user1@example.com", "password1")
	task := env.createTask(t, "Parent task")

	// Missing task id is rejected.
	w := env.request(t, http.MethodPost, "/subtasks", token, map[string]interface{}{
		"description": "orphan",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown task id is rejected too.
	w = env.request(t, http.MethodPost, "/subtasks", token, map[string]interface{}{
		"description": "ghost parent",
		"task":        99999,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.request(t, http.MethodPost, "/subtasks", token, map[string]interface{}{
		"description": "bound",
		"is_done":     true,
		"task":        task.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var subtask dto.SubtaskDTO
	decodeJSON(t, w, &subtask)
	require.Equal(t, task.ID, subtask.Task)
	require.True(t, subtask.IsDone)
	require.Equal(t, "bound", subtask.Description)
}

func TestSubtaskHandler_UpdateNeverRepointsTask(t *testing.T) {
	env := setupTestEnv(t)
	env.register(t, "user1", "user1@example.com", "password1")
	token := env.loginToken(t, "user1@example.com", "password1")
	original := env.createTask(t, "Original parent")
	other := env.createTask(t, "Other parent")

	taskID := original.ID
	created, err := env.subtaskService.CreateSubtask(services.CreateSubtaskInput{
		Description: "stays put",
		TaskID:      &taskID,
	})
	require.NoError(t, err)

	w := env.request(t, http.MethodPatch, fmt.Sprintf("/subtasks/%d", created.ID), token, map[string]interface{}{
		"is_done": true,
		"task":    other.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated dto.SubtaskDTO
	decodeJSON(t, w, &updated)
	require.True(t, updated.IsDone)
	require.Equal(t, original.ID, updated.Task)
}

func TestSubtaskHandler_UpdatePartialFields(t *testing.T) {
	env := setupTestEnv(t)
	env.register(t, "user1", "user1@example.com", "password1")
	token := env.loginToken(t, "user1@example.com", "password1")
	task := env.createTask(t, "Parent task")

	taskID := task.ID
	created, err := env.subtaskService.CreateSubtask(services.CreateSubtaskInput{
		Description: "before",
		TaskID:      &taskID,
	})
	require.NoError(t, err)

	// Only the sent field changes.
	w := env.request(t, http.MethodPatch, fmt.Sprintf("/subtasks/%d", created.ID), token, map[string]interface{}{
		"description": "after",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated dto.SubtaskDTO
	decodeJSON(t, w, &updated)
	require.Equal(t, "after", updated.Description)
	require.False(t, updated.IsDone)
}

func TestSubtaskHandler_DescriptionLengthCountsCharacters(t *testing.T) {
	env := setupTestEnv(t)
	env.register(t, "user1", "user1@example.com", "password1")
	token := env.loginToken(t, "user1@example.com", "password1")
	task := env.createTask(t, "Parent task")

	// 150 two-byte characters stay within the 200-character bound even
	// though the byte length is 300.
	w := env.request(t, http.MethodPost, "/subtasks", token, map[string]interface{}{
		"description": strings.Repeat("ü", 150),
		"task":        task.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.request(t, http.MethodPost, "/subtasks", token, map[string]interface{}{
		"description": strings.Repeat("ü", 201),
		"task":        task.ID,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubtaskHandler_GetListDelete(t *testing.T) {
	env := setupTestEnv(t)
	env.register(t, "user1", "user1@example.com", "password1")
	token := env.loginToken(t, "user1@example.com", "password1")
	task := env.createTask(t, "Parent task")

	taskID := task.ID
	created, err := env.subtaskService.CreateSubtask(services.CreateSubtaskInput{
		Description: "listed",
		TaskID:      &taskID,
	})
	require.NoError(t, err)

	w := env.request(t, http.MethodGet, "/subtasks", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var subtasks []dto.SubtaskDTO
	decodeJSON(t, w, &subtasks)
	require.Len(t, subtasks, 1)

	w = env.request(t, http.MethodGet, fmt.Sprintf("/subtasks/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, "/subtasks/99999", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = env.request(t, http.MethodDelete, fmt.Sprintf("/subtasks/%d", created.ID), token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	err = env.db.First(&models.Subtask{}, created.ID).Error
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// The parent task survives its subtask's deletion.
	require.NoError(t, env.db.First(&models.Task{}, task.ID).Error)
}
