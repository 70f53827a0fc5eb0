package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/joinboard/join-api/internal/constants"
	"github.com/joinboard/join-api/internal/dto"
	"github.com/joinboard/join-api/internal/models"
	"github.com/joinboard/join-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestContactHandler_CreateNeverBindsUser(t *testing.T) {
	env := setupTestEnv(t)
	env.register(t, "user1", "user1@example.com", "password1")
	token := env.loginToken(t, "user1@example.com", "password1")

	// A caller-supplied active_user must be discarded.
	w := env.request(t, http.MethodPost, "/contacts", token, map[string]interface{}{
		"name":        "Max Mustermann",
		"email":       "max@example.com",
		"active_user": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var contact dto.ContactDTO
	decodeJSON(t, w, &contact)
	require.Nil(t, contact.ActiveUser)
	require.Equal(t, "MM", contact.Initials)
	require.GreaterOrEqual(t, contact.BadgeColor, constants.BadgeColorMin)
	require.LessOrEqual(t, contact.BadgeColor, constants.BadgeColorMax)

	var stored models.Contact
	require.NoError(t, env.db.First(&stored, contact.ID).Error)
	require.Nil(t, stored.ActiveUserID)
}

func TestContactHandler_UpdateIgnoresActiveUser(t *testing.T) {
	env := setupTestEnv(t)
	user := env.register(t, "user1", "user1@example.com", "password1")
	token := env.loginToken(t, "user1@example.com", "password1")

	var contact models.Contact
	require.NoError(t, env.db.Where("active_user_id = ?", user.ID).First(&contact).Error)

	w := env.request(t, http.MethodPatch, fmt.Sprintf("/contacts/%d", contact.ID), token, map[string]interface{}{
		"name":        "New Name",
		"active_user": nil,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated dto.ContactDTO
	decodeJSON(t, w, &updated)
	require.Equal(t, "New Name", updated.Name)
	require.Equal(t, "NN", updated.Initials)
	require.NotNil(t, updated.ActiveUser)
	require.Equal(t, user.ID, *updated.ActiveUser)
}

func TestContactHandler_BadgeColorValidated(t *testing.T) {
	env := setupTestEnv(t)
	env.register(t, "user1", "user1@example.com", "password1")
	token := env.loginToken(t, "user1@example.com", "password1")

	created, err := env.contactService.CreateContact(services.CreateContactInput{
		Name:  "Plain Contact",
		Email: "plain@example.com",
	})
	require.NoError(t, err)

	w := env.request(t, http.MethodPatch, fmt.Sprintf("/contacts/%d", created.ID), token, map[string]interface{}{
		"badge_color": 15,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.request(t, http.MethodPatch, fmt.Sprintf("/contacts/%d", created.ID), token, map[string]interface{}{
		"badge_color": 3,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated dto.ContactDTO
	decodeJSON(t, w, &updated)
	require.Equal(t, 3, updated.BadgeColor)
}

func TestContactHandler_MalformedEmailRejected(t *testing.T) {
	env := setupTestEnv(t)
	env.register(t, "user1", "user1@example.com", "password1")
	token := env.loginToken(t, "user1@example.com", "password1")

	w := env.request(t, http.MethodPost, "/contacts", token, map[string]interface{}{
		"name":  "Bad Address",
		"email": "definitely not an email",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.Contact{}).Where("active_user_id IS NULL").Count(&count).Error)
	require.EqualValues(t, 0, count)

	created, err := env.contactService.CreateContact(services.CreateContactInput{
		Name:  "Good Address",
		Email: "good@example.com",
	})
	require.NoError(t, err)

	w = env.request(t, http.MethodPatch, fmt.Sprintf("/contacts/%d", created.ID), token, map[string]interface{}{
		"email": "also-not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var unchanged models.Contact
	require.NoError(t, env.db.First(&unchanged, created.ID).Error)
	require.Equal(t, "good@example.com", unchanged.Email)
}

func TestContactHandler_ForeignBoundContactImmutable(t *testing.T) {
	env := setupTestEnv(t)
	env.register(t, "user1", "user1@example.com", "password1")
	other := env.register(t, "user2", "user2@example.com", "password2")
	token := env.loginToken(t, "user1@example.com", "password1")

	var foreign models.Contact
	require.NoError(t, env.db.Where("active_user_id = ?", other.ID).First(&foreign).Error)

	// Reads are open.
	w := env.request(t, http.MethodGet, fmt.Sprintf("/contacts/%d", foreign.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Mutations are not: the object exists, so this is a 403, not a 404.
	w = env.request(t, http.MethodPatch, fmt.Sprintf("/contacts/%d", foreign.ID), token, map[string]string{
		"name": "hijacked",
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.request(t, http.MethodDelete, fmt.Sprintf("/contacts/%d", foreign.ID), token, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestContactHandler_DeleteCascadesToUserAndTasks(t *testing.T) {
	env := setupTestEnv(t)
	user := env.register(t, "user1", "user1@example.com", "password1")
	env.register(t, "user2", "user2@example.com", "password2")
	token := env.loginToken(t, "user1@example.com", "password1")

	var contact models.Contact
	require.NoError(t, env.db.Where("active_user_id = ?", user.ID).First(&contact).Error)

	task, err := env.taskService.CreateTask(services.CreateTaskInput{
		Title:      "Review PR",
		DueDate:    models.NewDate(2026, time.October, 1),
		Category:   models.TaskCategoryTechnical,
		AssignedTo: []uint64{contact.ID},
	})
	require.NoError(t, err)
	require.Len(t, task.AssignedTo, 1)

	w := env.request(t, http.MethodDelete, fmt.Sprintf("/contacts/%d", contact.ID), token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// The bound user is deleted exactly once, together with the contact.
	err = env.db.First(&models.User{}, user.ID).Error
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	err = env.db.First(&models.Contact{}, contact.ID).Error
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// No dangling reference survives in the task's assignment set.
	reloaded, err := env.taskService.GetTask(task.ID)
	require.NoError(t, err)
	require.Empty(t, reloaded.AssignedTo)
}

func TestContactHandler_DeleteUnboundContact(t *testing.T) {
	env := setupTestEnv(t)
	env.register(t, "user1", "user1@example.com", "password1")
	token := env.loginToken(t, "user1@example.com", "password1")

	created, err := env.contactService.CreateContact(services.CreateContactInput{
		Name:  "Loose End",
		Email: "loose@example.com",
	})
	require.NoError(t, err)

	w := env.request(t, http.MethodDelete, fmt.Sprintf("/contacts/%d", created.ID), token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// No user existed, so only the contact disappears.
	var users int64
	require.NoError(t, env.db.Model(&models.User{}).Count(&users).Error)
	require.EqualValues(t, 1, users)
}
