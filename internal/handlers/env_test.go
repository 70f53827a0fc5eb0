package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/joinboard/join-api/internal/database"
	"github.com/joinboard/join-api/internal/models"
	"github.com/joinboard/join-api/internal/repository"
	"github.com/joinboard/join-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db             *gorm.DB
	router         *gin.Engine
	authService    *services.AuthService
	userService    *services.UserService
	contactService *services.ContactService
	taskService    *services.TaskService
	subtaskService *services.SubtaskService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Contact{},
		&models.Task{},
		&models.Subtask{},
		&models.AuthToken{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A fresh pool connection would see a fresh in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	contactRepo := repository.NewContactRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	subtaskRepo := repository.NewSubtaskRepository(db)

	env := &testEnv{
		db:             db,
		authService:    services.NewAuthService(userRepo),
		userService:    services.NewUserService(userRepo),
		contactService: services.NewContactService(contactRepo),
		taskService:    services.NewTaskService(taskRepo),
		subtaskService: services.NewSubtaskService(subtaskRepo, taskRepo),
	}

	r := gin.New()
	RegisterRoutes(r,
		NewAuthHandler(env.authService),
		NewUserHandler(env.userService),
		NewContactHandler(env.contactService),
		NewTaskHandler(env.taskService),
		NewSubtaskHandler(env.subtaskService),
	)
	env.router = r

	return env
}

// register creates a user through the service layer for test fixtures.
func (e *testEnv) register(t *testing.T, username, email, password string) *models.User {
	t.Helper()

	user, err := e.authService.Register(services.RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return user
}

// loginToken returns a bearer token key for the given credentials.
func (e *testEnv) loginToken(t *testing.T, email, password string) string {
	t.Helper()

	_, token, err := e.authService.Login(services.LoginInput{
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return token.Key
}

// request performs an HTTP request against the test router. An empty token
// leaves the Authorization header unset.
func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
