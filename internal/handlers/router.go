package handlers

import (
	"github.com/gin-gonic/gin"
	apierrors "github.com/joinboard/join-api/internal/errors"
	"github.com/joinboard/join-api/internal/middleware"
)

// RegisterRoutes mounts every API route on the given engine. Registration
// and login are public; everything else requires a bearer token.
func RegisterRoutes(
	r *gin.Engine,
	authHandler *AuthHandler,
	userHandler *UserHandler,
	contactHandler *ContactHandler,
	taskHandler *TaskHandler,
	subtaskHandler *SubtaskHandler,
) {
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		apierrors.MethodNotAllowed(c, "")
	})
	r.NoRoute(func(c *gin.Context) {
		apierrors.NotFound(c, "")
	})

	// Public
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// Users: no create through the collection, registration is the only way
	// in. The POST route exists solely to answer 405 after authentication.
	users := r.Group("/users")
	users.Use(middleware.RequireAuth())
	{
		users.GET("", userHandler.ListUsers)
		users.POST("", func(c *gin.Context) {
			apierrors.MethodNotAllowed(c, "Creating users here is not allowed; use /register")
		})
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.PATCH("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	contacts := r.Group("/contacts")
	contacts.Use(middleware.RequireAuth())
	{
		contacts.GET("", contactHandler.ListContacts)
		contacts.POST("", contactHandler.CreateContact)
		contacts.GET("/:id", contactHandler.GetContact)
		contacts.PUT("/:id", contactHandler.UpdateContact)
		contacts.PATCH("/:id", contactHandler.UpdateContact)
		contacts.DELETE("/:id", contactHandler.DeleteContact)
	}

	tasks := r.Group("/tasks")
	tasks.Use(middleware.RequireAuth())
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.PUT("/:id", taskHandler.UpdateTask)
		tasks.PATCH("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}

	subtasks := r.Group("/subtasks")
	subtasks.Use(middleware.RequireAuth())
	{
		subtasks.GET("", subtaskHandler.ListSubtasks)
		subtasks.POST("", subtaskHandler.CreateSubtask)
		subtasks.GET("/:id", subtaskHandler.GetSubtask)
		subtasks.PUT("/:id", subtaskHandler.UpdateSubtask)
		subtasks.PATCH("/:id", subtaskHandler.UpdateSubtask)
		subtasks.DELETE("/:id", subtaskHandler.DeleteSubtask)
	}
}
