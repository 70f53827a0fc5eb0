package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joinboard/join-api/internal/dto"
	apierrors "github.com/joinboard/join-api/internal/errors"
	"github.com/joinboard/join-api/internal/services"
)

// AuthHandler coordinates registration and login HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new user account and its paired contact.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Username string `json:"username"`
		Email    string `json:"email" binding:"omitempty,email"`
		Password string `json:"password"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	_, err := h.authService.Register(services.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondRegisterError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
	})
}

// Login authenticates by email and returns the user's bearer token. Invalid
// credentials are a 400, matching the registration surface: the caller sent
// a body that cannot be processed, and no token must appear in the response.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, token, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			apierrors.BadRequest(c, "Unable to log in with provided credentials")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		ID:    user.ID,
		Token: token.Key,
		Email: user.Email,
	})
}

func respondRegisterError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUsernameRequired):
		apierrors.BadRequestWithDetails(c, "Validation failed", gin.H{"username": err.Error()})
	case errors.Is(err, services.ErrEmailRequired):
		apierrors.BadRequestWithDetails(c, "Validation failed", gin.H{"email": err.Error()})
	case errors.Is(err, services.ErrPasswordRequired):
		apierrors.BadRequestWithDetails(c, "Validation failed", gin.H{"password": err.Error()})
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.BadRequestWithDetails(c, "Validation failed", gin.H{"email": err.Error()})
	default:
		apierrors.InternalError(c, "")
	}
}
