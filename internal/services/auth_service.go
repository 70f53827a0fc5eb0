package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joinboard/join-api/internal/models"
	"github.com/joinboard/join-api/internal/repository"
	"github.com/joinboard/join-api/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameRequired      = errors.New("username is required")
	ErrEmailRequired         = errors.New("email is required")
	ErrPasswordRequired      = errors.New("password is required")
	ErrEmailTaken            = errors.New("email already exists")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrUserNotFound          = errors.New("user not found")
	ErrFailedToHashPassword  = errors.New("failed to hash password")
	ErrFailedToCreateUser    = errors.New("failed to create user")
	ErrFailedToCreateContact = errors.New("failed to create contact")
)

// AuthService handles registration and token authentication.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates a new user together with its paired contact. The contact
// mirrors the user's name, email, and initials, carries a freshly drawn
// badge color, and is bound back to the user. Both rows are written in one
// transaction.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if input.Password == "" {
		return nil, ErrPasswordRequired
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	initials := utils.GenerateInitials(username)

	badgeColor, err := utils.RandomBadgeColor()
	if err != nil {
		return nil, ErrFailedToCreateContact
	}

	user := &models.User{
		Username:     username,
		Initials:     initials,
		Email:        email,
		PasswordHash: string(hashedPassword),
		IsActive:     true,
	}

	contact := &models.Contact{
		Name:       username,
		Initials:   initials,
		Email:      email,
		BadgeColor: badgeColor,
	}

	if err := s.userRepo.CreateWithContact(user, contact); err != nil {
		switch {
		case errors.Is(err, repository.ErrCreateUser):
			return nil, ErrFailedToCreateUser
		case errors.Is(err, repository.ErrCreateContact):
			return nil, ErrFailedToCreateContact
		default:
			return nil, fmt.Errorf("failed to complete registration: %w", err)
		}
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the user with their bearer token.
// Repeated logins hand back the same token; issuance is get-or-create.
func (s *AuthService) Login(input LoginInput) (*models.User, *models.AuthToken, error) {
	user, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !user.IsActive {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	token, err := s.userRepo.GetOrCreateToken(user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}
