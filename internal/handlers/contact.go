package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joinboard/join-api/internal/dto"
	apierrors "github.com/joinboard/join-api/internal/errors"
	"github.com/joinboard/join-api/internal/middleware"
	"github.com/joinboard/join-api/internal/policy"
	"github.com/joinboard/join-api/internal/services"
)

// ContactHandler coordinates contact directory HTTP handlers.
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// ListContacts returns all contacts.
func (h *ContactHandler) ListContacts(c *gin.Context) {
	contacts, err := h.contactService.ListContacts()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch contacts")
		return
	}

	c.JSON(http.StatusOK, dto.ToContactDTOs(contacts))
}

// GetContact returns a single contact.
func (h *ContactHandler) GetContact(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	contact, err := h.contactService.GetContact(id)
	if err != nil {
		respondContactError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContactDTO(*contact))
}

// CreateContact creates a user-less contact. There is deliberately no
// active_user field in the request shape: a caller can never bind an
// existing user to a contact through this path, whatever they send.
func (h *ContactHandler) CreateContact(c *gin.Context) {
	type CreateContactRequest struct {
		Name  string  `json:"name" binding:"required,max=100"`
		Email string  `json:"email" binding:"required,email"`
		Phone *string `json:"phone" binding:"omitempty,max=15"`
	}

	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	contact, err := h.contactService.CreateContact(services.CreateContactInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		respondContactError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToContactDTO(*contact))
}

// UpdateContact applies a partial update to a contact. The user binding is
// read-only: a supplied active_user is silently dropped, and the badge color
// keeps its creation-time value unless explicitly overwritten.
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	contact, err := h.contactService.GetContact(id)
	if err != nil {
		respondContactError(c, err)
		return
	}

	actorID, _ := middleware.GetUserID(c)
	if !policy.CanModifyContact(actorID, contact) {
		apierrors.Forbidden(c, "This contact belongs to another user")
		return
	}

	type UpdateContactRequest struct {
		Name       *string `json:"name" binding:"omitempty,max=100"`
		Email      *string `json:"email" binding:"omitempty,email"`
		Phone      *string `json:"phone" binding:"omitempty,max=15"`
		BadgeColor *int    `json:"badge_color"`
	}

	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.contactService.UpdateContact(id, services.UpdateContactInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		BadgeColor: req.BadgeColor,
	})
	if err != nil {
		respondContactError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContactDTO(*updated))
}

// DeleteContact removes a contact, its bound user if any, and every task
// assignment referencing it.
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	contact, err := h.contactService.GetContact(id)
	if err != nil {
		respondContactError(c, err)
		return
	}

	actorID, _ := middleware.GetUserID(c)
	if !policy.CanModifyContact(actorID, contact) {
		apierrors.Forbidden(c, "This contact belongs to another user")
		return
	}

	if err := h.contactService.DeleteContact(id); err != nil {
		respondContactError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondContactError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrContactNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrContactNameRequired),
		errors.Is(err, services.ErrContactEmailRequired),
		errors.Is(err, services.ErrBadgeColorOutOfRange):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
