package handlers

import (
	"strings"

	"classhub/internal/adapters/persistence/repositories"
	"classhub/internal/core/domain"
	"classhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ContactHandler handles contact form endpoints
type ContactHandler struct {
	contactRepo *repositories.ContactMessageRepository
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactRepo *repositories.ContactMessageRepository) *ContactHandler {
	return &ContactHandler{contactRepo: contactRepo}
}

// CreateContactMessageRequest represents the contact form payload
type CreateContactMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Urgent  bool   `json:"urgent"`
}

// Validate checks required fields and returns per-field problems
func (r *CreateContactMessageRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if r.Name == "" {
		errs["name"] = "name is required"
	}
	if r.Email == "" {
		errs["email"] = "email is required"
	} else if !strings.Contains(r.Email, "@") {
		errs["email"] = "email must be a valid address"
	}
	if r.Subject == "" {
		errs["subject"] = "subject is required"
	}
	if r.Message == "" {
		errs["message"] = "message is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// CreateContactMessage handles a contact form submission. The server
// stamps createdAt; clients cannot set or change it.
// @Summary Send contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param body body CreateContactMessageRequest true "Message"
// @Success 201 {object} domain.ContactMessage
// @Failure 400 {object} response.ErrorBody
// @Router /api/contact [post]
func (h *ContactHandler) CreateContactMessage(c *fiber.Ctx) error {
	var req CreateContactMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if errs := req.Validate(); errs != nil {
		return response.ValidationError(c, errs)
	}

	m := h.contactRepo.Create(domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Urgent:  req.Urgent,
	})
	return response.Created(c, m)
}

// ListContactMessages lists all received contact messages
func (h *ContactHandler) ListContactMessages(c *fiber.Ctx) error {
	return response.JSON(c, h.contactRepo.List())
}
