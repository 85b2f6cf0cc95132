package handlers

import (
	"errors"

	"classhub/internal/adapters/persistence/repositories"
	"classhub/internal/core/domain"
	"classhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MembersHandler handles core member and class member endpoints
type MembersHandler struct {
	coreRepo  *repositories.CoreMemberRepository
	classRepo *repositories.ClassMemberRepository
}

// NewMembersHandler creates a new members handler
func NewMembersHandler(
	coreRepo *repositories.CoreMemberRepository,
	classRepo *repositories.ClassMemberRepository,
) *MembersHandler {
	return &MembersHandler{coreRepo: coreRepo, classRepo: classRepo}
}

// ============================================================
// Core Members
// ============================================================

// CreateCoreMemberRequest represents create core member request
type CreateCoreMemberRequest struct {
	Name        string      `json:"name"`
	StudentID   string      `json:"studentId"`
	Role        domain.Role `json:"role"`
	ImageURL    string      `json:"imageUrl"`
	Description string      `json:"description"`
}

// Validate checks required fields and returns per-field problems
func (r *CreateCoreMemberRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if r.Name == "" {
		errs["name"] = "name is required"
	}
	if r.StudentID == "" {
		errs["studentId"] = "studentId is required"
	}
	if !domain.ValidRole(r.Role) {
		errs["role"] = "role must be president, secretary or treasurer"
	}
	if r.ImageURL == "" {
		errs["imageUrl"] = "imageUrl is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ListCoreMembers lists all core members
// @Summary List core members
// @Tags Members
// @Produce json
// @Success 200 {array} domain.CoreMember
// @Router /api/core-members [get]
func (h *MembersHandler) ListCoreMembers(c *fiber.Ctx) error {
	return response.JSON(c, h.coreRepo.List())
}

// GetCoreMember gets a core member by ID
// @Summary Get core member
// @Tags Members
// @Produce json
// @Param id path int true "Core member ID"
// @Success 200 {object} domain.CoreMember
// @Failure 404 {object} response.ErrorBody
// @Router /api/core-members/{id} [get]
func (h *MembersHandler) GetCoreMember(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	member, err := h.coreRepo.GetByID(id)
	if err != nil {
		return response.NotFound(c, "Core member not found")
	}
	return response.JSON(c, member)
}

// CreateCoreMember creates a new core member
// @Summary Create core member
// @Tags Members
// @Accept json
// @Produce json
// @Param body body CreateCoreMemberRequest true "Core member data"
// @Success 201 {object} domain.CoreMember
// @Failure 400 {object} response.ErrorBody
// @Router /api/core-members [post]
func (h *MembersHandler) CreateCoreMember(c *fiber.Ctx) error {
	var req CreateCoreMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if errs := req.Validate(); errs != nil {
		return response.ValidationError(c, errs)
	}

	member := h.coreRepo.Create(domain.CoreMember{
		Name:        req.Name,
		StudentID:   req.StudentID,
		Role:        req.Role,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	})
	return response.Created(c, member)
}

// UpdateCoreMember partially updates a core member
// @Summary Update core member
// @Tags Members
// @Accept json
// @Produce json
// @Param id path int true "Core member ID"
// @Param body body domain.CoreMemberPatch true "Fields to update"
// @Success 200 {object} domain.CoreMember
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/core-members/{id} [put]
func (h *MembersHandler) UpdateCoreMember(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var patch domain.CoreMemberPatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if patch.Role != nil && !domain.ValidRole(*patch.Role) {
		return response.ValidationError(c, map[string]string{
			"role": "role must be president, secretary or treasurer",
		})
	}

	member, err := h.coreRepo.Update(id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Core member not found")
		}
		return response.InternalServerError(c, "Failed to update core member")
	}
	return response.JSON(c, member)
}

// DeleteCoreMember deletes a core member
// @Summary Delete core member
// @Tags Members
// @Param id path int true "Core member ID"
// @Success 204
// @Failure 404 {object} response.ErrorBody
// @Router /api/core-members/{id} [delete]
func (h *MembersHandler) DeleteCoreMember(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.coreRepo.Delete(id); err != nil {
		return response.NotFound(c, "Core member not found")
	}
	return response.NoContent(c)
}

// ============================================================
// Class Members
// ============================================================

// CreateClassMemberRequest represents create class member request
type CreateClassMemberRequest struct {
	Name      string `json:"name"`
	StudentID string `json:"studentId"`
	ImageURL  string `json:"imageUrl"`
}

// Validate checks required fields and returns per-field problems
func (r *CreateClassMemberRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if r.Name == "" {
		errs["name"] = "name is required"
	}
	if r.StudentID == "" {
		errs["studentId"] = "studentId is required"
	}
	if r.ImageURL == "" {
		errs["imageUrl"] = "imageUrl is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ListClassMembers lists all class members
func (h *MembersHandler) ListClassMembers(c *fiber.Ctx) error {
	return response.JSON(c, h.classRepo.List())
}

// GetClassMember gets a class member by ID
func (h *MembersHandler) GetClassMember(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	member, err := h.classRepo.GetByID(id)
	if err != nil {
		return response.NotFound(c, "Class member not found")
	}
	return response.JSON(c, member)
}

// CreateClassMember creates a new class member
func (h *MembersHandler) CreateClassMember(c *fiber.Ctx) error {
	var req CreateClassMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if errs := req.Validate(); errs != nil {
		return response.ValidationError(c, errs)
	}

	member := h.classRepo.Create(domain.ClassMember{
		Name:      req.Name,
		StudentID: req.StudentID,
		ImageURL:  req.ImageURL,
	})
	return response.Created(c, member)
}

// UpdateClassMember partially updates a class member
func (h *MembersHandler) UpdateClassMember(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var patch domain.ClassMemberPatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	member, err := h.classRepo.Update(id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Class member not found")
		}
		return response.InternalServerError(c, "Failed to update class member")
	}
	return response.JSON(c, member)
}

// DeleteClassMember deletes a class member
func (h *MembersHandler) DeleteClassMember(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.classRepo.Delete(id); err != nil {
		return response.NotFound(c, "Class member not found")
	}
	return response.NoContent(c)
}
