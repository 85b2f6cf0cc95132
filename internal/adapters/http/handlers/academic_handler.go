package handlers

import (
	"errors"
	"time"

	"classhub/internal/adapters/persistence/repositories"
	"classhub/internal/core/domain"
	"classhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AcademicHandler handles announcement, schedule and assignment endpoints
type AcademicHandler struct {
	announcementRepo *repositories.AnnouncementRepository
	scheduleRepo     *repositories.ScheduleRepository
	assignmentRepo   *repositories.AssignmentRepository
}

// NewAcademicHandler creates a new academic handler
func NewAcademicHandler(
	announcementRepo *repositories.AnnouncementRepository,
	scheduleRepo *repositories.ScheduleRepository,
	assignmentRepo *repositories.AssignmentRepository,
) *AcademicHandler {
	return &AcademicHandler{
		announcementRepo: announcementRepo,
		scheduleRepo:     scheduleRepo,
		assignmentRepo:   assignmentRepo,
	}
}

// ============================================================
// Announcements
// ============================================================

// CreateAnnouncementRequest represents create announcement request
type CreateAnnouncementRequest struct {
	Date     string `json:"date"` // optional, defaults to today
	Title    string `json:"title"`
	Content  string `json:"content"`
	PostedBy string `json:"postedBy"`
	Status   string `json:"status"`
}

// Validate checks required fields and returns per-field problems
func (r *CreateAnnouncementRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if r.Title == "" {
		errs["title"] = "title is required"
	}
	if r.Content == "" {
		errs["content"] = "content is required"
	}
	if r.PostedBy == "" {
		errs["postedBy"] = "postedBy is required"
	}
	if r.Status == "" {
		errs["status"] = "status is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ListAnnouncements lists all announcements, newest first
// @Summary List announcements
// @Tags Academic
// @Produce json
// @Success 200 {array} domain.Announcement
// @Router /api/announcements [get]
func (h *AcademicHandler) ListAnnouncements(c *fiber.Ctx) error {
	return response.JSON(c, h.announcementRepo.List())
}

// GetAnnouncement gets an announcement by ID
func (h *AcademicHandler) GetAnnouncement(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	a, err := h.announcementRepo.GetByID(id)
	if err != nil {
		return response.NotFound(c, "Announcement not found")
	}
	return response.JSON(c, a)
}

// CreateAnnouncement creates a new announcement.
// The date defaults to today when the body omits it.
func (h *AcademicHandler) CreateAnnouncement(c *fiber.Ctx) error {
	var req CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if errs := req.Validate(); errs != nil {
		return response.ValidationError(c, errs)
	}

	date := req.Date
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	a := h.announcementRepo.Create(domain.Announcement{
		Date:     date,
		Title:    req.Title,
		Content:  req.Content,
		PostedBy: req.PostedBy,
		Status:   req.Status,
	})
	return response.Created(c, a)
}

// UpdateAnnouncement partially updates an announcement
func (h *AcademicHandler) UpdateAnnouncement(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var patch domain.AnnouncementPatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	a, err := h.announcementRepo.Update(id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Announcement not found")
		}
		return response.InternalServerError(c, "Failed to update announcement")
	}
	return response.JSON(c, a)
}

// DeleteAnnouncement deletes an announcement
func (h *AcademicHandler) DeleteAnnouncement(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.announcementRepo.Delete(id); err != nil {
		return response.NotFound(c, "Announcement not found")
	}
	return response.NoContent(c)
}

// ============================================================
// Schedules
// ============================================================

// CreateScheduleRequest represents create schedule request
type CreateScheduleRequest struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Subject   string `json:"subject"`
	Location  string `json:"location"`
	Color     string `json:"color"`
}

// Validate checks required fields and returns per-field problems
func (r *CreateScheduleRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if !domain.ValidWeekday(r.Day) {
		errs["day"] = "day must be a weekday name, Monday through Sunday"
	}
	if r.StartTime == "" {
		errs["startTime"] = "startTime is required"
	}
	if r.EndTime == "" {
		errs["endTime"] = "endTime is required"
	}
	if r.Subject == "" {
		errs["subject"] = "subject is required"
	}
	if r.Location == "" {
		errs["location"] = "location is required"
	}
	if r.Color == "" {
		errs["color"] = "color is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ListSchedules lists all schedule slots in weekday order
// @Summary List schedules
// @Tags Academic
// @Produce json
// @Success 200 {array} domain.Schedule
// @Router /api/schedules [get]
func (h *AcademicHandler) ListSchedules(c *fiber.Ctx) error {
	return response.JSON(c, h.scheduleRepo.List())
}

// GetSchedule gets a schedule slot by ID
func (h *AcademicHandler) GetSchedule(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	s, err := h.scheduleRepo.GetByID(id)
	if err != nil {
		return response.NotFound(c, "Schedule not found")
	}
	return response.JSON(c, s)
}

// CreateSchedule creates a new schedule slot. Overlapping slots are
// allowed; the timetable view simply renders both.
func (h *AcademicHandler) CreateSchedule(c *fiber.Ctx) error {
	var req CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if errs := req.Validate(); errs != nil {
		return response.ValidationError(c, errs)
	}

	s := h.scheduleRepo.Create(domain.Schedule{
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Subject:   req.Subject,
		Location:  req.Location,
		Color:     req.Color,
	})
	return response.Created(c, s)
}

// UpdateSchedule partially updates a schedule slot
func (h *AcademicHandler) UpdateSchedule(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var patch domain.SchedulePatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if patch.Day != nil && !domain.ValidWeekday(*patch.Day) {
		return response.ValidationError(c, map[string]string{
			"day": "day must be a weekday name, Monday through Sunday",
		})
	}

	s, err := h.scheduleRepo.Update(id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Schedule not found")
		}
		return response.InternalServerError(c, "Failed to update schedule")
	}
	return response.JSON(c, s)
}

// DeleteSchedule deletes a schedule slot
func (h *AcademicHandler) DeleteSchedule(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.scheduleRepo.Delete(id); err != nil {
		return response.NotFound(c, "Schedule not found")
	}
	return response.NoContent(c)
}

// ============================================================
// Assignments
// ============================================================

// CreateAssignmentRequest represents create assignment request
type CreateAssignmentRequest struct {
	Title        string                `json:"title"`
	DueDate      string                `json:"dueDate"`
	AssignedDate string                `json:"assignedDate"`
	Description  string                `json:"description"`
	Type         domain.AssignmentType `json:"type"`
	Submitted    int                   `json:"submitted"`
	Total        int                   `json:"total"`
	Status       string                `json:"status"`
}

// Validate checks required fields and returns per-field problems
func (r *CreateAssignmentRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if r.Title == "" {
		errs["title"] = "title is required"
	}
	if r.DueDate == "" {
		errs["dueDate"] = "dueDate is required"
	}
	if r.AssignedDate == "" {
		errs["assignedDate"] = "assignedDate is required"
	}
	if !domain.ValidAssignmentType(r.Type) {
		errs["type"] = "type must be individual or group"
	}
	if r.Submitted < 0 {
		errs["submitted"] = "submitted must not be negative"
	}
	if r.Total < 0 {
		errs["total"] = "total must not be negative"
	}
	if r.Status == "" {
		errs["status"] = "status is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ListAssignments lists all assignments
// @Summary List assignments
// @Tags Academic
// @Produce json
// @Success 200 {array} domain.Assignment
// @Router /api/assignments [get]
func (h *AcademicHandler) ListAssignments(c *fiber.Ctx) error {
	return response.JSON(c, h.assignmentRepo.List())
}

// GetAssignment gets an assignment by ID
func (h *AcademicHandler) GetAssignment(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	a, err := h.assignmentRepo.GetByID(id)
	if err != nil {
		return response.NotFound(c, "Assignment not found")
	}
	return response.JSON(c, a)
}

// CreateAssignment creates a new assignment
func (h *AcademicHandler) CreateAssignment(c *fiber.Ctx) error {
	var req CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if errs := req.Validate(); errs != nil {
		return response.ValidationError(c, errs)
	}

	a := h.assignmentRepo.Create(domain.Assignment{
		Title:        req.Title,
		DueDate:      req.DueDate,
		AssignedDate: req.AssignedDate,
		Description:  req.Description,
		Type:         req.Type,
		Submitted:    req.Submitted,
		Total:        req.Total,
		Status:       req.Status,
	})
	return response.Created(c, a)
}

// UpdateAssignment partially updates an assignment
func (h *AcademicHandler) UpdateAssignment(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var patch domain.AssignmentPatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if patch.Type != nil && !domain.ValidAssignmentType(*patch.Type) {
		return response.ValidationError(c, map[string]string{
			"type": "type must be individual or group",
		})
	}

	a, err := h.assignmentRepo.Update(id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Assignment not found")
		}
		return response.InternalServerError(c, "Failed to update assignment")
	}
	return response.JSON(c, a)
}

// DeleteAssignment deletes an assignment
func (h *AcademicHandler) DeleteAssignment(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.assignmentRepo.Delete(id); err != nil {
		return response.NotFound(c, "Assignment not found")
	}
	return response.NoContent(c)
}
