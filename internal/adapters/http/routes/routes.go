package routes

import (
	"classhub/internal/adapters/http/handlers"
	"classhub/internal/adapters/persistence/repositories"
	"classhub/internal/adapters/persistence/store"
	"classhub/internal/config"
	"classhub/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// Setup configures all routes for the application. The store handle is
// passed down explicitly so tests can wire a fresh store per case.
func Setup(app *fiber.App, s *store.Store, cfg *config.Config) {
	// Initialize repositories
	coreMemberRepo := repositories.NewCoreMemberRepository(s)
	classMemberRepo := repositories.NewClassMemberRepository(s)
	announcementRepo := repositories.NewAnnouncementRepository(s)
	scheduleRepo := repositories.NewScheduleRepository(s)
	assignmentRepo := repositories.NewAssignmentRepository(s)
	transactionRepo := repositories.NewTransactionRepository(s)
	contactRepo := repositories.NewContactMessageRepository(s)

	// Initialize services
	financeService := services.NewFinanceService(transactionRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg.AppMode)
	membersHandler := handlers.NewMembersHandler(coreMemberRepo, classMemberRepo)
	academicHandler := handlers.NewAcademicHandler(announcementRepo, scheduleRepo, assignmentRepo)
	financeHandler := handlers.NewFinanceHandler(transactionRepo, financeService)
	contactHandler := handlers.NewContactHandler(contactRepo)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	api := app.Group("/api")

	// Core members
	coreMembers := api.Group("/core-members")
	coreMembers.Get("/", membersHandler.ListCoreMembers)
	coreMembers.Get("/:id", membersHandler.GetCoreMember)
	coreMembers.Post("/", membersHandler.CreateCoreMember)
	coreMembers.Put("/:id", membersHandler.UpdateCoreMember)
	coreMembers.Delete("/:id", membersHandler.DeleteCoreMember)

	// Class members
	classMembers := api.Group("/class-members")
	classMembers.Get("/", membersHandler.ListClassMembers)
	classMembers.Get("/:id", membersHandler.GetClassMember)
	classMembers.Post("/", membersHandler.CreateClassMember)
	classMembers.Put("/:id", membersHandler.UpdateClassMember)
	classMembers.Delete("/:id", membersHandler.DeleteClassMember)

	// Announcements
	announcements := api.Group("/announcements")
	announcements.Get("/", academicHandler.ListAnnouncements)
	announcements.Get("/:id", academicHandler.GetAnnouncement)
	announcements.Post("/", academicHandler.CreateAnnouncement)
	announcements.Put("/:id", academicHandler.UpdateAnnouncement)
	announcements.Delete("/:id", academicHandler.DeleteAnnouncement)

	// Schedules
	schedules := api.Group("/schedules")
	schedules.Get("/", academicHandler.ListSchedules)
	schedules.Get("/:id", academicHandler.GetSchedule)
	schedules.Post("/", academicHandler.CreateSchedule)
	schedules.Put("/:id", academicHandler.UpdateSchedule)
	schedules.Delete("/:id", academicHandler.DeleteSchedule)

	// Assignments
	assignments := api.Group("/assignments")
	assignments.Get("/", academicHandler.ListAssignments)
	assignments.Get("/:id", academicHandler.GetAssignment)
	assignments.Post("/", academicHandler.CreateAssignment)
	assignments.Put("/:id", academicHandler.UpdateAssignment)
	assignments.Delete("/:id", academicHandler.DeleteAssignment)

	// Transactions & finance summary
	transactions := api.Group("/transactions")
	transactions.Get("/", financeHandler.ListTransactions)
	transactions.Get("/:id", financeHandler.GetTransaction)
	transactions.Post("/", financeHandler.CreateTransaction)
	transactions.Put("/:id", financeHandler.UpdateTransaction)
	transactions.Delete("/:id", financeHandler.DeleteTransaction)
	api.Get("/finance-summary", financeHandler.GetFinanceSummary)

	// Contact form
	api.Post("/contact", contactHandler.CreateContactMessage)
	api.Get("/contact", contactHandler.ListContactMessages)
}
