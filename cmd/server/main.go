package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"classhub/internal/adapters/http/middleware"
	"classhub/internal/adapters/http/routes"
	"classhub/internal/adapters/persistence/repositories"
	"classhub/internal/adapters/persistence/store"
	"classhub/internal/config"
	"classhub/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Build the in-memory store; everything lives and dies with the process
	s := store.NewStore()

	// Seed fixture data before serving any traffic
	if cfg.SeedData {
		if err := config.NewSeeder(s).Run(); err != nil {
			log.Fatalf("❌ Failed to seed data: %v", err)
		}
	}

	// Nightly treasury report
	financeService := services.NewFinanceService(repositories.NewTransactionRepository(s))
	reportService := services.NewReportService(financeService)
	reportService.Start()
	defer reportService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Class Portal API",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass store and cfg for dependency injection)
	routes.Setup(app, s, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
