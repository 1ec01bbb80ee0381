package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Abraxas-365/eduresume/eduresume/application/applicationapi"
	"github.com/Abraxas-365/eduresume/eduresume/description/descriptionapi"
	"github.com/Abraxas-365/eduresume/eduresume/feedback/feedbackapi"
	"github.com/Abraxas-365/eduresume/eduresume/hunter/hunterapi"
	"github.com/Abraxas-365/eduresume/eduresume/jobopening/jobopeningapi"
	"github.com/Abraxas-365/eduresume/eduresume/resume/resumeapi"
	"github.com/Abraxas-365/eduresume/eduresume/template/templateapi"
	"github.com/Abraxas-365/eduresume/pkg/errx"
	"github.com/Abraxas-365/eduresume/pkg/logx"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Initialize Logger
	logx.SetLevel(logx.LevelInfo)
	logx.Info("Starting EduResume API Server...")

	if err := godotenv.Load(); err != nil {
		logx.Debug("No .env file found, relying on process environment")
	}

	// 2. Initialize Dependency Container
	container := NewContainer()
	defer container.DB.Close()
	defer container.Redis.Close()

	// 3. Create Fiber App with Config
	app := fiber.New(fiber.Config{
		AppName:               "EduResume API",
		DisableStartupMessage: true,
		BodyLimit:             10 * 1024 * 1024, // template PDFs
		ErrorHandler:          globalErrorHandler,
	})

	// 4. Global Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*", // Configure for production
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, PATCH, HEAD",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// 5. Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"db":     container.DB.Ping() == nil,
			"redis":  container.Redis.Ping(c.Context()).Err() == nil,
			"blobs":  container.BlobStore.Ready(),
		})
	})

	// 6. Register Routes

	// Auth: /api/auth/*
	container.AuthHandlers.RegisterRoutes(app, container.AuthMiddleware)

	// Templates: /api/templates
	templateapi.RegisterRoutes(app, container.TemplateHandlers, container.AuthMiddleware)

	// Resumes: /api/resumes
	resumeapi.RegisterRoutes(app, container.ResumeHandlers, container.AuthMiddleware)

	// Job board: /api/jobs
	jobopeningapi.RegisterRoutes(app, container.JobOpeningHandlers, container.AuthMiddleware)

	// Applications: /api/applications
	applicationapi.RegisterRoutes(app, container.ApplicationHandlers, container.AuthMiddleware)

	// Feedback: /api/feedback
	feedbackapi.RegisterRoutes(app, container.FeedbackHandlers, container.AuthMiddleware)

	// Generation: /api/era
	descriptionapi.RegisterRoutes(app, container.DescriptionHandlers, container.AuthMiddleware)

	// Matching: /api/hunter
	hunterapi.RegisterRoutes(app, container.HunterHandlers, container.AuthMiddleware)

	// 7. Start Server with Graceful Shutdown
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	go func() {
		logx.Infof("Server listening on port %s", port)
		if err := app.Listen(":" + port); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Wait for signal
	logx.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("Server exited")
}

// globalErrorHandler converts internal errors to standard HTTP responses
func globalErrorHandler(c *fiber.Ctx, err error) error {
	// If it's a Fiber error (e.g., 404 handler not found)
	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{
			"error": e.Message,
			"code":  e.Code,
		})
	}

	// If it's our custom errx.Error
	if e, ok := err.(*errx.Error); ok {
		return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
	}

	// Default unknown error
	logx.Errorf("Internal Server Error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"type":    "INTERNAL",
		"code":    "INTERNAL_ERROR",
		"message": "An unexpected error occurred",
	})
}
