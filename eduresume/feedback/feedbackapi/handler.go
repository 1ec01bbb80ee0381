package feedbackapi

import (
	"strconv"

	"github.com/Abraxas-365/eduresume/eduresume/feedback"
	"github.com/Abraxas-365/eduresume/eduresume/feedback/feedbacksrv"
	"github.com/Abraxas-365/eduresume/eduresume/user/userauth"
	"github.com/Abraxas-365/eduresume/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Handlers contains the feedback HTTP handlers
type Handlers struct {
	service *feedbacksrv.Service
}

func NewHandlers(service *feedbacksrv.Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes registers the feedback endpoints. Writing requires a
// professor; students read what was addressed to them.
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	fb := app.Group("/api/feedback", authMiddleware)

	professorOnly := userauth.RequireRole(kernel.RoleProfessor)
	fb.Post("/", professorOnly, handlers.Create)
	fb.Get("/student", handlers.ListMine)
	fb.Get("/resume/:resumeId", handlers.ListByResume)
	fb.Get("/:id", handlers.Get)
	fb.Put("/:id", professorOnly, handlers.Update)
	fb.Delete("/:id", professorOnly, handlers.Delete)
}

// Create handles POST /api/feedback
func (h *Handlers) Create(c *fiber.Ctx) error {
	authCtx, ok := userauth.GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	var req feedback.CreateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return feedback.ErrInvalidInput("invalid request body")
	}

	f, err := h.service.Create(c.Context(), authCtx.UserID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(f)
}

// ListMine handles GET /api/feedback/student
func (h *Handlers) ListMine(c *fiber.Ctx) error {
	authCtx, ok := userauth.GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	size, _ := strconv.Atoi(c.Query("page_size", "20"))

	result, err := h.service.ListForStudent(c.Context(), authCtx.UserID, kernel.NewPaginationOptions(page, size))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// ListByResume handles GET /api/feedback/resume/:resumeId
func (h *Handlers) ListByResume(c *fiber.Ctx) error {
	items, err := h.service.ListByResume(c.Context(), kernel.ResumeID(c.Params("resumeId")))
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// Get handles GET /api/feedback/:id
func (h *Handlers) Get(c *fiber.Ctx) error {
	authCtx, ok := userauth.GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	f, err := h.service.Get(c.Context(), authCtx.UserID, authCtx.Role, kernel.FeedbackID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(f)
}

// Update handles PUT /api/feedback/:id
func (h *Handlers) Update(c *fiber.Ctx) error {
	authCtx, ok := userauth.GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	var req feedback.UpdateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return feedback.ErrInvalidInput("invalid request body")
	}

	f, err := h.service.Update(c.Context(), authCtx.UserID, authCtx.Role, kernel.FeedbackID(c.Params("id")), &req)
	if err != nil {
		return err
	}
	return c.JSON(f)
}

// Delete handles DELETE /api/feedback/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	authCtx, ok := userauth.GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	if err := h.service.Delete(c.Context(), authCtx.UserID, authCtx.Role, kernel.FeedbackID(c.Params("id"))); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Feedback deleted"})
}
