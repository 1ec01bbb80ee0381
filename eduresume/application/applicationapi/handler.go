package applicationapi

import (
	"strconv"

	"github.com/Abraxas-365/eduresume/eduresume/application"
	"github.com/Abraxas-365/eduresume/eduresume/application/applicationsrv"
	"github.com/Abraxas-365/eduresume/eduresume/user/userauth"
	"github.com/Abraxas-365/eduresume/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Handlers contains the application HTTP handlers
type Handlers struct {
	service *applicationsrv.Service
}

func NewHandlers(service *applicationsrv.Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes registers the application endpoints. Everything requires
// authentication; status changes require a professor.
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	applications := app.Group("/api/applications", authMiddleware)

	applications.Post("/", handlers.Create)
	applications.Get("/", handlers.List)
	applications.Get("/:id", handlers.Get)
	applications.Patch("/:id/status", userauth.RequireRole(kernel.RoleProfessor), handlers.UpdateStatus)
	applications.Delete("/:id", handlers.Delete)
}

// Create handles POST /api/applications
func (h *Handlers) Create(c *fiber.Ctx) error {
	authCtx, ok := userauth.GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	var req application.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidInput("invalid request body")
	}

	a, err := h.service.Create(c.Context(), authCtx.UserID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(a)
}

// List handles GET /api/applications
func (h *Handlers) List(c *fiber.Ctx) error {
	authCtx, ok := userauth.GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	size, _ := strconv.Atoi(c.Query("page_size", "20"))

	result, err := h.service.List(c.Context(), authCtx.UserID, kernel.NewPaginationOptions(page, size))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// Get handles GET /api/applications/:id
func (h *Handlers) Get(c *fiber.Ctx) error {
	authCtx, ok := userauth.GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	a, err := h.service.Get(c.Context(), authCtx.UserID, authCtx.Role, kernel.ApplicationID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(a)
}

// UpdateStatus handles PATCH /api/applications/:id/status
func (h *Handlers) UpdateStatus(c *fiber.Ctx) error {
	var req application.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidInput("invalid request body")
	}

	a, err := h.service.UpdateStatus(c.Context(), kernel.ApplicationID(c.Params("id")), &req)
	if err != nil {
		return err
	}
	return c.JSON(a)
}

// Delete handles DELETE /api/applications/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	authCtx, ok := userauth.GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	if err := h.service.Delete(c.Context(), authCtx.UserID, authCtx.Role, kernel.ApplicationID(c.Params("id"))); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Application deleted"})
}
