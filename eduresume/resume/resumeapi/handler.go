package resumeapi

import (
	"strconv"

	"github.com/Abraxas-365/eduresume/eduresume/resume"
	"github.com/Abraxas-365/eduresume/eduresume/resume/resumesrv"
	"github.com/Abraxas-365/eduresume/eduresume/user/userauth"
	"github.com/Abraxas-365/eduresume/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Handlers contains the resume HTTP handlers
type Handlers struct {
	service *resumesrv.Service
}

func NewHandlers(service *resumesrv.Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes registers the resume endpoints. Everything is owner-scoped.
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	resumes := app.Group("/api/resumes", authMiddleware)

	resumes.Post("/", handlers.Create)
	resumes.Get("/", handlers.List)
	resumes.Get("/:id", handlers.Get)
	resumes.Put("/:id", handlers.Update)
	resumes.Post("/:id/publish", handlers.Publish)
	resumes.Post("/:id/unpublish", handlers.Unpublish)
	resumes.Delete("/:id", handlers.Delete)
}

// Create handles POST /api/resumes
func (h *Handlers) Create(c *fiber.Ctx) error {
	authCtx, ok := userauth.GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	var req resume.CreateResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return resume.ErrInvalidInput("invalid request body")
	}

	resp, err := h.service.Create(c.Context(), authCtx.UserID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List handles GET /api/resumes
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

// Get handles GET /api/resumes/:id
func (h *Handlers) Get(c *fiber.Ctx) error {
	authCtx, ok := userauth.GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	details, err := h.service.Get(c.Context(), authCtx.UserID, kernel.ResumeID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(details)
}

// Update handles PUT /api/resumes/:id
func (h *Handlers) Update(c *fiber.Ctx) error {
	authCtx, ok := userauth.GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	var req resume.UpdateResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return resume.ErrInvalidInput("invalid request body")
	}

	updated, err := h.service.Update(c.Context(), authCtx.UserID, kernel.ResumeID(c.Params("id")), &req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Resume details updated", "resume": updated})
}

// Publish handles POST /api/resumes/:id/publish
func (h *Handlers) Publish(c *fiber.Ctx) error {
	return h.setPublished(c, true)
}

// Unpublish handles POST /api/resumes/:id/unpublish
func (h *Handlers) Unpublish(c *fiber.Ctx) error {
	return h.setPublished(c, false)
}

func (h *Handlers) setPublished(c *fiber.Ctx, published bool) error {
	authCtx, ok := userauth.GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	updated, err := h.service.SetPublished(c.Context(), authCtx.UserID, kernel.ResumeID(c.Params("id")), published)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

// Delete handles DELETE /api/resumes/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	authCtx, ok := userauth.GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	if err := h.service.Delete(c.Context(), authCtx.UserID, kernel.ResumeID(c.Params("id"))); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Resume deleted"})
}
