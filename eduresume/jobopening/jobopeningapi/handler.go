package jobopeningapi

import (
	"strconv"

	"github.com/Abraxas-365/eduresume/eduresume/jobopening"
	"github.com/Abraxas-365/eduresume/eduresume/jobopening/jobopeningsrv"
	"github.com/Abraxas-365/eduresume/eduresume/user/userauth"
	"github.com/Abraxas-365/eduresume/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Handlers contains the job board HTTP handlers
type Handlers struct {
	service *jobopeningsrv.Service
}

func NewHandlers(service *jobopeningsrv.Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes registers the job board endpoints. Browsing is public;
// managing postings requires a professor.
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	jobs := app.Group("/api/jobs")

	jobs.Get("/", handlers.List)
	jobs.Get("/:id", handlers.Get)

	professorOnly := userauth.RequireRole(kernel.RoleProfessor)
	jobs.Post("/", authMiddleware, professorOnly, handlers.Create)
	jobs.Put("/:id", authMiddleware, professorOnly, handlers.Update)
	jobs.Delete("/:id", authMiddleware, professorOnly, handlers.Delete)
}

// List handles GET /api/jobs
func (h *Handlers) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	size, _ := strconv.Atoi(c.Query("page_size", "20"))

	result, err := h.service.ListOpen(c.Context(), kernel.NewPaginationOptions(page, size))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// Get handles GET /api/jobs/:id
func (h *Handlers) Get(c *fiber.Ctx) error {
	job, err := h.service.Get(c.Context(), kernel.JobOpeningID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(job)
}

// Create handles POST /api/jobs
func (h *Handlers) Create(c *fiber.Ctx) error {
	var req jobopening.CreateJobOpeningRequest
	if err := c.BodyParser(&req); err != nil {
		return jobopening.ErrInvalidInput("invalid request body")
	}

	job, err := h.service.Create(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

// Update handles PUT /api/jobs/:id
func (h *Handlers) Update(c *fiber.Ctx) error {
	var req jobopening.UpdateJobOpeningRequest
	if err := c.BodyParser(&req); err != nil {
		return jobopening.ErrInvalidInput("invalid request body")
	}

	job, err := h.service.Update(c.Context(), kernel.JobOpeningID(c.Params("id")), &req)
	if err != nil {
		return err
	}
	return c.JSON(job)
}

// Delete handles DELETE /api/jobs/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), kernel.JobOpeningID(c.Params("id"))); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Job deleted"})
}
