package templateapi

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Abraxas-365/eduresume/eduresume/template"
	"github.com/Abraxas-365/eduresume/eduresume/template/templatesrv"
	"github.com/Abraxas-365/eduresume/eduresume/user/userauth"
	"github.com/Abraxas-365/eduresume/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Handlers contains the template HTTP handlers
type Handlers struct {
	service *templatesrv.Service
}

func NewHandlers(service *templatesrv.Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes registers the template endpoints. Browsing and
// downloading are public; uploading and deleting require a professor.
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	templates := app.Group("/api/templates")

	templates.Get("/", handlers.List)
	templates.Get("/:id", handlers.Get)
	templates.Get("/:id/file", handlers.Download)

	templates.Post("/", authMiddleware, userauth.RequireRole(kernel.RoleProfessor), handlers.Create)
	templates.Get("/mine/list", authMiddleware, userauth.RequireRole(kernel.RoleProfessor), handlers.ListMine)
	templates.Delete("/:id", authMiddleware, userauth.RequireRole(kernel.RoleProfessor), handlers.Delete)
}

// Create handles POST /api/templates (multipart: pdf file + metadata fields)
func (h *Handlers) Create(c *fiber.Ctx) error {
	authCtx, ok := userauth.GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	req := &template.CreateTemplateRequest{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
	}

	fileHeader, err := c.FormFile("pdf")
	if err != nil {
		return template.ErrInvalidInput("pdf file part is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return template.ErrInvalidInput("cannot open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return template.ErrInvalidInput("cannot read uploaded file")
	}

	resp, err := h.service.Create(c.Context(), authCtx.UserID, req, fileHeader.Filename, data)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List handles GET /api/templates
func (h *Handlers) List(c *fiber.Ctx) error {
	result, err := h.service.List(c.Context(), paginationFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// ListMine handles GET /api/templates/mine/list
func (h *Handlers) ListMine(c *fiber.Ctx) error {
	authCtx, ok := userauth.GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	result, err := h.service.ListByProfessor(c.Context(), authCtx.UserID, paginationFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// Get handles GET /api/templates/:id
func (h *Handlers) Get(c *fiber.Ctx) error {
	t, err := h.service.Get(c.Context(), kernel.TemplateID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(t)
}

// Download handles GET /api/templates/:id/file
func (h *Handlers) Download(c *fiber.Ctx) error {
	t, rc, err := h.service.Download(c.Context(), kernel.TemplateID(c.Params("id")))
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", t.Name+".pdf"))
	return c.SendStream(rc)
}

// Delete handles DELETE /api/templates/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	authCtx, ok := userauth.GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	if err := h.service.Delete(c.Context(), authCtx.UserID, authCtx.Role, kernel.TemplateID(c.Params("id"))); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Template deleted"})
}

func paginationFromQuery(c *fiber.Ctx) kernel.PaginationOptions {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	size, _ := strconv.Atoi(c.Query("page_size", "20"))
	return kernel.NewPaginationOptions(page, size)
}
