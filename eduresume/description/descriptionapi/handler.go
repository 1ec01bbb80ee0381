package descriptionapi

import (
	"strconv"

	"github.com/Abraxas-365/eduresume/eduresume/description"
	"github.com/Abraxas-365/eduresume/eduresume/description/descriptionsrv"
	"github.com/Abraxas-365/eduresume/eduresume/user/userauth"
	"github.com/Abraxas-365/eduresume/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Handlers contains the generation HTTP handlers
type Handlers struct {
	service *descriptionsrv.Service
}

func NewHandlers(service *descriptionsrv.Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes registers the generation endpoints.
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	era := app.Group("/api/era", authMiddleware)

	era.Post("/generate", handlers.Generate)
	era.Get("/history", handlers.History)
}

// Generate handles POST /api/era/generate
func (h *Handlers) Generate(c *fiber.Ctx) error {
	authCtx, ok := userauth.GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	var req description.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return description.ErrInvalidInput("invalid request body")
	}

	resp, err := h.service.Generate(c.Context(), authCtx.UserID, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// History handles GET /api/era/history
func (h *Handlers) History(c *fiber.Ctx) error {
	authCtx, ok := userauth.GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	size, _ := strconv.Atoi(c.Query("page_size", "20"))

	result, err := h.service.History(c.Context(), authCtx.UserID, kernel.NewPaginationOptions(page, size))
	if err != nil {
		return err
	}
	return c.JSON(result)
}
