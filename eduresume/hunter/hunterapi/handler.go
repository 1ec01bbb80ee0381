package hunterapi

import (
	"github.com/Abraxas-365/eduresume/eduresume/hunter"
	"github.com/Abraxas-365/eduresume/eduresume/hunter/huntersrv"
	"github.com/Abraxas-365/eduresume/eduresume/user/userauth"
	"github.com/gofiber/fiber/v2"
)

// Handlers contains the matching HTTP handlers
type Handlers struct {
	service *huntersrv.Service
}

func NewHandlers(service *huntersrv.Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes registers the matching endpoints.
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	h := app.Group("/api/hunter", authMiddleware)

	h.Post("/ats-score", handlers.ATSScore)
	h.Post("/analyze", handlers.Analyze)
}

// ATSScore handles POST /api/hunter/ats-score
func (h *Handlers) ATSScore(c *fiber.Ctx) error {
	authCtx, ok := userauth.GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	var req hunter.ScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return hunter.ErrInvalidInput("invalid request body")
	}

	report, err := h.service.ATSScore(c.Context(), authCtx.UserID, &req)
	if err != nil {
		return err
	}
	return c.JSON(report)
}

// Analyze handles POST /api/hunter/analyze
func (h *Handlers) Analyze(c *fiber.Ctx) error {
	authCtx, ok := userauth.GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	var req hunter.ScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return hunter.ErrInvalidInput("invalid request body")
	}

	analysis, err := h.service.Analyze(c.Context(), authCtx.UserID, &req)
	if err != nil {
		return err
	}
	return c.JSON(analysis)
}
