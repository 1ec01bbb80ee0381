package userauth

import (
	"github.com/Abraxas-365/eduresume/eduresume/user"
	"github.com/Abraxas-365/eduresume/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for authentication
type Handlers struct {
	service *AuthService
}

func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes registers the auth routes
func (h *Handlers) RegisterRoutes(app *fiber.App, authMiddleware fiber.Handler) {
	auth := app.Group("/api/auth")

	auth.Post("/signup", h.Signup)
	auth.Post("/login", h.Login)
	auth.Post("/forgot-password", h.ForgotPassword)
	auth.Get("/reset/:token", h.VerifyResetToken)
	auth.Post("/reset/:token", h.ResetPassword)
	auth.Get("/me", authMiddleware, h.Me)
}

// Signup registers a new user
// POST /api/auth/signup
func (h *Handlers) Signup(c *fiber.Ctx) error {
	var req user.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return user.ErrInvalidInput().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.Signup(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login authenticates a user
// POST /api/auth/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req user.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return user.ErrInvalidInput().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.Login(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ForgotPassword issues a password-reset token
// POST /api/auth/forgot-password
func (h *Handlers) ForgotPassword(c *fiber.Ctx) error {
	var req user.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return user.ErrInvalidInput().WithDetail("parse_error", err.Error())
	}

	token, err := h.service.ForgotPassword(c.Context(), kernel.Email(req.Email))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Password reset token generated",
		"token":   token,
	})
}

// VerifyResetToken checks a reset token
// GET /api/auth/reset/:token
func (h *Handlers) VerifyResetToken(c *fiber.Ctx) error {
	userID, err := h.service.VerifyResetToken(c.Context(), c.Params("token"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Token valid",
		"userId":  userID,
	})
}

// ResetPassword sets a new password
// POST /api/auth/reset/:token
func (h *Handlers) ResetPassword(c *fiber.Ctx) error {
	var req user.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return user.ErrInvalidInput().WithDetail("parse_error", err.Error())
	}

	if err := h.service.ResetPassword(c.Context(), c.Params("token"), req.NewPassword); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Password reset successful"})
}

// Me returns the authenticated user's profile
// GET /api/auth/me
func (h *Handlers) Me(c *fiber.Ctx) error {
	authCtx, ok := GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	profile, err := h.service.GetProfile(c.Context(), authCtx.UserID)
	if err != nil {
		return err
	}

	return c.JSON(profile)
}
