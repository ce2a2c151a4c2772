package handler

import (
	"stockroom/internal/model"
	"stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req service.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	user, err := h.service.Signup(&req)
	if err != nil {
		return serviceError(c, err)
	}

	return okMessage(c, "Account created successfully", fiber.Map{"user": user.ToResponse()})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req service.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	resp, err := h.service.Login(&req)
	if err != nil {
		return serviceError(c, err)
	}

	return okMessage(c, "Login successful", resp)
}

// Logout is stateless; the client discards its token.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return okMessage(c, "Logged out successfully", nil)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, found := c.Locals("user").(*model.User)
	if !found {
		return fail(c, fiber.StatusUnauthorized, "User not found")
	}
	return ok(c, fiber.Map{"user": user.ToResponse()})
}
