package handler

import (
	"stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.service.List()
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, users)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	user, err := h.service.Get(id)
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, user)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var req service.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	user, err := h.service.Update(id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return okMessage(c, "User updated successfully", user)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	if err := h.service.Delete(id, getUserID(c)); err != nil {
		return serviceError(c, err)
	}
	return okMessage(c, "User deleted successfully", nil)
}
