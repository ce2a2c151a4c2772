package handler

import (
	"stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	service service.CategoryService
}

func NewCategoryHandler(s service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.service.List()
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, categories)
}

func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	category, err := h.service.Get(id)
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, category)
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req service.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	category, err := h.service.Create(&req)
	if err != nil {
		return serviceError(c, err)
	}
	return created(c, "Category created successfully", category)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	var req service.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	category, err := h.service.Update(id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return okMessage(c, "Category updated successfully", category)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	if err := h.service.Delete(id); err != nil {
		return serviceError(c, err)
	}
	return okMessage(c, "Category deleted successfully", nil)
}
