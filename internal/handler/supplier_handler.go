package handler

import (
	"stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SupplierHandler struct {
	service service.SupplierService
}

func NewSupplierHandler(s service.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: s}
}

func (h *SupplierHandler) List(c *fiber.Ctx) error {
	suppliers, err := h.service.List(c.Query("search"))
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, suppliers)
}

func (h *SupplierHandler) Get(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid supplier ID")
	}

	supplier, err := h.service.Get(id)
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, supplier)
}

func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var req service.CreateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	supplier, err := h.service.Create(&req)
	if err != nil {
		return serviceError(c, err)
	}
	return created(c, "Supplier created successfully", supplier)
}

func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid supplier ID")
	}

	var req service.UpdateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	supplier, err := h.service.Update(id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return okMessage(c, "Supplier updated successfully", supplier)
}

func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid supplier ID")
	}

	if err := h.service.Delete(id); err != nil {
		return serviceError(c, err)
	}
	return okMessage(c, "Supplier deleted successfully", nil)
}
