package handler

import (
	"stockroom/internal/repository"
	"stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	filter := repository.ProductFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}
	if raw := c.Query("category"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid category ID")
		}
		filter.CategoryID = id
	}
	if raw := c.Query("supplier"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid supplier ID")
		}
		filter.SupplierID = id
	}

	products, err := h.service.List(filter)
	if err != nil {
		return serviceError(c, err)
	}

	offset, limit, p := paginate(c, len(products))
	end := offset + limit
	if end > len(products) {
		end = len(products)
	}
	return paginated(c, products[offset:end], p)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	product, err := h.service.Get(id)
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, product)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req service.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	product, err := h.service.Create(&req)
	if err != nil {
		return serviceError(c, err)
	}
	return created(c, "Product created successfully", product)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	var req service.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	product, err := h.service.Update(id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return okMessage(c, "Product updated successfully", product)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	if err := h.service.Delete(id); err != nil {
		return serviceError(c, err)
	}
	return okMessage(c, "Product deleted successfully", nil)
}
