package handler

import (
	"stockroom/internal/service"
	"stockroom/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

func getUserID(c *fiber.Ctx) uuid.UUID {
	if id, ok := c.Locals("user_id").(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

func (h *InventoryHandler) List(c *fiber.Ctx) error {
	lowStockOnly := c.QueryBool("lowStock", false)

	items, err := h.service.List(lowStockOnly)
	if err != nil {
		return serviceError(c, err)
	}

	offset, limit, p := paginate(c, len(items))
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return paginated(c, items[offset:end], p)
}

func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid inventory ID")
	}

	item, err := h.service.Get(id)
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, item)
}

func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var req service.CreateInventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	item, err := h.service.Create(&req)
	if err != nil {
		return serviceError(c, err)
	}
	return created(c, "Inventory item created successfully", item)
}

func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid inventory ID")
	}

	var req service.UpdateInventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	item, err := h.service.Update(id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return okMessage(c, "Inventory item updated successfully", item)
}

func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid inventory ID")
	}

	if err := h.service.Delete(id); err != nil {
		return serviceError(c, err)
	}
	return okMessage(c, "Inventory item deleted successfully", nil)
}

// UpdateStock sets the absolute quantity of an item and records the movement.
func (h *InventoryHandler) UpdateStock(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid inventory ID")
	}

	var req service.UpdateStockRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid JSON")
	}
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return fail(c, fiber.StatusBadRequest, "Validation failed: "+errs[0].Message())
	}

	item, err := h.service.UpdateQuantity(id, *req.Quantity, req.Reason, getUserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return okMessage(c, "Stock updated successfully", item)
}

func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.service.LowStockItems()
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, items)
}

func (h *InventoryHandler) Value(c *fiber.Ctx) error {
	total, err := h.service.InventoryValue()
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, fiber.Map{"totalValue": total})
}

func (h *InventoryHandler) Transactions(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid inventory ID")
	}

	transactions, err := h.service.Transactions(id)
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, transactions)
}
